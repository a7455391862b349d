package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicSplit/models"
)

func manualInput() ManualNetInput {
	return ManualNetInput{
		AssertedNetValue:       800,
		GrossValue:             1000,
		Procedures:             []models.Procedure{{ID: "proc-1", Name: "Consultation", FixedCost: 50}},
		Professional:           models.Professional{ID: ownerID, Name: "Bruno"},
		TaxPercentage:          3,
		DefaultBonusPercentage: 1.5,
		OwnerProfessionalID:    ownerID,
	}
}

func TestReconcileManualNetImpliedFee(t *testing.T) {
	result := ReconcileManualNet(manualInput())

	// valueAfterProcedure = 800 + 50 = 850; valueAfterCardFee = 850 / 0.97.
	assert.InDelta(t, 876.2886597938144, result.ValueAfterCardFee, 1e-9)
	assert.InDelta(t, 123.71134020618556, result.CardFeeValue, 1e-9)
	assert.InDelta(t, 12.371134020618557, result.CardFeePercentage, 1e-9)
	assert.InDelta(t, 876.2886597938144*0.03, result.TaxValue, 1e-9)
	assert.InDelta(t, 850, result.ValueAfterTax, 1e-9)
	assert.InDelta(t, 800, result.NetValue, 1e-9)
	assert.InDelta(t, 800, result.FinalValueOwner, 1e-9)
}

func TestReconcileManualNetZeroTax(t *testing.T) {
	input := manualInput()
	input.TaxPercentage = 0

	result := ReconcileManualNet(input)

	assert.InDelta(t, 850, result.ValueAfterCardFee, 1e-9)
	assert.InDelta(t, 150, result.CardFeeValue, 1e-9)
	assert.InDelta(t, 15, result.CardFeePercentage, 1e-9)
	assert.InDelta(t, 0, result.TaxValue, 1e-9)
}

func TestReconcileManualNetClampsNegativeFee(t *testing.T) {
	input := manualInput()
	input.AssertedNetValue = 1200 // more than the gross could ever net

	result := ReconcileManualNet(input)

	assert.Equal(t, 0.0, result.CardFeeValue)
	assert.Equal(t, 0.0, result.CardFeePercentage)
}

func TestReconcileManualNetZeroGross(t *testing.T) {
	input := manualInput()
	input.GrossValue = 0
	input.AssertedNetValue = 0
	input.Procedures = []models.Procedure{{ID: "proc-1", Name: "Consultation", FixedCost: 0}}

	result := ReconcileManualNet(input)

	assert.Equal(t, 0.0, result.CardFeePercentage)
}

func TestReconcileManualNetRoundTripWithoutTax(t *testing.T) {
	// With a zero tax rate the inverse is exact: feeding a forward result's
	// net value back reproduces the original card fee.
	forwardInput := baseInput()
	forwardInput.Source = models.Source{ID: "src-hosp", IsHospital: true, CustomTaxPercentage: floatPtr(0)}
	forward := CalculateAppointment(forwardInput)

	result := ReconcileManualNet(ManualNetInput{
		AssertedNetValue:    forward.NetValue,
		GrossValue:          forwardInput.GrossValue,
		Procedures:          []models.Procedure{forwardInput.Procedure},
		Professional:        forwardInput.Professional,
		TaxPercentage:       0,
		OwnerProfessionalID: ownerID,
	})

	assert.InDelta(t, forward.CardFeePercentage, result.CardFeePercentage, 0.01)
	assert.InDelta(t, forward.CardFeeValue, result.CardFeeValue, 0.01)
}

func TestReconcileManualNetRoundTripWithoutFee(t *testing.T) {
	forwardInput := baseInput()
	forwardInput.CardFeeRules = nil // 0% fee
	forward := CalculateAppointment(forwardInput)

	result := ReconcileManualNet(ManualNetInput{
		AssertedNetValue:    forward.NetValue,
		GrossValue:          forwardInput.GrossValue,
		Procedures:          []models.Procedure{forwardInput.Procedure},
		Professional:        forwardInput.Professional,
		TaxPercentage:       3,
		OwnerProfessionalID: ownerID,
	})

	assert.InDelta(t, 0, result.CardFeePercentage, 0.01)
}

func TestReconcileManualNetTaxBasisAsymmetryPinned(t *testing.T) {
	// Regression pin: the forward path taxes the gross value while the
	// inverse solves tax against the post-card-fee remainder, so a round
	// trip with both a fee and a tax drifts by taxRate*feeValue. This is
	// accepted behaviour; a fix must change this expectation knowingly.
	forward := CalculateAppointment(baseInput()) // 3% fee, 3% tax, cost 50

	result := ReconcileManualNet(ManualNetInput{
		AssertedNetValue:    forward.NetValue, // 890
		GrossValue:          1000,
		Procedures:          []models.Procedure{{ID: "proc-1", FixedCost: 50}},
		Professional:        models.Professional{ID: ownerID, Name: "Bruno"},
		TaxPercentage:       3,
		OwnerProfessionalID: ownerID,
	})

	// valueAfterCardFee = 940 / 0.97, implied fee = 30.927...
	assert.InDelta(t, 3.0927835051546394, result.CardFeePercentage, 1e-9)
	assert.Greater(t, math.Abs(forward.CardFeePercentage-result.CardFeePercentage), 0.01)
}

func TestReconcileManualNetRedrivesBonusAndSplit(t *testing.T) {
	input := manualInput()
	input.Professional = models.Professional{ID: "prof-1", Name: "Carla"}
	input.BonusRules = []models.BonusRule{
		{ID: "b1", Percentage: 2, BaseValue: models.BonusBaseNetValue, IsActive: true},
	}
	input.SplitRules = []models.SplitRule{
		{ID: "s1", Distributions: models.SplitDistributions{
			{ProfessionalID: ownerID, Percentage: 50},
			{ProfessionalID: "prof-1", Percentage: 50},
		}, IsActive: true},
	}

	result := ReconcileManualNet(input)

	// Bonus and split use the asserted net value, not the computed one.
	assert.InDelta(t, 800*0.02, result.BonusValue, 1e-9)
	assert.InDelta(t, 400, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 400, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, result.NetValue, result.FinalValueOwner+result.FinalValueProfessional, 1e-9)
}

func TestReconcileManualNetLegacyFallback(t *testing.T) {
	input := manualInput()
	input.Procedures = []models.Procedure{{ID: "proc-endo", Name: "Endolaser", FixedCost: 50}}
	input.Professional = models.Professional{ID: "prof-v", Name: "Valquíria"}

	result := ReconcileManualNet(input)

	assert.InDelta(t, 400, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 400, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, 50, result.ProfessionalShare, 1e-9)
}
