package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicSplit/models"
)

func baseInput() CalculationInput {
	return CalculationInput{
		GrossValue:      1000,
		PaymentMethodID: "pm-credit",
		Source:          models.Source{ID: "src-clinic", Name: "Clinic"},
		Procedure:       models.Procedure{ID: "proc-1", Name: "Consultation", FixedCost: 50},
		Professional:    models.Professional{ID: ownerID, Name: "Bruno"},
		CardFeeRules: []models.CardFeeRule{
			{ID: "cf1", PaymentMethodID: "pm-credit", MinValue: 0, MaxValue: nil, FeePercentage: 3},
		},
		DefaultTaxPercentage:   3,
		DefaultBonusPercentage: 1.5,
		OwnerProfessionalID:    ownerID,
	}
}

func TestCalculateAppointmentStandardFlow(t *testing.T) {
	result := CalculateAppointment(baseInput())

	assert.InDelta(t, 3, result.CardFeePercentage, 1e-9)
	assert.InDelta(t, 30, result.CardFeeValue, 1e-9)
	assert.InDelta(t, 970, result.ValueAfterCardFee, 1e-9)
	assert.InDelta(t, 3, result.TaxPercentage, 1e-9)
	assert.InDelta(t, 30, result.TaxValue, 1e-9)
	assert.InDelta(t, 940, result.ValueAfterTax, 1e-9)
	assert.InDelta(t, 50, result.TotalProcedureCost, 1e-9)
	assert.InDelta(t, 890, result.NetValue, 1e-9)
	assert.InDelta(t, 890, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 0, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, 0, result.BonusValue, 1e-9)
}

func TestCalculateAppointmentTaxIsChargedOnGross(t *testing.T) {
	// Card fee and tax are independently subtracted from the gross value.
	// If tax were chained on the post-card-fee remainder it would be 29.10.
	result := CalculateAppointment(baseInput())

	assert.InDelta(t, 30, result.TaxValue, 1e-9)
	assert.InDelta(t, 1000-30-30-50, result.NetValue, 1e-9)
}

func TestCalculateAppointmentLegacyFiftyFiftySplit(t *testing.T) {
	input := baseInput()
	input.Procedure = models.Procedure{ID: "proc-endo", Name: "Endolaser Capilar", FixedCost: 50}
	input.Professional = models.Professional{ID: "prof-v", Name: "Valquíria"}

	result := CalculateAppointment(input)

	assert.InDelta(t, 890, result.NetValue, 1e-9)
	assert.InDelta(t, 445, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 445, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, 50, result.ProfessionalShare, 1e-9)
}

func TestCalculateAppointmentLegacyFullToProfessional(t *testing.T) {
	input := baseInput()
	input.Professional = models.Professional{ID: "prof-v", Name: "Valquiria Souza"}

	result := CalculateAppointment(input)

	assert.InDelta(t, 0, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 890, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, 100, result.ProfessionalShare, 1e-9)
}

func TestCalculateAppointmentBonusIndependentOfSplit(t *testing.T) {
	input := baseInput()
	input.BonusRules = []models.BonusRule{
		{ID: "b1", ProcedureID: strPtr("proc-1"), Percentage: 1.5, BaseValue: models.BonusBaseNetValue, IsActive: true},
	}

	result := CalculateAppointment(input)

	assert.InDelta(t, 13.35, result.BonusValue, 1e-9)
	// The bonus is an additive third-party payout: it never reduces the
	// owner/professional split of the net value.
	assert.InDelta(t, 890, result.FinalValueOwner+result.FinalValueProfessional, 1e-9)
}

func TestCalculateAppointmentHospitalSuppressesTax(t *testing.T) {
	input := baseInput()
	input.Source = models.Source{ID: "src-hosp", Name: "Memorial", IsHospital: true, CustomTaxPercentage: floatPtr(0)}

	result := CalculateAppointment(input)

	assert.InDelta(t, 0, result.TaxPercentage, 1e-9)
	assert.InDelta(t, 0, result.TaxValue, 1e-9)
	assert.InDelta(t, 1000-30-50, result.NetValue, 1e-9)
}

func TestCalculateAppointmentHospitalCustomTax(t *testing.T) {
	input := baseInput()
	input.Source = models.Source{ID: "src-hosp", Name: "Memorial", IsHospital: true, CustomTaxPercentage: floatPtr(2)}

	result := CalculateAppointment(input)

	assert.InDelta(t, 2, result.TaxPercentage, 1e-9)
	assert.InDelta(t, 20, result.TaxValue, 1e-9)
}

func TestCalculateAppointmentSplitRuleApplied(t *testing.T) {
	input := baseInput()
	input.Professional = models.Professional{ID: "prof-1", Name: "Carla"}
	input.SplitRules = []models.SplitRule{
		{ID: "s1", ProcedureID: strPtr("proc-1"), Distributions: models.SplitDistributions{
			{ProfessionalID: ownerID, Percentage: 70},
			{ProfessionalID: "prof-1", Percentage: 30},
		}, IsActive: true},
	}

	result := CalculateAppointment(input)

	assert.InDelta(t, 623, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 267, result.FinalValueProfessional, 1e-9)
	assert.InDelta(t, 30, result.ProfessionalShare, 1e-9)
	assert.InDelta(t, result.NetValue, result.FinalValueOwner+result.FinalValueProfessional, 1e-9)
}

func TestCalculateAppointmentSplitRulesWithoutOwnerDefaultsToOwnerBucket(t *testing.T) {
	input := baseInput()
	input.OwnerProfessionalID = ""
	input.SplitRules = []models.SplitRule{
		{ID: "s1", Distributions: models.SplitDistributions{
			{ProfessionalID: ownerID, Percentage: 50},
			{ProfessionalID: "prof-1", Percentage: 50},
		}, IsActive: true},
	}

	result := CalculateAppointment(input)

	assert.InDelta(t, 890, result.FinalValueOwner, 1e-9)
	assert.InDelta(t, 0, result.FinalValueProfessional, 1e-9)
}

func TestCalculateAppointmentMultiProcedure(t *testing.T) {
	input := MultiProcedureCalculationInput{
		GrossValue:      1000,
		PaymentMethodID: "pm-credit",
		Source:          models.Source{ID: "src-clinic", Name: "Clinic"},
		Procedures: []models.Procedure{
			{ID: "proc-1", Name: "Consultation", FixedCost: 50},
			{ID: "proc-2", Name: "Drenagem", FixedCost: 30},
		},
		Professional: models.Professional{ID: ownerID, Name: "Bruno"},
		CardFeeRules: []models.CardFeeRule{
			{ID: "cf1", PaymentMethodID: "pm-credit", MinValue: 0, MaxValue: nil, FeePercentage: 3},
		},
		DefaultTaxPercentage:   3,
		DefaultBonusPercentage: 1.5,
		OwnerProfessionalID:    ownerID,
	}

	result := CalculateAppointmentMultiProcedure(input)

	assert.InDelta(t, 80, result.TotalProcedureCost, 1e-9)
	assert.InDelta(t, 50, result.ProcedureCost, 1e-9, "primary procedure cost kept for display")
	assert.InDelta(t, 1000-30-30-80, result.NetValue, 1e-9)
}

func TestCalculateAppointmentMultiProcedureBonusSumsPerProcedure(t *testing.T) {
	input := MultiProcedureCalculationInput{
		GrossValue:      1000,
		PaymentMethodID: "pm-credit",
		Source:          models.Source{ID: "src-clinic", Name: "Clinic"},
		Procedures: []models.Procedure{
			{ID: "proc-1", Name: "Endolaser", FixedCost: 0},
			{ID: "proc-2", Name: "Drenagem", FixedCost: 0},
		},
		Professional:         models.Professional{ID: ownerID, Name: "Bruno"},
		DefaultTaxPercentage: 0,
		BonusRules: []models.BonusRule{
			{ID: "b1", ProcedureID: strPtr("proc-1"), Percentage: 1, BaseValue: models.BonusBaseNetValue, IsActive: true},
			{ID: "b2", Percentage: 0.5, BaseValue: models.BonusBaseNetValue, IsActive: true},
		},
		OwnerProfessionalID: ownerID,
	}

	result := CalculateAppointmentMultiProcedure(input)

	// b1 fires for proc-1 only; the wildcard b2 fires once per procedure.
	assert.InDelta(t, 1000*0.01+2*1000*0.005, result.BonusValue, 1e-9)
}

func TestCalculateAppointmentMultiProcedureBestSplitRuleAcrossProcedures(t *testing.T) {
	input := MultiProcedureCalculationInput{
		GrossValue:      1000,
		PaymentMethodID: "pm-credit",
		Source:          models.Source{ID: "src-clinic", Name: "Clinic"},
		Procedures: []models.Procedure{
			{ID: "proc-1", Name: "Consultation", FixedCost: 0},
			{ID: "proc-2", Name: "Drenagem", FixedCost: 0},
		},
		Professional: models.Professional{ID: "prof-1", Name: "Carla"},
		SplitRules: []models.SplitRule{
			{ID: "generic", ProfessionalID: strPtr("prof-1"), Distributions: models.SplitDistributions{
				{ProfessionalID: ownerID, Percentage: 90},
				{ProfessionalID: "prof-1", Percentage: 10},
			}, IsActive: true},
			{ID: "specific", ProcedureID: strPtr("proc-2"), ProfessionalID: strPtr("prof-1"), Distributions: models.SplitDistributions{
				{ProfessionalID: ownerID, Percentage: 60},
				{ProfessionalID: "prof-1", Percentage: 40},
			}, IsActive: true},
		},
		OwnerProfessionalID: ownerID,
	}

	result := CalculateAppointmentMultiProcedure(input)

	// The proc-2 rule has specificity 3 and wins over the professional-only
	// rule even though proc-1 is the primary procedure.
	assert.InDelta(t, 40, result.ProfessionalShare, 1e-9)
	assert.InDelta(t, 400, result.FinalValueProfessional, 1e-9)
}
