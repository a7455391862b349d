package calculations

import (
	"math"

	"ClinicSplit/models"
)

// ManualNetInput drives the reverse calculation: a human asserted that the
// net value should be AssertedNetValue, and the card fee that would have
// produced it must be inferred. TaxPercentage must already be resolved for
// the source (0 for hospitals without a custom rate).
type ManualNetInput struct {
	AssertedNetValue       float64
	GrossValue             float64
	Procedures             []models.Procedure
	Professional           models.Professional
	TaxPercentage          float64
	DefaultBonusPercentage float64
	BonusRules             []models.BonusRule
	SplitRules             []models.SplitRule
	OwnerProfessionalID    string
}

// invertManualNet solves the pipeline backwards for the value remaining
// after the card fee. The inverse treats tax as multiplicative on the
// post-card-fee remainder (valueAfterCardFee * (1-rate) = valueAfterProcedure),
// which differs from the forward pipeline's tax-on-gross rule. The
// discrepancy is bounded and intentional; see applyTax.
func invertManualNet(valueAfterProcedure, taxRate float64) float64 {
	if taxRate > 0 {
		return valueAfterProcedure / (1 - taxRate)
	}
	return valueAfterProcedure
}

// ReconcileManualNet inverts the forward pipeline's arithmetic: holding tax
// rate and procedure costs fixed, it infers the card fee implied by the
// asserted net value, then re-runs bonus and split from that net value. All
// call sites (hospital invoice nets, the manual override toggle, batch
// recomputation) share this one implementation.
func ReconcileManualNet(input ManualNetInput) CalculationResult {
	var primary models.Procedure
	if len(input.Procedures) > 0 {
		primary = input.Procedures[0]
	}

	totalProcedureCost := 0.0
	for _, procedure := range input.Procedures {
		totalProcedureCost += procedure.FixedCost
	}

	manualNet := input.AssertedNetValue
	taxRate := input.TaxPercentage / 100

	valueAfterProcedure := manualNet + totalProcedureCost
	valueAfterCardFee := invertManualNet(valueAfterProcedure, taxRate)

	impliedCardFeeValue := input.GrossValue - valueAfterCardFee
	impliedCardFeePercentage := 0.0
	if input.GrossValue > 0 {
		impliedCardFeePercentage = (impliedCardFeeValue / input.GrossValue) * 100
	}

	taxValue := 0.0
	if taxRate > 0 {
		taxValue = valueAfterCardFee * taxRate
	}

	// Bonus re-driven from the asserted net value.
	bonusValue := 0.0
	if len(input.BonusRules) > 0 {
		for _, procedure := range input.Procedures {
			procedureBonus, _ := CalculateBonusFromRules(
				input.GrossValue, manualNet, manualNet,
				procedure.ID, input.Professional.ID, input.BonusRules,
			)
			bonusValue += procedureBonus
		}
	} else {
		bonusValue = legacyBonus(manualNet, input.Procedures, input.Professional, input.DefaultBonusPercentage)
	}

	// Split re-driven from the asserted net value.
	finalValueOwner := manualNet
	finalValueProfessional := 0.0
	professionalShare := 0.0
	if len(input.SplitRules) > 0 {
		if input.OwnerProfessionalID != "" {
			if rule := findBestSplitRuleAcross(input.Procedures, input.Professional.ID, input.SplitRules); rule != nil {
				outcome := ApplySplitDistribution(manualNet, *rule, input.OwnerProfessionalID)
				finalValueOwner = outcome.OwnerShare
				finalValueProfessional = outcome.ProfessionalShare
				professionalShare = outcome.ProfessionalPercentage
			}
		}
	} else {
		finalValueOwner, finalValueProfessional, professionalShare = legacySplit(manualNet, input.Procedures, input.Professional)
	}

	// Never report a negative fee, even when the asserted net exceeds what
	// the gross value could produce.
	return CalculationResult{
		GrossValue:             input.GrossValue,
		CardFeePercentage:      math.Max(0, impliedCardFeePercentage),
		CardFeeValue:           math.Max(0, impliedCardFeeValue),
		ValueAfterCardFee:      valueAfterCardFee,
		TaxPercentage:          input.TaxPercentage,
		TaxValue:               taxValue,
		ValueAfterTax:          valueAfterProcedure,
		ProcedureCost:          primary.FixedCost,
		TotalProcedureCost:     totalProcedureCost,
		NetValue:               manualNet,
		BonusValue:             bonusValue,
		ProfessionalShare:      professionalShare,
		FinalValueOwner:        finalValueOwner,
		FinalValueProfessional: finalValueProfessional,
	}
}
