package calculations

import (
	"ClinicSplit/models"
)

// CalculateAppointment runs the forward pipeline for a single procedure.
func CalculateAppointment(input CalculationInput) CalculationResult {
	return CalculateAppointmentMultiProcedure(MultiProcedureCalculationInput{
		GrossValue:             input.GrossValue,
		NetValueInput:          input.NetValueInput,
		PaymentMethodID:        input.PaymentMethodID,
		Source:                 input.Source,
		Procedures:             []models.Procedure{input.Procedure},
		Professional:           input.Professional,
		CardFeeRules:           input.CardFeeRules,
		DefaultTaxPercentage:   input.DefaultTaxPercentage,
		DefaultBonusPercentage: input.DefaultBonusPercentage,
		BonusRules:             input.BonusRules,
		SplitRules:             input.SplitRules,
		OwnerProfessionalID:    input.OwnerProfessionalID,
	})
}

// ResolveTaxPercentage picks the tax rate: the default, unless the source
// is a hospital, in which case the source's custom percentage (or 0).
func ResolveTaxPercentage(source models.Source, defaultTaxPercentage float64) float64 {
	if !source.IsHospital {
		return defaultTaxPercentage
	}
	if source.CustomTaxPercentage != nil {
		return *source.CustomTaxPercentage
	}
	return 0
}

// applyTax computes the tax amount for the forward pipeline. The tax base
// is the ORIGINAL gross value, not the post-card-fee remainder: card fee
// and tax are both independently subtracted from gross. The manual-net
// inverse in invertManualNet deliberately uses a different base; do not
// unify the two without changing both.
func applyTax(grossValue, taxPercentage float64) float64 {
	return grossValue * (taxPercentage / 100)
}

// findBestSplitRuleAcross evaluates every procedure and keeps the overall
// winner by the split-rule total order (specificity, priority, rule ID).
func findBestSplitRuleAcross(procedures []models.Procedure, professionalID string, rules []models.SplitRule) *models.SplitRule {
	var best *models.SplitRule
	for _, procedure := range procedures {
		rule := FindApplicableSplitRule(procedure.ID, professionalID, rules)
		if rule == nil {
			continue
		}
		if best == nil || splitRuleBetter(*rule, *best) {
			best = rule
		}
	}
	return best
}

// CalculateAppointmentMultiProcedure runs the forward pipeline:
// card fee, tax, procedure costs, bonus, split. The order is fixed and not
// reassociable. The first procedure is the primary one reported in the
// single-procedure display fields.
func CalculateAppointmentMultiProcedure(input MultiProcedureCalculationInput) CalculationResult {
	var primary models.Procedure
	if len(input.Procedures) > 0 {
		primary = input.Procedures[0]
	}

	totalProcedureCost := 0.0
	for _, procedure := range input.Procedures {
		totalProcedureCost += procedure.FixedCost
	}

	// Step 1: card fee
	cardFeePercentage := FindCardFeePercentage(input.PaymentMethodID, input.GrossValue, input.CardFeeRules)
	cardFeeValue := input.GrossValue * (cardFeePercentage / 100)
	valueAfterCardFee := input.GrossValue - cardFeeValue

	// Step 2: tax
	taxPercentage := ResolveTaxPercentage(input.Source, input.DefaultTaxPercentage)
	taxValue := applyTax(input.GrossValue, taxPercentage)
	valueAfterTax := valueAfterCardFee - taxValue

	// Step 3: procedure costs
	netValue := valueAfterTax - totalProcedureCost

	// Step 4: bonus
	bonusValue := 0.0
	if len(input.BonusRules) > 0 {
		for _, procedure := range input.Procedures {
			procedureBonus, _ := CalculateBonusFromRules(
				input.GrossValue, netValue, netValue,
				procedure.ID, input.Professional.ID, input.BonusRules,
			)
			bonusValue += procedureBonus
		}
	} else {
		bonusValue = legacyBonus(netValue, input.Procedures, input.Professional, input.DefaultBonusPercentage)
	}

	// Step 5: split. The bonus never reduces what is split: owner and
	// professional shares always sum to the net value.
	finalValueOwner := netValue
	finalValueProfessional := 0.0
	professionalShare := 0.0
	if len(input.SplitRules) > 0 {
		if input.OwnerProfessionalID != "" {
			if rule := findBestSplitRuleAcross(input.Procedures, input.Professional.ID, input.SplitRules); rule != nil {
				outcome := ApplySplitDistribution(netValue, *rule, input.OwnerProfessionalID)
				finalValueOwner = outcome.OwnerShare
				finalValueProfessional = outcome.ProfessionalShare
				professionalShare = outcome.ProfessionalPercentage
			}
		}
		// Rules exist but no owner id: keep the 100%-owner default.
	} else {
		finalValueOwner, finalValueProfessional, professionalShare = legacySplit(netValue, input.Procedures, input.Professional)
	}

	return CalculationResult{
		GrossValue:             input.GrossValue,
		CardFeePercentage:      cardFeePercentage,
		CardFeeValue:           cardFeeValue,
		ValueAfterCardFee:      valueAfterCardFee,
		TaxPercentage:          taxPercentage,
		TaxValue:               taxValue,
		ValueAfterTax:          valueAfterTax,
		ProcedureCost:          primary.FixedCost,
		TotalProcedureCost:     totalProcedureCost,
		NetValue:               netValue,
		BonusValue:             bonusValue,
		ProfessionalShare:      professionalShare,
		FinalValueOwner:        finalValueOwner,
		FinalValueProfessional: finalValueProfessional,
	}
}
