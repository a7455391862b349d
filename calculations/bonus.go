package calculations

import (
	"sort"

	"ClinicSplit/models"
)

// bonusRuleSpecificity scores how narrowly a bonus rule targets the
// procedure/professional pair: 2 for a procedure filter, 1 for a
// professional filter.
func bonusRuleSpecificity(rule models.BonusRule) int {
	score := 0
	if rule.ProcedureID != nil {
		score += 2
	}
	if rule.ProfessionalID != nil {
		score++
	}
	return score
}

// FindApplicableBonusRules returns every active rule matching the given
// procedure/professional pair, most specific first. A nil filter matches
// anything, so a rule with both filters nil applies universally. The order
// is informational only: all matches fire.
func FindApplicableBonusRules(procedureID, professionalID string, rules []models.BonusRule) []models.BonusRule {
	var applicable []models.BonusRule
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if rule.ProcedureID != nil && *rule.ProcedureID != procedureID {
			continue
		}
		if rule.ProfessionalID != nil && *rule.ProfessionalID != professionalID {
			continue
		}
		applicable = append(applicable, rule)
	}
	sort.SliceStable(applicable, func(i, j int) bool {
		return bonusRuleSpecificity(applicable[i]) > bonusRuleSpecificity(applicable[j])
	})
	return applicable
}

// CalculateBonusFromRules sums the bonus amounts of every applicable rule.
// Each rule picks its own base amount: gross value, net value, or the
// value after costs (an alias of net value at every call site). The applied
// rules are returned for audit logging.
func CalculateBonusFromRules(grossValue, netValue, valueAfterCosts float64, procedureID, professionalID string, rules []models.BonusRule) (float64, []models.BonusRule) {
	applicable := FindApplicableBonusRules(procedureID, professionalID, rules)

	totalBonus := 0.0
	applied := make([]models.BonusRule, 0, len(applicable))
	for _, rule := range applicable {
		var base float64
		switch rule.BaseValue {
		case models.BonusBaseGrossValue:
			base = grossValue
		case models.BonusBaseNetValue:
			base = netValue
		case models.BonusBaseFinalAfterCosts:
			base = valueAfterCosts
		default:
			base = netValue
		}
		totalBonus += base * (rule.Percentage / 100)
		applied = append(applied, rule)
	}
	return totalBonus, applied
}
