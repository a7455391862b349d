package calculations

import (
	"log"
	"math"
	"sort"

	"ClinicSplit/models"
)

// splitSumTolerance is how far a rule's distribution percentages may stray
// from 100 before the rule is treated as invalid.
const splitSumTolerance = 0.01

// SplitRuleSpecificity scores a split rule the same way bonus rules are
// scored: 2 for a procedure filter plus 1 for a professional filter.
func SplitRuleSpecificity(rule models.SplitRule) int {
	score := 0
	if rule.ProcedureID != nil {
		score += 2
	}
	if rule.ProfessionalID != nil {
		score++
	}
	return score
}

// splitRuleBetter reports whether a ranks ahead of b: higher specificity
// first, then higher priority, then ascending rule ID so ties resolve
// deterministically.
func splitRuleBetter(a, b models.SplitRule) bool {
	specA, specB := SplitRuleSpecificity(a), SplitRuleSpecificity(b)
	if specA != specB {
		return specA > specB
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.ID < b.ID
}

// FindApplicableSplitRule returns the single best active rule matching the
// procedure/professional pair, or nil when none matches. Unlike bonus
// rules, only the winner applies.
func FindApplicableSplitRule(procedureID, professionalID string, rules []models.SplitRule) *models.SplitRule {
	var matching []models.SplitRule
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
		matching = append(matching, rule)
	}
	if len(matching) == 0 {
		return nil
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return splitRuleBetter(matching[i], matching[j])
	})
	best := matching[0]
	return &best
}

// defaultSplitOutcome is the safe fallback: the owner keeps the whole net
// value.
func defaultSplitOutcome(netValue float64, ownerProfessionalID string) SplitOutcome {
	shares := map[string]float64{}
	if ownerProfessionalID != "" {
		shares[ownerProfessionalID] = netValue
	}
	return SplitOutcome{
		OwnerShare: netValue,
		Shares:     shares,
	}
}

// ApplySplitDistribution distributes netValue according to the rule. A rule
// whose distribution list is empty or does not sum to 100 (within the
// tolerance) is invalid configuration: the calculation must still produce a
// result, so it degrades to the 100%-owner default with a logged warning
// instead of failing.
func ApplySplitDistribution(netValue float64, rule models.SplitRule, ownerProfessionalID string) SplitOutcome {
	if len(rule.Distributions) == 0 {
		log.Printf("Warning: split rule %s has no distributions, defaulting to 100%% owner", rule.ID)
		return defaultSplitOutcome(netValue, ownerProfessionalID)
	}

	totalPercentage := 0.0
	for _, dist := range rule.Distributions {
		totalPercentage += dist.Percentage
	}
	if math.Abs(totalPercentage-100) > splitSumTolerance {
		log.Printf("Warning: split rule %s distributions sum to %.2f%%, defaulting to 100%% owner", rule.ID, totalPercentage)
		return defaultSplitOutcome(netValue, ownerProfessionalID)
	}

	outcome := SplitOutcome{Shares: make(map[string]float64, len(rule.Distributions))}
	for _, dist := range rule.Distributions {
		share := netValue * (dist.Percentage / 100)
		outcome.Shares[dist.ProfessionalID] += share
		if dist.ProfessionalID == ownerProfessionalID {
			outcome.OwnerShare += share
		} else {
			outcome.ProfessionalShare += share
			outcome.ProfessionalPercentage += dist.Percentage
		}
	}
	return outcome
}
