package calculations

import (
	"strings"

	"ClinicSplit/models"
)

// Legacy fallback rules, keyed off name substrings. This is a deprecated
// compatibility shim for data recorded before bonus/split rules existed in
// the database: it only runs when the caller passes empty rule lists, and
// must not be extended.
const (
	legacyProcedureKey    = "endolaser"
	legacyProfessionalKey = "valquiria"
)

func isLegacyProcedure(name string) bool {
	return strings.Contains(normalizeName(name), legacyProcedureKey)
}

func isLegacyProfessional(name string) bool {
	return strings.Contains(normalizeName(name), legacyProfessionalKey)
}

// legacyBonus reproduces the historical hardcoded bonus: any matching
// procedure performed by a professional other than the legacy one pays a
// bonus from the net value. Each flagged procedure contributes its own
// percentage, falling back to the global default when unset, and the
// percentages sum across procedures.
func legacyBonus(netValue float64, procedures []models.Procedure, professional models.Professional, defaultBonusPercentage float64) float64 {
	hasLegacyProcedure := false
	for _, procedure := range procedures {
		if isLegacyProcedure(procedure.Name) {
			hasLegacyProcedure = true
			break
		}
	}
	if !hasLegacyProcedure || isLegacyProfessional(professional.Name) {
		return 0
	}

	effectivePercentage := 0.0
	hasBonus := false
	for _, procedure := range procedures {
		if !procedure.HasBonus {
			continue
		}
		hasBonus = true
		if procedure.BonusPercentage != 0 {
			effectivePercentage += procedure.BonusPercentage
		} else {
			effectivePercentage += defaultBonusPercentage
		}
	}
	if !hasBonus {
		return 0
	}
	return netValue * (effectivePercentage / 100)
}

// legacySplit reproduces the historical hardcoded split. Returns the owner
// amount, the professional amount and the professional's percentage.
func legacySplit(netValue float64, procedures []models.Procedure, professional models.Professional) (float64, float64, float64) {
	if !isLegacyProfessional(professional.Name) {
		return netValue, 0, 0
	}

	for _, procedure := range procedures {
		if isLegacyProcedure(procedure.Name) {
			return netValue * 0.5, netValue * 0.5, 50
		}
	}
	return 0, netValue, 100
}
