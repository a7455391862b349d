package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicSplit/models"
)

func strPtr(s string) *string {
	return &s
}

func TestCalculateBonusFromRulesAdditive(t *testing.T) {
	rules := []models.BonusRule{
		{ID: "b1", ProcedureID: strPtr("proc-1"), Percentage: 1.5, BaseValue: models.BonusBaseNetValue, IsActive: true},
		{ID: "b2", Percentage: 2, BaseValue: models.BonusBaseGrossValue, IsActive: true},
	}

	total, applied := CalculateBonusFromRules(1000, 890, 890, "proc-1", "prof-1", rules)

	require.Len(t, applied, 2, "all matching rules fire, not just the first")
	assert.InDelta(t, 890*0.015+1000*0.02, total, 1e-9)
}

func TestCalculateBonusFromRulesNonMatchingRuleDoesNotChangeTotal(t *testing.T) {
	matching := []models.BonusRule{
		{ID: "b1", ProcedureID: strPtr("proc-1"), Percentage: 1.5, BaseValue: models.BonusBaseNetValue, IsActive: true},
	}
	withExtra := append([]models.BonusRule{}, matching...)
	withExtra = append(withExtra, models.BonusRule{
		ID: "b2", ProcedureID: strPtr("proc-other"), Percentage: 50, BaseValue: models.BonusBaseNetValue, IsActive: true,
	})

	base, _ := CalculateBonusFromRules(1000, 890, 890, "proc-1", "prof-1", matching)
	extended, _ := CalculateBonusFromRules(1000, 890, 890, "proc-1", "prof-1", withExtra)

	assert.Equal(t, base, extended)
	assert.InDelta(t, 13.35, base, 1e-9)
}

func TestCalculateBonusFromRulesBaseValueSelection(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		expected float64
	}{
		{"gross", models.BonusBaseGrossValue, 1000 * 0.10},
		{"net", models.BonusBaseNetValue, 890 * 0.10},
		{"after costs alias", models.BonusBaseFinalAfterCosts, 840 * 0.10},
		{"unknown falls back to net", "something_else", 890 * 0.10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rules := []models.BonusRule{{ID: "b1", Percentage: 10, BaseValue: tc.base, IsActive: true}}
			total, _ := CalculateBonusFromRules(1000, 890, 840, "proc-1", "prof-1", rules)
			assert.InDelta(t, tc.expected, total, 1e-9)
		})
	}
}

func TestFindApplicableBonusRulesMatchingAndOrdering(t *testing.T) {
	rules := []models.BonusRule{
		{ID: "wildcard", Percentage: 1, IsActive: true},
		{ID: "proc-and-prof", ProcedureID: strPtr("proc-1"), ProfessionalID: strPtr("prof-1"), Percentage: 1, IsActive: true},
		{ID: "prof-only", ProfessionalID: strPtr("prof-1"), Percentage: 1, IsActive: true},
		{ID: "proc-only", ProcedureID: strPtr("proc-1"), Percentage: 1, IsActive: true},
		{ID: "inactive", ProcedureID: strPtr("proc-1"), Percentage: 1, IsActive: false},
		{ID: "other-proc", ProcedureID: strPtr("proc-2"), Percentage: 1, IsActive: true},
	}

	applicable := FindApplicableBonusRules("proc-1", "prof-1", rules)

	require.Len(t, applicable, 4)
	assert.Equal(t, "proc-and-prof", applicable[0].ID)
	assert.Equal(t, "proc-only", applicable[1].ID)
	assert.Equal(t, "prof-only", applicable[2].ID)
	assert.Equal(t, "wildcard", applicable[3].ID)
}

func TestLegacyBonusFallback(t *testing.T) {
	procedures := []models.Procedure{
		{ID: "proc-1", Name: "Endolaser Facial", HasBonus: true, BonusPercentage: 1.5},
	}
	owner := models.Professional{ID: "prof-owner", Name: "Bruno"}
	legacy := models.Professional{ID: "prof-v", Name: "Valquíria"}

	assert.InDelta(t, 890*0.015, legacyBonus(890, procedures, owner, 1.5), 1e-9)
	assert.Equal(t, 0.0, legacyBonus(890, procedures, legacy, 1.5), "no bonus when the legacy professional performs")

	unflagged := []models.Procedure{{ID: "proc-1", Name: "Endolaser Facial", HasBonus: false}}
	assert.Equal(t, 0.0, legacyBonus(890, unflagged, owner, 1.5))

	// Procedure percentage unset falls back to the global default.
	fallback := []models.Procedure{{ID: "proc-1", Name: "endolaser", HasBonus: true}}
	assert.InDelta(t, 890*0.02, legacyBonus(890, fallback, owner, 2), 1e-9)
}
