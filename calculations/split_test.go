package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicSplit/models"
)

const ownerID = "prof-owner"

func fiftyFifty(other string) models.SplitDistributions {
	return models.SplitDistributions{
		{ProfessionalID: ownerID, Percentage: 50},
		{ProfessionalID: other, Percentage: 50},
	}
}

func TestFindApplicableSplitRuleSpecificityWins(t *testing.T) {
	rules := []models.SplitRule{
		{ID: "prof-only", ProfessionalID: strPtr("prof-1"), Distributions: fiftyFifty("prof-1"), IsActive: true},
		{ID: "proc-only", ProcedureID: strPtr("proc-1"), Distributions: fiftyFifty("prof-1"), IsActive: true},
	}

	rule := FindApplicableSplitRule("proc-1", "prof-1", rules)

	require.NotNil(t, rule)
	assert.Equal(t, "proc-only", rule.ID, "procedure filter (score 2) beats professional filter (score 1)")
}

func TestFindApplicableSplitRulePriorityBreaksSpecificityTie(t *testing.T) {
	rules := []models.SplitRule{
		{ID: "low", ProcedureID: strPtr("proc-1"), Priority: 1, Distributions: fiftyFifty("prof-1"), IsActive: true},
		{ID: "high", ProcedureID: strPtr("proc-1"), Priority: 9, Distributions: fiftyFifty("prof-1"), IsActive: true},
	}

	rule := FindApplicableSplitRule("proc-1", "prof-1", rules)

	require.NotNil(t, rule)
	assert.Equal(t, "high", rule.ID)
}

func TestFindApplicableSplitRuleIDBreaksFullTie(t *testing.T) {
	rules := []models.SplitRule{
		{ID: "rule-b", ProcedureID: strPtr("proc-1"), Priority: 5, Distributions: fiftyFifty("prof-1"), IsActive: true},
		{ID: "rule-a", ProcedureID: strPtr("proc-1"), Priority: 5, Distributions: fiftyFifty("prof-1"), IsActive: true},
	}

	rule := FindApplicableSplitRule("proc-1", "prof-1", rules)

	require.NotNil(t, rule)
	assert.Equal(t, "rule-a", rule.ID, "equal specificity and priority resolve by ascending rule id")
}

func TestFindApplicableSplitRuleSkipsInactiveAndNonMatching(t *testing.T) {
	rules := []models.SplitRule{
		{ID: "inactive", Distributions: fiftyFifty("prof-1"), IsActive: false},
		{ID: "other-prof", ProfessionalID: strPtr("prof-2"), Distributions: fiftyFifty("prof-2"), IsActive: true},
	}

	assert.Nil(t, FindApplicableSplitRule("proc-1", "prof-1", rules))
}

func TestApplySplitDistribution(t *testing.T) {
	rule := models.SplitRule{ID: "s1", Distributions: fiftyFifty("prof-1"), IsActive: true}

	outcome := ApplySplitDistribution(890, rule, ownerID)

	assert.InDelta(t, 445, outcome.OwnerShare, 1e-9)
	assert.InDelta(t, 445, outcome.ProfessionalShare, 1e-9)
	assert.InDelta(t, 50, outcome.ProfessionalPercentage, 1e-9)
	assert.InDelta(t, 445, outcome.Shares[ownerID], 1e-9)
	assert.InDelta(t, 445, outcome.Shares["prof-1"], 1e-9)
}

func TestApplySplitDistributionInvalidSumDefaultsToOwner(t *testing.T) {
	rule := models.SplitRule{ID: "s1", Distributions: models.SplitDistributions{
		{ProfessionalID: ownerID, Percentage: 47},
		{ProfessionalID: "prof-1", Percentage: 50},
	}, IsActive: true}

	outcome := ApplySplitDistribution(890, rule, ownerID)

	assert.Equal(t, 890.0, outcome.OwnerShare, "a 97% rule never produces a partial distribution")
	assert.Equal(t, 0.0, outcome.ProfessionalShare)
	assert.Equal(t, 0.0, outcome.ProfessionalPercentage)
}

func TestApplySplitDistributionEmptyDefaultsToOwner(t *testing.T) {
	outcome := ApplySplitDistribution(890, models.SplitRule{ID: "s1", IsActive: true}, ownerID)

	assert.Equal(t, 890.0, outcome.OwnerShare)
	assert.Equal(t, 0.0, outcome.ProfessionalShare)
}

func TestApplySplitDistributionToleratesSmallRoundingInSum(t *testing.T) {
	rule := models.SplitRule{ID: "s1", Distributions: models.SplitDistributions{
		{ProfessionalID: ownerID, Percentage: 33.33},
		{ProfessionalID: "prof-1", Percentage: 33.33},
		{ProfessionalID: "prof-2", Percentage: 33.34},
	}, IsActive: true}

	outcome := ApplySplitDistribution(900, rule, ownerID)

	assert.InDelta(t, 299.97, outcome.OwnerShare, 1e-9)
	assert.InDelta(t, 600.03, outcome.ProfessionalShare, 1e-9)
}

func TestApplySplitDistributionSumsMultipleNonOwnerRecipients(t *testing.T) {
	rule := models.SplitRule{ID: "s1", Distributions: models.SplitDistributions{
		{ProfessionalID: ownerID, Percentage: 40},
		{ProfessionalID: "prof-1", Percentage: 35},
		{ProfessionalID: "prof-2", Percentage: 25},
	}, IsActive: true}

	outcome := ApplySplitDistribution(1000, rule, ownerID)

	assert.InDelta(t, 400, outcome.OwnerShare, 1e-9)
	assert.InDelta(t, 600, outcome.ProfessionalShare, 1e-9)
	assert.InDelta(t, 60, outcome.ProfessionalPercentage, 1e-9)
	// The canonical map keeps the per-professional detail the two-bucket
	// projection loses.
	assert.InDelta(t, 350, outcome.Shares["prof-1"], 1e-9)
	assert.InDelta(t, 250, outcome.Shares["prof-2"], 1e-9)
}

func TestSplitConservation(t *testing.T) {
	rules := []models.SplitRule{
		{ID: "s1", Distributions: models.SplitDistributions{
			{ProfessionalID: ownerID, Percentage: 62.5},
			{ProfessionalID: "prof-1", Percentage: 37.5},
		}, IsActive: true},
	}

	for _, netValue := range []float64{0, 0.01, 890, 12345.67, 1e7} {
		rule := FindApplicableSplitRule("proc-1", "prof-1", rules)
		require.NotNil(t, rule)
		outcome := ApplySplitDistribution(netValue, *rule, ownerID)
		assert.InDelta(t, netValue, outcome.OwnerShare+outcome.ProfessionalShare, 1e-9)
	}
}
