package utils

import (
	"ClinicSplit/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateCardFeeRule(t *testing.T) {
	rule := models.CardFeeRule{
		PaymentMethodID: "pm-credit",
		MinValue:        0,
		MaxValue:        floatPtr(1000),
		FeePercentage:   3,
	}
	assert.NoError(t, ValidateCardFeeRule(rule))

	rule.PaymentMethodID = ""
	assert.Error(t, ValidateCardFeeRule(rule))

	rule.PaymentMethodID = "pm-credit"
	rule.FeePercentage = 130
	assert.Error(t, ValidateCardFeeRule(rule))

	rule.FeePercentage = 3
	rule.MinValue = 2000
	assert.Error(t, ValidateCardFeeRule(rule), "max below min should fail")
}

func TestValidateCardFeeTier(t *testing.T) {
	tier := models.CardFeeTier{Name: "Tier 1", MinRevenue: 0, MaxRevenue: floatPtr(50000)}
	rates := []models.CardFeeTierRate{
		{PaymentMethodID: "pm-credit", FeePercentage: 2.5},
		{PaymentMethodID: "pm-debit", FeePercentage: 1.2},
	}
	assert.NoError(t, ValidateCardFeeTier(tier, rates))

	rates[1].FeePercentage = -1
	assert.Error(t, ValidateCardFeeTier(tier, rates))

	rates[1].FeePercentage = 1.2
	tier.MaxRevenue = floatPtr(-5)
	assert.Error(t, ValidateCardFeeTier(tier, rates))
}

func TestValidateBonusRule(t *testing.T) {
	rule := models.BonusRule{
		Name:            "Partner referral",
		BeneficiaryName: "Partner Clinic",
		Percentage:      5,
		BaseValue:       models.BonusBaseNetValue,
	}
	assert.NoError(t, ValidateBonusRule(rule))

	// ozzo wraps field errors in validation.Errors, which does not
	// preserve the sentinel chain, so match on the message.
	rule.BaseValue = "gross"
	assert.ErrorContains(t, ValidateBonusRule(rule), ErrInvalidBaseValue.Error())

	rule.BaseValue = models.BonusBaseGrossValue
	rule.BeneficiaryName = ""
	assert.Error(t, ValidateBonusRule(rule))
}

func TestValidateSplitRule(t *testing.T) {
	rule := models.SplitRule{
		Name: "Default split",
		Distributions: models.SplitDistributions{
			{ProfessionalID: "prof-a", Percentage: 60},
			{ProfessionalID: "prof-b", Percentage: 40},
		},
	}
	assert.NoError(t, ValidateSplitRule(rule))
}

func TestValidateSplitRuleEmptyDistributions(t *testing.T) {
	rule := models.SplitRule{Name: "Empty", Distributions: models.SplitDistributions{}}
	assert.Error(t, ValidateSplitRule(rule))
}

func TestValidateSplitRuleBadSum(t *testing.T) {
	rule := models.SplitRule{
		Name: "Bad sum",
		Distributions: models.SplitDistributions{
			{ProfessionalID: "prof-a", Percentage: 60},
			{ProfessionalID: "prof-b", Percentage: 37},
		},
	}
	assert.Error(t, ValidateSplitRule(rule))
}

func TestValidateSplitRuleSumWithinTolerance(t *testing.T) {
	rule := models.SplitRule{
		Name: "Rounded",
		Distributions: models.SplitDistributions{
			{ProfessionalID: "prof-a", Percentage: 33.33},
			{ProfessionalID: "prof-b", Percentage: 33.33},
			{ProfessionalID: "prof-c", Percentage: 33.34},
		},
	}
	assert.NoError(t, ValidateSplitRule(rule))
}

func TestValidateSplitRuleMissingProfessional(t *testing.T) {
	rule := models.SplitRule{
		Name: "No professional",
		Distributions: models.SplitDistributions{
			{ProfessionalID: "", Percentage: 100},
		},
	}
	assert.Error(t, ValidateSplitRule(rule))
}
