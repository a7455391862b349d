package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ClinicSplit/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFindCardFeePercentageRangeBoundaries(t *testing.T) {
	rules := []models.CardFeeRule{
		{ID: "r1", PaymentMethodID: "pm-credit", MinValue: 0, MaxValue: floatPtr(1000), FeePercentage: 3},
		{ID: "r2", PaymentMethodID: "pm-credit", MinValue: 1000.01, MaxValue: nil, FeePercentage: 2.5},
	}

	assert.Equal(t, 3.0, FindCardFeePercentage("pm-credit", 1000, rules), "upper bound is inclusive")
	assert.Equal(t, 2.5, FindCardFeePercentage("pm-credit", 1000.01, rules), "next tier starts at its min")
	assert.Equal(t, 3.0, FindCardFeePercentage("pm-credit", 0, rules), "lower bound is inclusive")
	assert.Equal(t, 2.5, FindCardFeePercentage("pm-credit", 50000, rules), "nil max is unbounded")
}

func TestFindCardFeePercentageNoMatchDefaultsToZero(t *testing.T) {
	rules := []models.CardFeeRule{
		{ID: "r1", PaymentMethodID: "pm-credit", MinValue: 100, MaxValue: floatPtr(1000), FeePercentage: 3},
	}

	assert.Equal(t, 0.0, FindCardFeePercentage("pm-pix", 500, rules), "unknown payment method is a silent 0%")
	assert.Equal(t, 0.0, FindCardFeePercentage("pm-credit", 50, rules), "value below every range is a silent 0%")
	assert.Equal(t, 0.0, FindCardFeePercentage("pm-credit", 500, nil))
}

func TestFindCardFeePercentageFirstMatchingRuleWins(t *testing.T) {
	rules := []models.CardFeeRule{
		{ID: "r1", PaymentMethodID: "pm-credit", MinValue: 0, MaxValue: nil, FeePercentage: 4},
		{ID: "r2", PaymentMethodID: "pm-credit", MinValue: 0, MaxValue: nil, FeePercentage: 2},
	}

	assert.Equal(t, 4.0, FindCardFeePercentage("pm-credit", 300, rules))
}
