package calculations

import (
	"ClinicSplit/models"
)

// FindCardFeePercentage returns the fee percentage for the given payment
// method and transaction value. Both range bounds are inclusive and a nil
// MaxValue means the range is unbounded above. No matching rule is not an
// error: the fee silently defaults to 0%.
func FindCardFeePercentage(paymentMethodID string, value float64, rules []models.CardFeeRule) float64 {
	for _, rule := range rules {
		if rule.PaymentMethodID != paymentMethodID {
			continue
		}
		if value < rule.MinValue {
			continue
		}
		if rule.MaxValue != nil && value > *rule.MaxValue {
			continue
		}
		return rule.FeePercentage
	}
	return 0
}
