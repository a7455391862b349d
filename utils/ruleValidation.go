package utils

import (
	"ClinicSplit/models"
	"errors"
	"log"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation errors
var (
	ErrDistributionsEmpty = errors.New("distributions must contain at least one recipient")
	ErrDistributionSum    = errors.New("distribution percentages must sum to 100")
	ErrInvalidBaseValue   = errors.New("base_value must be gross_value, net_value or final_after_costs")
)

// distributionSumTolerance allows for float rounding in user-entered
// percentages.
const distributionSumTolerance = 0.01

// ValidateCardFeeRule validates a card fee rule payload.
func ValidateCardFeeRule(rule models.CardFeeRule) error {
	err := validation.ValidateStruct(&rule,
		validation.Field(&rule.PaymentMethodID, validation.Required),
		validation.Field(&rule.MinValue, validation.Min(0.0)),
		validation.Field(&rule.FeePercentage, validation.Min(0.0), validation.Max(100.0)),
	)
	if err == nil && rule.MaxValue != nil && *rule.MaxValue < rule.MinValue {
		err = errors.New("max_value must not be below min_value")
	}
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateCardFeeTier validates a fee tier and its per-method rates.
func ValidateCardFeeTier(tier models.CardFeeTier, rates []models.CardFeeTierRate) error {
	err := validation.ValidateStruct(&tier,
		validation.Field(&tier.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&tier.MinRevenue, validation.Min(0.0)),
	)
	if err == nil && tier.MaxRevenue != nil && *tier.MaxRevenue < tier.MinRevenue {
		err = errors.New("max_revenue must not be below min_revenue")
	}
	if err == nil {
		for _, rate := range rates {
			err = validation.ValidateStruct(&rate,
				validation.Field(&rate.PaymentMethodID, validation.Required),
				validation.Field(&rate.FeePercentage, validation.Min(0.0), validation.Max(100.0)),
			)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateBonusRule validates a bonus rule payload.
func ValidateBonusRule(rule models.BonusRule) error {
	err := validation.ValidateStruct(&rule,
		validation.Field(&rule.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&rule.BeneficiaryName, validation.Required, validation.Length(1, 100)),
		validation.Field(&rule.Percentage, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&rule.BaseValue, validation.Required, validation.By(validateBaseValue)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateSplitRule validates a split rule payload, including the
// distribution sum.
func ValidateSplitRule(rule models.SplitRule) error {
	err := validation.ValidateStruct(&rule,
		validation.Field(&rule.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&rule.Distributions, validation.Required.Error("distributions must contain at least one recipient"), validation.By(validateDistributions)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateBaseValue(value interface{}) error {
	base, _ := value.(string)
	switch base {
	case models.BonusBaseGrossValue, models.BonusBaseNetValue, models.BonusBaseFinalAfterCosts:
		return nil
	}
	return ErrInvalidBaseValue
}

func validateDistributions(value interface{}) error {
	distributions, _ := value.(models.SplitDistributions)
	if len(distributions) == 0 {
		return ErrDistributionsEmpty
	}
	sum := 0.0
	for _, d := range distributions {
		if d.ProfessionalID == "" {
			return errors.New("every distribution line needs a professional_id")
		}
		if d.Percentage < 0 || d.Percentage > 100 {
			return errors.New("distribution percentages must be between 0 and 100")
		}
		sum += d.Percentage
	}
	if math.Abs(sum-100) > distributionSumTolerance {
		return ErrDistributionSum
	}
	return nil
}
