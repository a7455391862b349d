package repositories

import (
	"ClinicSplit/cache"
	"ClinicSplit/database"
	"ClinicSplit/models"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	RuleCacheExpiry = time.Hour
)

// RuleRepository loads and maintains the three rule families the
// calculation engine consumes: card fee rules (flat or tier-derived),
// bonus rules and split rules.
type RuleRepository struct {
	cache *cache.Cache
}

func NewRuleRepository(cache *cache.Cache) *RuleRepository {
	return &RuleRepository{cache: cache}
}

// ActiveCardFeeRules returns the card fee rules in force for an
// appointment on the given date. When active fee tiers exist, the
// previous calendar month's gross revenue picks a tier and its per-method
// rates are flattened into unbounded rules. Without tiers the flat
// card_fee_rule table is returned as-is.
func (r *RuleRepository) ActiveCardFeeRules(ctx context.Context, date string) ([]models.CardFeeRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	monthStart, monthEnd, err := previousMonthBounds(date)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("card_fee_rules_cache:%s", monthStart)
	var cached []models.CardFeeRule
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get card fee rules from cache: %v", err)
	}

	rules, err := r.resolveCardFeeRules(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, rules, RuleCacheExpiry); err != nil {
		log.Printf("Failed to set card fee rules in cache: %v", err)
	}
	return rules, nil
}

func (r *RuleRepository) resolveCardFeeRules(ctx context.Context, monthStart, monthEnd string) ([]models.CardFeeRule, error) {
	var tiers []models.CardFeeTier
	if err := database.DB.Where("is_active = ?", true).
		Order("priority DESC").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to get card fee tiers: %w", err)
	}

	if len(tiers) > 0 {
		var revenue float64
		err := database.DB.Model(&models.Appointment{}).
			Where("date >= ? AND date <= ?", monthStart, monthEnd).
			Select("COALESCE(SUM(gross_value), 0)").Scan(&revenue).Error
		if err != nil {
			return nil, fmt.Errorf("failed to sum previous month revenue: %w", err)
		}

		for _, tier := range tiers {
			if revenue < tier.MinRevenue {
				continue
			}
			if tier.MaxRevenue != nil && revenue > *tier.MaxRevenue {
				continue
			}
			return r.flattenTierRates(tier)
		}
		log.Printf("No card fee tier matches revenue %.2f, falling back to flat rules", revenue)
	}

	var rules []models.CardFeeRule
	if err := database.DB.Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get card fee rules: %w", err)
	}
	return rules, nil
}

// flattenTierRates converts the matched tier's per-method rates into
// unbounded card fee rules, the shape the calculation engine expects.
func (r *RuleRepository) flattenTierRates(tier models.CardFeeTier) ([]models.CardFeeRule, error) {
	var rates []models.CardFeeTierRate
	if err := database.DB.Where("tier_id = ?", tier.ID).Find(&rates).Error; err != nil {
		return nil, fmt.Errorf("failed to get tier rates for %s: %w", tier.ID, err)
	}

	rules := make([]models.CardFeeRule, 0, len(rates))
	for _, rate := range rates {
		rules = append(rules, models.CardFeeRule{
			ID:              rate.ID,
			PaymentMethodID: rate.PaymentMethodID,
			MinValue:        0,
			MaxValue:        nil,
			FeePercentage:   rate.FeePercentage,
		})
	}
	return rules, nil
}

// previousMonthBounds returns the first and last day of the calendar
// month before the appointment date, as YYYY-MM-DD strings.
func previousMonthBounds(date string) (string, string, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", "", fmt.Errorf("invalid appointment date %q: %w", date, err)
	}
	firstOfMonth := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := firstOfMonth.AddDate(0, -1, 0)
	end := firstOfMonth.AddDate(0, 0, -1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

func (r *RuleRepository) ActiveBonusRules(ctx context.Context) ([]models.BonusRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "bonus_rules_cache"
	var cached []models.BonusRule
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get bonus rules from cache: %v", err)
	}

	var rules []models.BonusRule
	if err := database.DB.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get bonus rules: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, rules, RuleCacheExpiry); err != nil {
		log.Printf("Failed to set bonus rules in cache: %v", err)
	}
	return rules, nil
}

func (r *RuleRepository) ActiveSplitRules(ctx context.Context) ([]models.SplitRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "split_rules_cache"
	var cached []models.SplitRule
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get split rules from cache: %v", err)
	}

	var rules []models.SplitRule
	if err := database.DB.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get split rules: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, rules, RuleCacheExpiry); err != nil {
		log.Printf("Failed to set split rules in cache: %v", err)
	}
	return rules, nil
}

// ListCardFeeRules returns all flat rules regardless of tiers; used by
// the management endpoints rather than the calculation path.
func (r *RuleRepository) ListCardFeeRules(ctx context.Context) ([]models.CardFeeRule, error) {
	var rules []models.CardFeeRule
	if err := database.DB.Order("payment_method_id, min_value").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list card fee rules: %w", err)
	}
	return rules, nil
}

func (r *RuleRepository) CreateCardFeeRule(ctx context.Context, rule *models.CardFeeRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("card_fee_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Create(rule).Error; err != nil {
			return fmt.Errorf("failed to create card fee rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "card_fee_rules_cache*")
	})
}

func (r *RuleRepository) UpdateCardFeeRule(ctx context.Context, rule *models.CardFeeRule) error {
	return withLock(ctx, fmt.Sprintf("card_fee_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Save(rule).Error; err != nil {
			return fmt.Errorf("failed to update card fee rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "card_fee_rules_cache*")
	})
}

func (r *RuleRepository) DeleteCardFeeRule(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("card_fee_rule_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.CardFeeRule{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete card fee rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "card_fee_rules_cache*")
	})
}

func (r *RuleRepository) ListCardFeeTiers(ctx context.Context) ([]models.CardFeeTier, error) {
	var tiers []models.CardFeeTier
	if err := database.DB.Order("priority DESC").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to list card fee tiers: %w", err)
	}
	return tiers, nil
}

func (r *RuleRepository) CreateCardFeeTier(ctx context.Context, tier *models.CardFeeTier, rates []models.CardFeeTierRate) error {
	if tier.ID == "" {
		tier.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("card_fee_tier_lock:%s", tier.ID), func() error {
		if err := database.DB.Create(tier).Error; err != nil {
			return fmt.Errorf("failed to create card fee tier: %w", err)
		}
		for i := range rates {
			rates[i].ID = uuid.New().String()
			rates[i].TierID = tier.ID
		}
		if len(rates) > 0 {
			if err := database.DB.Create(&rates).Error; err != nil {
				return fmt.Errorf("failed to create tier rates: %w", err)
			}
		}
		return r.cache.DeleteAll(ctx, "card_fee_rules_cache*")
	})
}

func (r *RuleRepository) DeleteCardFeeTier(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("card_fee_tier_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.CardFeeTierRate{}, "tier_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete tier rates: %w", err)
		}
		if err := database.DB.Delete(&models.CardFeeTier{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete card fee tier: %w", err)
		}
		return r.cache.DeleteAll(ctx, "card_fee_rules_cache*")
	})
}

func (r *RuleRepository) ListBonusRules(ctx context.Context) ([]models.BonusRule, error) {
	var rules []models.BonusRule
	if err := database.DB.Order("name").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list bonus rules: %w", err)
	}
	return rules, nil
}

func (r *RuleRepository) CreateBonusRule(ctx context.Context, rule *models.BonusRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("bonus_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Create(rule).Error; err != nil {
			return fmt.Errorf("failed to create bonus rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "bonus_rules_cache")
	})
}

func (r *RuleRepository) UpdateBonusRule(ctx context.Context, rule *models.BonusRule) error {
	return withLock(ctx, fmt.Sprintf("bonus_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Save(rule).Error; err != nil {
			return fmt.Errorf("failed to update bonus rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "bonus_rules_cache")
	})
}

func (r *RuleRepository) DeleteBonusRule(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("bonus_rule_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.BonusRule{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete bonus rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "bonus_rules_cache")
	})
}

func (r *RuleRepository) ListSplitRules(ctx context.Context) ([]models.SplitRule, error) {
	var rules []models.SplitRule
	if err := database.DB.Order("priority DESC, name").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to list split rules: %w", err)
	}
	return rules, nil
}

func (r *RuleRepository) CreateSplitRule(ctx context.Context, rule *models.SplitRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("split_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Create(rule).Error; err != nil {
			return fmt.Errorf("failed to create split rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "split_rules_cache")
	})
}

func (r *RuleRepository) UpdateSplitRule(ctx context.Context, rule *models.SplitRule) error {
	return withLock(ctx, fmt.Sprintf("split_rule_lock:%s", rule.ID), func() error {
		if err := database.DB.Save(rule).Error; err != nil {
			return fmt.Errorf("failed to update split rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "split_rules_cache")
	})
}

func (r *RuleRepository) DeleteSplitRule(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("split_rule_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.SplitRule{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete split rule: %w", err)
		}
		return r.cache.DeleteAll(ctx, "split_rules_cache")
	})
}
