package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CardFeeRule maps a payment method plus a value range to a fee percentage.
// A nil MaxValue means the range is unbounded above.
type CardFeeRule struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	PaymentMethodID string    `gorm:"column:payment_method_id;not null;index" json:"payment_method_id"`
	MinValue        float64   `gorm:"column:min_value;not null;default:0" json:"min_value"`
	MaxValue        *float64  `gorm:"column:max_value" json:"max_value"`
	FeePercentage   float64   `gorm:"column:fee_percentage;not null" json:"fee_percentage"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID;references:ID" json:"-"`
}

func (CardFeeRule) TableName() string {
	return "card_fee_rule"
}

// CardFeeTier is a revenue band. The tier matching the previous month's
// gross revenue decides which CardFeeTierRate rows are in force.
type CardFeeTier struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	MinRevenue float64   `gorm:"column:min_revenue;not null;default:0" json:"min_revenue"`
	MaxRevenue *float64  `gorm:"column:max_revenue" json:"max_revenue"`
	Priority   int       `gorm:"column:priority;not null;default:0" json:"priority"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CardFeeTier) TableName() string {
	return "card_fee_tier"
}

// CardFeeTierRate model
type CardFeeTierRate struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	TierID          string    `gorm:"column:tier_id;not null;index" json:"tier_id"`
	PaymentMethodID string    `gorm:"column:payment_method_id;not null;index" json:"payment_method_id"`
	FeePercentage   float64   `gorm:"column:fee_percentage;not null" json:"fee_percentage"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Tier          CardFeeTier   `gorm:"foreignKey:TierID;references:ID" json:"-"`
	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID;references:ID" json:"-"`
}

func (CardFeeTierRate) TableName() string {
	return "card_fee_tier_rate"
}

// Base-value selectors for bonus rules.
const (
	BonusBaseGrossValue      = "gross_value"
	BonusBaseNetValue        = "net_value"
	BonusBaseFinalAfterCosts = "final_after_costs"
)

// BonusRule is a third-party revenue-share rule. Nil procedure/professional
// filters match anything; every matching active rule fires and the amounts
// sum.
type BonusRule struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	BeneficiaryName string    `gorm:"column:beneficiary_name;not null" json:"beneficiary_name"`
	ProcedureID     *string   `gorm:"column:procedure_id;index" json:"procedure_id"`
	ProfessionalID  *string   `gorm:"column:professional_id;index" json:"professional_id"`
	Percentage      float64   `gorm:"column:percentage;not null" json:"percentage"`
	BaseValue       string    `gorm:"column:base_value;check:base_value IN ('gross_value', 'net_value', 'final_after_costs');not null" json:"base_value"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BonusRule) TableName() string {
	return "bonus_rule"
}

// SplitDistribution is one recipient line inside a split rule.
type SplitDistribution struct {
	ProfessionalID string  `json:"professional_id"`
	Percentage     float64 `json:"percentage"`
}

// SplitDistributions is stored as a JSONB column.
type SplitDistributions []SplitDistribution

func (d SplitDistributions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *SplitDistributions) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for split distributions: %T", value)
	}
}

// SplitRule distributes the net value between professionals. Unlike bonus
// rules only the single best match applies (specificity, then priority).
type SplitRule struct {
	ID             string             `gorm:"primaryKey;column:id" json:"id"`
	Name           string             `gorm:"column:name;not null" json:"name"`
	ProcedureID    *string            `gorm:"column:procedure_id;index" json:"procedure_id"`
	ProfessionalID *string            `gorm:"column:professional_id;index" json:"professional_id"`
	Distributions  SplitDistributions `gorm:"column:distributions;type:jsonb;not null" json:"distributions"`
	Priority       int                `gorm:"column:priority;not null;default:0" json:"priority"`
	IsActive       bool               `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SplitRule) TableName() string {
	return "split_rule"
}
