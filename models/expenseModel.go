package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Recurrence selectors for expenses.
const (
	RecurrenceOnce    = "once"
	RecurrenceMonthly = "monthly"
	RecurrenceCustom  = "custom"

	RecurrenceUnitDays   = "days"
	RecurrenceUnitWeeks  = "weeks"
	RecurrenceUnitMonths = "months"
)

// ExpenseResponsibility assigns a share of an expense to a professional.
type ExpenseResponsibility struct {
	ProfessionalID string  `json:"professional_id"`
	Percentage     float64 `json:"percentage"`
}

// ExpenseResponsibilities is stored as a JSONB column.
type ExpenseResponsibilities []ExpenseResponsibility

func (r ExpenseResponsibilities) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *ExpenseResponsibilities) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = nil
		return nil
	default:
		return fmt.Errorf("unsupported type for expense responsibilities: %T", value)
	}
}

// Expense is a one-off or recurring clinic cost. RecurrenceInterval and
// RecurrenceUnit only apply to the custom recurrence type; a nil EndDate
// means the expense is open-ended.
type Expense struct {
	ID                 string                  `gorm:"primaryKey;column:id" json:"id"`
	Name               string                  `gorm:"column:name;not null" json:"name"`
	Description        string                  `gorm:"column:description" json:"description"`
	Category           string                  `gorm:"column:category" json:"category"`
	Amount             float64                 `gorm:"column:amount;not null" json:"amount"`
	RecurrenceType     string                  `gorm:"column:recurrence_type;check:recurrence_type IN ('once', 'monthly', 'custom');not null" json:"recurrence_type"`
	RecurrenceInterval *int                    `gorm:"column:recurrence_interval" json:"recurrence_interval"`
	RecurrenceUnit     *string                 `gorm:"column:recurrence_unit" json:"recurrence_unit"`
	StartDate          string                  `gorm:"column:start_date;not null" json:"start_date"`
	EndDate            *string                 `gorm:"column:end_date" json:"end_date"`
	Responsibilities   ExpenseResponsibilities `gorm:"column:responsibilities;type:jsonb;not null" json:"responsibilities"`
	IsActive           bool                    `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt          time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string {
	return "expense"
}
