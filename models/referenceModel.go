package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Professional model
type Professional struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	Name         string        `gorm:"column:name;not null;index" json:"name"`
	BankInfo     string        `gorm:"column:bank_info" json:"bank_info"`
	IsActive     bool          `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Appointments []Appointment `gorm:"foreignKey:ProfessionalID;references:ID" json:"-"`
}

func (Professional) TableName() string {
	return "professional"
}

// Procedure model. FixedCost is deducted from every appointment using the
// procedure; BonusPercentage is only a fallback when no explicit bonus rule
// matches (legacy path).
type Procedure struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	FixedCost       float64   `gorm:"column:fixed_cost;not null;default:0" json:"fixed_cost"`
	HasBonus        bool      `gorm:"column:has_bonus;not null;default:false" json:"has_bonus"`
	BonusPercentage float64   `gorm:"column:bonus_percentage;not null;default:0" json:"bonus_percentage"`
	IsActive        bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Procedure) TableName() string {
	return "procedure"
}

// PaymentMethod model
type PaymentMethod struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name;unique;not null" json:"name"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_method"
}

// Source model. Hospital sources suppress the default tax and may carry a
// custom tax percentage instead.
type Source struct {
	ID                  string    `gorm:"primaryKey;column:id" json:"id"`
	Name                string    `gorm:"column:name;not null" json:"name"`
	IsHospital          bool      `gorm:"column:is_hospital;not null;default:false" json:"is_hospital"`
	CustomTaxPercentage *float64  `gorm:"column:custom_tax_percentage" json:"custom_tax_percentage"`
	IsActive            bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Source) TableName() string {
	return "source"
}

// Patient model
type Patient struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;not null;index" json:"name"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patient"
}

// SystemSetting model
type SystemSetting struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Key         string    `gorm:"column:key;unique;not null" json:"key"`
	Value       string    `gorm:"column:value;not null" json:"value"`
	Description string    `gorm:"column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_setting"
}

// Setting keys consumed by the calculation layer.
const (
	SettingDefaultTaxPercentage = "default_tax_percentage"
	SettingBonusPercentage      = "bonus_percentage"
	SettingOwnerProfessionalID  = "owner_professional_id"
)

// SeedSystemSettings inserts the default settings when they are missing.
func SeedSystemSettings(db *gorm.DB) error {
	defaults := []SystemSetting{
		{ID: uuid.New().String(), Key: SettingDefaultTaxPercentage, Value: "3", Description: "Default tax percentage applied to non-hospital appointments"},
		{ID: uuid.New().String(), Key: SettingBonusPercentage, Value: "1.5", Description: "Fallback bonus percentage when a procedure has no explicit value"},
	}
	for _, setting := range defaults {
		var existing SystemSetting
		err := db.Where("key = ?", setting.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}
