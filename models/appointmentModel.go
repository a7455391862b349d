package models

import (
	"time"
)

// Appointment model. Holds the original inputs plus a frozen snapshot of
// every calculated field; the snapshot is only ever rewritten by the
// calculation layer or the batch recalculation command.
type Appointment struct {
	ID              string  `gorm:"primaryKey;column:id" json:"id"`
	Date            string  `gorm:"column:date;not null;index" json:"date"`
	PatientID       *string `gorm:"column:patient_id;index" json:"patient_id"`
	PatientName     string  `gorm:"column:patient_name;index" json:"patient_name"`
	ProfessionalID  string  `gorm:"column:professional_id;not null;index" json:"professional_id"`
	ProcedureID     string  `gorm:"column:procedure_id;not null;index" json:"procedure_id"`
	PaymentMethodID string  `gorm:"column:payment_method_id;index" json:"payment_method_id"`
	IsHospital      bool    `gorm:"column:is_hospital;not null;default:false" json:"is_hospital"`

	GrossValue    float64  `gorm:"column:gross_value;not null" json:"gross_value"`
	NetValueInput *float64 `gorm:"column:net_value_input" json:"net_value_input"`

	// Calculated snapshot
	CardFeePercentage      float64 `gorm:"column:card_fee_percentage" json:"card_fee_percentage"`
	CardFeeValue           float64 `gorm:"column:card_fee_value" json:"card_fee_value"`
	TaxPercentage          float64 `gorm:"column:tax_percentage" json:"tax_percentage"`
	TaxValue               float64 `gorm:"column:tax_value" json:"tax_value"`
	ProcedureCost          float64 `gorm:"column:procedure_cost" json:"procedure_cost"`
	TotalProcedureCost     float64 `gorm:"column:total_procedure_cost" json:"total_procedure_cost"`
	NetValue               float64 `gorm:"column:net_value" json:"net_value"`
	BonusValue             float64 `gorm:"column:bonus_value" json:"bonus_value"`
	ProfessionalShare      float64 `gorm:"column:professional_share" json:"professional_share"`
	FinalValueOwner        float64 `gorm:"column:final_value_owner" json:"final_value_owner"`
	FinalValueProfessional float64 `gorm:"column:final_value_professional" json:"final_value_professional"`

	Notes     string    `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Professional  Professional           `gorm:"foreignKey:ProfessionalID;references:ID" json:"professional"`
	Procedure     Procedure              `gorm:"foreignKey:ProcedureID;references:ID" json:"procedure"`
	PaymentMethod PaymentMethod          `gorm:"foreignKey:PaymentMethodID;references:ID" json:"payment_method"`
	Procedures    []AppointmentProcedure `gorm:"foreignKey:AppointmentID;references:ID" json:"appointment_procedures"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// AppointmentProcedure links an appointment to each of its procedures.
// The row with SequenceOrder 0 is the primary procedure kept in
// Appointment.ProcedureID for backward compatibility.
type AppointmentProcedure struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	AppointmentID string    `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	ProcedureID   string    `gorm:"column:procedure_id;not null;index" json:"procedure_id"`
	SequenceOrder int       `gorm:"column:sequence_order;not null;default:0" json:"sequence_order"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Procedure Procedure `gorm:"foreignKey:ProcedureID;references:ID" json:"procedure"`
}

func (AppointmentProcedure) TableName() string {
	return "appointment_procedure"
}

// Transfer is a per-professional payout over a period.
type Transfer struct {
	ID             string     `gorm:"primaryKey;column:id" json:"id"`
	ProfessionalID *string    `gorm:"column:professional_id;index" json:"professional_id"`
	PeriodStart    string     `gorm:"column:period_start;not null" json:"period_start"`
	PeriodEnd      string     `gorm:"column:period_end;not null" json:"period_end"`
	TotalAmount    float64    `gorm:"column:total_amount;not null" json:"total_amount"`
	Status         string     `gorm:"column:status;check:status IN ('pending', 'paid');not null;default:'pending'" json:"status"`
	PaidAt         *time.Time `gorm:"column:paid_at" json:"paid_at"`
	Notes          string     `gorm:"column:notes" json:"notes"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Professional Professional `gorm:"foreignKey:ProfessionalID;references:ID" json:"-"`
}

func (Transfer) TableName() string {
	return "transfer"
}

// BonusPayment aggregates third-party bonus payouts over a period.
type BonusPayment struct {
	ID          string     `gorm:"primaryKey;column:id" json:"id"`
	PeriodStart string     `gorm:"column:period_start;not null" json:"period_start"`
	PeriodEnd   string     `gorm:"column:period_end;not null" json:"period_end"`
	TotalBonus  float64    `gorm:"column:total_bonus;not null" json:"total_bonus"`
	Status      string     `gorm:"column:status;check:status IN ('pending', 'paid');not null;default:'pending'" json:"status"`
	PaidAt      *time.Time `gorm:"column:paid_at" json:"paid_at"`
	Notes       string     `gorm:"column:notes" json:"notes"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BonusPayment) TableName() string {
	return "bonus_payment"
}
