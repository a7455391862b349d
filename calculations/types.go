package calculations

import (
	"ClinicSplit/models"
)

// CalculationInput carries everything a single-procedure calculation needs.
// All reference data is supplied by the caller as an immutable snapshot;
// rule slices must already be filtered to active rules. Passing empty rule
// slices deliberately selects the legacy name-based fallback behaviour.
type CalculationInput struct {
	GrossValue             float64
	NetValueInput          *float64
	PaymentMethodID        string
	Source                 models.Source
	Procedure              models.Procedure
	Professional           models.Professional
	CardFeeRules           []models.CardFeeRule
	DefaultTaxPercentage   float64
	DefaultBonusPercentage float64
	BonusRules             []models.BonusRule
	SplitRules             []models.SplitRule
	OwnerProfessionalID    string
}

// MultiProcedureCalculationInput is the multi-procedure variant. The first
// procedure is the primary one retained in single-procedure display fields.
type MultiProcedureCalculationInput struct {
	GrossValue             float64
	NetValueInput          *float64
	PaymentMethodID        string
	Source                 models.Source
	Procedures             []models.Procedure
	Professional           models.Professional
	CardFeeRules           []models.CardFeeRule
	DefaultTaxPercentage   float64
	DefaultBonusPercentage float64
	BonusRules             []models.BonusRule
	SplitRules             []models.SplitRule
	OwnerProfessionalID    string
}

// CalculationResult is the fully itemized breakdown. It is a value object;
// FinalValueOwner + FinalValueProfessional always equals NetValue, and
// BonusValue is an additional third-party payout on top of that split.
type CalculationResult struct {
	GrossValue             float64 `json:"gross_value"`
	CardFeePercentage      float64 `json:"card_fee_percentage"`
	CardFeeValue           float64 `json:"card_fee_value"`
	ValueAfterCardFee      float64 `json:"value_after_card_fee"`
	TaxPercentage          float64 `json:"tax_percentage"`
	TaxValue               float64 `json:"tax_value"`
	ValueAfterTax          float64 `json:"value_after_tax"`
	ProcedureCost          float64 `json:"procedure_cost"`
	TotalProcedureCost     float64 `json:"total_procedure_cost"`
	NetValue               float64 `json:"net_value"`
	BonusValue             float64 `json:"bonus_value"`
	ProfessionalShare      float64 `json:"professional_share"`
	FinalValueOwner        float64 `json:"final_value_owner"`
	FinalValueProfessional float64 `json:"final_value_professional"`
}

// SplitOutcome is the result of applying one split rule. Shares keeps the
// canonical per-professional amounts; OwnerShare/ProfessionalShare project
// them onto the two buckets the appointment snapshot stores. A rule naming
// several non-owner professionals collapses into the one professional
// bucket, with their percentages summed in ProfessionalPercentage.
type SplitOutcome struct {
	OwnerShare             float64
	ProfessionalShare      float64
	ProfessionalPercentage float64
	Shares                 map[string]float64
}
