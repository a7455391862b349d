package utils

import (
	"ClinicSplit/models"
	"errors"
	"fmt"
	"log"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidRecurrenceType = errors.New("recurrence_type must be once, monthly or custom")
	ErrInvalidRecurrenceUnit = errors.New("recurrence_unit must be days, weeks or months")
)

// ValidateExpense validates an expense payload, including the recurrence
// settings a custom schedule needs.
func ValidateExpense(expense models.Expense) error {
	err := validation.ValidateStruct(&expense,
		validation.Field(&expense.Name, validation.Required, validation.Length(1, 150)),
		validation.Field(&expense.Amount, validation.Min(0.0)),
		validation.Field(&expense.RecurrenceType, validation.Required, validation.By(validateRecurrenceType)),
		validation.Field(&expense.StartDate, validation.Required, validation.Date("2006-01-02")),
	)
	if err == nil && expense.EndDate != nil {
		if _, parseErr := time.Parse("2006-01-02", *expense.EndDate); parseErr != nil {
			err = fmt.Errorf("end_date must be a YYYY-MM-DD date: %w", parseErr)
		}
	}
	if err == nil && expense.RecurrenceType == models.RecurrenceCustom {
		if expense.RecurrenceInterval == nil || *expense.RecurrenceInterval < 1 {
			err = errors.New("custom recurrence needs a recurrence_interval of at least 1")
		} else if expense.RecurrenceUnit != nil {
			err = validateRecurrenceUnit(*expense.RecurrenceUnit)
		}
	}
	if err == nil {
		err = validateResponsibilities(expense.Responsibilities)
	}
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateRecurrenceType(value interface{}) error {
	recurrence, _ := value.(string)
	switch recurrence {
	case models.RecurrenceOnce, models.RecurrenceMonthly, models.RecurrenceCustom:
		return nil
	}
	return ErrInvalidRecurrenceType
}

func validateRecurrenceUnit(unit string) error {
	switch unit {
	case models.RecurrenceUnitDays, models.RecurrenceUnitWeeks, models.RecurrenceUnitMonths:
		return nil
	}
	return ErrInvalidRecurrenceUnit
}

func validateResponsibilities(responsibilities models.ExpenseResponsibilities) error {
	for _, r := range responsibilities {
		if r.ProfessionalID == "" {
			return errors.New("every responsibility line needs a professional_id")
		}
		if r.Percentage <= 0 || r.Percentage > 100 {
			return errors.New("responsibility percentages must be above 0 and at most 100")
		}
	}
	return nil
}
