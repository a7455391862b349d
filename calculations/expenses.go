package calculations

import (
	"fmt"
	"time"

	"ClinicSplit/models"
)

// ExpenseDetail is one expense line inside a professional's period total.
type ExpenseDetail struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	ExpenseID string  `json:"expense_id"`
}

// ProfessionalExpenses is a professional's expense total over a period.
type ProfessionalExpenses struct {
	Total   float64         `json:"total"`
	Details []ExpenseDetail `json:"details"`
}

// GenerateExpenseOccurrences lists the dates an expense falls on within
// [periodStart, periodEnd], both inclusive. Occurrences are clipped to
// the expense's own start and end dates. Monthly expenses occur on the
// first of each month; custom recurrences step from the start date by
// the configured interval.
func GenerateExpenseOccurrences(expense models.Expense, periodStart, periodEnd time.Time) []time.Time {
	var occurrences []time.Time

	start, err := time.Parse("2006-01-02", expense.StartDate)
	if err != nil {
		return occurrences
	}
	var end *time.Time
	if expense.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *expense.EndDate)
		if err != nil {
			return occurrences
		}
		end = &parsed
	}

	if end != nil && end.Before(periodStart) {
		return occurrences
	}
	if start.After(periodEnd) {
		return occurrences
	}

	switch expense.RecurrenceType {
	case models.RecurrenceOnce:
		if !start.Before(periodStart) && !start.After(periodEnd) {
			occurrences = append(occurrences, start)
		}
	case models.RecurrenceMonthly:
		current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !current.After(periodEnd) {
			if !current.Before(periodStart) && (end == nil || !current.After(*end)) {
				occurrences = append(occurrences, current)
			}
			current = current.AddDate(0, 1, 0)
		}
	case models.RecurrenceCustom:
		if expense.RecurrenceInterval == nil || *expense.RecurrenceInterval <= 0 {
			return occurrences
		}
		interval := *expense.RecurrenceInterval
		current := start
		for !current.After(periodEnd) {
			if !current.Before(periodStart) && (end == nil || !current.After(*end)) {
				occurrences = append(occurrences, current)
			}
			current = advanceByUnit(current, interval, expense.RecurrenceUnit)
		}
	}

	return occurrences
}

// advanceByUnit steps a date forward by interval days, weeks or months.
// Months is the fallback when no unit is set.
func advanceByUnit(t time.Time, interval int, unit *string) time.Time {
	if unit != nil {
		switch *unit {
		case models.RecurrenceUnitDays:
			return t.AddDate(0, 0, interval)
		case models.RecurrenceUnitWeeks:
			return t.AddDate(0, 0, 7*interval)
		}
	}
	return t.AddDate(0, interval, 0)
}

// CalculateProfessionalExpenses totals one professional's share of every
// active expense over the period. Each occurrence contributes
// amount * responsibility percentage; the detail line carries the
// percentage in its name when the professional is not solely responsible.
func CalculateProfessionalExpenses(professionalID string, expenses []models.Expense, periodStart, periodEnd time.Time) ProfessionalExpenses {
	result := ProfessionalExpenses{Details: []ExpenseDetail{}}

	for _, expense := range expenses {
		if !expense.IsActive {
			continue
		}

		var share *models.ExpenseResponsibility
		for i := range expense.Responsibilities {
			if expense.Responsibilities[i].ProfessionalID == professionalID {
				share = &expense.Responsibilities[i]
				break
			}
		}
		if share == nil {
			continue
		}

		occurrences := GenerateExpenseOccurrences(expense, periodStart, periodEnd)
		if len(occurrences) == 0 {
			continue
		}

		perOccurrence := expense.Amount * (share.Percentage / 100)
		expenseTotal := perOccurrence * float64(len(occurrences))

		name := expense.Name
		if share.Percentage < 100 {
			name = fmt.Sprintf("%s (%g%%)", expense.Name, share.Percentage)
		}

		result.Total += expenseTotal
		result.Details = append(result.Details, ExpenseDetail{
			Name:      name,
			Amount:    expenseTotal,
			ExpenseID: expense.ID,
		})
	}

	return result
}

// CalculateAllProfessionalsExpenses runs the per-professional total for
// every given professional.
func CalculateAllProfessionalsExpenses(professionalIDs []string, expenses []models.Expense, periodStart, periodEnd time.Time) map[string]ProfessionalExpenses {
	result := make(map[string]ProfessionalExpenses, len(professionalIDs))
	for _, id := range professionalIDs {
		result[id] = CalculateProfessionalExpenses(id, expenses, periodStart, periodEnd)
	}
	return result
}
