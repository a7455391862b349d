package calculations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ClinicSplit/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(i int) *int { return &i }

func TestGenerateExpenseOccurrencesOnce(t *testing.T) {
	expense := models.Expense{
		ID:             "rent-deposit",
		RecurrenceType: models.RecurrenceOnce,
		StartDate:      "2026-03-15",
		IsActive:       true,
	}

	inside := GenerateExpenseOccurrences(expense, day("2026-03-01"), day("2026-03-31"))
	assert.Equal(t, []time.Time{day("2026-03-15")}, inside)

	before := GenerateExpenseOccurrences(expense, day("2026-04-01"), day("2026-04-30"))
	assert.Empty(t, before)

	after := GenerateExpenseOccurrences(expense, day("2026-02-01"), day("2026-02-28"))
	assert.Empty(t, after)
}

func TestGenerateExpenseOccurrencesMonthly(t *testing.T) {
	expense := models.Expense{
		ID:             "rent",
		RecurrenceType: models.RecurrenceMonthly,
		StartDate:      "2026-01-10",
		IsActive:       true,
	}

	occurrences := GenerateExpenseOccurrences(expense, day("2026-02-01"), day("2026-04-30"))
	assert.Equal(t, []time.Time{day("2026-02-01"), day("2026-03-01"), day("2026-04-01")}, occurrences)
}

func TestGenerateExpenseOccurrencesMonthlyRespectsEndDate(t *testing.T) {
	expense := models.Expense{
		ID:             "lease",
		RecurrenceType: models.RecurrenceMonthly,
		StartDate:      "2026-01-01",
		EndDate:        strPtr("2026-03-15"),
		IsActive:       true,
	}

	occurrences := GenerateExpenseOccurrences(expense, day("2026-01-01"), day("2026-06-30"))
	assert.Equal(t, []time.Time{day("2026-01-01"), day("2026-02-01"), day("2026-03-01")}, occurrences)

	expired := GenerateExpenseOccurrences(expense, day("2026-04-01"), day("2026-06-30"))
	assert.Empty(t, expired)
}

func TestGenerateExpenseOccurrencesCustomDays(t *testing.T) {
	expense := models.Expense{
		ID:                 "cleaning",
		RecurrenceType:     models.RecurrenceCustom,
		RecurrenceInterval: intPtr(10),
		RecurrenceUnit:     strPtr(models.RecurrenceUnitDays),
		StartDate:          "2026-05-01",
		IsActive:           true,
	}

	occurrences := GenerateExpenseOccurrences(expense, day("2026-05-01"), day("2026-05-31"))
	assert.Equal(t, []time.Time{day("2026-05-01"), day("2026-05-11"), day("2026-05-21"), day("2026-05-31")}, occurrences)
}

func TestGenerateExpenseOccurrencesCustomWeeks(t *testing.T) {
	expense := models.Expense{
		ID:                 "lab-pickup",
		RecurrenceType:     models.RecurrenceCustom,
		RecurrenceInterval: intPtr(2),
		RecurrenceUnit:     strPtr(models.RecurrenceUnitWeeks),
		StartDate:          "2026-06-01",
		IsActive:           true,
	}

	occurrences := GenerateExpenseOccurrences(expense, day("2026-06-01"), day("2026-06-30"))
	assert.Equal(t, []time.Time{day("2026-06-01"), day("2026-06-15"), day("2026-06-29")}, occurrences)
}

func TestGenerateExpenseOccurrencesCustomMonthsIsDefaultUnit(t *testing.T) {
	expense := models.Expense{
		ID:                 "equipment-installment",
		RecurrenceType:     models.RecurrenceCustom,
		RecurrenceInterval: intPtr(2),
		StartDate:          "2026-01-20",
		IsActive:           true,
	}

	occurrences := GenerateExpenseOccurrences(expense, day("2026-01-01"), day("2026-06-30"))
	assert.Equal(t, []time.Time{day("2026-01-20"), day("2026-03-20"), day("2026-05-20")}, occurrences)
}

func TestGenerateExpenseOccurrencesCustomRequiresInterval(t *testing.T) {
	expense := models.Expense{
		ID:             "broken",
		RecurrenceType: models.RecurrenceCustom,
		StartDate:      "2026-01-01",
		IsActive:       true,
	}

	assert.Empty(t, GenerateExpenseOccurrences(expense, day("2026-01-01"), day("2026-12-31")))
}

func TestGenerateExpenseOccurrencesInvalidDate(t *testing.T) {
	expense := models.Expense{
		ID:             "bad-date",
		RecurrenceType: models.RecurrenceMonthly,
		StartDate:      "not-a-date",
		IsActive:       true,
	}

	assert.Empty(t, GenerateExpenseOccurrences(expense, day("2026-01-01"), day("2026-12-31")))
}

func TestCalculateProfessionalExpensesSharesByPercentage(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:             "exp-rent",
			Name:           "Rent",
			Amount:         3000,
			RecurrenceType: models.RecurrenceMonthly,
			StartDate:      "2026-01-01",
			IsActive:       true,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-a", Percentage: 60},
				{ProfessionalID: "prof-b", Percentage: 40},
			},
		},
		{
			ID:             "exp-insurance",
			Name:           "Insurance",
			Amount:         500,
			RecurrenceType: models.RecurrenceMonthly,
			StartDate:      "2026-01-01",
			IsActive:       true,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-a", Percentage: 100},
			},
		},
	}

	result := CalculateProfessionalExpenses("prof-a", expenses, day("2026-03-01"), day("2026-03-31"))

	assert.InDelta(t, 2300, result.Total, 1e-9)
	assert.Len(t, result.Details, 2)
	assert.Equal(t, "Rent (60%)", result.Details[0].Name)
	assert.InDelta(t, 1800, result.Details[0].Amount, 1e-9)
	assert.Equal(t, "Insurance", result.Details[1].Name)
	assert.InDelta(t, 500, result.Details[1].Amount, 1e-9)
}

func TestCalculateProfessionalExpensesMultipliesOccurrences(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:                 "exp-cleaning",
			Name:               "Cleaning",
			Amount:             200,
			RecurrenceType:     models.RecurrenceCustom,
			RecurrenceInterval: intPtr(1),
			RecurrenceUnit:     strPtr(models.RecurrenceUnitWeeks),
			StartDate:          "2026-06-01",
			IsActive:           true,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-a", Percentage: 50},
			},
		},
	}

	result := CalculateProfessionalExpenses("prof-a", expenses, day("2026-06-01"), day("2026-06-30"))

	// weekly from June 1st gives five occurrences inside June
	assert.InDelta(t, 500, result.Total, 1e-9)
}

func TestCalculateProfessionalExpensesSkipsInactiveAndUnrelated(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:             "exp-old",
			Name:           "Old contract",
			Amount:         1000,
			RecurrenceType: models.RecurrenceMonthly,
			StartDate:      "2026-01-01",
			IsActive:       false,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-a", Percentage: 100},
			},
		},
		{
			ID:             "exp-other",
			Name:           "Other room",
			Amount:         800,
			RecurrenceType: models.RecurrenceMonthly,
			StartDate:      "2026-01-01",
			IsActive:       true,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-b", Percentage: 100},
			},
		},
	}

	result := CalculateProfessionalExpenses("prof-a", expenses, day("2026-03-01"), day("2026-03-31"))

	assert.Zero(t, result.Total)
	assert.Empty(t, result.Details)
}

func TestCalculateAllProfessionalsExpenses(t *testing.T) {
	expenses := []models.Expense{
		{
			ID:             "exp-rent",
			Name:           "Rent",
			Amount:         2000,
			RecurrenceType: models.RecurrenceMonthly,
			StartDate:      "2026-01-01",
			IsActive:       true,
			Responsibilities: models.ExpenseResponsibilities{
				{ProfessionalID: "prof-a", Percentage: 70},
				{ProfessionalID: "prof-b", Percentage: 30},
			},
		},
	}

	result := CalculateAllProfessionalsExpenses([]string{"prof-a", "prof-b", "prof-c"}, expenses, day("2026-03-01"), day("2026-03-31"))

	assert.InDelta(t, 1400, result["prof-a"].Total, 1e-9)
	assert.InDelta(t, 600, result["prof-b"].Total, 1e-9)
	assert.Zero(t, result["prof-c"].Total)
}
