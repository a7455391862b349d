package services

import (
	"ClinicSplit/calculations"
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
	"fmt"
	"time"
)

type ExpenseService struct {
	repository       *repositories.ExpenseRepository
	professionalRepo *repositories.ProfessionalRepository
}

func NewExpenseService(repository *repositories.ExpenseRepository, professionalRepo *repositories.ProfessionalRepository) *ExpenseService {
	return &ExpenseService{repository: repository, professionalRepo: professionalRepo}
}

func (s *ExpenseService) Create(ctx context.Context, expense *models.Expense) error {
	return s.repository.Create(ctx, expense)
}

func (s *ExpenseService) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ExpenseService) GetAll(ctx context.Context) ([]models.Expense, error) {
	return s.repository.GetAll(ctx)
}

func (s *ExpenseService) Update(ctx context.Context, expense *models.Expense) error {
	return s.repository.Update(ctx, expense)
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

// ProfessionalExpenses totals one professional's expense shares over a period.
func (s *ExpenseService) ProfessionalExpenses(ctx context.Context, professionalID, periodStart, periodEnd string) (*calculations.ProfessionalExpenses, error) {
	start, end, err := parsePeriod(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repository.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	result := calculations.CalculateProfessionalExpenses(professionalID, expenses, start, end)
	return &result, nil
}

// AllProfessionalsExpenses totals every active professional's expense
// shares over a period.
func (s *ExpenseService) AllProfessionalsExpenses(ctx context.Context, periodStart, periodEnd string) (map[string]calculations.ProfessionalExpenses, error) {
	start, end, err := parsePeriod(periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	professionals, err := s.professionalRepo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repository.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(professionals))
	for _, professional := range professionals {
		ids = append(ids, professional.ID)
	}
	return calculations.CalculateAllProfessionalsExpenses(ids, expenses, start, end), nil
}

func parsePeriod(periodStart, periodEnd string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", periodStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period start %q: %w", periodStart, err)
	}
	end, err := time.Parse("2006-01-02", periodEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid period end %q: %w", periodEnd, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("period end %s is before period start %s", periodEnd, periodStart)
	}
	return start, end, nil
}
