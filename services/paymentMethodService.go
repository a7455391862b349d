package services

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
)

type PaymentMethodService struct {
	repository *repositories.PaymentMethodRepository
}

func NewPaymentMethodService(repository *repositories.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{repository: repository}
}

func (s *PaymentMethodService) Create(ctx context.Context, method *models.PaymentMethod) error {
	return s.repository.Create(ctx, method)
}

func (s *PaymentMethodService) GetByID(ctx context.Context, id string) (*models.PaymentMethod, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PaymentMethodService) GetAll(ctx context.Context) ([]models.PaymentMethod, error) {
	return s.repository.GetAll(ctx)
}

func (s *PaymentMethodService) Update(ctx context.Context, method *models.PaymentMethod) error {
	return s.repository.Update(ctx, method)
}

func (s *PaymentMethodService) Reorder(ctx context.Context, orderedIDs []string) error {
	return s.repository.Reorder(ctx, orderedIDs)
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
