package services

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
)

type ProfessionalService struct {
	repository *repositories.ProfessionalRepository
}

func NewProfessionalService(repository *repositories.ProfessionalRepository) *ProfessionalService {
	return &ProfessionalService{repository: repository}
}

func (s *ProfessionalService) Create(ctx context.Context, professional *models.Professional) error {
	return s.repository.Create(ctx, professional)
}

func (s *ProfessionalService) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ProfessionalService) GetAll(ctx context.Context) ([]models.Professional, error) {
	return s.repository.GetAll(ctx)
}

func (s *ProfessionalService) GetActive(ctx context.Context) ([]models.Professional, error) {
	return s.repository.GetActive(ctx)
}

func (s *ProfessionalService) Update(ctx context.Context, professional *models.Professional) error {
	return s.repository.Update(ctx, professional)
}

func (s *ProfessionalService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
