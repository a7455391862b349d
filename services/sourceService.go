package services

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
)

type SourceService struct {
	repository *repositories.SourceRepository
}

func NewSourceService(repository *repositories.SourceRepository) *SourceService {
	return &SourceService{repository: repository}
}

func (s *SourceService) Create(ctx context.Context, source *models.Source) error {
	return s.repository.Create(ctx, source)
}

func (s *SourceService) GetByID(ctx context.Context, id string) (*models.Source, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *SourceService) GetAll(ctx context.Context) ([]models.Source, error) {
	return s.repository.GetAll(ctx)
}

func (s *SourceService) Update(ctx context.Context, source *models.Source) error {
	return s.repository.Update(ctx, source)
}

func (s *SourceService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
