package services

import (
	"ClinicSplit/repositories"
	"context"
)

type SettingService struct {
	repository *repositories.SettingRepository
}

func NewSettingService(repository *repositories.SettingRepository) *SettingService {
	return &SettingService{repository: repository}
}

func (s *SettingService) GetAll(ctx context.Context) (map[string]string, error) {
	return s.repository.GetAll(ctx)
}

func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	return s.repository.Get(ctx, key)
}

func (s *SettingService) Set(ctx context.Context, key, value string) error {
	return s.repository.Set(ctx, key, value)
}
