package services

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
)

type RuleService struct {
	repository *repositories.RuleRepository
}

func NewRuleService(repository *repositories.RuleRepository) *RuleService {
	return &RuleService{repository: repository}
}

func (s *RuleService) ActiveCardFeeRules(ctx context.Context, date string) ([]models.CardFeeRule, error) {
	return s.repository.ActiveCardFeeRules(ctx, date)
}

func (s *RuleService) ListCardFeeRules(ctx context.Context) ([]models.CardFeeRule, error) {
	return s.repository.ListCardFeeRules(ctx)
}

func (s *RuleService) CreateCardFeeRule(ctx context.Context, rule *models.CardFeeRule) error {
	return s.repository.CreateCardFeeRule(ctx, rule)
}

func (s *RuleService) UpdateCardFeeRule(ctx context.Context, rule *models.CardFeeRule) error {
	return s.repository.UpdateCardFeeRule(ctx, rule)
}

func (s *RuleService) DeleteCardFeeRule(ctx context.Context, id string) error {
	return s.repository.DeleteCardFeeRule(ctx, id)
}

func (s *RuleService) ListCardFeeTiers(ctx context.Context) ([]models.CardFeeTier, error) {
	return s.repository.ListCardFeeTiers(ctx)
}

func (s *RuleService) CreateCardFeeTier(ctx context.Context, tier *models.CardFeeTier, rates []models.CardFeeTierRate) error {
	return s.repository.CreateCardFeeTier(ctx, tier, rates)
}

func (s *RuleService) DeleteCardFeeTier(ctx context.Context, id string) error {
	return s.repository.DeleteCardFeeTier(ctx, id)
}

func (s *RuleService) ListBonusRules(ctx context.Context) ([]models.BonusRule, error) {
	return s.repository.ListBonusRules(ctx)
}

func (s *RuleService) CreateBonusRule(ctx context.Context, rule *models.BonusRule) error {
	return s.repository.CreateBonusRule(ctx, rule)
}

func (s *RuleService) UpdateBonusRule(ctx context.Context, rule *models.BonusRule) error {
	return s.repository.UpdateBonusRule(ctx, rule)
}

func (s *RuleService) DeleteBonusRule(ctx context.Context, id string) error {
	return s.repository.DeleteBonusRule(ctx, id)
}

func (s *RuleService) ListSplitRules(ctx context.Context) ([]models.SplitRule, error) {
	return s.repository.ListSplitRules(ctx)
}

func (s *RuleService) CreateSplitRule(ctx context.Context, rule *models.SplitRule) error {
	return s.repository.CreateSplitRule(ctx, rule)
}

func (s *RuleService) UpdateSplitRule(ctx context.Context, rule *models.SplitRule) error {
	return s.repository.UpdateSplitRule(ctx, rule)
}

func (s *RuleService) DeleteSplitRule(ctx context.Context, id string) error {
	return s.repository.DeleteSplitRule(ctx, id)
}
