package services

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
)

type TransferService struct {
	repository *repositories.TransferRepository
}

func NewTransferService(repository *repositories.TransferRepository) *TransferService {
	return &TransferService{repository: repository}
}

// CreateTransferForPeriod totals a professional's calculated shares over
// the period and records the payout, unless an amount was given
// explicitly.
func (s *TransferService) CreateTransferForPeriod(ctx context.Context, transfer *models.Transfer) error {
	if transfer.TotalAmount == 0 && transfer.ProfessionalID != nil {
		total, err := s.repository.SumPendingShares(ctx, *transfer.ProfessionalID, transfer.PeriodStart, transfer.PeriodEnd)
		if err != nil {
			return err
		}
		transfer.TotalAmount = total
	}
	return s.repository.CreateTransfer(ctx, transfer)
}

func (s *TransferService) GetTransferByID(ctx context.Context, id string) (*models.Transfer, error) {
	return s.repository.GetTransferByID(ctx, id)
}

func (s *TransferService) ListTransfers(ctx context.Context, professionalID string) ([]models.Transfer, error) {
	return s.repository.ListTransfers(ctx, professionalID)
}

func (s *TransferService) MarkTransferPaid(ctx context.Context, id string) error {
	return s.repository.MarkTransferPaid(ctx, id)
}

func (s *TransferService) DeleteTransfer(ctx context.Context, id string) error {
	return s.repository.DeleteTransfer(ctx, id)
}

// CreateBonusPaymentForPeriod totals bonus values over the period when no
// explicit amount was given.
func (s *TransferService) CreateBonusPaymentForPeriod(ctx context.Context, payment *models.BonusPayment) error {
	if payment.TotalBonus == 0 {
		total, err := s.repository.SumBonuses(ctx, payment.PeriodStart, payment.PeriodEnd)
		if err != nil {
			return err
		}
		payment.TotalBonus = total
	}
	return s.repository.CreateBonusPayment(ctx, payment)
}

func (s *TransferService) ListBonusPayments(ctx context.Context) ([]models.BonusPayment, error) {
	return s.repository.ListBonusPayments(ctx)
}

func (s *TransferService) MarkBonusPaymentPaid(ctx context.Context, id string) error {
	return s.repository.MarkBonusPaymentPaid(ctx, id)
}

func (s *TransferService) DeleteBonusPayment(ctx context.Context, id string) error {
	return s.repository.DeleteBonusPayment(ctx, id)
}
