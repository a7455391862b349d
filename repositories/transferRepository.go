package repositories

import (
	"ClinicSplit/cache"
	"ClinicSplit/database"
	"ClinicSplit/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransferRepository covers both payout ledgers: per-professional
// transfers and aggregated bonus payments.
type TransferRepository struct {
	cache *cache.Cache
}

func NewTransferRepository(cache *cache.Cache) *TransferRepository {
	return &TransferRepository{cache: cache}
}

func (r *TransferRepository) CreateTransfer(ctx context.Context, transfer *models.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	if transfer.Status == "" {
		transfer.Status = "pending"
	}
	return withLock(ctx, fmt.Sprintf("transfer_lock:%s", transfer.ID), func() error {
		if err := database.DB.Omit("Professional").Create(transfer).Error; err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}
		return nil
	})
}

func (r *TransferRepository) GetTransferByID(ctx context.Context, id string) (*models.Transfer, error) {
	var transfer models.Transfer
	err := database.DB.WithContext(ctx).Preload("Professional").
		First(&transfer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *TransferRepository) ListTransfers(ctx context.Context, professionalID string) ([]models.Transfer, error) {
	query := database.DB.WithContext(ctx).Preload("Professional")
	if professionalID != "" {
		query = query.Where("professional_id = ?", professionalID)
	}
	var transfers []models.Transfer
	if err := query.Order("period_start DESC").Find(&transfers).Error; err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}

// MarkTransferPaid stamps the transfer as paid now.
func (r *TransferRepository) MarkTransferPaid(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("transfer_lock:%s", id), func() error {
		now := time.Now()
		result := database.DB.Model(&models.Transfer{}).Where("id = ?", id).
			Updates(map[string]interface{}{"status": "paid", "paid_at": now})
		if result.Error != nil {
			return fmt.Errorf("failed to mark transfer paid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("transfer %s not found", id)
		}
		return nil
	})
}

func (r *TransferRepository) DeleteTransfer(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("transfer_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Transfer{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete transfer: %w", err)
		}
		return nil
	})
}

func (r *TransferRepository) CreateBonusPayment(ctx context.Context, payment *models.BonusPayment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = "pending"
	}
	return withLock(ctx, fmt.Sprintf("bonus_payment_lock:%s", payment.ID), func() error {
		if err := database.DB.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create bonus payment: %w", err)
		}
		return nil
	})
}

func (r *TransferRepository) ListBonusPayments(ctx context.Context) ([]models.BonusPayment, error) {
	var payments []models.BonusPayment
	err := database.DB.WithContext(ctx).Order("period_start DESC").Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus payments: %w", err)
	}
	return payments, nil
}

func (r *TransferRepository) MarkBonusPaymentPaid(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("bonus_payment_lock:%s", id), func() error {
		now := time.Now()
		result := database.DB.Model(&models.BonusPayment{}).Where("id = ?", id).
			Updates(map[string]interface{}{"status": "paid", "paid_at": now})
		if result.Error != nil {
			return fmt.Errorf("failed to mark bonus payment paid: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("bonus payment %s not found", id)
		}
		return nil
	})
}

func (r *TransferRepository) DeleteBonusPayment(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("bonus_payment_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.BonusPayment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete bonus payment: %w", err)
		}
		return nil
	})
}

// SumPendingShares totals the calculated professional share over a date
// range, the figure a period transfer is normally created from.
func (r *TransferRepository) SumPendingShares(ctx context.Context, professionalID, dateFrom, dateTo string) (float64, error) {
	var total float64
	err := database.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("professional_id = ? AND date >= ? AND date <= ?", professionalID, dateFrom, dateTo).
		Select("COALESCE(SUM(final_value_professional), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum professional shares: %w", err)
	}
	return total, nil
}

// SumBonuses totals bonus values over a date range.
func (r *TransferRepository) SumBonuses(ctx context.Context, dateFrom, dateTo string) (float64, error) {
	var total float64
	err := database.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("date >= ? AND date <= ?", dateFrom, dateTo).
		Select("COALESCE(SUM(bonus_value), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum bonus values: %w", err)
	}
	return total, nil
}
