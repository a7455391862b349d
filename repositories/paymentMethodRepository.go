package repositories

import (
	"ClinicSplit/cache"
	"ClinicSplit/database"
	"ClinicSplit/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCacheExpiry = 7 * 24 * time.Hour
)

type PaymentMethodRepository struct {
	cache *cache.Cache
}

func NewPaymentMethodRepository(cache *cache.Cache) *PaymentMethodRepository {
	return &PaymentMethodRepository{cache: cache}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, method *models.PaymentMethod) error {
	if method.ID == "" {
		method.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("payment_method_lock:%s", method.ID), func() error {
		if err := database.DB.Create(method).Error; err != nil {
			return fmt.Errorf("failed to create payment method: %w", err)
		}
		return r.invalidate(ctx, method.ID)
	})
}

func (r *PaymentMethodRepository) GetByID(ctx context.Context, id string) (*models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.PaymentMethod
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get payment method from cache: %v", err)
	}

	var method models.PaymentMethod
	err := database.DB.First(&method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, method, PaymentMethodCacheExpiry); err != nil {
		log.Printf("Failed to set payment method in cache: %v", err)
	}
	return &method, nil
}

// GetAll returns payment methods in display order.
func (r *PaymentMethodRepository) GetAll(ctx context.Context) ([]models.PaymentMethod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "payment_methods_cache"
	var cached []models.PaymentMethod
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get payment methods from cache: %v", err)
	}

	var methods []models.PaymentMethod
	if err := database.DB.Order("display_order").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payment methods: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, methods, PaymentMethodCacheExpiry); err != nil {
		log.Printf("Failed to set payment methods in cache: %v", err)
	}
	return methods, nil
}

func (r *PaymentMethodRepository) Update(ctx context.Context, method *models.PaymentMethod) error {
	return withLock(ctx, fmt.Sprintf("payment_method_lock:%s", method.ID), func() error {
		if err := database.DB.Save(method).Error; err != nil {
			return fmt.Errorf("failed to update payment method: %w", err)
		}
		return r.invalidate(ctx, method.ID)
	})
}

// Reorder rewrites the display order of all payment methods in one pass.
func (r *PaymentMethodRepository) Reorder(ctx context.Context, orderedIDs []string) error {
	return withLock(ctx, "payment_method_lock:reorder", func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			for position, id := range orderedIDs {
				if err := tx.Model(&models.PaymentMethod{}).Where("id = ?", id).
					Update("display_order", position).Error; err != nil {
					return fmt.Errorf("failed to reorder payment method %s: %w", id, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		return r.cache.DeleteAll(ctx, "payment_method*")
	})
}

func (r *PaymentMethodRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("payment_method_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.PaymentMethod{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete payment method: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *PaymentMethodRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.cacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete payment method cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "payment_methods_cache")
}

func (r *PaymentMethodRepository) cacheKey(id string) string {
	return fmt.Sprintf("payment_method_cache:%s", id)
}
