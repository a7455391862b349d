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
	ExpenseCacheExpiry = 24 * time.Hour
)

type ExpenseRepository struct {
	cache *cache.Cache
}

func NewExpenseRepository(cache *cache.Cache) *ExpenseRepository {
	return &ExpenseRepository{cache: cache}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", expense.ID), func() error {
		if err := database.DB.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
		return r.invalidate(ctx, expense.ID)
	})
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.Expense
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get expense from cache: %v", err)
	}

	var expense models.Expense
	err := database.DB.First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, expense, ExpenseCacheExpiry); err != nil {
		log.Printf("Failed to set expense in cache: %v", err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "expenses_cache"
	var cached []models.Expense
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get expenses from cache: %v", err)
	}

	var expenses []models.Expense
	if err := database.DB.Order("name").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get all expenses: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, expenses, ExpenseCacheExpiry); err != nil {
		log.Printf("Failed to set expenses in cache: %v", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) GetActive(ctx context.Context) ([]models.Expense, error) {
	expenses, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.IsActive {
			active = append(active, expense)
		}
	}
	return active, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", expense.ID), func() error {
		if err := database.DB.Save(expense).Error; err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		return r.invalidate(ctx, expense.ID)
	})
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("expense_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Expense{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ExpenseRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.cacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete expense cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "expenses_cache")
}

func (r *ExpenseRepository) cacheKey(id string) string {
	return fmt.Sprintf("expense_cache:%s", id)
}
