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
	ProfessionalCacheExpiry = 7 * 24 * time.Hour
)

type ProfessionalRepository struct {
	cache *cache.Cache
}

func NewProfessionalRepository(cache *cache.Cache) *ProfessionalRepository {
	return &ProfessionalRepository{cache: cache}
}

func (r *ProfessionalRepository) Create(ctx context.Context, professional *models.Professional) error {
	if professional.ID == "" {
		professional.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("professional_lock:%s", professional.ID), func() error {
		var existing models.Professional
		if err := database.DB.Where("name = ?", professional.Name).First(&existing).Error; err == nil {
			return errors.New("professional with the same name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing professional: %w", err)
		}

		if err := database.DB.Create(professional).Error; err != nil {
			return fmt.Errorf("failed to create professional: %w", err)
		}
		return r.invalidate(ctx, professional.ID)
	})
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.Professional
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get professional from cache: %v", err)
	}

	var professional models.Professional
	err := database.DB.First(&professional, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, professional, ProfessionalCacheExpiry); err != nil {
		log.Printf("Failed to set professional in cache: %v", err)
	}
	return &professional, nil
}

func (r *ProfessionalRepository) GetAll(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "professionals_cache"
	var cached []models.Professional
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get professionals from cache: %v", err)
	}

	var professionals []models.Professional
	if err := database.DB.Order("name").Find(&professionals).Error; err != nil {
		return nil, fmt.Errorf("failed to get all professionals: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, professionals, ProfessionalCacheExpiry); err != nil {
		log.Printf("Failed to set professionals in cache: %v", err)
	}
	return professionals, nil
}

// GetActive returns only active professionals, ordered by name.
func (r *ProfessionalRepository) GetActive(ctx context.Context) ([]models.Professional, error) {
	professionals, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := professionals[:0:0]
	for _, professional := range professionals {
		if professional.IsActive {
			active = append(active, professional)
		}
	}
	return active, nil
}

func (r *ProfessionalRepository) Update(ctx context.Context, professional *models.Professional) error {
	return withLock(ctx, fmt.Sprintf("professional_lock:%s", professional.ID), func() error {
		if err := database.DB.Save(professional).Error; err != nil {
			return fmt.Errorf("failed to update professional: %w", err)
		}
		return r.invalidate(ctx, professional.ID)
	})
}

func (r *ProfessionalRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("professional_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Professional{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete professional: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ProfessionalRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.cacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete professional cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "professionals_cache")
}

func (r *ProfessionalRepository) cacheKey(id string) string {
	return fmt.Sprintf("professional_cache:%s", id)
}
