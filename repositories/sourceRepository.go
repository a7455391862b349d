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
	SourceCacheExpiry = 7 * 24 * time.Hour
)

type SourceRepository struct {
	cache *cache.Cache
}

func NewSourceRepository(cache *cache.Cache) *SourceRepository {
	return &SourceRepository{cache: cache}
}

func (r *SourceRepository) Create(ctx context.Context, source *models.Source) error {
	if source.ID == "" {
		source.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("source_lock:%s", source.ID), func() error {
		var existing models.Source
		err := database.DB.Where("LOWER(name) = LOWER(?)", source.Name).First(&existing).Error
		if err == nil {
			return fmt.Errorf("source with name %s already exists", source.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing source: %w", err)
		}
		if err := database.DB.Create(source).Error; err != nil {
			return fmt.Errorf("failed to create source: %w", err)
		}
		return r.invalidate(ctx, source.ID)
	})
}

func (r *SourceRepository) GetByID(ctx context.Context, id string) (*models.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.Source
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get source from cache: %v", err)
	}

	var source models.Source
	err := database.DB.First(&source, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get source: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, source, SourceCacheExpiry); err != nil {
		log.Printf("Failed to set source in cache: %v", err)
	}
	return &source, nil
}

func (r *SourceRepository) GetAll(ctx context.Context) ([]models.Source, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "sources_cache"
	var cached []models.Source
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get sources from cache: %v", err)
	}

	var sources []models.Source
	if err := database.DB.Order("name").Find(&sources).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sources: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, sources, SourceCacheExpiry); err != nil {
		log.Printf("Failed to set sources in cache: %v", err)
	}
	return sources, nil
}

func (r *SourceRepository) Update(ctx context.Context, source *models.Source) error {
	return withLock(ctx, fmt.Sprintf("source_lock:%s", source.ID), func() error {
		if err := database.DB.Save(source).Error; err != nil {
			return fmt.Errorf("failed to update source: %w", err)
		}
		return r.invalidate(ctx, source.ID)
	})
}

func (r *SourceRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("source_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Source{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete source: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *SourceRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.cacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete source cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "sources_cache")
}

func (r *SourceRepository) cacheKey(id string) string {
	return fmt.Sprintf("source_cache:%s", id)
}
