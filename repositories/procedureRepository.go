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
	ProcedureCacheExpiry = 7 * 24 * time.Hour
)

type ProcedureRepository struct {
	cache *cache.Cache
}

func NewProcedureRepository(cache *cache.Cache) *ProcedureRepository {
	return &ProcedureRepository{cache: cache}
}

func (r *ProcedureRepository) Create(ctx context.Context, procedure *models.Procedure) error {
	if procedure.ID == "" {
		procedure.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("procedure_lock:%s", procedure.ID), func() error {
		var existing models.Procedure
		if err := database.DB.Where("name = ?", procedure.Name).First(&existing).Error; err == nil {
			return errors.New("procedure with the same name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for existing procedure: %w", err)
		}

		if err := database.DB.Create(procedure).Error; err != nil {
			return fmt.Errorf("failed to create procedure: %w", err)
		}
		return r.invalidate(ctx, procedure.ID)
	})
}

func (r *ProcedureRepository) GetByID(ctx context.Context, id string) (*models.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.Procedure
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get procedure from cache: %v", err)
	}

	var procedure models.Procedure
	err := database.DB.First(&procedure, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get procedure: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, procedure, ProcedureCacheExpiry); err != nil {
		log.Printf("Failed to set procedure in cache: %v", err)
	}
	return &procedure, nil
}

func (r *ProcedureRepository) GetAll(ctx context.Context) ([]models.Procedure, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "procedures_cache"
	var cached []models.Procedure
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get procedures from cache: %v", err)
	}

	var procedures []models.Procedure
	if err := database.DB.Order("name").Find(&procedures).Error; err != nil {
		return nil, fmt.Errorf("failed to get all procedures: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, procedures, ProcedureCacheExpiry); err != nil {
		log.Printf("Failed to set procedures in cache: %v", err)
	}
	return procedures, nil
}

// GetActive filters the cached full list rather than running a second
// query.
func (r *ProcedureRepository) GetActive(ctx context.Context) ([]models.Procedure, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Procedure, 0, len(all))
	for _, procedure := range all {
		if procedure.IsActive {
			active = append(active, procedure)
		}
	}
	return active, nil
}

func (r *ProcedureRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Procedure, error) {
	procedures := make([]models.Procedure, 0, len(ids))
	for _, id := range ids {
		procedure, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if procedure == nil {
			return nil, fmt.Errorf("procedure %s not found", id)
		}
		procedures = append(procedures, *procedure)
	}
	return procedures, nil
}

func (r *ProcedureRepository) Update(ctx context.Context, procedure *models.Procedure) error {
	return withLock(ctx, fmt.Sprintf("procedure_lock:%s", procedure.ID), func() error {
		if err := database.DB.Save(procedure).Error; err != nil {
			return fmt.Errorf("failed to update procedure: %w", err)
		}
		return r.invalidate(ctx, procedure.ID)
	})
}

func (r *ProcedureRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("procedure_lock:%s", id), func() error {
		if err := database.DB.Delete(&models.Procedure{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete procedure: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ProcedureRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.cacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete procedure cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "procedures_cache")
}

func (r *ProcedureRepository) cacheKey(id string) string {
	return fmt.Sprintf("procedure_cache:%s", id)
}
