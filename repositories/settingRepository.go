package repositories

import (
	"ClinicSplit/cache"
	"ClinicSplit/database"
	"ClinicSplit/models"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SettingCacheExpiry = 24 * time.Hour
)

type SettingRepository struct {
	cache *cache.Cache
}

func NewSettingRepository(cache *cache.Cache) *SettingRepository {
	return &SettingRepository{cache: cache}
}

// GetAll returns every system setting keyed by name.
func (r *SettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "system_settings_cache"
	var cached map[string]string
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get settings from cache: %v", err)
	}

	var settings []models.SystemSetting
	if err := database.DB.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	byKey := make(map[string]string, len(settings))
	for _, s := range settings {
		byKey[s.Key] = s.Value
	}

	if err := r.cache.SetJSON(ctx, cacheKey, byKey, SettingCacheExpiry); err != nil {
		log.Printf("Failed to set settings in cache: %v", err)
	}
	return byKey, nil
}

// Get returns the raw value for a key, or "" when the key is absent.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	settings, err := r.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return settings[key], nil
}

// GetFloat parses a numeric setting, returning fallback when the key is
// absent or does not parse.
func (r *SettingRepository) GetFloat(ctx context.Context, key string, fallback float64) (float64, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Setting %s has non-numeric value %q, using fallback %v", key, raw, fallback)
		return fallback, nil
	}
	return parsed, nil
}

// Set creates or updates a setting by key.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	return withLock(ctx, fmt.Sprintf("setting_lock:%s", key), func() error {
		var setting models.SystemSetting
		err := database.DB.Where("key = ?", key).First(&setting).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = models.SystemSetting{
				ID:    uuid.New().String(),
				Key:   key,
				Value: value,
			}
			if err := database.DB.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting %s: %w", key, err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to get setting %s: %w", key, err)
		} else {
			setting.Value = value
			if err := database.DB.Save(&setting).Error; err != nil {
				return fmt.Errorf("failed to update setting %s: %w", key, err)
			}
		}
		return r.cache.DeleteAll(ctx, "system_settings_cache")
	})
}
