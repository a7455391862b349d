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
	AppointmentCacheExpiry = 30 * time.Minute
)

// AppointmentFilter narrows List queries. Zero values mean "no filter".
type AppointmentFilter struct {
	DateFrom       string
	DateTo         string
	ProfessionalID string
	ProcedureID    string
	PatientName    string
	IsHospital     *bool
}

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create persists the appointment and its procedure junction rows in one
// transaction. The caller is expected to have filled the calculated
// snapshot fields already.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment, procedureIDs []string) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Professional", "Procedure", "PaymentMethod", "Procedures").
				Create(appointment).Error; err != nil {
				return fmt.Errorf("failed to create appointment: %w", err)
			}
			return replaceProcedureRows(tx, appointment.ID, procedureIDs)
		})
		if err != nil {
			return err
		}
		return r.invalidate(ctx, appointment.ID)
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.cacheKey(id)
	var cached models.Appointment
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := database.DB.
		Preload("Professional").
		Preload("Procedure").
		Preload("PaymentMethod").
		Preload("Procedures", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order")
		}).
		Preload("Procedures.Procedure").
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}
	return &appointment, nil
}

// List returns appointments matching the filter, newest first. List
// results are not cached; the filter space is too wide to invalidate.
func (r *AppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := database.DB.WithContext(ctx).
		Preload("Professional").
		Preload("Procedure").
		Preload("PaymentMethod").
		Preload("Procedures.Procedure")

	if filter.DateFrom != "" {
		query = query.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("date <= ?", filter.DateTo)
	}
	if filter.ProfessionalID != "" {
		query = query.Where("professional_id = ?", filter.ProfessionalID)
	}
	if filter.ProcedureID != "" {
		query = query.Where("procedure_id = ?", filter.ProcedureID)
	}
	if filter.PatientName != "" {
		query = query.Where("patient_name ILIKE ?", "%"+filter.PatientName+"%")
	}
	if filter.IsHospital != nil {
		query = query.Where("is_hospital = ?", *filter.IsHospital)
	}

	var appointments []models.Appointment
	if err := query.Order("date DESC, created_at DESC").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListAll returns every appointment oldest first with procedures
// preloaded. Used by the batch recalculation command, which needs a
// stable processing order.
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.WithContext(ctx).
		Preload("Procedures", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order")
		}).
		Order("date ASC, created_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment, procedureIDs []string) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit("Professional", "Procedure", "PaymentMethod", "Procedures").
				Save(appointment).Error; err != nil {
				return fmt.Errorf("failed to update appointment: %w", err)
			}
			return replaceProcedureRows(tx, appointment.ID, procedureIDs)
		})
		if err != nil {
			return err
		}
		return r.invalidate(ctx, appointment.ID)
	})
}

// UpdateSnapshot rewrites only the calculated fields. The batch
// recalculation command uses this so input columns are never touched.
func (r *AppointmentRepository) UpdateSnapshot(ctx context.Context, appointment *models.Appointment) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", appointment.ID), func() error {
		updates := map[string]interface{}{
			"card_fee_percentage":      appointment.CardFeePercentage,
			"card_fee_value":           appointment.CardFeeValue,
			"tax_percentage":           appointment.TaxPercentage,
			"tax_value":                appointment.TaxValue,
			"procedure_cost":           appointment.ProcedureCost,
			"total_procedure_cost":     appointment.TotalProcedureCost,
			"net_value":                appointment.NetValue,
			"bonus_value":              appointment.BonusValue,
			"professional_share":       appointment.ProfessionalShare,
			"final_value_owner":        appointment.FinalValueOwner,
			"final_value_professional": appointment.FinalValueProfessional,
		}
		if err := database.DB.Model(&models.Appointment{}).
			Where("id = ?", appointment.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update appointment snapshot: %w", err)
		}
		return r.invalidate(ctx, appointment.ID)
	})
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, fmt.Sprintf("appointment_lock:%s", id), func() error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&models.AppointmentProcedure{}, "appointment_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete appointment procedures: %w", err)
			}
			if err := tx.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to delete appointment: %w", err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		return r.invalidate(ctx, id)
	})
}

// replaceProcedureRows rewrites the junction rows so sequence order
// always matches the given slice. Row 0 is the primary procedure.
func replaceProcedureRows(tx *gorm.DB, appointmentID string, procedureIDs []string) error {
	if err := tx.Delete(&models.AppointmentProcedure{}, "appointment_id = ?", appointmentID).Error; err != nil {
		return fmt.Errorf("failed to clear appointment procedures: %w", err)
	}
	rows := make([]models.AppointmentProcedure, 0, len(procedureIDs))
	for i, procedureID := range procedureIDs {
		rows = append(rows, models.AppointmentProcedure{
			AppointmentID: appointmentID,
			ProcedureID:   procedureID,
			SequenceOrder: i,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create appointment procedures: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) invalidate(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, r.cacheKey(id))
}

func (r *AppointmentRepository) cacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}
