package services

import (
	"ClinicSplit/calculations"
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
	"fmt"
)

// AppointmentService freezes a calculation snapshot into every
// appointment it writes. Stored snapshots are only rewritten here or by
// the batch recalculation command.
type AppointmentService struct {
	repository  *repositories.AppointmentRepository
	calculation *CalculationService
}

func NewAppointmentService(repository *repositories.AppointmentRepository, calculation *CalculationService) *AppointmentService {
	return &AppointmentService{repository: repository, calculation: calculation}
}

// Create calculates the appointment's breakdown and persists both the
// row and its procedure junction rows.
func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment, procedureIDs []string) error {
	if err := s.applySnapshot(ctx, appointment, procedureIDs); err != nil {
		return err
	}
	return s.repository.Create(ctx, appointment, procedureIDs)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) List(ctx context.Context, filter repositories.AppointmentFilter) ([]models.Appointment, error) {
	return s.repository.List(ctx, filter)
}

// Update recalculates from the updated inputs before saving. Snapshots
// never go stale relative to their own row's inputs.
func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment, procedureIDs []string) error {
	if err := s.applySnapshot(ctx, appointment, procedureIDs); err != nil {
		return err
	}
	return s.repository.Update(ctx, appointment, procedureIDs)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *AppointmentService) applySnapshot(ctx context.Context, appointment *models.Appointment, procedureIDs []string) error {
	if len(procedureIDs) == 0 {
		return fmt.Errorf("at least one procedure is required")
	}
	appointment.ProcedureID = procedureIDs[0]

	req := CalculationRequest{
		Date:            appointment.Date,
		GrossValue:      appointment.GrossValue,
		NetValueInput:   appointment.NetValueInput,
		PaymentMethodID: appointment.PaymentMethodID,
		IsHospital:      appointment.IsHospital,
		ProfessionalID:  appointment.ProfessionalID,
		ProcedureIDs:    procedureIDs,
	}
	result, err := s.calculation.Calculate(ctx, req)
	if err != nil {
		return err
	}

	ApplyResult(appointment, result)
	return nil
}

// ApplyResult copies the calculated breakdown into the appointment's
// snapshot columns.
func ApplyResult(appointment *models.Appointment, result *calculations.CalculationResult) {
	appointment.CardFeePercentage = result.CardFeePercentage
	appointment.CardFeeValue = result.CardFeeValue
	appointment.TaxPercentage = result.TaxPercentage
	appointment.TaxValue = result.TaxValue
	appointment.ProcedureCost = result.ProcedureCost
	appointment.TotalProcedureCost = result.TotalProcedureCost
	appointment.NetValue = result.NetValue
	appointment.BonusValue = result.BonusValue
	appointment.ProfessionalShare = result.ProfessionalShare
	appointment.FinalValueOwner = result.FinalValueOwner
	appointment.FinalValueProfessional = result.FinalValueProfessional
}
