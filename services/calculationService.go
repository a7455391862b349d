package services

import (
	"ClinicSplit/calculations"
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"context"
	"fmt"
)

// CalculationService assembles the immutable input snapshot the
// calculation engine works on: reference entities, system settings and
// the active rule sets. The engine itself never touches storage.
type CalculationService struct {
	professionals *repositories.ProfessionalRepository
	procedures    *repositories.ProcedureRepository
	sources       *repositories.SourceRepository
	settings      *repositories.SettingRepository
	rules         *repositories.RuleRepository
}

func NewCalculationService(
	professionals *repositories.ProfessionalRepository,
	procedures *repositories.ProcedureRepository,
	sources *repositories.SourceRepository,
	settings *repositories.SettingRepository,
	rules *repositories.RuleRepository,
) *CalculationService {
	return &CalculationService{
		professionals: professionals,
		procedures:    procedures,
		sources:       sources,
		settings:      settings,
		rules:         rules,
	}
}

// CalculationRequest is the transient input for previews and appointment
// writes. A non-nil NetValueInput switches to the manual-net inverse.
type CalculationRequest struct {
	Date            string   `json:"date"`
	GrossValue      float64  `json:"gross_value"`
	NetValueInput   *float64 `json:"net_value_input"`
	PaymentMethodID string   `json:"payment_method_id"`
	SourceID        string   `json:"source_id"`
	IsHospital      bool     `json:"is_hospital"`
	ProfessionalID  string   `json:"professional_id"`
	ProcedureIDs    []string `json:"procedure_ids"`
}

// ReferenceData is everything date-independent a calculation needs,
// loaded once. The batch recalculation command reuses one snapshot for
// its whole run so every appointment sees the same rules.
type ReferenceData struct {
	Professionals          map[string]models.Professional
	Procedures             map[string]models.Procedure
	DefaultTaxPercentage   float64
	DefaultBonusPercentage float64
	OwnerProfessionalID    string
	BonusRules             []models.BonusRule
	SplitRules             []models.SplitRule
}

// LoadReferenceData fetches professionals, procedures, settings and the
// active rule sets, and resolves the owner professional.
func (s *CalculationService) LoadReferenceData(ctx context.Context) (*ReferenceData, error) {
	professionals, err := s.professionals.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load professionals: %w", err)
	}
	procedures, err := s.procedures.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load procedures: %w", err)
	}
	settings, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	bonusRules, err := s.rules.ActiveBonusRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bonus rules: %w", err)
	}
	splitRules, err := s.rules.ActiveSplitRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load split rules: %w", err)
	}

	defaultTax, err := s.settings.GetFloat(ctx, models.SettingDefaultTaxPercentage, 3)
	if err != nil {
		return nil, err
	}
	defaultBonus, err := s.settings.GetFloat(ctx, models.SettingBonusPercentage, 1.5)
	if err != nil {
		return nil, err
	}

	settingRows := make([]models.SystemSetting, 0, len(settings))
	for key, value := range settings {
		settingRows = append(settingRows, models.SystemSetting{Key: key, Value: value})
	}

	ref := &ReferenceData{
		Professionals:          make(map[string]models.Professional, len(professionals)),
		Procedures:             make(map[string]models.Procedure, len(procedures)),
		DefaultTaxPercentage:   defaultTax,
		DefaultBonusPercentage: defaultBonus,
		OwnerProfessionalID:    calculations.DetermineOwnerProfessionalID(professionals, settingRows),
		BonusRules:             bonusRules,
		SplitRules:             splitRules,
	}
	for _, p := range professionals {
		ref.Professionals[p.ID] = p
	}
	for _, p := range procedures {
		ref.Procedures[p.ID] = p
	}
	return ref, nil
}

// Calculate runs one calculation for a transient request, loading a
// fresh reference snapshot. Used by the preview endpoint.
func (s *CalculationService) Calculate(ctx context.Context, req CalculationRequest) (*calculations.CalculationResult, error) {
	ref, err := s.LoadReferenceData(ctx)
	if err != nil {
		return nil, err
	}

	professional, ok := ref.Professionals[req.ProfessionalID]
	if !ok {
		return nil, fmt.Errorf("professional %s not found", req.ProfessionalID)
	}

	procedures := make([]models.Procedure, 0, len(req.ProcedureIDs))
	for _, id := range req.ProcedureIDs {
		procedure, ok := ref.Procedures[id]
		if !ok {
			return nil, fmt.Errorf("procedure %s not found", id)
		}
		procedures = append(procedures, procedure)
	}
	if len(procedures) == 0 {
		return nil, fmt.Errorf("at least one procedure is required")
	}

	source, err := s.resolveSource(ctx, req.SourceID, req.IsHospital)
	if err != nil {
		return nil, err
	}

	cardFeeRules, err := s.rules.ActiveCardFeeRules(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load card fee rules: %w", err)
	}

	result := s.run(req.GrossValue, req.NetValueInput, req.PaymentMethodID,
		source, procedures, professional, cardFeeRules, ref)
	return &result, nil
}

// CalculateForAppointment recalculates a stored appointment against the
// given reference snapshot. The appointment's own fields are not
// modified; the caller decides what to do with the result.
func (s *CalculationService) CalculateForAppointment(ctx context.Context, appointment *models.Appointment, ref *ReferenceData) (*calculations.CalculationResult, error) {
	professional, ok := ref.Professionals[appointment.ProfessionalID]
	if !ok {
		return nil, fmt.Errorf("professional %s not found", appointment.ProfessionalID)
	}

	procedureIDs := AppointmentProcedureIDs(appointment)
	procedures := make([]models.Procedure, 0, len(procedureIDs))
	for _, id := range procedureIDs {
		procedure, ok := ref.Procedures[id]
		if !ok {
			return nil, fmt.Errorf("procedure %s not found", id)
		}
		procedures = append(procedures, procedure)
	}

	cardFeeRules, err := s.rules.ActiveCardFeeRules(ctx, appointment.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load card fee rules: %w", err)
	}

	source := models.Source{IsHospital: appointment.IsHospital}
	result := s.run(appointment.GrossValue, appointment.NetValueInput, appointment.PaymentMethodID,
		source, procedures, professional, cardFeeRules, ref)
	return &result, nil
}

// run dispatches between the forward pipeline and the manual-net inverse.
func (s *CalculationService) run(
	grossValue float64,
	netValueInput *float64,
	paymentMethodID string,
	source models.Source,
	procedures []models.Procedure,
	professional models.Professional,
	cardFeeRules []models.CardFeeRule,
	ref *ReferenceData,
) calculations.CalculationResult {
	if netValueInput != nil && *netValueInput > 0 {
		return calculations.ReconcileManualNet(calculations.ManualNetInput{
			AssertedNetValue:       *netValueInput,
			GrossValue:             grossValue,
			Procedures:             procedures,
			Professional:           professional,
			TaxPercentage:          calculations.ResolveTaxPercentage(source, ref.DefaultTaxPercentage),
			DefaultBonusPercentage: ref.DefaultBonusPercentage,
			BonusRules:             ref.BonusRules,
			SplitRules:             ref.SplitRules,
			OwnerProfessionalID:    ref.OwnerProfessionalID,
		})
	}
	return calculations.CalculateAppointmentMultiProcedure(calculations.MultiProcedureCalculationInput{
		GrossValue:             grossValue,
		PaymentMethodID:        paymentMethodID,
		Source:                 source,
		Procedures:             procedures,
		Professional:           professional,
		CardFeeRules:           cardFeeRules,
		DefaultTaxPercentage:   ref.DefaultTaxPercentage,
		DefaultBonusPercentage: ref.DefaultBonusPercentage,
		BonusRules:             ref.BonusRules,
		SplitRules:             ref.SplitRules,
		OwnerProfessionalID:    ref.OwnerProfessionalID,
	})
}

func (s *CalculationService) resolveSource(ctx context.Context, sourceID string, isHospital bool) (models.Source, error) {
	if sourceID == "" {
		return models.Source{IsHospital: isHospital}, nil
	}
	source, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return models.Source{}, fmt.Errorf("failed to load source: %w", err)
	}
	if source == nil {
		return models.Source{}, fmt.Errorf("source %s not found", sourceID)
	}
	return *source, nil
}

// AppointmentProcedureIDs lists the appointment's procedures in sequence
// order, falling back to the primary procedure column for rows written
// before the junction table existed.
func AppointmentProcedureIDs(appointment *models.Appointment) []string {
	if len(appointment.Procedures) == 0 {
		if appointment.ProcedureID == "" {
			return nil
		}
		return []string{appointment.ProcedureID}
	}
	ids := make([]string, 0, len(appointment.Procedures))
	for _, row := range appointment.Procedures {
		ids = append(ids, row.ProcedureID)
	}
	return ids
}
