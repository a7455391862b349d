package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// appointmentPayload is the write shape: appointment inputs plus the
// ordered procedure list. Calculated fields in the payload are ignored;
// the service recomputes them.
type appointmentPayload struct {
	models.Appointment
	ProcedureIDs []string `json:"procedure_ids"`
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload appointmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(payload.ProcedureIDs) == 0 && payload.Appointment.ProcedureID != "" {
		payload.ProcedureIDs = []string{payload.Appointment.ProcedureID}
	}
	if err := h.service.Create(c, &payload.Appointment, payload.ProcedureIDs); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, payload.Appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	id := c.Param("id")
	appointment, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	filter := repositories.AppointmentFilter{
		DateFrom:       c.Query("date_from"),
		DateTo:         c.Query("date_to"),
		ProfessionalID: c.Query("professional_id"),
		ProcedureID:    c.Query("procedure_id"),
		PatientName:    c.Query("patient_name"),
	}
	if raw := c.Query("is_hospital"); raw != "" {
		isHospital := raw == "true"
		filter.IsHospital = &isHospital
	}
	appointments, err := h.service.List(c, filter)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id := c.Param("id")
	var payload appointmentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	payload.Appointment.ID = id
	if len(payload.ProcedureIDs) == 0 && payload.Appointment.ProcedureID != "" {
		payload.ProcedureIDs = []string{payload.Appointment.ProcedureID}
	}
	if err := h.service.Update(c, &payload.Appointment, payload.ProcedureIDs); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, payload.Appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
