package handlers

import (
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type CalculationHandler struct {
	service *services.CalculationService
}

func NewCalculationHandler(service *services.CalculationService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

// PreviewCalculation runs the full breakdown for a prospective
// appointment without persisting anything.
func (h *CalculationHandler) PreviewCalculation(c *gin.Context) {
	var req services.CalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if req.GrossValue < 0 {
		c.JSON(400, gin.H{"error": "gross_value must not be negative"})
		return
	}
	if len(req.ProcedureIDs) == 0 {
		c.JSON(400, gin.H{"error": "procedure_ids must not be empty"})
		return
	}
	result, err := h.service.Calculate(c, req)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}
