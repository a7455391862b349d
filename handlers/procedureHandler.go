package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type ProcedureHandler struct {
	service *services.ProcedureService
}

func NewProcedureHandler(service *services.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	var procedure models.Procedure
	if err := c.ShouldBindJSON(&procedure); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &procedure); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, procedure)
}

func (h *ProcedureHandler) GetProcedureByID(c *gin.Context) {
	id := c.Param("id")
	procedure, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if procedure == nil {
		c.JSON(404, gin.H{"error": "Procedure not found"})
		return
	}
	c.JSON(200, procedure)
}

func (h *ProcedureHandler) GetAllProcedures(c *gin.Context) {
	if c.Query("active") == "true" {
		procedures, err := h.service.GetActive(c)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, procedures)
		return
	}
	procedures, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, procedures)
}

func (h *ProcedureHandler) UpdateProcedure(c *gin.Context) {
	id := c.Param("id")
	var procedure models.Procedure
	if err := c.ShouldBindJSON(&procedure); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	procedure.ID = id
	if err := h.service.Update(c, &procedure); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, procedure)
}

func (h *ProcedureHandler) DeleteProcedure(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Procedure deleted"})
}
