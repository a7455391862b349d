package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type ProfessionalHandler struct {
	service *services.ProfessionalService
}

func NewProfessionalHandler(service *services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{service: service}
}

func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var professional models.Professional
	if err := c.ShouldBindJSON(&professional); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &professional); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, professional)
}

func (h *ProfessionalHandler) GetProfessionalByID(c *gin.Context) {
	id := c.Param("id")
	professional, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if professional == nil {
		c.JSON(404, gin.H{"error": "Professional not found"})
		return
	}
	c.JSON(200, professional)
}

func (h *ProfessionalHandler) GetAllProfessionals(c *gin.Context) {
	if c.Query("active") == "true" {
		professionals, err := h.service.GetActive(c)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, professionals)
		return
	}
	professionals, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, professionals)
}

func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	id := c.Param("id")
	var professional models.Professional
	if err := c.ShouldBindJSON(&professional); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	professional.ID = id
	if err := h.service.Update(c, &professional); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, professional)
}

func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Professional deleted"})
}
