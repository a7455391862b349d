package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type SourceHandler struct {
	service *services.SourceService
}

func NewSourceHandler(service *services.SourceService) *SourceHandler {
	return &SourceHandler{service: service}
}

func (h *SourceHandler) CreateSource(c *gin.Context) {
	var source models.Source
	if err := c.ShouldBindJSON(&source); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &source); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, source)
}

func (h *SourceHandler) GetSourceByID(c *gin.Context) {
	id := c.Param("id")
	source, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if source == nil {
		c.JSON(404, gin.H{"error": "Source not found"})
		return
	}
	c.JSON(200, source)
}

func (h *SourceHandler) GetAllSources(c *gin.Context) {
	sources, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sources)
}

func (h *SourceHandler) UpdateSource(c *gin.Context) {
	id := c.Param("id")
	var source models.Source
	if err := c.ShouldBindJSON(&source); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	source.ID = id
	if err := h.service.Update(c, &source); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, source)
}

func (h *SourceHandler) DeleteSource(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Source deleted"})
}
