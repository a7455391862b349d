package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type PaymentMethodHandler struct {
	service *services.PaymentMethodService
}

func NewPaymentMethodHandler(service *services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{service: service}
}

func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &method); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, method)
}

func (h *PaymentMethodHandler) GetPaymentMethodByID(c *gin.Context) {
	id := c.Param("id")
	method, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if method == nil {
		c.JSON(404, gin.H{"error": "Payment method not found"})
		return
	}
	c.JSON(200, method)
}

func (h *PaymentMethodHandler) GetAllPaymentMethods(c *gin.Context) {
	methods, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, methods)
}

func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	id := c.Param("id")
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	method.ID = id
	if err := h.service.Update(c, &method); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, method)
}

// ReorderPaymentMethods accepts the full ordered list of IDs.
func (h *PaymentMethodHandler) ReorderPaymentMethods(c *gin.Context) {
	var payload struct {
		OrderedIDs []string `json:"ordered_ids"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if len(payload.OrderedIDs) == 0 {
		c.JSON(400, gin.H{"error": "ordered_ids must not be empty"})
		return
	}
	if err := h.service.Reorder(c, payload.OrderedIDs); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Payment methods reordered"})
}

func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Payment method deleted"})
}
