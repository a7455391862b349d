package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	service *services.TransferService
}

func NewTransferHandler(service *services.TransferService) *TransferHandler {
	return &TransferHandler{service: service}
}

func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var transfer models.Transfer
	if err := c.ShouldBindJSON(&transfer); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if transfer.PeriodStart == "" || transfer.PeriodEnd == "" {
		c.JSON(400, gin.H{"error": "period_start and period_end are required"})
		return
	}
	if err := h.service.CreateTransferForPeriod(c, &transfer); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, transfer)
}

func (h *TransferHandler) GetTransferByID(c *gin.Context) {
	id := c.Param("id")
	transfer, err := h.service.GetTransferByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if transfer == nil {
		c.JSON(404, gin.H{"error": "Transfer not found"})
		return
	}
	c.JSON(200, transfer)
}

func (h *TransferHandler) GetAllTransfers(c *gin.Context) {
	transfers, err := h.service.ListTransfers(c, c.Query("professional_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, transfers)
}

func (h *TransferHandler) MarkTransferPaid(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.MarkTransferPaid(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Transfer marked as paid"})
}

func (h *TransferHandler) DeleteTransfer(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteTransfer(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Transfer deleted"})
}

func (h *TransferHandler) CreateBonusPayment(c *gin.Context) {
	var payment models.BonusPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if payment.PeriodStart == "" || payment.PeriodEnd == "" {
		c.JSON(400, gin.H{"error": "period_start and period_end are required"})
		return
	}
	if err := h.service.CreateBonusPaymentForPeriod(c, &payment); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, payment)
}

func (h *TransferHandler) GetAllBonusPayments(c *gin.Context) {
	payments, err := h.service.ListBonusPayments(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, payments)
}

func (h *TransferHandler) MarkBonusPaymentPaid(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.MarkBonusPaymentPaid(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Bonus payment marked as paid"})
}

func (h *TransferHandler) DeleteBonusPayment(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteBonusPayment(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Bonus payment deleted"})
}
