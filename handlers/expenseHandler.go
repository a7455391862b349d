package handlers

import (
	"ClinicSplit/models"
	"ClinicSplit/services"
	"ClinicSplit/utils"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	service *services.ExpenseService
}

func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateExpense(expense); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &expense); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, expense)
}

func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	id := c.Param("id")
	expense, err := h.service.GetByID(c, id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if expense == nil {
		c.JSON(404, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(200, expense)
}

func (h *ExpenseHandler) GetAllExpenses(c *gin.Context) {
	expenses, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, expenses)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	var expense models.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	expense.ID = id
	if err := utils.ValidateExpense(expense); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Update(c, &expense); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c, id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Expense deleted"})
}

// GetProfessionalExpenses returns one professional's expense shares for
// the period given by the start and end query parameters.
func (h *ExpenseHandler) GetProfessionalExpenses(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(400, gin.H{"error": "start and end query parameters are required"})
		return
	}
	result, err := h.service.ProfessionalExpenses(c, c.Param("id"), start, end)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}

// GetExpenseSummary returns every active professional's expense shares
// for the period given by the start and end query parameters.
func (h *ExpenseHandler) GetExpenseSummary(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start == "" || end == "" {
		c.JSON(400, gin.H{"error": "start and end query parameters are required"})
		return
	}
	result, err := h.service.AllProfessionalsExpenses(c, start, end)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, result)
}
