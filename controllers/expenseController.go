package controllers

import (
	"ClinicSplit/handlers"

	"github.com/gin-gonic/gin"
)

// SetupExpenseRoutes registers the expense CRUD routes and the
// per-period expense summaries.
func SetupExpenseRoutes(router *gin.Engine, expenseHandler *handlers.ExpenseHandler) {
	router.POST("/expenses", expenseHandler.CreateExpense)
	router.GET("/expenses", expenseHandler.GetAllExpenses)
	router.GET("/expenses/summary", expenseHandler.GetExpenseSummary)
	router.GET("/expenses/:id", expenseHandler.GetExpenseByID)
	router.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	router.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	router.GET("/professionals/:id/expenses", expenseHandler.GetProfessionalExpenses)
}
