package controllers

import (
	"ClinicSplit/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAppointmentRoutes registers appointments, the calculation preview
// and the payout ledgers.
func SetupAppointmentRoutes(
	router *gin.Engine,
	appointmentHandler *handlers.AppointmentHandler,
	calculationHandler *handlers.CalculationHandler,
	transferHandler *handlers.TransferHandler,
) {
	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments/:id", appointmentHandler.GetAppointmentByID)
	router.PUT("/appointments/:id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:id", appointmentHandler.DeleteAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)

	router.POST("/calculations/preview", calculationHandler.PreviewCalculation)

	router.POST("/transfers", transferHandler.CreateTransfer)
	router.GET("/transfers/:id", transferHandler.GetTransferByID)
	router.PUT("/transfers/:id/paid", transferHandler.MarkTransferPaid)
	router.DELETE("/transfers/:id", transferHandler.DeleteTransfer)
	router.GET("/transfers", transferHandler.GetAllTransfers)

	router.POST("/bonus_payments", transferHandler.CreateBonusPayment)
	router.PUT("/bonus_payments/:id/paid", transferHandler.MarkBonusPaymentPaid)
	router.DELETE("/bonus_payments/:id", transferHandler.DeleteBonusPayment)
	router.GET("/bonus_payments", transferHandler.GetAllBonusPayments)
}
