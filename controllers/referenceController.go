package controllers

import (
	"ClinicSplit/handlers"

	"github.com/gin-gonic/gin"
)

// SetupReferenceRoutes registers the reference-data CRUD routes:
// professionals, procedures, payment methods, sources and settings.
func SetupReferenceRoutes(
	router *gin.Engine,
	professionalHandler *handlers.ProfessionalHandler,
	procedureHandler *handlers.ProcedureHandler,
	paymentMethodHandler *handlers.PaymentMethodHandler,
	sourceHandler *handlers.SourceHandler,
	settingHandler *handlers.SettingHandler,
) {
	router.POST("/professionals", professionalHandler.CreateProfessional)
	router.GET("/professionals/:id", professionalHandler.GetProfessionalByID)
	router.PUT("/professionals/:id", professionalHandler.UpdateProfessional)
	router.DELETE("/professionals/:id", professionalHandler.DeleteProfessional)
	router.GET("/professionals", professionalHandler.GetAllProfessionals)

	router.POST("/procedures", procedureHandler.CreateProcedure)
	router.GET("/procedures/:id", procedureHandler.GetProcedureByID)
	router.PUT("/procedures/:id", procedureHandler.UpdateProcedure)
	router.DELETE("/procedures/:id", procedureHandler.DeleteProcedure)
	router.GET("/procedures", procedureHandler.GetAllProcedures)

	router.POST("/payment_methods", paymentMethodHandler.CreatePaymentMethod)
	router.GET("/payment_methods/:id", paymentMethodHandler.GetPaymentMethodByID)
	router.PUT("/payment_methods/:id", paymentMethodHandler.UpdatePaymentMethod)
	router.PUT("/payment_methods", paymentMethodHandler.ReorderPaymentMethods)
	router.DELETE("/payment_methods/:id", paymentMethodHandler.DeletePaymentMethod)
	router.GET("/payment_methods", paymentMethodHandler.GetAllPaymentMethods)

	router.POST("/sources", sourceHandler.CreateSource)
	router.GET("/sources/:id", sourceHandler.GetSourceByID)
	router.PUT("/sources/:id", sourceHandler.UpdateSource)
	router.DELETE("/sources/:id", sourceHandler.DeleteSource)
	router.GET("/sources", sourceHandler.GetAllSources)

	router.GET("/settings", settingHandler.GetAllSettings)
	router.PUT("/settings/:key", settingHandler.UpdateSetting)
}
