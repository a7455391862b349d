package routes

import (
	"ClinicSplit/cache"
	"ClinicSplit/config"
	"ClinicSplit/controllers"
	"ClinicSplit/handlers"
	"ClinicSplit/middlewares"
	"ClinicSplit/repositories"
	"ClinicSplit/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Middleware stack; origins and rate limits come from the environment.
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))
	router.Use(middlewares.CorsMiddleware(config.AllowedOrigins))
	router.Use(middlewares.RateLimiterMiddleware(config.RequestsPerSecond, config.RequestBurst))
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	professionalRepo := repositories.NewProfessionalRepository(cache)
	procedureRepo := repositories.NewProcedureRepository(cache)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(cache)
	sourceRepo := repositories.NewSourceRepository(cache)
	settingRepo := repositories.NewSettingRepository(cache)
	ruleRepo := repositories.NewRuleRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	transferRepo := repositories.NewTransferRepository(cache)
	expenseRepo := repositories.NewExpenseRepository(cache)

	calculationService := services.NewCalculationService(
		professionalRepo,
		procedureRepo,
		sourceRepo,
		settingRepo,
		ruleRepo,
	)
	appointmentService := services.NewAppointmentService(appointmentRepo, calculationService)

	professionalHandler := handlers.NewProfessionalHandler(services.NewProfessionalService(professionalRepo))
	procedureHandler := handlers.NewProcedureHandler(services.NewProcedureService(procedureRepo))
	paymentMethodHandler := handlers.NewPaymentMethodHandler(services.NewPaymentMethodService(paymentMethodRepo))
	sourceHandler := handlers.NewSourceHandler(services.NewSourceService(sourceRepo))
	settingHandler := handlers.NewSettingHandler(services.NewSettingService(settingRepo))
	ruleHandler := handlers.NewRuleHandler(services.NewRuleService(ruleRepo))
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	calculationHandler := handlers.NewCalculationHandler(calculationService)
	transferHandler := handlers.NewTransferHandler(services.NewTransferService(transferRepo))
	expenseHandler := handlers.NewExpenseHandler(services.NewExpenseService(expenseRepo, professionalRepo))

	// Register routes
	controllers.SetupReferenceRoutes(
		router,
		professionalHandler,
		procedureHandler,
		paymentMethodHandler,
		sourceHandler,
		settingHandler,
	)
	controllers.SetupRuleRoutes(router, ruleHandler)
	controllers.SetupAppointmentRoutes(router, appointmentHandler, calculationHandler, transferHandler)
	controllers.SetupExpenseRoutes(router, expenseHandler)

	controllers.SetupRootRoute(router)

	return router
}
