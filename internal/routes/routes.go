package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agendabi/bi-scheduler/internal/audit"
	"github.com/agendabi/bi-scheduler/internal/cache"
	"github.com/agendabi/bi-scheduler/internal/config"
	domain "github.com/agendabi/bi-scheduler/internal/domain/appointment"
	"github.com/agendabi/bi-scheduler/internal/handlers"
	infraRepo "github.com/agendabi/bi-scheduler/internal/infra/repository"
	"github.com/agendabi/bi-scheduler/internal/middleware"
	ucAppointment "github.com/agendabi/bi-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store cache.Cache,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	slots := domain.DefaultSlotConfig()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	checkAvailabilityUC := ucAppointment.NewCheckAvailability(appointmentRepo)

	dayAvailabilityUC := ucAppointment.NewDayAvailability(appointmentRepo, slots)

	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		slots,
		auditDispatcher,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucAppointment.NewCancelBooking(
		appointmentRepo,
		auditDispatcher,
	)

	purgeUC := ucAppointment.NewPurgeAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, store)
	postoHandler := handlers.NewPostoHandler(db, store)

	appointmentHandler := handlers.NewAppointmentHandler(
		checkAvailabilityUC,
		dayAvailabilityUC,
		createBookingUC,
		setStatusUC,
		cancelBookingUC,
		purgeUC,
		listUC,
	)

	statsHandler := handlers.NewStatsHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO (catálogo + disponibilidade)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/postos", postoHandler.List)
		api.GET("/postos/:id", postoHandler.Get)

		api.GET("/availability", appointmentHandler.Availability)
		api.GET("/availability/day", appointmentHandler.DayAvailability)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTENTICADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// FUNCIONÁRIO
			// ------------------------------
			employee := secured.Group("/employee")
			employee.Use(middleware.RequireRole(domain.RoleEmployee, domain.RoleAdmin))
			{
				employee.GET("/appointments", appointmentHandler.ListForPosto)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(domain.RoleAdmin))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/postos", postoHandler.Create)
				admin.PATCH("/postos/:id", postoHandler.Update)
				admin.DELETE("/postos/:id", postoHandler.Delete)

				admin.DELETE("/appointments/:id", appointmentHandler.Purge)

				admin.GET("/stats", statsHandler.Get)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
