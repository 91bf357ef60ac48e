package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/LocalizaAeServices/rental-api/internal/audit"
	"github.com/LocalizaAeServices/rental-api/internal/cache"
	"github.com/LocalizaAeServices/rental-api/internal/config"
	"github.com/LocalizaAeServices/rental-api/internal/handlers"
	infraRepo "github.com/LocalizaAeServices/rental-api/internal/infra/repository"
	"github.com/LocalizaAeServices/rental-api/internal/middleware"
	"github.com/LocalizaAeServices/rental-api/internal/policy"
	"github.com/LocalizaAeServices/rental-api/internal/storage"
	ucReport "github.com/LocalizaAeServices/rental-api/internal/usecase/report"
	ucReservation "github.com/LocalizaAeServices/rental-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rentalRepo := infraRepo.NewRentalGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalogCache := cache.NewCatalog(cfg.RedisAddr)
	uploader := storage.NewS3Uploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		rentalRepo,
		auditDispatcher,
	)

	setReservationStatusUC := ucReservation.NewSetReservationStatus(
		rentalRepo,
		auditDispatcher,
	)

	summarizeUC := ucReport.NewSummarize(rentalRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	categoryHandler := handlers.NewCategoryHandler(db, catalogCache, uploader)
	clientHandler := handlers.NewClientHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		setReservationStatusUC,
	)

	reportHandler := handlers.NewReportHandler(summarizeUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/categories", categoryHandler.List)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PATCH("/clients/:id/status", clientHandler.SetStatus)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/reservations", reservationHandler.List)
			secured.POST("/reservations", reservationHandler.Create)
			secured.PATCH("/reservations/:id/status", reservationHandler.SetStatus)

			secured.GET("/reports/summary", reportHandler.Summary)

			// ------------------------------
			// GERENTE
			// ------------------------------
			secured.POST("/users",
				middleware.Require(policy.Role.CanRegisterUsers),
				authHandler.RegisterUser)

			secured.PUT("/categories/:id/image",
				middleware.Require(policy.Role.CanManageCatalog),
				categoryHandler.UploadImage)

			secured.GET("/audit-logs",
				middleware.Require(policy.Role.CanViewAuditLogs),
				auditLogsHandler.List)
		}
	}
}
