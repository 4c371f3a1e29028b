package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/samuelgomeslima/aibarber-sub001/internal/assistant"
	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	"github.com/samuelgomeslima/aibarber-sub001/internal/config"
	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/handlers"
	infraRepo "github.com/samuelgomeslima/aibarber-sub001/internal/infra/repository"
	"github.com/samuelgomeslima/aibarber-sub001/internal/middleware"
	"github.com/samuelgomeslima/aibarber-sub001/internal/storage"
	ucBooking "github.com/samuelgomeslima/aibarber-sub001/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingStore := infraRepo.NewBookingGormStore(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clock := domain.SystemClock{}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	aiClient := assistant.NewClient(cfg)
	aiQuota := assistant.NewQuota(rdb, cfg.AssistantQuota)

	imageStore := storage.NewImageStore(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingStore, clock)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingStore,
		auditDispatcher,
		clock,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingStore,
		auditDispatcher,
		clock,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingStore,
		auditDispatcher,
		clock,
	)

	repeatBookingUC := ucBooking.NewRepeatBooking(
		createBookingUC,
		bookingStore,
	)

	listBookingsByDateUC := ucBooking.NewListBookingsByDate(bookingStore)
	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(bookingStore)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, imageStore)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	saleHandler := handlers.NewSaleHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		cancelBookingUC,
		confirmBookingUC,
		repeatBookingUC,
		listBookingsByDateUC,
		listBookingsByMonthUC,
	)

	assistantHandler := handlers.NewAssistantHandler(
		db,
		aiClient,
		aiQuota,
		auditDispatcher,
		clock,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createBookingUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.AvailabilityForClient)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.POST("/me/services/:id/image", serviceHandler.UploadImage)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/availability", bookingHandler.GetAvailability)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.POST("/me/bookings/repeat", bookingHandler.Repeat)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)

			// ------------------------------
			// CAIXA
			// ------------------------------
			secured.POST("/me/sales", saleHandler.Create)
			secured.GET("/me/sales/summary", saleHandler.DailySummary)

			// ------------------------------
			// ASSISTENTE
			// ------------------------------
			secured.POST("/me/assistant/chat", assistantHandler.Chat)
			secured.GET("/me/assistant/quota", assistantHandler.Remaining)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
