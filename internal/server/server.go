package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/eventora/platform/config"
	"github.com/eventora/platform/internal/billing"
	"github.com/eventora/platform/internal/handlers"
	"github.com/eventora/platform/internal/middleware"
	"github.com/eventora/platform/internal/ticketing"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db, cfg)

	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	ticketStore := ticketing.NewTicketStore(db)
	ticketService := ticketing.NewService(ticketStore)
	facade := ticketing.NewFacade(ticketStore)

	paymentStore := billing.NewPaymentStore(db)
	hasher := billing.NewCardHasher(cfg.CardHashSecret)
	paymentService := billing.NewService(paymentStore, hasher, facade)

	ticketHandler := handlers.NewTicketHandler(ticketService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	authHandler := handlers.NewAuthHandler(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)

		tickets := public.Group("/tickets")
		{
			tickets.POST("", ticketHandler.Create)
			tickets.GET("", ticketHandler.List)
			tickets.GET("/:id", ticketHandler.Get)
			tickets.GET("/:id/payment", ticketHandler.GetPayment)
		}

		public.POST("/payments", paymentHandler.Create)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.DELETE("/tickets/:id", ticketHandler.Delete)
	}
}
