package main

import (
	"log"

	"github.com/godownhub/marketplace/config"
	"github.com/godownhub/marketplace/internal/handler"
	"github.com/godownhub/marketplace/internal/middleware"
	"github.com/godownhub/marketplace/internal/notifier"
	"github.com/godownhub/marketplace/internal/repository"
	"github.com/godownhub/marketplace/internal/service"
	"github.com/godownhub/marketplace/internal/token"
	"github.com/godownhub/marketplace/pkg/database"
	"github.com/godownhub/marketplace/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ: owner->merchant messages go through the notifications exchange
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}
	notifier.NewWorker(notifier.NewLogMailer()).Start(msgs)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewBookingEventRepository(db)

	// Services
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := service.NewUserService(userRepo, issuer)
	promoter := service.NewPromoter(listingRepo, warehouseRepo)
	listingSvc := service.NewListingService(listingRepo, promoter)
	warehouseSvc := service.NewWarehouseService(warehouseRepo)
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo, warehouseRepo, notifier.NewQueueSender(publisher))

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "marketplace"})
	})

	authn := middleware.NewAuthenticator(issuer, userRepo)
	handler.NewAuthHandler(userSvc).RegisterRoutes(e, authn)
	handler.NewListingHandler(listingSvc).RegisterRoutes(e, authn)
	handler.NewWarehouseHandler(warehouseSvc).RegisterRoutes(e, authn)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, authn)
	handler.NewAdminHandler(userSvc, warehouseSvc, bookingSvc, promoter).RegisterRoutes(e, authn)

	log.Printf("Marketplace API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
