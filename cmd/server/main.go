package main

import (
	"context"
	"log"

	"museum-ticketing/config"
	"museum-ticketing/internal/cache"
	"museum-ticketing/internal/database"
	"museum-ticketing/internal/handler"
	"museum-ticketing/internal/mail"
	"museum-ticketing/internal/queue"
	"museum-ticketing/internal/repository"
	"museum-ticketing/internal/service"
	"museum-ticketing/internal/ticket"
	"museum-ticketing/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	// repositories
	museumRepo := repository.NewMuseumRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)

	// hold store and notification queue
	holdStore := cache.NewRedisHoldStore(rdb, cfg.Booking.HoldTTL)
	notifyQueue, err := queue.NewRedisStreamNotificationQueue(rdb, "", nil)
	if err != nil {
		log.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// services
	capacityService := service.NewCapacityService(museumRepo, bookingRepo)
	bookingService := service.NewBookingService(pool, museumRepo, bookingRepo, capacityService, holdStore, notifyQueue)
	reviewService := service.NewReviewService(museumRepo, bookingRepo, reviewRepo)
	museumService := service.NewMuseumService(museumRepo, bookingRepo, reviewRepo)

	// 出票 worker：提交後的出票與寄信都在這裡，不佔用確認路徑
	renderer := ticket.NewTextRenderer()
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	notificationWorker := worker.NewNotificationWorker(bookingRepo, notifyQueue, renderer, mailer, cfg.Booking.NotifyTimeout)
	if err := notificationWorker.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewBookingHandler(bookingService, capacityService).RegisterRoutes(router)
	handler.NewMuseumHandler(museumService).RegisterRoutes(router)
	handler.NewReviewHandler(reviewService).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
