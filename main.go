package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxesalon/config"
	"luxesalon/cron"
	"luxesalon/database"
	"luxesalon/database/memory"
	"luxesalon/database/mongostore"
	"luxesalon/database/redisstore"
	"luxesalon/handlers"
	"luxesalon/middleware"
	"luxesalon/routes"
	"luxesalon/services/booking"
	"luxesalon/services/catalog"
	"luxesalon/services/notification"
	"luxesalon/services/reservation"
	"luxesalon/services/tasks"
	"luxesalon/services/user"
	"luxesalon/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.AppConfig.RedisAddr != "" {
		utils.InitRedis()
	}

	// Blob store: MongoDB when configured, Redis as the lighter fallback,
	// in-memory last.
	var store database.BlobStore
	switch {
	case config.AppConfig.DatabaseURL != "":
		database.InitDB()
		store = mongostore.NewStore(database.MongoClient.Database("luxesalon"))
	case config.AppConfig.RedisAddr != "":
		store = redisstore.NewStore(utils.GetCacheClient())
	default:
		logger.Warn("no DATABASE_URL or REDIS_ADDR configured, using in-memory store")
		store = memory.NewStore()
	}

	// Session store: Redis when configured, in-memory otherwise.
	var sessions booking.SessionStore
	if config.AppConfig.RedisAddr != "" {
		sessions = booking.NewRedisSessionStore(utils.GetCacheClient())
	} else {
		logger.Warn("no REDIS_ADDR configured, using in-memory session store")
		sessions = booking.NewMemorySessionStore()
	}

	// Notification sinks: the in-memory feed always, Kafka when configured.
	feed := notification.NewDefaultSink()
	var sink notification.Sink = feed
	if len(config.AppConfig.KafkaBrokers) > 0 {
		kafkaSink, err := notification.NewKafkaSink(config.AppConfig.KafkaBrokers, config.AppConfig.KafkaTopic)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize kafka sink: %v", err)
		}
		defer kafkaSink.Close()
		sink = notification.NewFanoutSink(feed, kafkaSink)
	}

	// Services.
	catalogService := catalog.NewSeededCatalogService()
	reservationService := &reservation.DefaultReservationService{
		Store: store,
		Sink:  sink,
	}
	if err := reservationService.Load(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to load reservations: %v", err)
	}
	if err := reservationService.MarkCompleted(context.Background(), time.Now()); err != nil {
		logger.Sugar().Warnf("main: failed to mark past reservations completed: %v", err)
	}

	bookingService := booking.NewDefaultBookingSessionService(catalogService, sessions, reservationService)
	if config.AppConfig.RedisAddr != "" {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer asynqClient.Close()
		bookingService.Reminders = tasks.NewAsynqReminderScheduler(asynqClient)
		cron.InitReminderWorker(sink)
	}

	userService := user.NewDefaultUserService(store)

	// Router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Catalog:       handlers.NewCatalogHandler(catalogService),
		Booking:       handlers.NewBookingHandler(bookingService, logger),
		Reservations:  handlers.NewReservationHandler(reservationService),
		Notifications: handlers.NewNotificationHandler(feed),
		Users:         handlers.NewUserHandler(userService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
