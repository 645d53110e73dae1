package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskdeck/taskdeck/broker"
	"taskdeck/taskdeck/config"
	"taskdeck/taskdeck/database"
	"taskdeck/taskdeck/middleware"
	"taskdeck/taskdeck/repository"
	"taskdeck/taskdeck/routes"
	"taskdeck/taskdeck/scheduler"
	"taskdeck/taskdeck/services"
	"taskdeck/taskdeck/utils/token"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if cfg.SeedData {
		if err := database.Seed(db); err != nil {
			log.Printf("Warning: seeding failed: %v", err)
		}
	}

	// Broker connectivity is best effort: without NATS the API still runs,
	// it just stops emitting events.
	producer, err := broker.NewProducer(cfg.NatsURL)
	if err != nil {
		log.Printf("Warning: failed to connect to NATS at %s: %v", cfg.NatsURL, err)
		log.Println("The application will continue, but events and reminders will not be delivered")
		producer = nil
	} else {
		defer producer.Close()
	}

	webSocketService := services.NewWebSocketService(producer.Conn())
	webSocketService.Start()
	defer webSocketService.Stop()

	tokens := token.NewManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTAccessExpiration, cfg.JWTRefreshExpiration)

	userRepo := repository.NewGormUserRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	tagRepo := repository.NewGormTagRepository(db)
	taskRepo := repository.NewGormTaskRepository(db)

	authService := services.NewAuthService(userRepo, tokens, producer)
	userService := services.NewUserService(userRepo, producer)
	categoryService := services.NewCategoryService(categoryRepo, producer)
	tagService := services.NewTagService(tagRepo, producer)
	taskService := services.NewTaskService(taskRepo, categoryRepo, producer)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	authenticated := router.Group("/api")
	authenticated.Use(middleware.AuthMiddleware(tokens))

	routes.RegisterAuthRoutes(router, cfg, authService, userService, authenticated)
	routes.RegisterUserRoutes(authenticated, userService)
	routes.RegisterCategoryRoutes(authenticated, categoryService)
	routes.RegisterTagRoutes(authenticated, tagService)
	routes.RegisterTaskRoutes(authenticated, taskService)
	routes.RegisterWebSocketRoutes(authenticated, webSocketService)

	reminders := scheduler.NewReminderScheduler(db, producer, cfg.ReminderCron)
	if err := reminders.Start(); err != nil {
		log.Printf("Warning: failed to start reminder scheduler: %v", err)
	} else {
		defer reminders.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		reminders.Stop()
		webSocketService.Stop()
		if producer != nil {
			producer.Close()
		}
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
