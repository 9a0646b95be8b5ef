package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lms/config"
	courseControllers "lms/controllers/course"
	"lms/database"
	"lms/progress"
	adminRoutes "lms/routers/adminRoutes"
	authRoutes "lms/routers/authRoutes"
	certificateRoutes "lms/routers/certificateRoutes"
	courseRoutes "lms/routers/courseRoutes"
	notificationRoutes "lms/routers/notificationRoutes"
	workshopRoutes "lms/routers/workshopRoutes"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Progress records can live in the database or a JSON file
	var repo progress.Repository
	if config.AppConfig.ProgressStore == "file" {
		repo = progress.NewFileRepository(config.AppConfig.ProgressFile)
		log.Printf("[PROGRESS] Using file store at %s", config.AppConfig.ProgressFile)
	} else {
		repo = database.NewProgressRepository(database.Database.Db)
		log.Println("[PROGRESS] Using database store")
	}

	store := progress.NewStore(repo)
	flusher := progress.NewFlusher(store, time.Duration(config.AppConfig.WatchFlushInterval)*time.Second)
	flusher.Start()

	courseControllers.Progress = store
	courseControllers.Watch = flusher

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	workshopRoutes.SetupWorkshopRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeWorkshopScheduler()

	// Flush buffered watch progress before the process exits
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	flusher.Stop()
}
