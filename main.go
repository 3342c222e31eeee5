package main

import (
	"edule/config"
	"edule/database"
	adminRoutes "edule/routers/adminRoutes"
	authRoutes "edule/routers/authRoutes"
	blogRoutes "edule/routers/blogRoutes"
	contactRoutes "edule/routers/contactRoutes"
	courseRoutes "edule/routers/courseRoutes"
	"edule/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	utils.InitializeBackupScheduler()

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

	// Serve the storefront from the public folder
	app.Static("/", "./public")

	courseRoutes.SetupCourseRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
