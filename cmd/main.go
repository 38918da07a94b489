package main

import (
	"log"
	"os"

	"github.com/abdulh21/TourVista/internal/db"
	"github.com/abdulh21/TourVista/internal/handlers"
	"github.com/abdulh21/TourVista/internal/middleware"
	"github.com/abdulh21/TourVista/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()
	// Initialize MinIO
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Get MongoDB URI from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/tourvista" // Default fallback
	}

	// Connect to MongoDB
	db.ConnectMongoDB(mongoURI, "tourvista")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to TourVista API")
	})

	// User Routes
	users := app.Group("/users")
	users.Post("/signup", handlers.SignupHandler)
	users.Post("/signin", handlers.SigninHandler)

	// Tour Routes
	tour := app.Group("/tour")
	tour.Post("/", middleware.AuthMiddleware, handlers.CreateTourHandler)
	tour.Get("/", handlers.GetToursHandler)
	tour.Get("/search", handlers.SearchToursHandler)
	tour.Get("/tag/:tag", handlers.GetToursByTagHandler)
	tour.Get("/category/:category", handlers.GetToursByCategoryHandler)
	tour.Get("/user/:id", handlers.GetToursByUserHandler)
	tour.Post("/related", handlers.GetRelatedToursHandler)
	tour.Post("/image", middleware.AuthMiddleware, handlers.UploadTourImageHandler)
	tour.Patch("/like/:id", middleware.AuthMiddleware, handlers.LikeTourHandler)
	tour.Get("/:id", handlers.GetTourHandler)
	tour.Patch("/:id", handlers.UpdateTourHandler)
	tour.Delete("/:id", handlers.DeleteTourHandler)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
