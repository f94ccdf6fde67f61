package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"devconnect/configs"
	"devconnect/database"
	"devconnect/internal/logging"
	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/routes"
	"devconnect/internal/token"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Connect(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("mongo connect failed")
	}
	defer database.Disconnect(client)
	logger.WithField("db", cfg.DBName).Info("connected to MongoDB")

	db := client.Database(cfg.DBName)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API Running")
	})

	routes.Register(app, routes.Deps{
		Users:    repository.NewMongoUserStore(db),
		Profiles: repository.NewMongoProfileStore(db),
		Posts:    repository.NewMongoPostStore(db),
		Tokens:   token.NewManager(cfg.JWTSecret, cfg.JWTTTL),
		Log:      logger,
	})

	logger.WithField("port", cfg.Port).Info("server started")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
