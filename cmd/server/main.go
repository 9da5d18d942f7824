package main

import (
	"context"
	"log"
	"time"

	"bibtrade/internal/config"
	"bibtrade/internal/db"
	"bibtrade/internal/delivery/http/route"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// @title           bibtrade API
// @version         1.0
// @description     Peer-to-peer marketplace for transferring race bibs.
// @BasePath        /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Warning: mongo disconnect: %v", err)
		}
	}()

	app := gin.Default()
	route.SetupRoute(app, database, mongoClient)

	log.Printf("Server starting on %s", cfg.Addr)
	if err := app.Run(cfg.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
