package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"openbook/internal/config"
	"openbook/internal/dbmongo"
	"openbook/internal/media"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	mediaServer := media.NewHTTPServer(dbmongo.NewImageStorage(mongoClient))

	addr := fmt.Sprintf(":%s", cfg.Server.MediaPort)
	log.Printf("Media server starting on %s", addr)
	log.Printf("Serving images at: %s{fileId}", cfg.Server.MediaBaseURL)

	if err := http.ListenAndServe(addr, mediaServer); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
