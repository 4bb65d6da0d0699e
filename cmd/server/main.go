package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"catalog/internal/auth"
	"catalog/internal/config"
	mydb "catalog/internal/db"
	"catalog/internal/handlers"
	"catalog/internal/models"
)

func main() {
	// .env from the current dir, the parent, and the repo root (covers
	// running from cmd/server).
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := config.Load()

	db := mydb.MustOpen(cfg.DBPath)
	if err := db.AutoMigrate(&models.Seller{}, &models.Product{}); err != nil {
		log.Fatal(err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	tokens, err := auth.NewTokenService(auth.Config{
		Secret:    cfg.JWTSecret,
		Algorithm: cfg.JWTAlgorithm,
		TTL:       cfg.TokenTTL,
	})
	if err != nil {
		log.Fatal(err)
	}

	r := gin.Default()
	handlers.New(db, tokens).Routes(r)

	log.Println("Server listening on :" + cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
