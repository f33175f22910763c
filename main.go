package main

import (
	"log"
	"os"
	"strconv"

	"concurseiro/config"
	"concurseiro/db"
	"concurseiro/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Get(configPath)

	// o arquivo de config alimenta os envs lidos pelos controllers,
	// sem sobrescrever o que já veio do ambiente
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", cfg.Security.JwtSecret)
	}
	if os.Getenv("TOKEN_VALIDITY_HOURS") == "" {
		os.Setenv("TOKEN_VALIDITY_HOURS", strconv.Itoa(cfg.Security.TokenValidityHours))
	}

	db.SetConfigurations(cfg)
	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	r := gin.Default()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Concurseiro listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
