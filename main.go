package main

import (
	"fmt"

	"github.com/kasiam87/eCommerceApp/configs"
	"github.com/kasiam87/eCommerceApp/middlewares"
	"github.com/kasiam87/eCommerceApp/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedItems {
		if err := configs.SeedItems(); err != nil {
			log.Fatal().Err(err).Msg("seed items failed")
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
