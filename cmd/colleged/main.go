package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"backend-suite/internal/college"
	"backend-suite/internal/config"
	"backend-suite/internal/database"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().
		Timestamp().Str("app", "college").Logger()

	db, err := database.Open(cfg.College.DBPath, cfg.College.LogMode)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := database.MigrateCollege(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	r := college.Router(db, cfg.Auth, log)
	addr := fmt.Sprintf(":%d", cfg.College.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
