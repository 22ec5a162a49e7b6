package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"backend-suite/internal/clinic"
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
		Timestamp().Str("app", "clinic").Logger()

	db, err := database.Open(cfg.Clinic.DBPath, cfg.Clinic.LogMode)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	if err := database.MigrateClinic(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	r := clinic.Router(db, log)
	addr := fmt.Sprintf(":%d", cfg.Clinic.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
