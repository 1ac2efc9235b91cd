package main

import (
	"siparhanud-backend/config"
	"siparhanud-backend/internal/database"
	"siparhanud-backend/internal/logger"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path file konfigurasi YAML (opsional)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info").Fatal(err, "Konfigurasi tidak valid")
	}
	log := logger.New(cfg.LogLevel).With("cmd", "seeder")

	log.Info("Memulai database seeding")

	// ConnectDB sekaligus menjalankan AutoMigrate
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err, "Koneksi database gagal")
	}

	if err := database.SeedAll(db, log); err != nil {
		log.Fatal(err, "Seeding gagal")
	}
}
