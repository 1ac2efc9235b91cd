package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"siparhanud-backend/config"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/routes"
	"siparhanud-backend/internal/server"
	"siparhanud-backend/internal/storage"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path file konfigurasi YAML (opsional)")
	addr := pflag.String("addr", "", "alamat listen HTTP, menimpa HTTP_ADDR")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New("info").Fatal(err, "Konfigurasi tidak valid")
	}
	if *addr != "" {
		cfg.HTTPAddr = *addr
	}

	log := logger.New(cfg.LogLevel)
	log.Infof("Memulai SIPARHANUD API (env=%s)", cfg.Env)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err, "Koneksi database gagal")
	}
	log.Infof("Database %s terhubung", cfg.DBDriver)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal(err, "Storage dokumen tidak dapat dibuka")
	}

	auditLog := audit.NewLogger(repository.NewAuditRepository(db), log)
	if cfg.AMQPURL != "" {
		sink, err := audit.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			// broker opsional, audit tetap tersimpan di database
			log.Error(err, "Koneksi AMQP gagal, audit hanya ditulis ke database")
		} else {
			defer sink.Close()
			auditLog.WithSink(sink)
		}
	}
	if err := auditLog.Start(cfg.AuditRetrySpec); err != nil {
		log.Fatal(err, "Jadwal retry audit tidak valid")
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	guard := auth.NewGuard(tokens, repository.NewUserRepository(db))

	app := server.New(&routes.Dependencies{
		DB:     db,
		Config: &cfg,
		Tokens: tokens,
		Guard:  guard,
		Audit:  auditLog,
		Store:  store,
		Log:    log,
	}, server.Options{AccessLog: true})

	go func() {
		log.Infof("Server siap di %s", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Fatal(err, "Server berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Mematikan server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error(err, "Shutdown server gagal")
	}
	auditLog.Stop()
}

func openStore(cfg config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewLocalStore(cfg.UploadDir)
}
