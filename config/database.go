package config

import (
	"fmt"

	"siparhanud-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ConnectDB membuka koneksi sesuai DB_DRIVER lalu menjalankan AutoMigrate.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("driver database tidak dikenal: %s", cfg.DBDriver)
	}

	logLevel := gormlogger.Warn
	if cfg.IsProduction() {
		logLevel = gormlogger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate membuat atau memperbarui tabel berdasarkan struct di folder model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Personel{},
		&model.RiwayatPangkat{},
		&model.RiwayatJabatan{},
		&model.Dikbang{},
		&model.TandaJasa{},
		&model.Prestasi{},
		&model.Hukuman{},
		&model.Cuti{},
		&model.Keluarga{},
		&model.Pengajuan{},
		&model.AuditLog{},
		&model.Dokumen{},
		&model.Referensi{},
	)
}
