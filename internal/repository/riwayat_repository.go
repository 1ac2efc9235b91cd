package repository

import (
	"context"
	"fmt"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

// RiwayatRepository melayani satu jenis catatan append-only di bawah personel.
type RiwayatRepository[T any] interface {
	Create(ctx context.Context, record *T) error
	ListByNRP(ctx context.Context, nrp string) ([]T, error)
}

type riwayatRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewRiwayatRepository membuat repository untuk tipe riwayat T, diurutkan berdasarkan orderBy.
func NewRiwayatRepository[T any](db *gorm.DB, orderBy string) RiwayatRepository[T] {
	return &riwayatRepository[T]{db: db, orderBy: orderBy}
}

func (r *riwayatRepository[T]) Create(ctx context.Context, record *T) error {
	owned, ok := any(record).(model.Riwayat)
	if !ok {
		return fmt.Errorf("tipe %T bukan riwayat personel", record)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Personel{}).Where("nrp = ?", owned.OwnerNRP()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("Personel tidak ditemukan")
	}

	return r.db.WithContext(ctx).Create(record).Error
}

func (r *riwayatRepository[T]) ListByNRP(ctx context.Context, nrp string) ([]T, error) {
	list := []T{}
	err := r.db.WithContext(ctx).Where("nrp = ?", nrp).Order(r.orderBy).Find(&list).Error
	return list, err
}
