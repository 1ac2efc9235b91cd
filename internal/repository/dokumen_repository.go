package repository

import (
	"context"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type DokumenRepository interface {
	Create(ctx context.Context, doc *model.Dokumen) error
	FindByID(ctx context.Context, id string) (*model.Dokumen, error)
	ListByNRP(ctx context.Context, nrp string) ([]model.Dokumen, error)
	Delete(ctx context.Context, id string) error
}

type dokumenRepository struct {
	db *gorm.DB
}

func NewDokumenRepository(db *gorm.DB) DokumenRepository {
	return &dokumenRepository{db}
}

func (r *dokumenRepository) Create(ctx context.Context, doc *model.Dokumen) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *dokumenRepository) FindByID(ctx context.Context, id string) (*model.Dokumen, error) {
	var doc model.Dokumen
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, notFound(err, "Dokumen tidak ditemukan")
	}
	return &doc, nil
}

func (r *dokumenRepository) ListByNRP(ctx context.Context, nrp string) ([]model.Dokumen, error) {
	list := []model.Dokumen{}
	err := r.db.WithContext(ctx).Where("nrp = ?", nrp).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *dokumenRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Dokumen{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Dokumen tidak ditemukan")
	}
	return nil
}
