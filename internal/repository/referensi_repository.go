package repository

import (
	"context"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type ReferensiRepository interface {
	ListByTipe(ctx context.Context, tipe string) ([]model.Referensi, error)
	FindByID(ctx context.Context, tipe, id string) (*model.Referensi, error)
	Create(ctx context.Context, ref *model.Referensi) error
	Update(ctx context.Context, tipe, id string, fields map[string]interface{}) (*model.Referensi, error)
	Delete(ctx context.Context, tipe, id string) error
}

type referensiRepository struct {
	db *gorm.DB
}

func NewReferensiRepository(db *gorm.DB) ReferensiRepository {
	return &referensiRepository{db}
}

func (r *referensiRepository) ListByTipe(ctx context.Context, tipe string) ([]model.Referensi, error) {
	list := []model.Referensi{}
	err := r.db.WithContext(ctx).Where("tipe = ?", tipe).Order("urutan asc, nama asc").Find(&list).Error
	return list, err
}

func (r *referensiRepository) FindByID(ctx context.Context, tipe, id string) (*model.Referensi, error) {
	var ref model.Referensi
	if err := r.db.WithContext(ctx).Where("tipe = ? AND id = ?", tipe, id).First(&ref).Error; err != nil {
		return nil, notFound(err, "Data referensi tidak ditemukan")
	}
	return &ref, nil
}

func (r *referensiRepository) Create(ctx context.Context, ref *model.Referensi) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Referensi{}).Where("tipe = ? AND kode = ?", ref.Tipe, ref.Kode).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("Kode sudah digunakan")
	}

	if err := r.db.WithContext(ctx).Create(ref).Error; err != nil {
		if isDuplicate(err) {
			return apperr.Conflict("Kode sudah digunakan")
		}
		return err
	}
	return nil
}

func (r *referensiRepository) Update(ctx context.Context, tipe, id string, fields map[string]interface{}) (*model.Referensi, error) {
	if _, err := r.FindByID(ctx, tipe, id); err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now().UTC()
	err := r.db.WithContext(ctx).Model(&model.Referensi{}).Where("tipe = ? AND id = ?", tipe, id).Updates(fields).Error
	if err != nil {
		if isDuplicate(err) {
			return nil, apperr.Conflict("Kode sudah digunakan")
		}
		return nil, err
	}
	return r.FindByID(ctx, tipe, id)
}

func (r *referensiRepository) Delete(ctx context.Context, tipe, id string) error {
	res := r.db.WithContext(ctx).Where("tipe = ? AND id = ?", tipe, id).Delete(&model.Referensi{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Data referensi tidak ditemukan")
	}
	return nil
}
