package repository

import (
	"context"

	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type PengajuanFilter struct {
	Status string
	Jenis  string
	NRP    string

	Scoped   bool
	ScopeNRP string
	Page
}

type PengajuanRepository interface {
	Create(ctx context.Context, p *model.Pengajuan) error
	FindByID(ctx context.Context, id string) (*model.Pengajuan, error)
	List(ctx context.Context, filter PengajuanFilter) ([]model.Pengajuan, int64, error)
	// Resolve hanya mengubah pengajuan yang masih pending. false berarti sudah diputus lebih dulu.
	Resolve(ctx context.Context, id string, fields map[string]interface{}) (bool, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type pengajuanRepository struct {
	db *gorm.DB
}

func NewPengajuanRepository(db *gorm.DB) PengajuanRepository {
	return &pengajuanRepository{db}
}

func (r *pengajuanRepository) Create(ctx context.Context, p *model.Pengajuan) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pengajuanRepository) FindByID(ctx context.Context, id string) (*model.Pengajuan, error) {
	var p model.Pengajuan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFound(err, "Pengajuan tidak ditemukan")
	}
	return &p, nil
}

func (r *pengajuanRepository) List(ctx context.Context, filter PengajuanFilter) ([]model.Pengajuan, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Pengajuan{})
	if filter.Scoped {
		query = query.Where("nrp = ?", filter.ScopeNRP)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Jenis != "" {
		query = query.Where("jenis_pengajuan = ?", filter.Jenis)
	}
	if filter.NRP != "" {
		query = query.Where("nrp = ?", filter.NRP)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Pengajuan
	err := filter.Page.apply(query).Order("created_at desc").Find(&list).Error
	return list, total, err
}

func (r *pengajuanRepository) Resolve(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Pengajuan{}).
		Where("id = ? AND status = ?", id, model.PengajuanPending).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *pengajuanRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Pengajuan{}).
		Select("status, count(*) as count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		model.PengajuanPending:  0,
		model.PengajuanApproved: 0,
		model.PengajuanRejected: 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
