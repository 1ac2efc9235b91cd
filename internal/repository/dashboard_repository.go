package repository

import (
	"context"

	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type CountItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type DashboardStats struct {
	TotalPersonel     int64            `json:"total_personel"`
	TotalAktif        int64            `json:"total_aktif"`
	TotalUsers        int64            `json:"total_users"`
	ByKategori        map[string]int64 `json:"by_kategori"`
	ByStatus          map[string]int64 `json:"by_status"`
	ByPangkat         []CountItem      `json:"by_pangkat"`
	BySatuan          []CountItem      `json:"by_satuan"`
	PengajuanPending  int64            `json:"pengajuan_pending"`
	PengajuanByStatus map[string]int64 `json:"pengajuan_by_status"`
	RecentActivities  []model.AuditLog `json:"recent_activities"`
}

type DashboardRepository interface {
	GetDashboardStats(ctx context.Context, withActivities bool) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(ctx context.Context, withActivities bool) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DashboardStats{RecentActivities: []model.AuditLog{}}

	// 1. Total personel dan yang masih aktif
	if err := db.Model(&model.Personel{}).Count(&stats.TotalPersonel).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Personel{}).Where("status_personel = ?", model.StatusAktif).Count(&stats.TotalAktif).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Where("is_active = ?", true).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	// 2. Pengelompokan personel
	byKategori, err := groupCount(db, "kategori")
	if err != nil {
		return nil, err
	}
	stats.ByKategori = make(map[string]int64, len(model.KategoriList))
	for _, k := range model.KategoriList {
		stats.ByKategori[k] = 0
	}
	for _, item := range byKategori {
		if item.Label != "" {
			stats.ByKategori[item.Label] = item.Count
		}
	}

	byStatus, err := groupCount(db, "status_personel")
	if err != nil {
		return nil, err
	}
	stats.ByStatus = make(map[string]int64, len(model.StatusPersonelList))
	for _, s := range model.StatusPersonelList {
		stats.ByStatus[s] = 0
	}
	for _, item := range byStatus {
		if item.Label != "" {
			stats.ByStatus[item.Label] = item.Count
		}
	}

	if stats.ByPangkat, err = groupCount(db, "pangkat"); err != nil {
		return nil, err
	}
	if stats.BySatuan, err = groupCount(db, "satuan_induk"); err != nil {
		return nil, err
	}

	// 3. Pengajuan
	stats.PengajuanByStatus, err = NewPengajuanRepository(r.db).CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.PengajuanPending = stats.PengajuanByStatus[model.PengajuanPending]

	// 4. Aktivitas terakhir
	if withActivities {
		if err := db.Order("timestamp desc").Limit(10).Find(&stats.RecentActivities).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func groupCount(db *gorm.DB, column string) ([]CountItem, error) {
	items := []CountItem{}
	err := db.Model(&model.Personel{}).
		Select(column + " as label, count(*) as count").
		Group(column).
		Order("count desc, label asc").
		Scan(&items).Error
	return items, err
}
