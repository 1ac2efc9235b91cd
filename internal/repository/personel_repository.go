package repository

import (
	"context"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type PersonelFilter struct {
	Search   string
	Kategori string
	Pangkat  string
	Satuan   string
	Status   string

	// Scoped memaksa hasil ke satu NRP (row-level scoping role personnel).
	Scoped   bool
	ScopeNRP string
	Page
}

type PersonelRepository interface {
	Create(ctx context.Context, p *model.Personel) error
	FindByNRP(ctx context.Context, nrp string) (*model.Personel, error)
	Exists(ctx context.Context, nrp string) (bool, error)
	List(ctx context.Context, filter PersonelFilter) ([]model.Personel, int64, error)
	ListAll(ctx context.Context, filter PersonelFilter) ([]model.Personel, error)
	Update(ctx context.Context, nrp string, fields map[string]interface{}) (*model.Personel, error)
	RecordAndPromote(ctx context.Context, record model.Promoting) error
	ExistingNRPs(ctx context.Context, nrps []string) (map[string]bool, error)
}

type personelRepository struct {
	db *gorm.DB
}

func NewPersonelRepository(db *gorm.DB) PersonelRepository {
	return &personelRepository{db}
}

func (r *personelRepository) Create(ctx context.Context, p *model.Personel) error {
	exists, err := r.Exists(ctx, p.NRP)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("NRP sudah terdaftar")
	}

	if p.StatusPersonel == "" {
		p.StatusPersonel = model.StatusAktif
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicate(err) {
			return apperr.Conflict("NRP sudah terdaftar")
		}
		return err
	}
	return nil
}

func (r *personelRepository) FindByNRP(ctx context.Context, nrp string) (*model.Personel, error) {
	var p model.Personel
	if err := r.db.WithContext(ctx).Where("nrp = ?", nrp).First(&p).Error; err != nil {
		return nil, notFound(err, "Personel tidak ditemukan")
	}
	return &p, nil
}

func (r *personelRepository) Exists(ctx context.Context, nrp string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Personel{}).Where("nrp = ?", nrp).Count(&count).Error
	return count > 0, err
}

func (r *personelRepository) filtered(ctx context.Context, filter PersonelFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Personel{})
	if filter.Scoped {
		query = query.Where("nrp = ?", filter.ScopeNRP)
	}
	if filter.Search != "" {
		query = whereLike(query, filter.Search, "nama_lengkap", "nrp")
	}
	if filter.Kategori != "" {
		query = query.Where("kategori = ?", filter.Kategori)
	}
	if filter.Status != "" {
		query = query.Where("status_personel = ?", filter.Status)
	}
	if filter.Pangkat != "" {
		query = whereLike(query, filter.Pangkat, "pangkat")
	}
	if filter.Satuan != "" {
		query = whereLike(query, filter.Satuan, "satuan_induk")
	}
	return query
}

func (r *personelRepository) List(ctx context.Context, filter PersonelFilter) ([]model.Personel, int64, error) {
	query := r.filtered(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Personel
	err := filter.Page.apply(query).Order("nama_lengkap asc").Find(&list).Error
	return list, total, err
}

// ListAll tanpa paginasi, untuk export.
func (r *personelRepository) ListAll(ctx context.Context, filter PersonelFilter) ([]model.Personel, error) {
	var list []model.Personel
	err := r.filtered(ctx, filter).Order("kategori asc, nama_lengkap asc").Find(&list).Error
	return list, err
}

func (r *personelRepository) Update(ctx context.Context, nrp string, fields map[string]interface{}) (*model.Personel, error) {
	if _, err := r.FindByNRP(ctx, nrp); err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now().UTC()
	if err := r.db.WithContext(ctx).Model(&model.Personel{}).Where("nrp = ?", nrp).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByNRP(ctx, nrp)
}

// RecordAndPromote menyimpan riwayat lalu menyalin nilainya ke snapshot personel.
// Dua tulisan terpisah tanpa transaksi: jika tulisan kedua gagal, riwayat tetap tersimpan
// dan snapshot tertinggal sampai riwayat berikutnya.
func (r *personelRepository) RecordAndPromote(ctx context.Context, record model.Promoting) error {
	nrp := record.OwnerNRP()
	exists, err := r.Exists(ctx, nrp)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Personel tidak ditemukan")
	}

	// 1. Simpan riwayat
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}

	// 2. Perbarui snapshot "sekarang"
	fields := record.Promotion()
	fields["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).Model(&model.Personel{}).Where("nrp = ?", nrp).Updates(fields).Error
}

func (r *personelRepository) ExistingNRPs(ctx context.Context, nrps []string) (map[string]bool, error) {
	found := make(map[string]bool, len(nrps))
	if len(nrps) == 0 {
		return found, nil
	}

	var existing []string
	err := r.db.WithContext(ctx).Model(&model.Personel{}).Where("nrp IN ?", nrps).Pluck("nrp", &existing).Error
	if err != nil {
		return nil, err
	}
	for _, n := range existing {
		found[n] = true
	}
	return found, nil
}
