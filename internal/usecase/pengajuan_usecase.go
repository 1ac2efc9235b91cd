package usecase

import (
	"context"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type PengajuanUsecase struct {
	pengajuan repository.PengajuanRepository
	personel  repository.PersonelRepository
	audit     audit.Recorder
	now       func() time.Time
}

func NewPengajuanUsecase(pengajuan repository.PengajuanRepository, personel repository.PersonelRepository, recorder audit.Recorder) *PengajuanUsecase {
	return &PengajuanUsecase{
		pengajuan: pengajuan,
		personel:  personel,
		audit:     recorder,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PengajuanUsecase) WithClock(now func() time.Time) *PengajuanUsecase {
	u.now = now
	return u
}

type CreatePengajuanInput struct {
	NRP            string `json:"nrp"`
	JenisPengajuan string `json:"jenis_pengajuan"`
	JabatanBaru    string `json:"jabatan_baru"`
	SatuanBaru     string `json:"satuan_baru"`
	PangkatBaru    string `json:"pangkat_baru"`
	TmtPangkatBaru string `json:"tmt_pangkat_baru"`
	FieldName      string `json:"field_name"`
	NilaiBaru      string `json:"nilai_baru"`
	Alasan         string `json:"alasan"`
	Keterangan     string `json:"keterangan"`
}

func canCreate(user *model.User, in CreatePengajuanInput) error {
	switch user.Role {
	case model.RoleAdmin, model.RoleStaff:
		return nil
	case model.RolePersonnel:
		if in.JenisPengajuan != model.JenisKoreksi {
			return apperr.Forbidden("Personel hanya dapat mengajukan koreksi data")
		}
		return auth.CanAccessNRP(user, in.NRP)
	}
	return apperr.Forbidden("Akses ditolak")
}

func (u *PengajuanUsecase) Create(ctx context.Context, user *model.User, ip string, in CreatePengajuanInput) (*model.Pengajuan, error) {
	// 1. Validasi input dasar
	if !model.ValidJenisPengajuan(in.JenisPengajuan) {
		return nil, apperr.Validation("jenis_pengajuan tidak valid")
	}
	if in.NRP == "" {
		return nil, apperr.Validation("nrp wajib diisi")
	}

	// 2. Cek hak akses sesuai role dan jenis
	if err := canCreate(user, in); err != nil {
		return nil, err
	}

	// 3. Validasi payload per jenis
	switch in.JenisPengajuan {
	case model.JenisKoreksi:
		if !model.IsCorrectable(in.FieldName) {
			return nil, apperr.Validation("field_name tidak dapat dikoreksi")
		}
		if in.NilaiBaru == "" {
			return nil, apperr.Validation("nilai_baru wajib diisi")
		}
	case model.JenisMutasi:
		if in.JabatanBaru == "" && in.SatuanBaru == "" {
			return nil, apperr.Validation("jabatan_baru atau satuan_baru wajib diisi")
		}
	case model.JenisKenaikanPangkat:
		if in.PangkatBaru == "" {
			return nil, apperr.Validation("pangkat_baru wajib diisi")
		}
	}

	// 4. Personel harus ada
	p, err := u.personel.FindByNRP(ctx, in.NRP)
	if err != nil {
		return nil, err
	}

	// 5. Simpan nilai lama sebagai snapshot
	req := &model.Pengajuan{
		NRP:            p.NRP,
		JenisPengajuan: in.JenisPengajuan,
		JabatanLama:    p.JabatanSekarang,
		JabatanBaru:    in.JabatanBaru,
		SatuanLama:     p.SatuanInduk,
		SatuanBaru:     in.SatuanBaru,
		PangkatLama:    p.Pangkat,
		PangkatBaru:    in.PangkatBaru,
		TmtPangkatBaru: in.TmtPangkatBaru,
		Alasan:         in.Alasan,
		Keterangan:     in.Keterangan,
		Status:         model.PengajuanPending,
		CreatedBy:      user.ID,
		CreatedByName:  displayName(user),
	}
	if in.JenisPengajuan == model.JenisKoreksi {
		req.FieldName = in.FieldName
		req.NilaiLama = p.FieldValue(in.FieldName)
		req.NilaiBaru = in.NilaiBaru
	}

	if err := u.pengajuan.Create(ctx, req); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, audit.ActorFrom(user, ip), audit.ActionCreatePengajuan, audit.EntityPengajuan, req.ID, nil, req)
	return req, nil
}

// Resolve memutus pengajuan pending menjadi approved atau rejected, tepat satu kali.
func (u *PengajuanUsecase) Resolve(ctx context.Context, user *model.User, ip, id, status, catatan string) (*model.Pengajuan, error) {
	if err := auth.Require(user, model.RoleVerifier); err != nil {
		return nil, err
	}
	if status != model.PengajuanApproved && status != model.PengajuanRejected {
		return nil, apperr.Validation("Status harus approved atau rejected")
	}

	before, err := u.pengajuan.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if before.Status != model.PengajuanPending {
		return nil, apperr.AlreadyResolved("Pengajuan sudah diverifikasi")
	}

	at := u.now()
	ok, err := u.pengajuan.Resolve(ctx, id, map[string]interface{}{
		"status":              status,
		"catatan_verifikator": catatan,
		"verified_by":         user.ID,
		"verified_by_name":    displayName(user),
		"verified_at":         at,
		"updated_at":          at,
	})
	if err != nil {
		return nil, err
	}
	// Diputus request lain di antara FindByID dan update
	if !ok {
		return nil, apperr.AlreadyResolved("Pengajuan sudah diverifikasi")
	}

	after, err := u.pengajuan.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor := audit.ActorFrom(user, ip)
	if status == model.PengajuanRejected {
		u.audit.Record(ctx, actor, audit.ActionPengajuanRejected, audit.EntityPengajuan, id, before, after)
		return after, nil
	}

	// Status sudah approved, jadi perubahan dicatat walaupun efek sampingnya gagal
	u.audit.Record(ctx, actor, audit.ActionPengajuanApproved, audit.EntityPengajuan, id, before, after)
	if err := u.apply(ctx, user, after); err != nil {
		u.audit.Record(ctx, actor, audit.ActionPengajuanApplyFailed, audit.EntityPengajuan, id, nil,
			map[string]string{"nrp": after.NRP, "error": err.Error()})
		return nil, err
	}
	return after, nil
}

// apply menjalankan efek samping pengajuan yang disetujui terhadap data personel.
func (u *PengajuanUsecase) apply(ctx context.Context, user *model.User, req *model.Pengajuan) error {
	today := u.now().Format(dateLayout)

	switch req.JenisPengajuan {
	case model.JenisMutasi:
		if req.JabatanBaru != "" {
			rec := &model.RiwayatJabatan{
				Jabatan:    req.JabatanBaru,
				Satuan:     req.SatuanBaru,
				TmtJabatan: today,
			}
			rec.Assign(req.NRP, user.ID)
			rec.Keterangan = "Mutasi dari pengajuan " + req.ID
			return u.personel.RecordAndPromote(ctx, rec)
		}
		if req.SatuanBaru != "" {
			return u.updatePersonel(ctx, user, req.NRP, map[string]interface{}{"satuan_induk": req.SatuanBaru})
		}
		return nil

	case model.JenisPensiun:
		return u.updatePersonel(ctx, user, req.NRP, map[string]interface{}{"status_personel": model.StatusPensiun})

	case model.JenisKenaikanPangkat:
		if req.PangkatBaru == "" {
			return nil
		}
		rec := &model.RiwayatPangkat{
			PangkatLama: req.PangkatLama,
			Pangkat:     req.PangkatBaru,
			TmtPangkat:  req.TmtPangkatBaru,
		}
		rec.Assign(req.NRP, user.ID)
		rec.Keterangan = "Kenaikan pangkat dari pengajuan " + req.ID
		return u.personel.RecordAndPromote(ctx, rec)

	case model.JenisKoreksi:
		// Allow-list dicek ulang saat apply
		if !model.IsCorrectable(req.FieldName) {
			return apperr.Validation("field_name tidak dapat dikoreksi")
		}
		return u.updatePersonel(ctx, user, req.NRP, map[string]interface{}{req.FieldName: req.NilaiBaru})
	}
	return nil
}

func (u *PengajuanUsecase) updatePersonel(ctx context.Context, user *model.User, nrp string, fields map[string]interface{}) error {
	fields["updated_by"] = user.ID
	_, err := u.personel.Update(ctx, nrp, fields)
	return err
}

func (u *PengajuanUsecase) Get(ctx context.Context, user *model.User, id string) (*model.Pengajuan, error) {
	req, err := u.pengajuan.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessNRP(user, req.NRP); err != nil {
		return nil, err
	}
	return req, nil
}

func (u *PengajuanUsecase) List(ctx context.Context, user *model.User, filter repository.PengajuanFilter) ([]model.Pengajuan, int64, error) {
	filter.ScopeNRP, filter.Scoped = auth.ScopeNRP(user)
	return u.pengajuan.List(ctx, filter)
}

func displayName(user *model.User) string {
	if user.NamaLengkap != "" {
		return user.NamaLengkap
	}
	return user.Username
}
