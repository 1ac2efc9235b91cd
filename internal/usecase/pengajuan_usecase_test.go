package usecase_test

import (
	"context"
	"testing"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) pengajuanUsecase() *usecase.PengajuanUsecase {
	fixed := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return usecase.NewPengajuanUsecase(f.pengaj, f.personel, f.recorder).
		WithClock(func() time.Time { return fixed })
}

func TestKenaikanPangkatApproved(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "12345", "Budi Santoso", "KAPTEN")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	req, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{
		NRP: "12345", JenisPengajuan: model.JenisKenaikanPangkat, PangkatBaru: "MAYOR", TmtPangkatBaru: "2026-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, model.PengajuanPending, req.Status)
	assert.Equal(t, "KAPTEN", req.PangkatLama)

	resolved, err := uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanApproved, "Sesuai SKEP")
	require.NoError(t, err)
	assert.Equal(t, model.PengajuanApproved, resolved.Status)
	assert.Equal(t, verifier.ID, resolved.VerifiedBy)
	require.NotNil(t, resolved.VerifiedAt)

	p, err := f.personel.FindByNRP(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "MAYOR", p.Pangkat)
	assert.Equal(t, "2026-04-01", p.TmtPangkat)

	history, err := repository.NewRiwayatRepository[model.RiwayatPangkat](f.db, "tmt_pangkat desc").ListByNRP(ctx, "12345")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "MAYOR", history[0].Pangkat)

	assert.Equal(t, []string{audit.ActionCreatePengajuan, audit.ActionPengajuanApproved}, f.actions(t))
}

func TestResolveTwiceIsAlreadyResolved(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "12345", "Budi Santoso", "KAPTEN")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	req, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "12345", JenisPengajuan: model.JenisKenaikanPangkat, PangkatBaru: "MAYOR"})
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanApproved, "")
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanRejected, "berubah pikiran")
	assert.ErrorIs(t, err, apperr.ErrAlreadyResolved)

	p, err := f.personel.FindByNRP(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "MAYOR", p.Pangkat)

	stored, err := f.pengaj.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PengajuanApproved, stored.Status)
}

func TestResolveRules(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "12345", "Budi Santoso", "KAPTEN")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	req, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "12345", JenisPengajuan: model.JenisPensiun})
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, staff, "", req.ID, model.PengajuanApproved, "")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, "maybe", "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.Resolve(ctx, verifier, "", "tidak-ada", model.PengajuanApproved, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanApproved, "")
	require.NoError(t, err)

	p, err := f.personel.FindByNRP(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPensiun, p.StatusPersonel)
}

func TestCreateRequiresExistingPersonel(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	uc := f.pengajuanUsecase()

	_, err := uc.Create(context.Background(), staff, "", usecase.CreatePengajuanInput{NRP: "404", JenisPengajuan: model.JenisPensiun})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = uc.Create(context.Background(), staff, "", usecase.CreatePengajuanInput{NRP: "404", JenisPengajuan: "promosi"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestPersonnelMayOnlyCorrectOwnRecord(t *testing.T) {
	f := newFixture(t)
	p1 := f.user(t, "personel1", "personel123", model.RolePersonnel, "999")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	leader := f.user(t, "pimpinan", "pimpin123", model.RoleLeader, "")
	f.seedPersonel(t, "999", "Nama Asli", "SERDA")
	f.seedPersonel(t, "888", "Orang Lain", "SERDA")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	req, err := uc.Create(ctx, p1, "", usecase.CreatePengajuanInput{
		NRP: "999", JenisPengajuan: model.JenisKoreksi, FieldName: "nama_lengkap", NilaiBaru: "Nama Baru",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nama Asli", req.NilaiLama)

	_, err = uc.Create(ctx, p1, "", usecase.CreatePengajuanInput{NRP: "999", JenisPengajuan: model.JenisMutasi, JabatanBaru: "Danrai"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = uc.Create(ctx, p1, "", usecase.CreatePengajuanInput{
		NRP: "888", JenisPengajuan: model.JenisKoreksi, FieldName: "nama_lengkap", NilaiBaru: "X",
	})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = uc.Create(ctx, leader, "", usecase.CreatePengajuanInput{NRP: "999", JenisPengajuan: model.JenisPensiun})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanRejected, "tidak sesuai")
	require.NoError(t, err)

	p, err := f.personel.FindByNRP(ctx, "999")
	require.NoError(t, err)
	assert.Equal(t, "Nama Asli", p.NamaLengkap)
	assert.Contains(t, f.actions(t), audit.ActionPengajuanRejected)
}

func TestKoreksiAllowList(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "12345", "Budi", "KAPTEN")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	for _, field := range []string{"status_personel", "pangkat", "role", "nrp"} {
		_, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{
			NRP: "12345", JenisPengajuan: model.JenisKoreksi, FieldName: field, NilaiBaru: "X",
		})
		assert.ErrorIs(t, err, apperr.ErrValidation, field)
	}

	req, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{
		NRP: "12345", JenisPengajuan: model.JenisKoreksi, FieldName: "tempat_lahir", NilaiBaru: "Malang",
	})
	require.NoError(t, err)
	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanApproved, "")
	require.NoError(t, err)

	p, err := f.personel.FindByNRP(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "Malang", p.TempatLahir)
	assert.Equal(t, verifier.ID, p.UpdatedBy)
}

func TestMutasiApproved(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "1", "Andi", "LETDA")
	f.seedPersonel(t, "2", "Bayu", "LETDA")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	full, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "1", JenisPengajuan: model.JenisMutasi, JabatanBaru: "Danrai", SatuanBaru: "Yonarhanud 2"})
	require.NoError(t, err)
	assert.Equal(t, "Danton", full.JabatanLama)
	onlyUnit, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "2", JenisPengajuan: model.JenisMutasi, SatuanBaru: "Yonarhanud 3"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "2", JenisPengajuan: model.JenisMutasi})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.Resolve(ctx, verifier, "", full.ID, model.PengajuanApproved, "")
	require.NoError(t, err)
	_, err = uc.Resolve(ctx, verifier, "", onlyUnit.ID, model.PengajuanApproved, "")
	require.NoError(t, err)

	andi, err := f.personel.FindByNRP(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Danrai", andi.JabatanSekarang)
	assert.Equal(t, "Yonarhanud 2", andi.SatuanInduk)
	assert.Equal(t, "2026-03-01", andi.TmtJabatan)

	bayu, err := f.personel.FindByNRP(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Danton", bayu.JabatanSekarang)
	assert.Equal(t, "Yonarhanud 3", bayu.SatuanInduk)

	jabatan, err := repository.NewRiwayatRepository[model.RiwayatJabatan](f.db, "tmt_jabatan desc").ListByNRP(ctx, "1")
	require.NoError(t, err)
	require.Len(t, jabatan, 1)
	assert.Equal(t, verifier.ID, jabatan[0].CreatedBy)
}

func TestPengajuanListScopedForPersonnel(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	p1 := f.user(t, "personel1", "personel123", model.RolePersonnel, "999")
	f.seedPersonel(t, "999", "Saya", "SERDA")
	f.seedPersonel(t, "888", "Orang Lain", "SERDA")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	_, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "999", JenisPengajuan: model.JenisPensiun})
	require.NoError(t, err)
	other, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{NRP: "888", JenisPengajuan: model.JenisPensiun})
	require.NoError(t, err)

	list, total, err := uc.List(ctx, p1, repository.PengajuanFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	for _, item := range list {
		assert.Equal(t, "999", item.NRP)
	}

	_, err = uc.Get(ctx, p1, other.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, total, err = uc.List(ctx, staff, repository.PengajuanFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestApproveWithFailedApplyIsStillAudited(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	verifier := f.user(t, "verifikator1", "verif123", model.RoleVerifier, "")
	f.seedPersonel(t, "12345", "Budi Santoso", "KAPTEN")
	uc := f.pengajuanUsecase()
	ctx := context.Background()

	req, err := uc.Create(ctx, staff, "", usecase.CreatePengajuanInput{
		NRP: "12345", JenisPengajuan: model.JenisMutasi, JabatanBaru: "Danrai",
	})
	require.NoError(t, err)

	// personel hilang sebelum verifikasi, RecordAndPromote gagal
	require.NoError(t, f.db.Where("nrp = ?", "12345").Delete(&model.Personel{}).Error)

	_, err = uc.Resolve(ctx, verifier, "", req.ID, model.PengajuanApproved, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	stored, err := f.pengaj.FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PengajuanApproved, stored.Status)

	assert.ElementsMatch(t, []string{
		audit.ActionCreatePengajuan,
		audit.ActionPengajuanApproved,
		audit.ActionPengajuanApplyFailed,
	}, f.actions(t))
}
