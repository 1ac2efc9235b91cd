package repository_test

import (
	"context"
	"testing"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPersonel(t *testing.T, repo repository.PersonelRepository, list ...model.Personel) {
	t.Helper()
	for i := range list {
		require.NoError(t, repo.Create(context.Background(), &list[i]))
	}
}

func TestPersonelCreateConflict(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))
	ctx := context.Background()

	first := &model.Personel{NRP: "12345", NamaLengkap: "Budi Santoso", Pangkat: "KAPTEN"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, model.StatusAktif, first.StatusPersonel)

	dup := &model.Personel{NRP: "12345", NamaLengkap: "Nama Lain", Kategori: model.KategoriPNS}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, "NRP sudah terdaftar", apperr.Message(err))
}

func TestPersonelFindNotFound(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))

	_, err := repo.FindByNRP(context.Background(), "000")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPersonelListFilters(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))
	ctx := context.Background()
	seedPersonel(t, repo,
		model.Personel{NRP: "1001", NamaLengkap: "Andi Wijaya", Kategori: model.KategoriPerwira, Pangkat: "MAYOR", SatuanInduk: "Yonarhanud 1"},
		model.Personel{NRP: "1002", NamaLengkap: "Bambang Hadi", Kategori: model.KategoriBintara, Pangkat: "SERSAN KEPALA", SatuanInduk: "Yonarhanud 2"},
		model.Personel{NRP: "1003", NamaLengkap: "Citra Ayu", Kategori: model.KategoriPNS, Pangkat: "PENATA", SatuanInduk: "Pusat", StatusPersonel: model.StatusPensiun},
	)

	list, total, err := repo.List(ctx, repository.PersonelFilter{Search: "andi"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "1001", list[0].NRP)

	_, total, err = repo.List(ctx, repository.PersonelFilter{Satuan: "yonarhanud"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, total, err = repo.List(ctx, repository.PersonelFilter{Pangkat: "sersan"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	_, total, err = repo.List(ctx, repository.PersonelFilter{Status: model.StatusPensiun})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	list, total, err = repo.List(ctx, repository.PersonelFilter{Page: repository.Page{Skip: 1, Limit: 1}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total, "total tidak terpengaruh paginasi")
	require.Len(t, list, 1)
	assert.Equal(t, "Bambang Hadi", list[0].NamaLengkap)
}

func TestPersonelListScoped(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))
	ctx := context.Background()
	seedPersonel(t, repo,
		model.Personel{NRP: "999", NamaLengkap: "Personel Satu"},
		model.Personel{NRP: "888", NamaLengkap: "Personel Dua"},
	)

	list, total, err := repo.List(ctx, repository.PersonelFilter{Scoped: true, ScopeNRP: "999"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	for _, p := range list {
		assert.Equal(t, "999", p.NRP)
	}

	list, total, err = repo.List(ctx, repository.PersonelFilter{Scoped: true, ScopeNRP: ""})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestPersonelUpdateMergesFields(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))
	ctx := context.Background()
	seedPersonel(t, repo, model.Personel{NRP: "12345", NamaLengkap: "Budi", Pangkat: "KAPTEN", Korps: "ARH"})

	updated, err := repo.Update(ctx, "12345", map[string]interface{}{"nama_lengkap": "Budi Santoso"})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.NamaLengkap)
	assert.Equal(t, "KAPTEN", updated.Pangkat)
	assert.Equal(t, "ARH", updated.Korps)

	_, err = repo.Update(ctx, "404", map[string]interface{}{"nama_lengkap": "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordAndPromote(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewPersonelRepository(db)
	pangkatRepo := repository.NewRiwayatRepository[model.RiwayatPangkat](db, "tmt_pangkat desc")
	ctx := context.Background()
	seedPersonel(t, repo, model.Personel{NRP: "12345", NamaLengkap: "Budi", Pangkat: "KAPTEN", SatuanInduk: "Yon 1"})

	rp := &model.RiwayatPangkat{PangkatLama: "KAPTEN", Pangkat: "MAYOR", TmtPangkat: "2024-04-01"}
	rp.Assign("12345", "admin-id")
	require.NoError(t, repo.RecordAndPromote(ctx, rp))

	rj := &model.RiwayatJabatan{Jabatan: "Danyon", TmtJabatan: "2024-05-01"}
	rj.Assign("12345", "admin-id")
	require.NoError(t, repo.RecordAndPromote(ctx, rj))

	p, err := repo.FindByNRP(ctx, "12345")
	require.NoError(t, err)
	assert.Equal(t, "MAYOR", p.Pangkat)
	assert.Equal(t, "2024-04-01", p.TmtPangkat)
	assert.Equal(t, "Danyon", p.JabatanSekarang)
	assert.Equal(t, "Yon 1", p.SatuanInduk, "satuan kosong tidak menimpa snapshot")

	history, err := pangkatRepo.ListByNRP(ctx, "12345")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "MAYOR", history[0].Pangkat)

	orphan := &model.RiwayatPangkat{Pangkat: "LETKOL"}
	orphan.Assign("404", "admin-id")
	assert.ErrorIs(t, repo.RecordAndPromote(ctx, orphan), apperr.ErrNotFound)
}

func TestRiwayatCreateNeedsParent(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewPersonelRepository(db)
	keluargaRepo := repository.NewRiwayatRepository[model.Keluarga](db, "created_at asc")
	ctx := context.Background()
	seedPersonel(t, repo, model.Personel{NRP: "12345", NamaLengkap: "Budi"})

	istri := &model.Keluarga{Hubungan: "ISTRI", Nama: "Sari"}
	istri.Assign("12345", "staff-id")
	require.NoError(t, keluargaRepo.Create(ctx, istri))

	orphan := &model.Keluarga{Hubungan: "ANAK", Nama: "Dodi"}
	orphan.Assign("404", "staff-id")
	assert.ErrorIs(t, keluargaRepo.Create(ctx, orphan), apperr.ErrNotFound)

	list, err := keluargaRepo.ListByNRP(ctx, "12345")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sari", list[0].Nama)
	assert.Equal(t, "staff-id", list[0].CreatedBy)
}

func TestAssignDropsClientIdentity(t *testing.T) {
	rec := &model.Prestasi{NamaPrestasi: "Juara 1 Menembak"}
	rec.ID = "client-chosen"
	rec.Assign("12345", "staff-id")

	assert.Empty(t, rec.ID)
	assert.Equal(t, "12345", rec.OwnerNRP())
}

func TestExistingNRPs(t *testing.T) {
	repo := repository.NewPersonelRepository(testutil.OpenDB(t))
	seedPersonel(t, repo, model.Personel{NRP: "1", NamaLengkap: "A"}, model.Personel{NRP: "2", NamaLengkap: "B"})

	found, err := repo.ExistingNRPs(context.Background(), []string{"1", "3"})
	require.NoError(t, err)
	assert.True(t, found["1"])
	assert.False(t, found["3"])
}
