package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cellName, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportPersonel(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	f.seedPersonel(t, "1002", "Sudah Ada", "SERKA")
	uc := usecase.NewImportUsecase(f.personel, f.recorder)
	ctx := context.Background()

	buf := workbook(t, [][]interface{}{
		{"NO", "NAMA", "PANGKAT", "NRP", "JABATAN"},
		{"PERWIRA"},
		{1, "Andi", "MAYOR", "1001", "Danyon"},
		{2, "Sudah Ada", "SERKA", "1002", "Bati"},
		{3, "Andi Kembar", "MAYOR", "1001", "Wadanyon"},
		{4, "", "PRADA", "1004"},
	})

	res, err := uc.ImportPersonel(ctx, staff, "", "rekap.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, []string{"Baris 6: nama kosong"}, res.Errors)
	assert.Equal(t, "Import selesai. 1 data berhasil diimport, 2 data dilewati", res.Message)

	andi, err := f.personel.FindByNRP(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, "Andi", andi.NamaLengkap)
	assert.Equal(t, model.KategoriPerwira, andi.Kategori)
	assert.Equal(t, staff.ID, andi.CreatedBy)

	assert.Contains(t, f.actions(t), audit.ActionImportPersonel)
}

func TestImportErrorListIsCapped(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	uc := usecase.NewImportUsecase(f.personel, f.recorder)

	rows := [][]interface{}{{"NRP", "NAMA"}}
	for i := 0; i < 15; i++ {
		rows = append(rows, []interface{}{"9" + strings.Repeat("0", i+1), ""})
	}

	res, err := uc.ImportPersonel(context.Background(), staff, "", "rekap.xlsx", workbook(t, rows))
	require.NoError(t, err)
	assert.Equal(t, 15, res.Failed)
	assert.Len(t, res.Errors, 10)
	assert.Zero(t, res.Imported)
}

func TestImportRejectsNonXLSX(t *testing.T) {
	f := newFixture(t)
	staff := f.user(t, "staff1", "staff123", model.RoleStaff, "")
	uc := usecase.NewImportUsecase(f.personel, f.recorder)

	_, err := uc.ImportPersonel(context.Background(), staff, "", "rekap.xls", strings.NewReader("x"))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.ImportPersonel(context.Background(), staff, "", "rekap.xlsx", strings.NewReader("bukan zip"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
