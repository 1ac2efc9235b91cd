// Package export menghasilkan laporan personel dalam format Excel dan PDF.
package export

import (
	"fmt"

	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var personelHeaders = []string{
	"No", "NRP", "Nama Lengkap", "Kategori", "Pangkat", "Korps", "Jabatan", "Satuan",
	"Status", "Tempat Lahir", "Tanggal Lahir", "TMT Pangkat", "TMT Jabatan",
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4B5320"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
}

// writeTable menulis header dan baris mulai dari A1 pada sheet yang diberikan.
func writeTable(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}

	head := make([]interface{}, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}

	for i, row := range rows {
		r := row
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &r); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

// PersonelExcel menghasilkan workbook daftar personel.
func PersonelExcel(list []model.Personel) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Data Personel"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(list))
	for i, p := range list {
		rows = append(rows, []interface{}{
			i + 1, p.NRP, p.NamaLengkap, p.Kategori, p.Pangkat, p.Korps, p.JabatanSekarang, p.SatuanInduk,
			p.StatusPersonel, p.TempatLahir, p.TanggalLahir, p.TmtPangkat, p.TmtJabatan,
		})
	}
	if err := writeTable(f, sheet, personelHeaders, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func countRows(items []repository.CountItem) [][]interface{} {
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		label := it.Label
		if label == "" {
			label = "(kosong)"
		}
		rows = append(rows, []interface{}{label, it.Count})
	}
	return rows
}

// orderedCounts menyusun hitungan dari map mengikuti urutan daftar baku.
func orderedCounts(order []string, counts map[string]int64) []repository.CountItem {
	items := make([]repository.CountItem, 0, len(order))
	for _, k := range order {
		items = append(items, repository.CountItem{Label: k, Count: counts[k]})
	}
	return items
}

// StatistikExcel menghasilkan workbook ringkasan statistik dengan satu sheet per pengelompokan.
func StatistikExcel(stats *repository.DashboardStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Ringkasan"); err != nil {
		return nil, err
	}
	summary := [][]interface{}{
		{"Total Personel", stats.TotalPersonel},
		{"Personel Aktif", stats.TotalAktif},
		{"Total User", stats.TotalUsers},
		{"Pengajuan Pending", stats.PengajuanPending},
	}
	if err := writeTable(f, "Ringkasan", []string{"Keterangan", "Jumlah"}, summary); err != nil {
		return nil, err
	}

	groups := []struct {
		sheet string
		label string
		items []repository.CountItem
	}{
		{"Per Kategori", "Kategori", orderedCounts(model.KategoriList, stats.ByKategori)},
		{"Per Pangkat", "Pangkat", stats.ByPangkat},
		{"Per Status", "Status", orderedCounts(model.StatusPersonelList, stats.ByStatus)},
		{"Per Satuan", "Satuan", stats.BySatuan},
	}
	for _, g := range groups {
		if _, err := f.NewSheet(g.sheet); err != nil {
			return nil, err
		}
		if err := writeTable(f, g.sheet, []string{g.label, "Jumlah"}, countRows(g.items)); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
