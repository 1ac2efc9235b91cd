// Package importer membaca rekap personel dari spreadsheet Excel.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"siparhanud-backend/internal/model"

	"github.com/xuri/excelize/v2"
)

// headerScanRows adalah jumlah baris awal yang diperiksa untuk mencari header.
const headerScanRows = 10

var ErrHeaderNotFound = errors.New("baris header (NRP/NAMA) tidak ditemukan")

type Record struct {
	Row      int
	Personel model.Personel
}

type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Baris %d: %s", e.Row, e.Message)
}

type Result struct {
	HeaderRow int
	Records   []Record
	Errors    []RowError
}

// ReadXLSX mengembalikan isi sheet pertama sebagai baris-baris teks.
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook tidak memiliki sheet")
	}
	return f.GetRows(sheets[0])
}

type column struct {
	key   string
	exact bool
	field string
}

// Urutan penting: header seperti "TEMPAT LAHIR" dan "TMT JABATAN" harus
// tertangkap sebelum aturan LAHIR dan JABATAN.
var columns = []column{
	{"DIKBANGSPES", false, "dikbangspes"},
	{"DIKBANGUM", false, "dikbangum"},
	{"PRESTASI", false, "prestasi"},
	{"TMT", false, "tmt_jabatan"},
	{"TEMPAT", false, "tempat_lahir"},
	{"LAHIR", false, "tanggal_lahir"},
	{"NRP", true, "nrp"},
	{"NAMA", false, "nama_lengkap"},
	{"PANGKAT", false, "pangkat"},
	{"KORPS", false, "korps"},
	{"JABATAN", false, "jabatan_sekarang"},
	{"SATUAN", false, "satuan_induk"},
}

var categoryMarkers = []string{model.KategoriPerwira, model.KategoriBintara, model.KategoriTamtama, model.KategoriPNS}

// findHeader mencari baris header di baris-baris awal. Baris judul seperti
// "DAFTAR NAMA PERSONEL" dilewati karena tidak memetakan kolom NRP.
func findHeader(rows [][]string) (int, map[string]int) {
	for i := 0; i < len(rows) && i < headerScanRows; i++ {
		if !looksLikeHeader(rows[i]) {
			continue
		}
		idx := mapColumns(rows[i])
		if _, ok := idx["nrp"]; ok {
			return i, idx
		}
	}
	return -1, nil
}

func looksLikeHeader(row []string) bool {
	for _, cell := range row {
		v := strings.ToUpper(strings.TrimSpace(cell))
		if v == "NRP" || strings.HasPrefix(v, "NAMA") {
			return true
		}
	}
	return false
}

func mapColumns(header []string) map[string]int {
	idx := map[string]int{}
	for i, cell := range header {
		name := strings.ToUpper(strings.TrimSpace(cell))
		if name == "" {
			continue
		}
		for _, c := range columns {
			match := name == c.key
			if !c.exact {
				match = strings.Contains(name, c.key)
			}
			if !match {
				continue
			}
			if _, taken := idx[c.field]; !taken {
				idx[c.field] = i
			}
			break
		}
	}
	return idx
}

func cell(row []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if strings.EqualFold(v, "nan") || v == "-" {
		return ""
	}
	return v
}

// normalizeNRP membuang sufiks ".0" dari angka Excel. NRP tanpa digit dianggap kosong.
func normalizeNRP(v string) string {
	v = strings.TrimSuffix(strings.TrimSpace(v), ".0")
	if strings.EqualFold(v, "NRP") {
		return ""
	}
	for _, r := range v {
		if unicode.IsDigit(r) {
			return v
		}
	}
	return ""
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006", "2/1/2006", "02.01.2006", "01-02-06", "2006/01/02"}

// normalizeDate mengubah tanggal ke YYYY-MM-DD. Nilai yang tidak dikenali dikembalikan apa adanya.
func normalizeDate(v string) string {
	if v == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 && serial < 100000 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return v
}

// textFields adalah kolom isian bebas. Isinya tidak pernah dibaca sebagai penanda kategori.
var textFields = []string{"prestasi", "dikbangum", "dikbangspes"}

// categoryMarker mengenali baris penanda seperti "PERWIRA" atau "I. PERWIRA".
// Sel harus sama persis dengan kategori setelah nomor urut di depannya dibuang.
func categoryMarker(row []string, idx map[string]int) string {
	for _, f := range textFields {
		if cell(row, idx, f) != "" {
			return ""
		}
	}
	for _, c := range row {
		v := strings.ToUpper(strings.TrimSpace(c))
		if v == "" {
			continue
		}
		v = stripNumbering(v)
		for _, m := range categoryMarkers {
			if v == m {
				return m
			}
		}
		return ""
	}
	return ""
}

// stripNumbering membuang awalan "I.", "2)" atau "A." dari sel.
func stripNumbering(v string) string {
	fields := strings.Fields(v)
	if len(fields) < 2 {
		return v
	}
	first := fields[0]
	if strings.HasSuffix(first, ".") || strings.HasSuffix(first, ")") {
		return strings.Join(fields[1:], " ")
	}
	return v
}

func appendText(dst *string, v string) {
	if v == "" {
		return
	}
	if *dst == "" {
		*dst = v
		return
	}
	*dst += ", " + v
}

// Parse mengubah baris spreadsheet menjadi record personel.
// Baris tanpa NRP di bawah seorang personel dianggap lanjutan datanya.
func Parse(rows [][]string) (*Result, error) {
	headerRow, idx := findHeader(rows)
	if headerRow < 0 {
		return nil, ErrHeaderNotFound
	}

	res := &Result{HeaderRow: headerRow + 1}
	kategori := ""
	current := -1

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		rowNum := i + 1

		nrp := normalizeNRP(cell(row, idx, "nrp"))
		if nrp == "" {
			if m := categoryMarker(row, idx); m != "" {
				kategori = m
				current = -1
				continue
			}
			if current >= 0 {
				p := &res.Records[current].Personel
				appendText(&p.Prestasi, cell(row, idx, "prestasi"))
				appendText(&p.Dikbangum, cell(row, idx, "dikbangum"))
				appendText(&p.Dikbangspes, cell(row, idx, "dikbangspes"))
			}
			continue
		}

		nama := cell(row, idx, "nama_lengkap")
		if nama == "" {
			res.Errors = append(res.Errors, RowError{Row: rowNum, Message: "nama kosong"})
			current = -1
			continue
		}

		res.Records = append(res.Records, Record{
			Row: rowNum,
			Personel: model.Personel{
				NRP:             nrp,
				NamaLengkap:     nama,
				Kategori:        kategori,
				Pangkat:         cell(row, idx, "pangkat"),
				Korps:           cell(row, idx, "korps"),
				JabatanSekarang: cell(row, idx, "jabatan_sekarang"),
				SatuanInduk:     cell(row, idx, "satuan_induk"),
				StatusPersonel:  model.StatusAktif,
				TempatLahir:     cell(row, idx, "tempat_lahir"),
				TanggalLahir:    normalizeDate(cell(row, idx, "tanggal_lahir")),
				TmtJabatan:      normalizeDate(cell(row, idx, "tmt_jabatan")),
				Prestasi:        cell(row, idx, "prestasi"),
				Dikbangum:       cell(row, idx, "dikbangum"),
				Dikbangspes:     cell(row, idx, "dikbangspes"),
			},
		})
		current = len(res.Records) - 1
	}
	return res, nil
}
