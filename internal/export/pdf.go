package export

import (
	"bytes"
	"fmt"
	"time"

	"siparhanud-backend/internal/model"

	"github.com/go-pdf/fpdf"
)

const ContentTypePDF = "application/pdf"

type pdfColumn struct {
	title string
	width float64
	value func(i int, p model.Personel) string
}

var pdfColumns = []pdfColumn{
	{"No", 10, func(i int, _ model.Personel) string { return fmt.Sprint(i + 1) }},
	{"NRP", 32, func(_ int, p model.Personel) string { return p.NRP }},
	{"Nama Lengkap", 55, func(_ int, p model.Personel) string { return p.NamaLengkap }},
	{"Pangkat", 28, func(_ int, p model.Personel) string { return p.Pangkat }},
	{"Korps", 18, func(_ int, p model.Personel) string { return p.Korps }},
	{"Jabatan", 60, func(_ int, p model.Personel) string { return p.JabatanSekarang }},
	{"Satuan", 45, func(_ int, p model.Personel) string { return p.SatuanInduk }},
	{"Status", 29, func(_ int, p model.Personel) string { return p.StatusPersonel }},
}

// truncate memotong teks agar muat di lebar kolom.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width-2 {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width-2 {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// PersonelPDF menghasilkan laporan daftar personel A4 landscape.
func PersonelPDF(list []model.Personel, title string, at time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr(title), "", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 6, "Dicetak: "+at.Format("02-01-2006 15:04"), "", 1, "C", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(75, 83, 32)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Halaman %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)
	for i, p := range list {
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, truncate(pdf, tr(col.value(i, p)), col.width), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(list) == 0 {
		pdf.CellFormat(0, 8, "Tidak ada data", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
