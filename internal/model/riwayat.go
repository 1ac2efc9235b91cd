package model

import "errors"

// Riwayat diimplementasikan oleh semua catatan append-only milik seorang personel.
type Riwayat interface {
	OwnerNRP() string
	// Assign menetapkan pemilik dan mengosongkan identitas yang dikirim klien.
	Assign(nrp, createdBy string)
}

// Promoting adalah riwayat yang ikut memperbarui snapshot "sekarang" di tabel personel.
type Promoting interface {
	Riwayat
	Promotion() map[string]interface{}
}

type RiwayatBase struct {
	Base
	NRP        string `json:"nrp" gorm:"column:nrp;size:32;index;not null"`
	Keterangan string `json:"keterangan" gorm:"type:text"`
	CreatedBy  string `json:"created_by" gorm:"size:36"`
}

func (r *RiwayatBase) OwnerNRP() string { return r.NRP }

func (r *RiwayatBase) Assign(nrp, createdBy string) {
	r.Base = Base{}
	r.NRP = nrp
	r.CreatedBy = createdBy
}

type RiwayatPangkat struct {
	RiwayatBase
	PangkatLama   string `json:"pangkat_lama" gorm:"size:60"`
	Pangkat       string `json:"pangkat" gorm:"size:60;not null"`
	TmtPangkat    string `json:"tmt_pangkat" gorm:"size:10;index"`
	JenisKenaikan string `json:"jenis_kenaikan" gorm:"size:50"`
	NomorSK       string `json:"nomor_sk" gorm:"column:nomor_sk;size:100"`
}

func (r *RiwayatPangkat) Promotion() map[string]interface{} {
	fields := map[string]interface{}{"pangkat": r.Pangkat}
	if r.TmtPangkat != "" {
		fields["tmt_pangkat"] = r.TmtPangkat
	}
	return fields
}

type RiwayatJabatan struct {
	RiwayatBase
	Jabatan       string `json:"jabatan" gorm:"size:200;not null"`
	Satuan        string `json:"satuan" gorm:"size:150"`
	TmtJabatan    string `json:"tmt_jabatan" gorm:"size:10;index"`
	StatusJabatan string `json:"status_jabatan" gorm:"size:50"`
	NomorSK       string `json:"nomor_sk" gorm:"column:nomor_sk;size:100"`
}

func (r *RiwayatJabatan) Promotion() map[string]interface{} {
	fields := map[string]interface{}{"jabatan_sekarang": r.Jabatan}
	if r.Satuan != "" {
		fields["satuan_induk"] = r.Satuan
	}
	if r.TmtJabatan != "" {
		fields["tmt_jabatan"] = r.TmtJabatan
	}
	return fields
}

const (
	JenisDikbangum   = "DIKBANGUM"
	JenisDikbangspes = "DIKBANGSPES"
)

type Dikbang struct {
	RiwayatBase
	JenisDiklat string `json:"jenis_diklat" gorm:"size:20;index"`
	NamaDiklat  string `json:"nama_diklat" gorm:"size:200;not null"`
	Tahun       string `json:"tahun" gorm:"size:4"`
	Tempat      string `json:"tempat" gorm:"size:150"`
}

type TandaJasa struct {
	RiwayatBase
	NamaTandaJasa string `json:"nama_tanda_jasa" gorm:"size:200;not null"`
	Pemberi       string `json:"pemberi" gorm:"size:150"`
	Tahun         string `json:"tahun" gorm:"size:4"`
	NomorSK       string `json:"nomor_sk" gorm:"column:nomor_sk;size:100"`
}

type Prestasi struct {
	RiwayatBase
	NamaPrestasi string `json:"nama_prestasi" gorm:"size:200;not null"`
	Tingkat      string `json:"tingkat" gorm:"size:50"`
	Tahun        string `json:"tahun" gorm:"size:4"`
}

type Hukuman struct {
	RiwayatBase
	JenisHukuman string `json:"jenis_hukuman" gorm:"size:100;not null"`
	Tanggal      string `json:"tanggal" gorm:"size:10"`
	NomorSK      string `json:"nomor_sk" gorm:"column:nomor_sk;size:100"`
}

type Cuti struct {
	RiwayatBase
	JenisCuti      string `json:"jenis_cuti" gorm:"size:50;not null"`
	TanggalMulai   string `json:"tanggal_mulai" gorm:"size:10"`
	TanggalSelesai string `json:"tanggal_selesai" gorm:"size:10"`
}

type Keluarga struct {
	RiwayatBase
	Hubungan     string `json:"hubungan" gorm:"size:30;not null"`
	Nama         string `json:"nama" gorm:"size:150;not null"`
	TanggalLahir string `json:"tanggal_lahir" gorm:"size:10"`
	Pekerjaan    string `json:"pekerjaan" gorm:"size:100"`
}

func required(value, field string) error {
	if value == "" {
		return errors.New(field + " wajib diisi")
	}
	return nil
}

func (r *RiwayatPangkat) Validate() error { return required(r.Pangkat, "pangkat") }

func (r *RiwayatJabatan) Validate() error { return required(r.Jabatan, "jabatan") }

func (r *Dikbang) Validate() error {
	if r.JenisDiklat != "" && r.JenisDiklat != JenisDikbangum && r.JenisDiklat != JenisDikbangspes {
		return errors.New("jenis_diklat harus DIKBANGUM atau DIKBANGSPES")
	}
	return required(r.NamaDiklat, "nama_diklat")
}

func (r *TandaJasa) Validate() error { return required(r.NamaTandaJasa, "nama_tanda_jasa") }

func (r *Prestasi) Validate() error { return required(r.NamaPrestasi, "nama_prestasi") }

func (r *Hukuman) Validate() error { return required(r.JenisHukuman, "jenis_hukuman") }

func (r *Cuti) Validate() error { return required(r.JenisCuti, "jenis_cuti") }

func (r *Keluarga) Validate() error {
	if err := required(r.Hubungan, "hubungan"); err != nil {
		return err
	}
	return required(r.Nama, "nama")
}
