package model

const (
	RefPangkat     = "pangkat"
	RefJabatan     = "jabatan"
	RefSatuan      = "satuan"
	RefKorps       = "korps"
	RefAgama       = "agama"
	RefJenisDiklat = "jenis_diklat"
)

var ReferensiTipeList = []string{RefPangkat, RefJabatan, RefSatuan, RefKorps, RefAgama, RefJenisDiklat}

func ValidReferensiTipe(t string) bool { return contains(ReferensiTipeList, t) }

// Referensi menyatukan semua tabel master (pangkat, jabatan, satuan, ...) dalam satu tabel per tipe.
type Referensi struct {
	Base
	Tipe      string `json:"tipe" gorm:"size:20;not null;uniqueIndex:idx_referensi_tipe_kode"`
	Kode      string `json:"kode" gorm:"size:30;not null;uniqueIndex:idx_referensi_tipe_kode"`
	Nama      string `json:"nama" gorm:"size:150;not null"`
	Golongan  string `json:"golongan,omitempty" gorm:"size:20"`
	Kategori  string `json:"kategori,omitempty" gorm:"size:20"`
	Urutan    int    `json:"urutan" gorm:"index"`
	Tingkat   string `json:"tingkat,omitempty" gorm:"size:30"`
	Induk     string `json:"induk,omitempty" gorm:"size:30"`
	Deskripsi string `json:"deskripsi,omitempty" gorm:"type:text"`
}
