package model

const (
	KategoriPerwira = "PERWIRA"
	KategoriBintara = "BINTARA"
	KategoriTamtama = "TAMTAMA"
	KategoriPNS     = "PNS"
)

var KategoriList = []string{KategoriPerwira, KategoriBintara, KategoriTamtama, KategoriPNS}

const (
	StatusAktif         = "AKTIF"
	StatusPensiun       = "PENSIUN"
	StatusMutasi        = "MUTASI"
	StatusMeninggal     = "MENINGGAL"
	StatusDiberhentikan = "DIBERHENTIKAN"
)

var StatusPersonelList = []string{StatusAktif, StatusPensiun, StatusMutasi, StatusMeninggal, StatusDiberhentikan}

type Personel struct {
	Base
	NRP             string `json:"nrp" gorm:"column:nrp;size:32;uniqueIndex;not null"`
	NamaLengkap     string `json:"nama_lengkap" gorm:"size:150;not null"`
	Kategori        string `json:"kategori" gorm:"size:20;index"`
	Pangkat         string `json:"pangkat" gorm:"size:60;index"`
	Korps           string `json:"korps" gorm:"size:60"`
	JabatanSekarang string `json:"jabatan_sekarang" gorm:"size:200"`
	SatuanInduk     string `json:"satuan_induk" gorm:"size:150;index"`
	StatusPersonel  string `json:"status_personel" gorm:"size:20;index;default:AKTIF"`
	TempatLahir     string `json:"tempat_lahir" gorm:"size:100"`
	TanggalLahir    string `json:"tanggal_lahir" gorm:"size:10"` // YYYY-MM-DD
	JenisKelamin    string `json:"jenis_kelamin" gorm:"size:1"`
	Agama           string `json:"agama" gorm:"size:30"`
	TmtMasukDinas   string `json:"tmt_masuk_dinas" gorm:"size:10"`
	TmtPangkat      string `json:"tmt_pangkat" gorm:"size:10"`
	TmtJabatan      string `json:"tmt_jabatan" gorm:"size:10"`
	Prestasi        string `json:"prestasi" gorm:"type:text"`
	Dikbangum       string `json:"dikbangum" gorm:"type:text"`
	Dikbangspes     string `json:"dikbangspes" gorm:"type:text"`
	CreatedBy       string `json:"created_by" gorm:"size:36"`
	UpdatedBy       string `json:"updated_by" gorm:"size:36"`
}

// correctableFields adalah kolom personel yang boleh diubah lewat pengajuan koreksi.
// Pangkat, jabatan, satuan dan status hanya berubah lewat jenis pengajuan masing-masing.
var correctableFields = map[string]bool{
	"nama_lengkap":    true,
	"tempat_lahir":    true,
	"tanggal_lahir":   true,
	"jenis_kelamin":   true,
	"agama":           true,
	"korps":           true,
	"tmt_masuk_dinas": true,
	"tmt_pangkat":     true,
	"tmt_jabatan":     true,
	"prestasi":        true,
	"dikbangum":       true,
	"dikbangspes":     true,
}

func IsCorrectable(field string) bool {
	return correctableFields[field]
}

// FieldValue membaca nilai kolom yang bisa dikoreksi, dipakai untuk snapshot nilai_lama.
func (p *Personel) FieldValue(field string) string {
	switch field {
	case "nama_lengkap":
		return p.NamaLengkap
	case "tempat_lahir":
		return p.TempatLahir
	case "tanggal_lahir":
		return p.TanggalLahir
	case "jenis_kelamin":
		return p.JenisKelamin
	case "agama":
		return p.Agama
	case "korps":
		return p.Korps
	case "tmt_masuk_dinas":
		return p.TmtMasukDinas
	case "tmt_pangkat":
		return p.TmtPangkat
	case "tmt_jabatan":
		return p.TmtJabatan
	case "prestasi":
		return p.Prestasi
	case "dikbangum":
		return p.Dikbangum
	case "dikbangspes":
		return p.Dikbangspes
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func ValidKategori(k string) bool { return contains(KategoriList, k) }

func ValidStatusPersonel(s string) bool { return contains(StatusPersonelList, s) }
