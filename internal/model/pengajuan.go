package model

import "time"

const (
	JenisMutasi          = "mutasi"
	JenisPensiun         = "pensiun"
	JenisKenaikanPangkat = "kenaikan_pangkat"
	JenisKoreksi         = "koreksi"
)

var JenisPengajuanList = []string{JenisMutasi, JenisPensiun, JenisKenaikanPangkat, JenisKoreksi}

func ValidJenisPengajuan(j string) bool { return contains(JenisPengajuanList, j) }

const (
	PengajuanPending  = "pending"
	PengajuanApproved = "approved"
	PengajuanRejected = "rejected"
)

type Pengajuan struct {
	Base
	NRP            string `json:"nrp" gorm:"column:nrp;size:32;index;not null"`
	JenisPengajuan string `json:"jenis_pengajuan" gorm:"size:30;index;not null"`

	// mutasi
	JabatanLama string `json:"jabatan_lama" gorm:"size:200"`
	JabatanBaru string `json:"jabatan_baru" gorm:"size:200"`
	SatuanLama  string `json:"satuan_lama" gorm:"size:150"`
	SatuanBaru  string `json:"satuan_baru" gorm:"size:150"`

	// kenaikan_pangkat
	PangkatLama    string `json:"pangkat_lama" gorm:"size:60"`
	PangkatBaru    string `json:"pangkat_baru" gorm:"size:60"`
	TmtPangkatBaru string `json:"tmt_pangkat_baru" gorm:"size:10"`

	// koreksi
	FieldName string `json:"field_name" gorm:"size:50"`
	NilaiLama string `json:"nilai_lama" gorm:"type:text"`
	NilaiBaru string `json:"nilai_baru" gorm:"type:text"`

	Alasan     string `json:"alasan" gorm:"type:text"`
	Keterangan string `json:"keterangan" gorm:"type:text"`

	Status             string     `json:"status" gorm:"size:20;index;default:pending"`
	CatatanVerifikator string     `json:"catatan_verifikator" gorm:"type:text"`
	CreatedBy          string     `json:"created_by" gorm:"size:36"`
	CreatedByName      string     `json:"created_by_name" gorm:"size:150"`
	VerifiedBy         string     `json:"verified_by" gorm:"size:36"`
	VerifiedByName     string     `json:"verified_by_name" gorm:"size:150"`
	VerifiedAt         *time.Time `json:"verified_at"`
}
