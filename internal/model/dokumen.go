package model

import "time"

var JenisDokumenList = []string{"SK_PANGKAT", "SK_JABATAN", "IJAZAH", "SERTIFIKAT", "KTP", "KK", "FOTO", "LAINNYA"}

func ValidJenisDokumen(j string) bool { return contains(JenisDokumenList, j) }

type Dokumen struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	NRP            string    `json:"nrp" gorm:"column:nrp;size:32;index;not null"`
	JenisDokumen   string    `json:"jenis_dokumen" gorm:"size:30;index"`
	Keterangan     string    `json:"keterangan" gorm:"type:text"`
	NamaFile       string    `json:"nama_file" gorm:"size:255"`
	StoredName     string    `json:"-" gorm:"size:255;not null"`
	FileSize       int64     `json:"file_size"`
	FileType       string    `json:"file_type" gorm:"size:10"`
	ContentType    string    `json:"content_type" gorm:"size:100"`
	Checksum       string    `json:"checksum" gorm:"size:64"`
	UploadedBy     string    `json:"uploaded_by" gorm:"size:36"`
	UploadedByName string    `json:"uploaded_by_name" gorm:"size:150"`
	CreatedAt      time.Time `json:"created_at"`
}
