package database

import (
	"fmt"

	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"

	"gorm.io/gorm"
)

type seedUser struct {
	Username    string
	Password    string
	NamaLengkap string
	Role        string
	NRP         string
}

var defaultUsers = []seedUser{
	{"admin", "admin123", "Administrator", model.RoleAdmin, ""},
	{"staff1", "staff123", "Staf Kepegawaian 1", model.RoleStaff, ""},
	{"verifikator1", "verif123", "Pejabat Verifikator", model.RoleVerifier, ""},
	{"pimpinan", "pimpin123", "Pimpinan Satuan", model.RoleLeader, ""},
	{"personel1", "personel123", "Fredy Jaguar", model.RolePersonnel, "11120017460989"},
}

// pangkat urut dari tertinggi, urutan dipakai untuk sorting di frontend
var pangkatSeed = []model.Referensi{
	{Kode: "JEN", Nama: "JENDERAL", Kategori: model.KategoriPerwira, Golongan: "PATI"},
	{Kode: "LJN", Nama: "LETJEN", Kategori: model.KategoriPerwira, Golongan: "PATI"},
	{Kode: "MJN", Nama: "MAYJEN", Kategori: model.KategoriPerwira, Golongan: "PATI"},
	{Kode: "BGJ", Nama: "BRIGJEN", Kategori: model.KategoriPerwira, Golongan: "PATI"},
	{Kode: "KOL", Nama: "KOLONEL", Kategori: model.KategoriPerwira, Golongan: "PAMEN"},
	{Kode: "LKL", Nama: "LETKOL", Kategori: model.KategoriPerwira, Golongan: "PAMEN"},
	{Kode: "MAY", Nama: "MAYOR", Kategori: model.KategoriPerwira, Golongan: "PAMEN"},
	{Kode: "KAP", Nama: "KAPTEN", Kategori: model.KategoriPerwira, Golongan: "PAMA"},
	{Kode: "LTU", Nama: "LETTU", Kategori: model.KategoriPerwira, Golongan: "PAMA"},
	{Kode: "LDA", Nama: "LETDA", Kategori: model.KategoriPerwira, Golongan: "PAMA"},
	{Kode: "PLT", Nama: "PELTU", Kategori: model.KategoriBintara, Golongan: "BINTARA TINGGI"},
	{Kode: "PLD", Nama: "PELDA", Kategori: model.KategoriBintara, Golongan: "BINTARA TINGGI"},
	{Kode: "SMA", Nama: "SERMA", Kategori: model.KategoriBintara, Golongan: "BINTARA"},
	{Kode: "SKA", Nama: "SERKA", Kategori: model.KategoriBintara, Golongan: "BINTARA"},
	{Kode: "STU", Nama: "SERTU", Kategori: model.KategoriBintara, Golongan: "BINTARA"},
	{Kode: "SDA", Nama: "SERDA", Kategori: model.KategoriBintara, Golongan: "BINTARA"},
	{Kode: "KKA", Nama: "KOPKA", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "KTU", Nama: "KOPTU", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "KDA", Nama: "KOPDA", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "PRK", Nama: "PRAKA", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "PTU", Nama: "PRATU", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "PDA", Nama: "PRADA", Kategori: model.KategoriTamtama, Golongan: "TAMTAMA"},
	{Kode: "IV/A", Nama: "PEMBINA", Kategori: model.KategoriPNS, Golongan: "IV/a"},
	{Kode: "III/D", Nama: "PENATA TK. I", Kategori: model.KategoriPNS, Golongan: "III/d"},
	{Kode: "III/C", Nama: "PENATA", Kategori: model.KategoriPNS, Golongan: "III/c"},
	{Kode: "III/B", Nama: "PENATA MUDA TK. I", Kategori: model.KategoriPNS, Golongan: "III/b"},
	{Kode: "III/A", Nama: "PENATA MUDA", Kategori: model.KategoriPNS, Golongan: "III/a"},
	{Kode: "II/D", Nama: "PENGATUR TK. I", Kategori: model.KategoriPNS, Golongan: "II/d"},
	{Kode: "II/C", Nama: "PENGATUR", Kategori: model.KategoriPNS, Golongan: "II/c"},
}

var simpleSeed = map[string][][2]string{
	model.RefKorps: {
		{"ARH", "Artileri Pertahanan Udara"},
		{"INF", "Infanteri"},
		{"KAV", "Kavaleri"},
		{"ARM", "Artileri Medan"},
		{"CZI", "Zeni"},
		{"CHB", "Perhubungan"},
		{"CPL", "Peralatan"},
		{"CKM", "Kesehatan"},
		{"CAJ", "Ajudan Jenderal"},
	},
	model.RefAgama: {
		{"ISLAM", "Islam"},
		{"KRISTEN", "Kristen Protestan"},
		{"KATOLIK", "Katolik"},
		{"HINDU", "Hindu"},
		{"BUDDHA", "Buddha"},
		{"KONGHUCU", "Konghucu"},
	},
	model.RefJenisDiklat: {
		{"DIKBANGUM", "Pendidikan Pengembangan Umum"},
		{"DIKBANGSPES", "Pendidikan Pengembangan Spesialisasi"},
	},
	model.RefSatuan: {
		{"KOHANUDNAS", "Kohanudnas"},
		{"PUSSENARHANUD", "Pussenarhanud"},
		{"YONARHANUD1", "Yonarhanud 1"},
		{"YONARHANUD2", "Yonarhanud 2"},
	},
	model.RefJabatan: {
		{"DANYON", "Komandan Batalyon"},
		{"WADANYON", "Wakil Komandan Batalyon"},
		{"DANRAI", "Komandan Kompi"},
		{"DANTON", "Komandan Peleton"},
		{"BATI", "Bintara Tinggi"},
	},
}

// SeedAll mengisi akun default, satu personel contoh dan data referensi.
// Aman dijalankan berulang kali karena semua insert memakai FirstOrCreate.
func SeedAll(db *gorm.DB, log *logger.Logger) error {
	// 1. Seed Referensi
	for i, p := range pangkatSeed {
		p.Tipe = model.RefPangkat
		p.Urutan = i + 1
		if err := db.Where(model.Referensi{Tipe: p.Tipe, Kode: p.Kode}).FirstOrCreate(&p).Error; err != nil {
			return fmt.Errorf("seed pangkat %s: %w", p.Kode, err)
		}
	}
	for _, tipe := range model.ReferensiTipeList {
		for i, row := range simpleSeed[tipe] {
			ref := model.Referensi{Tipe: tipe, Kode: row[0], Nama: row[1], Urutan: i + 1}
			if err := db.Where(model.Referensi{Tipe: tipe, Kode: ref.Kode}).FirstOrCreate(&ref).Error; err != nil {
				return fmt.Errorf("seed %s %s: %w", tipe, ref.Kode, err)
			}
		}
	}

	// 2. Seed Personel contoh (terhubung ke akun personel1)
	personel := model.Personel{
		NRP:             "11120017460989",
		NamaLengkap:     "Fredy Jaguar",
		Kategori:        model.KategoriBintara,
		Pangkat:         "SERTU",
		Korps:           "ARH",
		JabatanSekarang: "Bati",
		SatuanInduk:     "Yonarhanud 1",
		StatusPersonel:  model.StatusAktif,
		JenisKelamin:    "L",
		Agama:           "Islam",
	}
	if err := db.Where(model.Personel{NRP: personel.NRP}).FirstOrCreate(&personel).Error; err != nil {
		return fmt.Errorf("seed personel: %w", err)
	}

	// 3. Seed Akun
	for _, su := range defaultUsers {
		hashed, err := auth.HashPassword(su.Password)
		if err != nil {
			return err
		}
		user := model.User{
			Username:    su.Username,
			NamaLengkap: su.NamaLengkap,
			Role:        su.Role,
			Password:    hashed,
			IsActive:    true,
		}
		if su.NRP != "" {
			nrp := su.NRP
			user.NRP = &nrp
		}
		// akun yang sudah ada tidak disentuh, password hasil ganti user tetap berlaku
		res := db.Where(model.User{Username: su.Username}).FirstOrCreate(&user)
		if res.Error != nil {
			return fmt.Errorf("seed user %s: %w", su.Username, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Infof("User %s (%s) dibuat", su.Username, su.Role)
		}
	}

	log.Info("Seeding selesai")
	return nil
}
