package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

var allowedExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

type DokumenUsecase struct {
	docs     repository.DokumenRepository
	personel repository.PersonelRepository
	store    storage.BlobStore
	audit    audit.Recorder
	log      *logger.Logger
	maxBytes int64
}

func NewDokumenUsecase(docs repository.DokumenRepository, personel repository.PersonelRepository, store storage.BlobStore, recorder audit.Recorder, log *logger.Logger, maxBytes int64) *DokumenUsecase {
	return &DokumenUsecase{
		docs:     docs,
		personel: personel,
		store:    store,
		audit:    recorder,
		log:      log,
		maxBytes: maxBytes,
	}
}

type UploadInput struct {
	NRP          string
	JenisDokumen string
	Keterangan   string
	FileName     string
	ContentType  string
	Data         []byte
}

func checksum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (u *DokumenUsecase) Upload(ctx context.Context, user *model.User, ip string, in UploadInput) (*model.Dokumen, error) {
	// 1. Validasi jenis dokumen dan file
	if in.JenisDokumen == "" {
		return nil, apperr.Unprocessable("jenis_dokumen wajib diisi")
	}
	if !model.ValidJenisDokumen(in.JenisDokumen) {
		return nil, apperr.Validation("jenis_dokumen tidak valid")
	}
	ext := strings.ToLower(filepath.Ext(in.FileName))
	if !allowedExtensions[ext] {
		return nil, apperr.Validation("Tipe file tidak diizinkan")
	}
	if len(in.Data) == 0 {
		return nil, apperr.Validation("File kosong")
	}
	if int64(len(in.Data)) > u.maxBytes {
		return nil, apperr.Validation(fmt.Sprintf("Ukuran file maksimal %d MB", u.maxBytes/(1024*1024)))
	}

	// 2. Personel pemilik harus ada
	exists, err := u.personel.Exists(ctx, in.NRP)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Personel tidak ditemukan")
	}

	// 3. Simpan isi file
	id := uuid.NewString()
	key := in.NRP + "/" + id + ext
	if err := u.store.Put(ctx, key, in.Data, in.ContentType); err != nil {
		return nil, err
	}

	// 4. Simpan record
	doc := &model.Dokumen{
		ID:             id,
		NRP:            in.NRP,
		JenisDokumen:   in.JenisDokumen,
		Keterangan:     in.Keterangan,
		NamaFile:       filepath.Base(in.FileName),
		StoredName:     key,
		FileSize:       int64(len(in.Data)),
		FileType:       strings.TrimPrefix(ext, "."),
		ContentType:    in.ContentType,
		Checksum:       checksum(in.Data),
		UploadedBy:     user.ID,
		UploadedByName: displayName(user),
		CreatedAt:      time.Now().UTC(),
	}
	if err := u.docs.Create(ctx, doc); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			u.log.Errorf(delErr, "gagal menghapus file yatim %s", key)
		}
		return nil, err
	}

	u.audit.Record(ctx, audit.ActorFrom(user, ip), audit.ActionUploadDokumen, audit.EntityDokumen, doc.ID, nil, doc)
	return doc, nil
}

func (u *DokumenUsecase) List(ctx context.Context, user *model.User, nrp string) ([]model.Dokumen, error) {
	if err := auth.CanAccessNRP(user, nrp); err != nil {
		return nil, err
	}
	return u.docs.ListByNRP(ctx, nrp)
}

// Download mengembalikan metadata dan isi file yang sudah dicocokkan checksum-nya.
func (u *DokumenUsecase) Download(ctx context.Context, user *model.User, id string) (*model.Dokumen, []byte, error) {
	doc, err := u.docs.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err := auth.CanAccessNRP(user, doc.NRP); err != nil {
		return nil, nil, err
	}

	data, err := u.store.Get(ctx, doc.StoredName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, apperr.NotFound("File tidak ditemukan")
		}
		return nil, nil, err
	}
	if doc.Checksum != "" && checksum(data) != doc.Checksum {
		return nil, nil, fmt.Errorf("checksum dokumen %s tidak cocok", doc.ID)
	}
	return doc, data, nil
}

func (u *DokumenUsecase) Delete(ctx context.Context, user *model.User, ip, id string) error {
	doc, err := u.docs.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.docs.Delete(ctx, id); err != nil {
		return err
	}
	// File yang sudah hilang dari storage tidak menggagalkan penghapusan record
	if err := u.store.Delete(ctx, doc.StoredName); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
		u.log.Errorf(err, "gagal menghapus file %s", doc.StoredName)
	}

	u.audit.Record(ctx, audit.ActorFrom(user, ip), audit.ActionDeleteDokumen, audit.EntityDokumen, id, doc, nil)
	return nil
}
