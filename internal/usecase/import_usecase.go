package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/importer"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
)

const maxImportErrors = 10

type ImportUsecase struct {
	personel repository.PersonelRepository
	audit    audit.Recorder
}

func NewImportUsecase(personel repository.PersonelRepository, recorder audit.Recorder) *ImportUsecase {
	return &ImportUsecase{personel: personel, audit: recorder}
}

type ImportResult struct {
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

func (r *ImportResult) fail(err error) {
	r.Failed++
	if len(r.Errors) < maxImportErrors {
		r.Errors = append(r.Errors, err.Error())
	}
}

// ImportPersonel memasukkan personel dari file Excel. Kegagalan per baris tidak
// menghentikan baris lain. NRP yang sudah ada dilewati.
func (u *ImportUsecase) ImportPersonel(ctx context.Context, user *model.User, ip, filename string, r io.Reader) (*ImportResult, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".xlsx" {
		return nil, apperr.Validation("File harus berformat Excel (.xlsx)")
	}

	rows, err := importer.ReadXLSX(r)
	if err != nil {
		return nil, apperr.Validation("File Excel tidak dapat dibaca")
	}
	parsed, err := importer.Parse(rows)
	if err != nil {
		if errors.Is(err, importer.ErrHeaderNotFound) {
			return nil, apperr.Validation("Kolom NRP/NAMA tidak ditemukan")
		}
		return nil, err
	}

	res := &ImportResult{Errors: []string{}}
	for _, rowErr := range parsed.Errors {
		res.fail(rowErr)
	}

	nrps := make([]string, 0, len(parsed.Records))
	for _, rec := range parsed.Records {
		nrps = append(nrps, rec.Personel.NRP)
	}
	existing, err := u.personel.ExistingNRPs(ctx, nrps)
	if err != nil {
		return nil, err
	}

	for _, rec := range parsed.Records {
		p := rec.Personel
		if existing[p.NRP] {
			res.Skipped++
			continue
		}

		p.CreatedBy = user.ID
		if err := u.personel.Create(ctx, &p); err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				res.Skipped++
				continue
			}
			res.fail(importer.RowError{Row: rec.Row, Message: err.Error()})
			continue
		}
		// NRP ganda di dalam file yang sama
		existing[p.NRP] = true
		res.Imported++
	}

	res.Message = fmt.Sprintf("Import selesai. %d data berhasil diimport, %d data dilewati", res.Imported, res.Skipped)

	u.audit.Record(ctx, audit.ActorFrom(user, ip), audit.ActionImportPersonel, audit.EntityPersonel, "", nil, map[string]int{
		"imported": res.Imported,
		"skipped":  res.Skipped,
		"failed":   res.Failed,
	})
	return res, nil
}
