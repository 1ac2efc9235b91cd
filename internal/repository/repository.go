package repository

import (
	"errors"
	"strings"

	"siparhanud-backend/internal/apperr"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page adalah parameter skip/limit yang dipakai semua endpoint list.
type Page struct {
	Skip  int
	Limit int
}

// Normalize menerapkan default dan batas maksimal.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	p = p.Normalize()
	return db.Offset(p.Skip).Limit(p.Limit)
}

// whereLike menambahkan filter substring case-insensitive yang portabel di mysql, postgres dan sqlite.
// Lebih dari satu kolom digabung dengan OR.
func whereLike(db *gorm.DB, value string, columns ...string) *gorm.DB {
	pattern := "%" + strings.ToLower(value) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
