// Package apperr berisi taksonomi error aplikasi dan pemetaannya ke status HTTP.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrAlreadyResolved = errors.New("already resolved")
	ErrValidation      = errors.New("validation")
	ErrUnprocessable   = errors.New("unprocessable")
)

// Error membawa jenis error (salah satu sentinel di atas) dan pesan untuk pengguna.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Unauthenticated(msg string) error { return New(ErrUnauthenticated, msg) }
func Forbidden(msg string) error       { return New(ErrForbidden, msg) }
func NotFound(msg string) error        { return New(ErrNotFound, msg) }
func Conflict(msg string) error        { return New(ErrConflict, msg) }
func AlreadyResolved(msg string) error { return New(ErrAlreadyResolved, msg) }
func Validation(msg string) error      { return New(ErrValidation, msg) }
func Unprocessable(msg string) error   { return New(ErrUnprocessable, msg) }

// Status memetakan error ke kode HTTP. Error di luar taksonomi menjadi 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrAlreadyResolved), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Message mengembalikan pesan yang aman ditampilkan ke pengguna.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Terjadi kesalahan pada server"
}

// IsKnown melaporkan apakah err termasuk taksonomi aplikasi.
func IsKnown(err error) bool {
	return Status(err) != http.StatusInternalServerError
}
