package auth

import (
	"context"
	"errors"
	"strings"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"
)

// UserFinder adalah bagian repository user yang dibutuhkan Guard.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Guard menentukan siapa pemanggil dan apa yang boleh ia akses.
type Guard struct {
	tokens *TokenService
	users  UserFinder
}

func NewGuard(tokens *TokenService, users UserFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Resolve memvalidasi header Authorization dan memuat user aktif.
// Status aktif dicek ulang setiap request karena token tidak bisa dicabut.
func (g *Guard) Resolve(ctx context.Context, authHeader string) (*model.User, error) {
	if authHeader == "" {
		return nil, apperr.Unauthenticated("Token tidak ditemukan")
	}
	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
		return nil, apperr.Unauthenticated("Token tidak valid")
	}

	claims, err := g.tokens.Validate(strings.TrimSpace(tokenString))
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperr.Unauthenticated("Token sudah kadaluarsa")
		}
		return nil, apperr.Unauthenticated("Token tidak valid")
	}

	user, err := g.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthenticated("User tidak ditemukan")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Unauthenticated("User tidak aktif")
	}
	return user, nil
}

// Require gagal Forbidden jika role user tidak termasuk roles.
func Require(user *model.User, roles ...string) error {
	if user == nil {
		return apperr.Unauthenticated("Token tidak ditemukan")
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return apperr.Forbidden("Akses ditolak")
}

// CanAccessNRP menerapkan row-level scoping: role personnel hanya boleh data miliknya.
func CanAccessNRP(user *model.User, nrp string) error {
	if user == nil {
		return apperr.Unauthenticated("Token tidak ditemukan")
	}
	if user.Role != model.RolePersonnel {
		return nil
	}
	if own := user.OwnNRP(); own == "" || own != nrp {
		return apperr.Forbidden("Akses ditolak")
	}
	return nil
}

// ScopeNRP mengembalikan filter NRP paksa untuk query list.
// scoped=true berarti hasil harus dibatasi ke nrp (kosong berarti tidak ada data).
func ScopeNRP(user *model.User) (nrp string, scoped bool) {
	if user == nil || user.Role != model.RolePersonnel {
		return "", false
	}
	return user.OwnNRP(), true
}
