package usecase

import (
	"context"
	"errors"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
)

const minPasswordLength = 6

type UserUsecase struct {
	repo   repository.UserRepository
	tokens *auth.TokenService
	audit  audit.Recorder
}

func NewUserUsecase(repo repository.UserRepository, tokens *auth.TokenService, recorder audit.Recorder) *UserUsecase {
	return &UserUsecase{repo: repo, tokens: tokens, audit: recorder}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (u *UserUsecase) Login(ctx context.Context, username, password, ip string) (*LoginResult, error) {
	// 1. Cari user berdasarkan username
	user, err := u.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthenticated("Username atau password salah")
		}
		return nil, err
	}

	// 2. Bandingkan password (input vs hash di DB)
	if !auth.CheckPassword(user.Password, password) {
		return nil, apperr.Unauthenticated("Username atau password salah")
	}
	if !user.IsActive {
		return nil, apperr.Unauthenticated("User tidak aktif")
	}

	// 3. Buat token
	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, audit.ActorFrom(user, ip), audit.ActionLogin, audit.EntityUser, user.ID, nil, nil)
	return &LoginResult{Token: token, User: user}, nil
}

func (u *UserUsecase) ChangePassword(ctx context.Context, actor audit.Actor, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperr.Validation("Password baru minimal 6 karakter")
	}

	user, err := u.repo.FindByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.Password, oldPassword) {
		return apperr.Validation("Password lama salah")
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := u.repo.Update(ctx, user.ID, map[string]interface{}{"password": hashed}); err != nil {
		return err
	}

	u.audit.Record(ctx, actor, audit.ActionChangePassword, audit.EntityUser, user.ID, nil, nil)
	return nil
}

type CreateUserInput struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	NamaLengkap string  `json:"nama_lengkap"`
	Role        string  `json:"role"`
	NRP         *string `json:"nrp"`
}

func (u *UserUsecase) Create(ctx context.Context, actor audit.Actor, in CreateUserInput) (*model.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, apperr.Validation("Username dan password wajib diisi")
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperr.Validation("Password minimal 6 karakter")
	}
	if !model.ValidRole(in.Role) {
		return nil, apperr.Validation("Role tidak valid")
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:    in.Username,
		NamaLengkap: in.NamaLengkap,
		Role:        in.Role,
		NRP:         emptyToNil(in.NRP),
		Password:    hashed,
		IsActive:    true,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actor, audit.ActionCreateUser, audit.EntityUser, user.ID, nil, user)
	return user, nil
}

type UpdateUserInput struct {
	NamaLengkap *string `json:"nama_lengkap"`
	Role        *string `json:"role"`
	NRP         *string `json:"nrp"`
	IsActive    *bool   `json:"is_active"`
}

func (u *UserUsecase) Update(ctx context.Context, actor audit.Actor, id string, in UpdateUserInput) (*model.User, error) {
	before, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.NamaLengkap != nil {
		fields["nama_lengkap"] = *in.NamaLengkap
	}
	if in.Role != nil {
		if !model.ValidRole(*in.Role) {
			return nil, apperr.Validation("Role tidak valid")
		}
		fields["role"] = *in.Role
	}
	if in.NRP != nil {
		fields["nrp"] = emptyToNil(in.NRP)
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("Tidak ada data yang diubah")
	}

	after, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	u.audit.Record(ctx, actor, audit.ActionUpdateUser, audit.EntityUser, id, before, after)
	return after, nil
}

func (u *UserUsecase) ResetPassword(ctx context.Context, actor audit.Actor, id, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return apperr.Validation("Password baru minimal 6 karakter")
	}
	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, err := u.repo.Update(ctx, id, map[string]interface{}{"password": hashed}); err != nil {
		return err
	}

	u.audit.Record(ctx, actor, audit.ActionResetPassword, audit.EntityUser, id, nil, nil)
	return nil
}

// Deactivate adalah soft delete: user tidak pernah dihapus dari tabel.
func (u *UserUsecase) Deactivate(ctx context.Context, actor audit.Actor, id string) error {
	if id == actor.ID {
		return apperr.Validation("Tidak dapat menonaktifkan akun sendiri")
	}
	before, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	after, err := u.repo.Update(ctx, id, map[string]interface{}{"is_active": false})
	if err != nil {
		return err
	}

	u.audit.Record(ctx, actor, audit.ActionDeactivateUser, audit.EntityUser, id, before, after)
	return nil
}

func (u *UserUsecase) Get(ctx context.Context, id string) (*model.User, error) {
	return u.repo.FindByID(ctx, id)
}

func (u *UserUsecase) List(ctx context.Context, filter repository.UserFilter) ([]model.User, int64, error) {
	return u.repo.List(ctx, filter)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
