package auth

import (
	"context"
	"testing"
	"time"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]*model.User

func (f fakeUsers) FindByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("User tidak ditemukan")
}

func strPtr(s string) *string { return &s }

func newTestGuard(users fakeUsers) (*Guard, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewGuard(tokens, users), tokens
}

func TestResolve(t *testing.T) {
	active := &model.User{Base: model.Base{ID: "u1"}, Username: "staff1", Role: model.RoleStaff, IsActive: true}
	inactive := &model.User{Base: model.Base{ID: "u2"}, Username: "old", Role: model.RoleStaff, IsActive: false}
	guard, tokens := newTestGuard(fakeUsers{"u1": active, "u2": inactive})
	ctx := context.Background()

	tok, err := tokens.Issue("u1", model.RoleStaff)
	require.NoError(t, err)
	user, err := guard.Resolve(ctx, "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, "staff1", user.Username)

	inactiveTok, _ := tokens.Issue("u2", model.RoleStaff)
	goneTok, _ := tokens.Issue("u-deleted", model.RoleStaff)

	for name, header := range map[string]string{
		"missing":    "",
		"no scheme":  tok,
		"basic auth": "Basic abc",
		"garbage":    "Bearer abc.def.ghi",
		"inactive":   "Bearer " + inactiveTok,
		"unknown":    "Bearer " + goneTok,
	} {
		_, err := guard.Resolve(ctx, header)
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated, name)
	}
}

func TestResolveExpiredMessage(t *testing.T) {
	user := &model.User{Base: model.Base{ID: "u1"}, Role: model.RoleAdmin, IsActive: true}
	guard, tokens := newTestGuard(fakeUsers{"u1": user})

	past := time.Now().Add(-48 * time.Hour)
	tokens.WithClock(func() time.Time { return past })
	tok, err := tokens.Issue("u1", model.RoleAdmin)
	require.NoError(t, err)
	tokens.WithClock(time.Now)

	_, err = guard.Resolve(context.Background(), "Bearer "+tok)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.Equal(t, "Token sudah kadaluarsa", apperr.Message(err))
}

func TestRequire(t *testing.T) {
	verifier := &model.User{Role: model.RoleVerifier}

	assert.NoError(t, Require(verifier, model.RoleVerifier))
	assert.ErrorIs(t, Require(verifier, model.RoleAdmin, model.RoleStaff), apperr.ErrForbidden)
	assert.ErrorIs(t, Require(nil, model.RoleAdmin), apperr.ErrUnauthenticated)
}

func TestRowLevelScope(t *testing.T) {
	personel := &model.User{Role: model.RolePersonnel, NRP: strPtr("999")}
	orphan := &model.User{Role: model.RolePersonnel}
	staff := &model.User{Role: model.RoleStaff}

	assert.NoError(t, CanAccessNRP(personel, "999"))
	assert.ErrorIs(t, CanAccessNRP(personel, "12345"), apperr.ErrForbidden)
	assert.ErrorIs(t, CanAccessNRP(orphan, ""), apperr.ErrForbidden)
	assert.NoError(t, CanAccessNRP(staff, "12345"))

	nrp, scoped := ScopeNRP(personel)
	assert.True(t, scoped)
	assert.Equal(t, "999", nrp)

	nrp, scoped = ScopeNRP(orphan)
	assert.True(t, scoped)
	assert.Empty(t, nrp)

	_, scoped = ScopeNRP(staff)
	assert.False(t, scoped)
}
