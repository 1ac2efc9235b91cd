package usecase_test

import (
	"context"
	"testing"
	"time"

	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	users    repository.UserRepository
	personel repository.PersonelRepository
	pengaj   repository.PengajuanRepository
	audits   repository.AuditRepository
	recorder *audit.Logger
	tokens   *auth.TokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	audits := repository.NewAuditRepository(db)
	return &fixture{
		db:       db,
		users:    repository.NewUserRepository(db),
		personel: repository.NewPersonelRepository(db),
		pengaj:   repository.NewPengajuanRepository(db),
		audits:   audits,
		recorder: audit.NewLogger(audits, logger.Nop()),
		tokens:   auth.NewTokenService("rahasia-test", time.Hour),
	}
}

func (f *fixture) user(t *testing.T, username, password, role string, nrp string) *model.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	u := &model.User{Username: username, NamaLengkap: username, Role: role, Password: hashed, IsActive: true}
	if nrp != "" {
		u.NRP = &nrp
	}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) seedPersonel(t *testing.T, nrp, nama, pangkat string) *model.Personel {
	t.Helper()
	p := &model.Personel{NRP: nrp, NamaLengkap: nama, Pangkat: pangkat, JabatanSekarang: "Danton", SatuanInduk: "Yonarhanud 1"}
	require.NoError(t, f.personel.Create(context.Background(), p))
	return p
}

func (f *fixture) actions(t *testing.T) []string {
	t.Helper()
	logs, _, err := f.audits.List(context.Background(), repository.AuditFilter{})
	require.NoError(t, err)

	out := make([]string, 0, len(logs))
	// List mengembalikan terbaru dulu, dibalik agar kronologis
	for i := len(logs) - 1; i >= 0; i-- {
		out = append(out, logs[i].Action)
	}
	return out
}
