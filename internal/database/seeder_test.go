package database

import (
	"testing"

	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAllIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t)

	require.NoError(t, SeedAll(db, logger.Nop()))
	require.NoError(t, SeedAll(db, logger.Nop()))

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.EqualValues(t, len(defaultUsers), users)

	var pangkat int64
	require.NoError(t, db.Model(&model.Referensi{}).Where("tipe = ?", model.RefPangkat).Count(&pangkat).Error)
	assert.EqualValues(t, len(pangkatSeed), pangkat)

	var admin model.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(admin.Password, "admin123"))

	var p1 model.User
	require.NoError(t, db.Where("username = ?", "personel1").First(&p1).Error)
	assert.Equal(t, "11120017460989", p1.OwnNRP())

	var personel model.Personel
	require.NoError(t, db.Where("nrp = ?", p1.OwnNRP()).First(&personel).Error)
	assert.Equal(t, "Fredy Jaguar", personel.NamaLengkap)
}

func TestSeedAllKeepsChangedPassword(t *testing.T) {
	db := testutil.OpenDB(t)
	require.NoError(t, SeedAll(db, logger.Nop()))

	hashed, err := auth.HashPassword("rahasia-baru")
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "staff1").Update("password", hashed).Error)

	require.NoError(t, SeedAll(db, logger.Nop()))

	var staff model.User
	require.NoError(t, db.Where("username = ?", "staff1").First(&staff).Error)
	assert.True(t, auth.CheckPassword(staff.Password, "rahasia-baru"))
}
