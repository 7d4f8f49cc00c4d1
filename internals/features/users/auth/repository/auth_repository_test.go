package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bansosku_backend/internals/databases/testdb"
	authModel "bansosku_backend/internals/features/users/auth/model"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
)

func TestIsUsernameTaken(t *testing.T) {
	db := testdb.Open(t)

	taken, err := IsUsernameTaken(db, "petugas1")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, CreatePetugas(db, &petugasModel.PetugasModel{
		PetugasUsername: "petugas1",
		PetugasPassword: "hash",
		PetugasNama:     "Budi Santoso",
		PetugasRole:     "petugas",
		PetugasIsActive: true,
	}))

	taken, err = IsUsernameTaken(db, "petugas1")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestCleanupExpiredBlacklist(t *testing.T) {
	db := testdb.Open(t)

	require.NoError(t, BlacklistToken(db, "token-kedaluwarsa", -time.Hour))
	require.NoError(t, BlacklistToken(db, "token-masih-aktif", time.Hour))

	deleted, err := CleanupExpiredBlacklist(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var sisa []authModel.TokenBlacklist
	require.NoError(t, db.Find(&sisa).Error)
	require.Len(t, sisa, 1)
	assert.Equal(t, "token-masih-aktif", sisa[0].Token)
}

func TestListRiwayatLoginTerbatas(t *testing.T) {
	db := testdb.Open(t)

	p := &petugasModel.PetugasModel{
		PetugasUsername: "petugas1",
		PetugasPassword: "hash",
		PetugasNama:     "Budi Santoso",
		PetugasRole:     "petugas",
		PetugasIsActive: true,
	}
	require.NoError(t, CreatePetugas(db, p))

	for i := 0; i < 5; i++ {
		require.NoError(t, CreateRiwayatLogin(db, &authModel.RiwayatLoginModel{
			RiwayatLoginPetugas: p.PetugasID,
			RiwayatLoginNama:    p.PetugasNama,
			RiwayatLoginRole:    p.PetugasRole,
		}))
	}

	list, err := ListRiwayatLogin(db, 3, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	// Halaman berikutnya: sisanya
	list, err = ListRiwayatLogin(db, 3, 3)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	total, err := CountRiwayatLogin(db)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
}
