package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bansosku_backend/internals/databases/testdb"
	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	pengajuanModel "bansosku_backend/internals/features/keuangan/pengajuan/model"
)

func seedPengajuan(t *testing.T, db *gorm.DB) *pengajuanModel.PengajuanDanaModel {
	t.Helper()
	p, err := Create(db, CreatePengajuanInput{
		Jumlah:    2_000_000,
		Tujuan:    "Bantuan sembako lansia",
		Kebutuhan: "Beras dan minyak goreng",
		Bulan:     6,
		Tahun:     2024,
		Petugas:   "Budi Santoso",
	})
	require.NoError(t, err)
	return p
}

func TestCreatePengajuanStatusAwalDiproses(t *testing.T) {
	db := testdb.Open(t)
	p := seedPengajuan(t, db)
	assert.Equal(t, pengajuanModel.StatusDiproses, p.PengajuanStatus)
}

func TestCreatePengajuanInputTidakValid(t *testing.T) {
	db := testdb.Open(t)

	_, err := Create(db, CreatePengajuanInput{Jumlah: 0, Bulan: 6, Tahun: 2024})
	assert.ErrorIs(t, err, ErrJumlahTidakValid)

	_, err = Create(db, CreatePengajuanInput{Jumlah: 1000, Bulan: 13, Tahun: 2024})
	assert.ErrorIs(t, err, ErrBulanTidakValid)
}

func TestApprovePengajuan(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&danaModel.SaldoModel{SaldoJumlah: 1_000_000}).Error)
	p := seedPengajuan(t, db)

	approved, err := Approve(db, p.PengajuanID, "Administrator")
	require.NoError(t, err)
	assert.Equal(t, pengajuanModel.StatusDisetujui, approved.PengajuanStatus)

	// Saldo naik sebesar jumlah pengajuan
	var saldo danaModel.SaldoModel
	require.NoError(t, db.First(&saldo).Error)
	assert.EqualValues(t, 3_000_000, saldo.SaldoJumlah)

	// Tepat satu entri pemasukan dengan keterangan tujuan + periode
	var entries []danaModel.RiwayatDanaModel
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, danaModel.JenisPemasukan, entries[0].RiwayatDanaJenis)
	assert.EqualValues(t, 2_000_000, entries[0].RiwayatDanaJumlah)
	assert.Equal(t, "Pengajuan dana disetujui: Bantuan sembako lansia (6/2024)", entries[0].RiwayatDanaKeterangan)
	assert.Equal(t, "Administrator", entries[0].RiwayatDanaPetugas)
}

func TestApprovePengajuanDuaKaliDitolak(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&danaModel.SaldoModel{SaldoJumlah: 0}).Error)
	p := seedPengajuan(t, db)

	_, err := Approve(db, p.PengajuanID, "Administrator")
	require.NoError(t, err)

	_, err = Approve(db, p.PengajuanID, "Administrator")
	assert.ErrorIs(t, err, ErrPengajuanSudahDisetujui)

	// Approve kedua tidak menambah saldo maupun buku besar
	var saldo danaModel.SaldoModel
	require.NoError(t, db.First(&saldo).Error)
	assert.EqualValues(t, 2_000_000, saldo.SaldoJumlah)

	var count int64
	db.Model(&danaModel.RiwayatDanaModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApprovePengajuanTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	_, err := Approve(db, uuid.New(), "Administrator")
	assert.ErrorIs(t, err, ErrPengajuanTidakDitemukan)
}
