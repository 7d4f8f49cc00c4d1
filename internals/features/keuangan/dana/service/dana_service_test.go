package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bansosku_backend/internals/databases/testdb"
	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
)

func seedSaldoAwal(t *testing.T, db *gorm.DB, jumlah int64) {
	t.Helper()
	require.NoError(t, db.Create(&danaModel.SaldoModel{SaldoJumlah: jumlah}).Error)
}

func TestPostTransactionPemasukan(t *testing.T) {
	db := testdb.Open(t)
	seedSaldoAwal(t, db, 1_000_000)

	entry, err := PostTransaction(db, PostTransactionInput{
		Jenis:      danaModel.JenisPemasukan,
		Jumlah:     250_000,
		Keterangan: "Bantuan provinsi",
		Petugas:    "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, danaModel.JenisPemasukan, entry.RiwayatDanaJenis)

	summary, err := GetSummary(db)
	require.NoError(t, err)
	assert.EqualValues(t, 1_250_000, summary.Saldo)
	assert.EqualValues(t, 250_000, summary.TotalPemasukan)
	assert.Zero(t, summary.TotalPengeluaran)
}

func TestPostTransactionPengeluaranMelebihiSaldo(t *testing.T) {
	db := testdb.Open(t)
	seedSaldoAwal(t, db, 100_000)

	_, err := PostTransaction(db, PostTransactionInput{
		Jenis:      danaModel.JenisPengeluaran,
		Jumlah:     150_000,
		Keterangan: "Operasional",
		Petugas:    "Budi Santoso",
	})
	assert.ErrorIs(t, err, ErrSaldoTidakCukup)

	// Ditolak tanpa mutasi: saldo utuh, buku besar kosong.
	summary, err := GetSummary(db)
	require.NoError(t, err)
	assert.EqualValues(t, 100_000, summary.Saldo)

	var count int64
	db.Model(&danaModel.RiwayatDanaModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestPostTransactionPengeluaranPasSaldo(t *testing.T) {
	db := testdb.Open(t)
	seedSaldoAwal(t, db, 100_000)

	_, err := PostTransaction(db, PostTransactionInput{
		Jenis:      danaModel.JenisPengeluaran,
		Jumlah:     100_000,
		Keterangan: "Beli bahan",
		Petugas:    "Budi Santoso",
	})
	require.NoError(t, err)

	summary, err := GetSummary(db)
	require.NoError(t, err)
	assert.Zero(t, summary.Saldo)
	assert.EqualValues(t, 100_000, summary.TotalPengeluaran)
}

func TestPostTransactionInputTidakValid(t *testing.T) {
	db := testdb.Open(t)

	_, err := PostTransaction(db, PostTransactionInput{Jenis: danaModel.JenisPemasukan, Jumlah: 0})
	assert.ErrorIs(t, err, ErrJumlahTidakValid)

	_, err = PostTransaction(db, PostTransactionInput{Jenis: "hibah", Jumlah: 10})
	assert.ErrorIs(t, err, ErrJenisTidakValid)
}

func TestPostTransactionMembuatSaldoBilaBelumAda(t *testing.T) {
	db := testdb.Open(t)

	_, err := PostTransaction(db, PostTransactionInput{
		Jenis:      danaModel.JenisPemasukan,
		Jumlah:     500_000,
		Keterangan: "Dana awal",
		Petugas:    "admin",
	})
	require.NoError(t, err)

	summary, err := GetSummary(db)
	require.NoError(t, err)
	assert.EqualValues(t, 500_000, summary.Saldo)

	// Tetap satu baris saldo tunggal
	var count int64
	db.Model(&danaModel.SaldoModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
