package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bansosku_backend/internals/databases/testdb"
	antrianService "bansosku_backend/internals/features/bansos/antrian/service"
	bahanModel "bansosku_backend/internals/features/bansos/bahan/model"
	distribusiModel "bansosku_backend/internals/features/bansos/distribusi/model"
	wargaModel "bansosku_backend/internals/features/wargas/warga/model"
)

func seedWarga(t *testing.T, db *gorm.DB, nama, nik, status string) *wargaModel.WargaModel {
	t.Helper()
	w := &wargaModel.WargaModel{
		WargaNama:           nama,
		WargaNIK:            nik,
		WargaJumlahKeluarga: 4,
		WargaPenghasilan:    1500000,
		WargaPekerjaan:      "buruh_tani",
		WargaStatus:         status,
		WargaAlamat: wargaModel.AlamatModel{
			Rt:    "01",
			Rw:    "05",
			Jalan: "Jl. Melati",
		},
		WargaTanggalDaftar: datatypes.Date(time.Now()),
	}
	w.SetDefaultValues()
	if status != "" {
		w.WargaStatus = status
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

func seedBahan(t *testing.T, db *gorm.DB, nama string, harga int64, stok int) *bahanModel.BahanPokokModel {
	t.Helper()
	b := &bahanModel.BahanPokokModel{
		BahanNama:        nama,
		BahanKategori:    "bahan_pokok",
		BahanSatuan:      "kg",
		BahanHargaSatuan: harga,
		BahanStok:        stok,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func currentStok(t *testing.T, db *gorm.DB, bahan *bahanModel.BahanPokokModel) int {
	t.Helper()
	var fresh bahanModel.BahanPokokModel
	require.NoError(t, db.First(&fresh, "bahan_id = ?", bahan.BahanID).Error)
	return fresh.BahanStok
}

func TestCreateDistribusiMenurunkanStokDanStatus(t *testing.T) {
	db := testdb.Open(t)
	warga := seedWarga(t, db, "Siti Aminah", "3201234567890001", wargaModel.StatusDisetujui)
	bahan := seedBahan(t, db, "Beras", 12000, 10)

	record, err := Create(db, CreateDistribusiInput{
		BahanID: bahan.BahanID,
		WargaID: warga.WargaID,
		Jumlah:  5,
		Petugas: "Budi Santoso",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, currentStok(t, db, bahan))
	assert.Equal(t, int64(60000), record.DistribusiTotal)
	assert.Equal(t, "Siti Aminah", record.DistribusiPenerima)

	var fresh wargaModel.WargaModel
	require.NoError(t, db.First(&fresh, "warga_id = ?", warga.WargaID).Error)
	assert.Equal(t, wargaModel.StatusMenerima, fresh.WargaStatus)
}

func TestCreateDistribusiStokTidakCukup(t *testing.T) {
	db := testdb.Open(t)
	warga := seedWarga(t, db, "Siti Aminah", "3201234567890001", wargaModel.StatusDisetujui)
	bahan := seedBahan(t, db, "Gula", 14000, 3)

	_, err := Create(db, CreateDistribusiInput{
		BahanID: bahan.BahanID,
		WargaID: warga.WargaID,
		Jumlah:  8,
		Petugas: "Budi Santoso",
	})
	require.Error(t, err)
	assert.Equal(t, "Stok Gula tidak mencukupi. Stok tersedia: 3", err.Error())

	// Transaksi gagal total: stok utuh, tidak ada record distribusi.
	assert.Equal(t, 3, currentStok(t, db, bahan))
	var count int64
	db.Model(&distribusiModel.DistribusiModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateDistribusiWargaBelumDisetujui(t *testing.T) {
	db := testdb.Open(t)
	bahan := seedBahan(t, db, "Beras", 12000, 100)

	for _, status := range []string{wargaModel.StatusCalon, wargaModel.StatusDitolak} {
		warga := seedWarga(t, db, "Warga "+status, fmt.Sprintf("32012345678%05d", len(status)), status)
		_, err := Create(db, CreateDistribusiInput{
			BahanID: bahan.BahanID,
			WargaID: warga.WargaID,
			Jumlah:  1,
			Petugas: "Budi Santoso",
		})
		assert.ErrorIs(t, err, ErrWargaBelumDisetujui, "status %s", status)
	}
	assert.Equal(t, 100, currentStok(t, db, bahan))
}

func TestCreateDistribusiJumlahNol(t *testing.T) {
	db := testdb.Open(t)
	_, err := Create(db, CreateDistribusiInput{Jumlah: 0})
	assert.ErrorIs(t, err, ErrJumlahTidakValid)
}

func TestCreateDistribusiWargaMenerimaTetapBoleh(t *testing.T) {
	db := testdb.Open(t)
	warga := seedWarga(t, db, "Siti Aminah", "3201234567890001", wargaModel.StatusMenerima)
	bahan := seedBahan(t, db, "Telur", 28000, 50)

	_, err := Create(db, CreateDistribusiInput{
		BahanID: bahan.BahanID,
		WargaID: warga.WargaID,
		Jumlah:  2,
		Petugas: "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, 48, currentStok(t, db, bahan))
}

// Skenario lengkap: warga baru disetujui, masuk antrian bulan berjalan,
// menerima distribusi pertama, lalu distribusi kedua melebihi sisa stok
// ditolak tanpa menyentuh apa pun.
func TestAlurPenerimaanBansosLengkap(t *testing.T) {
	db := testdb.Open(t)

	warga := seedWarga(t, db, "Siti Aminah", "3201234567890001", wargaModel.StatusCalon)
	require.NoError(t, db.Model(warga).Update("warga_status", wargaModel.StatusDisetujui).Error)

	antrian, err := antrianService.Create(db, antrianService.CreateAntrianInput{
		Bulan:    6,
		Tahun:    2024,
		WargaIDs: []uuid.UUID{warga.WargaID},
		Petugas:  "Budi Santoso",
	})
	require.NoError(t, err)
	require.Len(t, antrian.Penerima, 1)
	assert.Equal(t, 1, antrian.Penerima[0].PenerimaUrutan)

	bahan := seedBahan(t, db, "Beras", 12000, 10)

	_, err = Create(db, CreateDistribusiInput{
		BahanID: bahan.BahanID,
		WargaID: warga.WargaID,
		Jumlah:  5,
		Petugas: "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, currentStok(t, db, bahan))

	var fresh wargaModel.WargaModel
	require.NoError(t, db.First(&fresh, "warga_id = ?", warga.WargaID).Error)
	assert.Equal(t, wargaModel.StatusMenerima, fresh.WargaStatus)

	// Distribusi kedua melebihi sisa stok: ditolak, stok tetap 5.
	_, err = Create(db, CreateDistribusiInput{
		BahanID: bahan.BahanID,
		WargaID: warga.WargaID,
		Jumlah:  8,
		Petugas: "Budi Santoso",
	})
	require.Error(t, err)
	assert.Equal(t, 5, currentStok(t, db, bahan))
}
