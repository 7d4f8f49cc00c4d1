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
	antrianModel "bansosku_backend/internals/features/bansos/antrian/model"
	wargaModel "bansosku_backend/internals/features/wargas/warga/model"
)

func seedWargaDisetujui(t *testing.T, db *gorm.DB, n int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		w := &wargaModel.WargaModel{
			WargaNama:           fmt.Sprintf("Warga %02d", i+1),
			WargaNIK:            fmt.Sprintf("3201%012d", i+1),
			WargaJumlahKeluarga: 3,
			WargaPenghasilan:    1200000,
			WargaPekerjaan:      "nelayan",
			WargaStatus:         wargaModel.StatusDisetujui,
			WargaAlamat: wargaModel.AlamatModel{
				Rt:    "02",
				Rw:    "03",
				Jalan: "Jl. Kenanga",
			},
			WargaTanggalDaftar: datatypes.Date(time.Now()),
		}
		w.SetDefaultValues()
		w.WargaStatus = wargaModel.StatusDisetujui
		require.NoError(t, db.Create(w).Error)
		ids = append(ids, w.WargaID)
	}
	return ids
}

func urutanOf(t *testing.T, db *gorm.DB, antrianID uuid.UUID) []string {
	t.Helper()
	antrian, err := Get(db, antrianID)
	require.NoError(t, err)
	names := make([]string, 0, len(antrian.Penerima))
	for i, p := range antrian.Penerima {
		require.Equal(t, i+1, p.PenerimaUrutan, "urutan harus rapat tanpa celah")
		names = append(names, p.PenerimaNama)
	}
	return names
}

func TestCreateAntrianUrutanSesuaiInput(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 3)

	antrian, err := Create(db, CreateAntrianInput{
		Bulan:    6,
		Tahun:    2024,
		WargaIDs: ids,
		Petugas:  "Budi Santoso",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Warga 01", "Warga 02", "Warga 03"}, urutanOf(t, db, antrian.AntrianID))
}

func TestCreateAntrianPeriodeDuplikat(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 2)

	_, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids[:1], Petugas: "Budi"})
	require.NoError(t, err)

	_, err = Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids[1:], Petugas: "Budi"})
	assert.ErrorIs(t, err, ErrPeriodeSudahAda)

	// Bulan lain tetap boleh
	_, err = Create(db, CreateAntrianInput{Bulan: 7, Tahun: 2024, WargaIDs: ids[1:], Petugas: "Budi"})
	assert.NoError(t, err)
}

func TestCreateAntrianMelebihiBatas(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, antrianModel.MaxPenerimaPerAntrian+1)

	_, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids, Petugas: "Budi"})
	assert.ErrorIs(t, err, ErrMelebihiBatas)

	// Gagal total: tidak ada batch yang tersimpan
	var count int64
	db.Model(&antrianModel.AntrianModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateAntrianBulanTidakValid(t *testing.T) {
	db := testdb.Open(t)
	for _, bulan := range []int{0, 13, -1} {
		_, err := Create(db, CreateAntrianInput{Bulan: bulan, Tahun: 2024})
		assert.ErrorIs(t, err, ErrBulanTidakValid, "bulan %d", bulan)
	}
}

func TestCreateAntrianWargaBelumDisetujui(t *testing.T) {
	db := testdb.Open(t)
	w := &wargaModel.WargaModel{
		WargaNama:           "Calon Baru",
		WargaNIK:            "3201999988887777",
		WargaJumlahKeluarga: 2,
		WargaPenghasilan:    900000,
		WargaPekerjaan:      "pemulung",
		WargaAlamat:         wargaModel.AlamatModel{Rt: "01", Rw: "01", Jalan: "Jl. Mawar"},
	}
	w.SetDefaultValues()
	require.NoError(t, db.Create(w).Error)

	_, err := Create(db, CreateAntrianInput{
		Bulan:    6,
		Tahun:    2024,
		WargaIDs: []uuid.UUID{w.WargaID},
		Petugas:  "Budi",
	})
	assert.ErrorIs(t, err, ErrWargaBelumDisetujui)
}

func TestAddMemberPenuh(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, antrianModel.MaxPenerimaPerAntrian+1)

	antrian, err := Create(db, CreateAntrianInput{
		Bulan:    6,
		Tahun:    2024,
		WargaIDs: ids[:antrianModel.MaxPenerimaPerAntrian],
		Petugas:  "Budi",
	})
	require.NoError(t, err)

	_, err = AddMember(db, antrian.AntrianID, ids[antrianModel.MaxPenerimaPerAntrian])
	require.Error(t, err)
	assert.Equal(t, "Sudah mencapai batas 33 penerima per bulan", err.Error())

	var count int64
	db.Model(&antrianModel.AntrianPenerimaModel{}).
		Where("penerima_antrian_id = ?", antrian.AntrianID).
		Count(&count)
	assert.EqualValues(t, antrianModel.MaxPenerimaPerAntrian, count)
}

func TestAddMemberDuplikat(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 1)

	antrian, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids, Petugas: "Budi"})
	require.NoError(t, err)

	_, err = AddMember(db, antrian.AntrianID, ids[0])
	assert.ErrorIs(t, err, ErrWargaSudahDiAntrian)
}

func TestRemoveMemberMenutupCelah(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 4)

	antrian, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids, Petugas: "Budi"})
	require.NoError(t, err)

	// Hapus urutan ke-2, sisanya bergeser naik
	require.NoError(t, RemoveMember(db, antrian.AntrianID, ids[1]))
	assert.Equal(t, []string{"Warga 01", "Warga 03", "Warga 04"}, urutanOf(t, db, antrian.AntrianID))

	err = RemoveMember(db, antrian.AntrianID, ids[1])
	assert.ErrorIs(t, err, ErrPenerimaTidakDitemukan)
}

func TestMoveMemberTukarTetangga(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 3)

	antrian, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids, Petugas: "Budi"})
	require.NoError(t, err)

	// Naikkan urutan ke-2 jadi ke-1
	require.NoError(t, MoveMember(db, antrian.AntrianID, ids[1], -1))
	assert.Equal(t, []string{"Warga 02", "Warga 01", "Warga 03"}, urutanOf(t, db, antrian.AntrianID))

	// Turunkan posisi terakhir: no-op di batas bawah
	require.NoError(t, MoveMember(db, antrian.AntrianID, ids[2], +1))
	assert.Equal(t, []string{"Warga 02", "Warga 01", "Warga 03"}, urutanOf(t, db, antrian.AntrianID))

	// Naikkan posisi pertama: no-op di batas atas
	require.NoError(t, MoveMember(db, antrian.AntrianID, ids[1], -1))
	assert.Equal(t, []string{"Warga 02", "Warga 01", "Warga 03"}, urutanOf(t, db, antrian.AntrianID))
}

func TestDeleteAntrianBesertaAnggota(t *testing.T) {
	db := testdb.Open(t)
	ids := seedWargaDisetujui(t, db, 2)

	antrian, err := Create(db, CreateAntrianInput{Bulan: 6, Tahun: 2024, WargaIDs: ids, Petugas: "Budi"})
	require.NoError(t, err)

	require.NoError(t, Delete(db, antrian.AntrianID))

	_, err = Get(db, antrian.AntrianID)
	assert.ErrorIs(t, err, ErrAntrianTidakDitemukan)

	var sisa int64
	db.Model(&antrianModel.AntrianPenerimaModel{}).Count(&sisa)
	assert.Zero(t, sisa)
}
