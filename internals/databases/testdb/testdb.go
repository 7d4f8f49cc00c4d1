package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	antrianModel "bansosku_backend/internals/features/bansos/antrian/model"
	bahanModel "bansosku_backend/internals/features/bansos/bahan/model"
	distribusiModel "bansosku_backend/internals/features/bansos/distribusi/model"
	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	donasiModel "bansosku_backend/internals/features/keuangan/donasi/model"
	pengajuanModel "bansosku_backend/internals/features/keuangan/pengajuan/model"
	authModel "bansosku_backend/internals/features/users/auth/model"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
	wargaModel "bansosku_backend/internals/features/wargas/warga/model"
)

// Open membuka SQLite in-memory bermigrasi penuh untuk pengujian.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal membuka database uji: %v", err)
	}

	// Satu koneksi saja supaya ":memory:" tidak pecah jadi beberapa DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal mengambil *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&petugasModel.PetugasModel{},
		&authModel.RiwayatLoginModel{},
		&authModel.TokenBlacklist{},
		&authModel.RefreshToken{},
		&wargaModel.WargaModel{},
		&bahanModel.BahanPokokModel{},
		&distribusiModel.DistribusiModel{},
		&antrianModel.AntrianModel{},
		&antrianModel.AntrianPenerimaModel{},
		&danaModel.SaldoModel{},
		&danaModel.RiwayatDanaModel{},
		&pengajuanModel.PengajuanDanaModel{},
		&donasiModel.DonasiModel{},
	); err != nil {
		t.Fatalf("gagal migrasi database uji: %v", err)
	}

	return db
}
