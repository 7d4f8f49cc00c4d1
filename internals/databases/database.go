package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bansosku_backend/internals/configs"
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

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=bansosku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal koneksi ke database:\n%v", err)
	}

	DB = db
	log.Println("✅ Berhasil konek ke PostgreSQL!")
}

// TunePool menyetel pool koneksi sql.DB di bawah GORM.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] Gagal ambil *sql.DB untuk tuning pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate menjalankan auto-migrasi seluruh tabel aplikasi.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
