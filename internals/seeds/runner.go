package seeds

import (
	"log"

	"gorm.io/gorm"

	"bansosku_backend/internals/constants"
	bahanModel "bansosku_backend/internals/features/bansos/bahan/model"
	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	authHelper "bansosku_backend/internals/features/users/auth/helper"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
)

// Run mengisi data awal: akun petugas, stok bahan pokok, dan saldo dana.
// Seluruh seed idempotent, aman dijalankan berulang.
func Run(db *gorm.DB) {
	log.Println("🌱 Menjalankan seed data awal...")

	seedPetugas(db)
	seedBahanPokok(db)
	seedSaldo(db)

	log.Println("🌱 Seed selesai.")
}

func seedPetugas(db *gorm.DB) {
	accounts := []struct {
		Username string
		Password string
		Nama     string
		Role     string
	}{
		{"admin", "admin123", "Administrator", constants.RoleAdmin},
		{"petugas1", "petugas1", "Budi Santoso", constants.RolePetugas},
	}

	for _, acc := range accounts {
		var count int64
		db.Model(&petugasModel.PetugasModel{}).
			Where("petugas_username = ?", acc.Username).
			Count(&count)
		if count > 0 {
			continue
		}

		hashed, err := authHelper.HashPassword(acc.Password)
		if err != nil {
			log.Printf("[ERROR] Gagal hash password untuk %s: %v", acc.Username, err)
			continue
		}

		p := petugasModel.PetugasModel{
			PetugasUsername: acc.Username,
			PetugasPassword: hashed,
			PetugasNama:     acc.Nama,
			PetugasRole:     acc.Role,
			PetugasIsActive: true,
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("[ERROR] Gagal seed petugas %s: %v", acc.Username, err)
			continue
		}
		log.Printf("✅ Petugas %s (%s) dibuat", acc.Username, acc.Role)
	}
}

func seedBahanPokok(db *gorm.DB) {
	var count int64
	db.Model(&bahanModel.BahanPokokModel{}).Count(&count)
	if count > 0 {
		return
	}

	items := []bahanModel.BahanPokokModel{
		{BahanNama: "Beras", BahanKategori: "bahan_pokok", BahanSatuan: "kg", BahanHargaSatuan: 12000, BahanStok: 1000},
		{BahanNama: "Minyak Goreng", BahanKategori: "bahan_pokok", BahanSatuan: "liter", BahanHargaSatuan: 16000, BahanStok: 500},
		{BahanNama: "Gula", BahanKategori: "bahan_pokok", BahanSatuan: "kg", BahanHargaSatuan: 14000, BahanStok: 300},
		{BahanNama: "Telur", BahanKategori: "bahan_pokok", BahanSatuan: "kg", BahanHargaSatuan: 28000, BahanStok: 200},
		{BahanNama: "Daging Ayam", BahanKategori: "makanan", BahanSatuan: "kg", BahanHargaSatuan: 38000, BahanStok: 150},
		{BahanNama: "Susu", BahanKategori: "makanan", BahanSatuan: "liter", BahanHargaSatuan: 18000, BahanStok: 200},
		{BahanNama: "Kaos", BahanKategori: "pakaian", BahanSatuan: "buah", BahanHargaSatuan: 25000, BahanStok: 300},
		{BahanNama: "Celana", BahanKategori: "pakaian", BahanSatuan: "buah", BahanHargaSatuan: 40000, BahanStok: 200},
	}

	if err := db.Create(&items).Error; err != nil {
		log.Printf("[ERROR] Gagal seed bahan pokok: %v", err)
		return
	}
	log.Printf("✅ %d bahan pokok awal dibuat", len(items))
}

func seedSaldo(db *gorm.DB) {
	var count int64
	db.Model(&danaModel.SaldoModel{}).Count(&count)
	if count > 0 {
		return
	}

	if err := db.Create(&danaModel.SaldoModel{SaldoJumlah: 50_000_000}).Error; err != nil {
		log.Printf("[ERROR] Gagal seed saldo dana: %v", err)
		return
	}
	log.Println("✅ Saldo dana awal Rp 50.000.000 dibuat")
}
