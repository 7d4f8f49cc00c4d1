package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	bahanModel "bansosku_backend/internals/features/bansos/bahan/model"
	distribusiModel "bansosku_backend/internals/features/bansos/distribusi/model"
	wargaModel "bansosku_backend/internals/features/wargas/warga/model"
)

var (
	ErrWargaTidakDitemukan = errors.New("Penerima tidak ditemukan")
	ErrBahanTidakDitemukan = errors.New("Bahan pokok tidak ditemukan")
	ErrWargaBelumDisetujui = errors.New("Warga belum disetujui sebagai penerima bantuan")
	ErrJumlahTidakValid    = errors.New("Jumlah distribusi harus lebih dari 0")
)

type CreateDistribusiInput struct {
	BahanID uuid.UUID
	WargaID uuid.UUID
	Jumlah  int
	Petugas string
}

// Create mencatat satu distribusi: cek ulang stok saat commit, lalu
// decrement stok + append record + update status warga dalam SATU
// transaksi. Stok kurang = tidak ada mutasi sama sekali.
func Create(db *gorm.DB, input CreateDistribusiInput) (*distribusiModel.DistribusiModel, error) {
	if input.Jumlah <= 0 {
		return nil, ErrJumlahTidakValid
	}

	var record *distribusiModel.DistribusiModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var warga wargaModel.WargaModel
		if err := tx.Where("warga_id = ?", input.WargaID).First(&warga).Error; err != nil {
			return ErrWargaTidakDitemukan
		}
		if warga.WargaStatus != wargaModel.StatusDisetujui && warga.WargaStatus != wargaModel.StatusMenerima {
			return ErrWargaBelumDisetujui
		}

		var bahan bahanModel.BahanPokokModel
		if err := tx.Where("bahan_id = ?", input.BahanID).First(&bahan).Error; err != nil {
			return ErrBahanTidakDitemukan
		}

		// Cek ulang stok tepat sebelum commit
		if bahan.BahanStok < input.Jumlah {
			return fmt.Errorf("Stok %s tidak mencukupi. Stok tersedia: %d", bahan.BahanNama, bahan.BahanStok)
		}

		// Decrement stok dengan guard, tahan balapan dua petugas
		res := tx.Model(&bahanModel.BahanPokokModel{}).
			Where("bahan_id = ? AND bahan_stok >= ?", bahan.BahanID, input.Jumlah).
			Update("bahan_stok", gorm.Expr("bahan_stok - ?", input.Jumlah))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("Stok %s tidak mencukupi. Stok tersedia: %d", bahan.BahanNama, bahan.BahanStok)
		}

		record = &distribusiModel.DistribusiModel{
			DistribusiBahanID:     bahan.BahanID,
			DistribusiNamaBahan:   bahan.BahanNama,
			DistribusiKategori:    bahan.BahanKategori,
			DistribusiSatuan:      bahan.BahanSatuan,
			DistribusiHargaSatuan: bahan.BahanHargaSatuan,
			DistribusiJumlah:      input.Jumlah,
			DistribusiTotal:       bahan.BahanHargaSatuan * int64(input.Jumlah),
			DistribusiWargaID:     warga.WargaID,
			DistribusiPenerima:    warga.WargaNama,
			DistribusiTanggal:     datatypes.Date(time.Now()),
			DistribusiPetugas:     input.Petugas,
		}
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		// Distribusi pertama menuntaskan siklus: disetujui -> menerima
		if warga.WargaStatus == wargaModel.StatusDisetujui {
			if err := tx.Model(&warga).Update("warga_status", wargaModel.StatusMenerima).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// List seluruh distribusi, terbaru duluan
func List(db *gorm.DB) ([]distribusiModel.DistribusiModel, error) {
	var list []distribusiModel.DistribusiModel
	if err := db.Order("distribusi_created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
