package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	donasiModel "bansosku_backend/internals/features/keuangan/donasi/model"
)

// HandleDonasiStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// Donasi sukses dicatat sebagai pemasukan di buku besar dana + menaikkan
// saldo dalam satu transaksi dengan perubahan status donasi.
func HandleDonasiStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("[INFO] Webhook donasi:", orderID, status)

	return db.Transaction(func(tx *gorm.DB) error {
		var donasi donasiModel.DonasiModel
		if err := tx.Where("donasi_order_id = ?", orderID).First(&donasi).Error; err != nil {
			log.Println("[ERROR] Donasi tidak ditemukan:", err)
			return fmt.Errorf("donasi dengan order_id %s tidak ditemukan", orderID)
		}

		switch status {
		case "capture", "settlement":
			// Idempotent: webhook yang sama bisa dikirim ulang
			if donasi.DonasiStatus == donasiModel.StatusCompleted {
				return nil
			}
			now := time.Now()
			donasi.DonasiStatus = donasiModel.StatusCompleted
			donasi.DonasiPaidAt = &now
			if err := tx.Save(&donasi).Error; err != nil {
				return err
			}

			var saldo danaModel.SaldoModel
			if err := tx.First(&saldo).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				saldo = danaModel.SaldoModel{SaldoJumlah: 0}
				if err := tx.Create(&saldo).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&saldo).
				Update("saldo_jumlah", gorm.Expr("saldo_jumlah + ?", donasi.DonasiJumlah)).Error; err != nil {
				return err
			}

			return tx.Create(&danaModel.RiwayatDanaModel{
				RiwayatDanaJenis:      danaModel.JenisPemasukan,
				RiwayatDanaJumlah:     donasi.DonasiJumlah,
				RiwayatDanaKeterangan: fmt.Sprintf("Donasi dari %s (%s)", donasi.DonasiNama, donasi.DonasiOrderID),
				RiwayatDanaTanggal:    datatypes.Date(now),
				RiwayatDanaPetugas:    "sistem",
			}).Error

		case "expire", "cancel", "deny":
			donasi.DonasiStatus = donasiModel.StatusFailed
			return tx.Save(&donasi).Error

		default:
			log.Println("[INFO] Status tidak diproses:", status)
			return nil
		}
	})
}
