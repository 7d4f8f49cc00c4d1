package service

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
)

var (
	ErrJumlahTidakValid = errors.New("Jumlah harus lebih dari 0")
	ErrJenisTidakValid  = errors.New("Jenis transaksi harus pemasukan atau pengeluaran")
	ErrSaldoTidakCukup  = errors.New("Saldo dana tidak mencukupi")
)

type PostTransactionInput struct {
	Jenis      string
	Jumlah     int64
	Keterangan string
	Petugas    string
}

// PostTransaction mencatat entri buku besar + menyesuaikan saldo dalam
// SATU transaksi. Pengeluaran melebihi saldo ditolak tanpa mutasi.
func PostTransaction(db *gorm.DB, input PostTransactionInput) (*danaModel.RiwayatDanaModel, error) {
	if input.Jumlah <= 0 {
		return nil, ErrJumlahTidakValid
	}
	if input.Jenis != danaModel.JenisPemasukan && input.Jenis != danaModel.JenisPengeluaran {
		return nil, ErrJenisTidakValid
	}

	var entry *danaModel.RiwayatDanaModel
	err := db.Transaction(func(tx *gorm.DB) error {
		saldo, err := lockSaldo(tx)
		if err != nil {
			return err
		}

		delta := input.Jumlah
		if input.Jenis == danaModel.JenisPengeluaran {
			if saldo.SaldoJumlah < input.Jumlah {
				return ErrSaldoTidakCukup
			}
			delta = -input.Jumlah
		}

		if err := tx.Model(saldo).
			Update("saldo_jumlah", gorm.Expr("saldo_jumlah + ?", delta)).Error; err != nil {
			return err
		}

		entry = &danaModel.RiwayatDanaModel{
			RiwayatDanaJenis:      input.Jenis,
			RiwayatDanaJumlah:     input.Jumlah,
			RiwayatDanaKeterangan: input.Keterangan,
			RiwayatDanaTanggal:    datatypes.Date(time.Now()),
			RiwayatDanaPetugas:    input.Petugas,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// lockSaldo mengambil (dan bila belum ada, membuat) baris saldo tunggal
func lockSaldo(tx *gorm.DB) (*danaModel.SaldoModel, error) {
	var saldo danaModel.SaldoModel
	err := tx.First(&saldo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		saldo = danaModel.SaldoModel{SaldoJumlah: 0}
		if err := tx.Create(&saldo).Error; err != nil {
			return nil, err
		}
		return &saldo, nil
	}
	if err != nil {
		return nil, err
	}
	return &saldo, nil
}

// Summary saldo saat ini + total pemasukan + total pengeluaran
type Summary struct {
	Saldo            int64 `json:"saldo"`
	TotalPemasukan   int64 `json:"total_pemasukan"`
	TotalPengeluaran int64 `json:"total_pengeluaran"`
}

func GetSummary(db *gorm.DB) (*Summary, error) {
	var saldo danaModel.SaldoModel
	if err := db.First(&saldo).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sum := func(jenis string) (int64, error) {
		var total int64
		err := db.Model(&danaModel.RiwayatDanaModel{}).
			Where("riwayat_dana_jenis = ?", jenis).
			Select("COALESCE(SUM(riwayat_dana_jumlah), 0)").
			Scan(&total).Error
		return total, err
	}

	pemasukan, err := sum(danaModel.JenisPemasukan)
	if err != nil {
		return nil, err
	}
	pengeluaran, err := sum(danaModel.JenisPengeluaran)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Saldo:            saldo.SaldoJumlah,
		TotalPemasukan:   pemasukan,
		TotalPengeluaran: pengeluaran,
	}, nil
}

// ListEntries riwayat transaksi, terbaru duluan
func ListEntries(db *gorm.DB) ([]danaModel.RiwayatDanaModel, error) {
	var list []danaModel.RiwayatDanaModel
	if err := db.Order("riwayat_dana_created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
