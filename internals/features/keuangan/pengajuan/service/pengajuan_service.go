package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	pengajuanModel "bansosku_backend/internals/features/keuangan/pengajuan/model"
)

var (
	ErrJumlahTidakValid        = errors.New("Jumlah pengajuan harus lebih dari 0")
	ErrBulanTidakValid         = errors.New("Bulan harus 1-12")
	ErrPengajuanTidakDitemukan = errors.New("Pengajuan tidak ditemukan")
	ErrPengajuanSudahDisetujui = errors.New("Pengajuan sudah pernah disetujui")
)

type CreatePengajuanInput struct {
	Jumlah    int64
	Tujuan    string
	Kebutuhan string
	Bulan     int
	Tahun     int
	Petugas   string
}

// Create mengajukan permohonan dana baru (status diproses)
func Create(db *gorm.DB, input CreatePengajuanInput) (*pengajuanModel.PengajuanDanaModel, error) {
	if input.Jumlah <= 0 {
		return nil, ErrJumlahTidakValid
	}
	if input.Bulan < 1 || input.Bulan > 12 {
		return nil, ErrBulanTidakValid
	}

	p := &pengajuanModel.PengajuanDanaModel{
		PengajuanJumlah:    input.Jumlah,
		PengajuanTujuan:    input.Tujuan,
		PengajuanKebutuhan: input.Kebutuhan,
		PengajuanBulan:     input.Bulan,
		PengajuanTahun:     input.Tahun,
		PengajuanStatus:    pengajuanModel.StatusDiproses,
		PengajuanTanggal:   datatypes.Date(time.Now()),
		PengajuanPetugas:   input.Petugas,
	}
	if err := db.Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Approve menyetujui pengajuan: flip status + satu entri pemasukan +
// kenaikan saldo sebesar jumlah yang sama, SEMUA dalam satu transaksi.
// Pengajuan yang sudah disetujui ditolak tanpa mutasi apa pun.
func Approve(db *gorm.DB, pengajuanID uuid.UUID, approver string) (*pengajuanModel.PengajuanDanaModel, error) {
	var pengajuan pengajuanModel.PengajuanDanaModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pengajuan_id = ?", pengajuanID).First(&pengajuan).Error; err != nil {
			return ErrPengajuanTidakDitemukan
		}
		if pengajuan.PengajuanStatus == pengajuanModel.StatusDisetujui {
			return ErrPengajuanSudahDisetujui
		}

		// Guard di level UPDATE juga, tahan approve ganda yang balapan
		res := tx.Model(&pengajuanModel.PengajuanDanaModel{}).
			Where("pengajuan_id = ? AND pengajuan_status = ?", pengajuanID, pengajuanModel.StatusDiproses).
			Update("pengajuan_status", pengajuanModel.StatusDisetujui)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPengajuanSudahDisetujui
		}
		pengajuan.PengajuanStatus = pengajuanModel.StatusDisetujui

		// Saldo naik sebesar jumlah pengajuan
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
			Update("saldo_jumlah", gorm.Expr("saldo_jumlah + ?", pengajuan.PengajuanJumlah)).Error; err != nil {
			return err
		}

		// Tepat satu entri pemasukan di buku besar
		return tx.Create(&danaModel.RiwayatDanaModel{
			RiwayatDanaJenis:  danaModel.JenisPemasukan,
			RiwayatDanaJumlah: pengajuan.PengajuanJumlah,
			RiwayatDanaKeterangan: fmt.Sprintf("Pengajuan dana disetujui: %s (%d/%d)",
				pengajuan.PengajuanTujuan, pengajuan.PengajuanBulan, pengajuan.PengajuanTahun),
			RiwayatDanaTanggal: datatypes.Date(time.Now()),
			RiwayatDanaPetugas: approver,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &pengajuan, nil
}

// List seluruh pengajuan, terbaru duluan
func List(db *gorm.DB) ([]pengajuanModel.PengajuanDanaModel, error) {
	var list []pengajuanModel.PengajuanDanaModel
	if err := db.Order("pengajuan_created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
