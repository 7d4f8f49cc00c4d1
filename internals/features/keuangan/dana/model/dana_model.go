package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis transaksi dana
const (
	JenisPemasukan   = "pemasukan"
	JenisPengeluaran = "pengeluaran"
)

// SaldoModel satu baris saldo berjalan dana bantuan
type SaldoModel struct {
	SaldoID     uuid.UUID `gorm:"column:saldo_id;type:uuid;primaryKey" json:"saldo_id"`
	SaldoJumlah int64     `gorm:"column:saldo_jumlah;not null;default:0" json:"saldo"`
	UpdatedAt   time.Time `gorm:"column:saldo_updated_at;autoUpdateTime" json:"saldo_updated_at"`
}

func (SaldoModel) TableName() string {
	return "saldo_dana"
}

func (s *SaldoModel) BeforeCreate(tx *gorm.DB) error {
	if s.SaldoID == uuid.Nil {
		s.SaldoID = uuid.New()
	}
	return nil
}

// RiwayatDanaModel buku besar append-only transaksi dana
type RiwayatDanaModel struct {
	RiwayatDanaID         uuid.UUID      `gorm:"column:riwayat_dana_id;type:uuid;primaryKey" json:"riwayat_dana_id"`
	RiwayatDanaJenis      string         `gorm:"column:riwayat_dana_jenis;size:15;not null" json:"jenis"`
	RiwayatDanaJumlah     int64          `gorm:"column:riwayat_dana_jumlah;not null" json:"jumlah"`
	RiwayatDanaKeterangan string         `gorm:"column:riwayat_dana_keterangan;type:text" json:"keterangan"`
	RiwayatDanaTanggal    datatypes.Date `gorm:"column:riwayat_dana_tanggal" json:"tanggal"`
	RiwayatDanaPetugas    string         `gorm:"column:riwayat_dana_petugas;size:100" json:"petugas"`
	CreatedAt             time.Time      `gorm:"column:riwayat_dana_created_at;autoCreateTime" json:"riwayat_dana_created_at"`
}

func (RiwayatDanaModel) TableName() string {
	return "riwayat_dana"
}

func (r *RiwayatDanaModel) BeforeCreate(tx *gorm.DB) error {
	if r.RiwayatDanaID == uuid.Nil {
		r.RiwayatDanaID = uuid.New()
	}
	return nil
}
