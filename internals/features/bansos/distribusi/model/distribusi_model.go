package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DistribusiModel satu catatan penyaluran bantuan. Nama bahan/warga
// disalin (snapshot) supaya riwayat tidak berubah saat master diedit.
type DistribusiModel struct {
	DistribusiID          uuid.UUID      `gorm:"column:distribusi_id;type:uuid;primaryKey" json:"distribusi_id"`
	DistribusiBahanID     uuid.UUID      `gorm:"column:distribusi_bahan_id;type:uuid;not null" json:"bahan_id"`
	DistribusiNamaBahan   string         `gorm:"column:distribusi_nama_bahan;size:100;not null" json:"nama_bahan"`
	DistribusiKategori    string         `gorm:"column:distribusi_kategori;size:20;not null" json:"kategori"`
	DistribusiSatuan      string         `gorm:"column:distribusi_satuan;size:20;not null" json:"satuan"`
	DistribusiHargaSatuan int64          `gorm:"column:distribusi_harga_satuan;not null;default:0" json:"harga_satuan"`
	DistribusiJumlah      int            `gorm:"column:distribusi_jumlah;not null" json:"jumlah"`
	DistribusiTotal       int64          `gorm:"column:distribusi_total;not null;default:0" json:"total"`
	DistribusiWargaID     uuid.UUID      `gorm:"column:distribusi_warga_id;type:uuid;not null" json:"warga_id"`
	DistribusiPenerima    string         `gorm:"column:distribusi_penerima;size:100;not null" json:"penerima_nama"`
	DistribusiTanggal     datatypes.Date `gorm:"column:distribusi_tanggal" json:"tanggal"`
	DistribusiPetugas     string         `gorm:"column:distribusi_petugas;size:100" json:"petugas"`
	CreatedAt             time.Time      `gorm:"column:distribusi_created_at;autoCreateTime" json:"distribusi_created_at"`
}

func (DistribusiModel) TableName() string {
	return "distribusi"
}

func (d *DistribusiModel) BeforeCreate(tx *gorm.DB) error {
	if d.DistribusiID == uuid.Nil {
		d.DistribusiID = uuid.New()
	}
	return nil
}
