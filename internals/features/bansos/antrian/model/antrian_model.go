package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Batas penerima per antrian bulanan
const MaxPenerimaPerAntrian = 33

// AntrianModel satu batch antrian penyaluran per (bulan, tahun)
type AntrianModel struct {
	AntrianID            uuid.UUID      `gorm:"column:antrian_id;type:uuid;primaryKey" json:"antrian_id"`
	AntrianBulan         int            `gorm:"column:antrian_bulan;not null;uniqueIndex:idx_antrian_periode" json:"bulan"`
	AntrianTahun         int            `gorm:"column:antrian_tahun;not null;uniqueIndex:idx_antrian_periode" json:"tahun"`
	AntrianTanggalDibuat datatypes.Date `gorm:"column:antrian_tanggal_dibuat" json:"tanggal_dibuat"`
	AntrianPetugas       string         `gorm:"column:antrian_petugas;size:100" json:"petugas"`
	CreatedAt            time.Time      `gorm:"column:antrian_created_at;autoCreateTime" json:"antrian_created_at"`

	Penerima []AntrianPenerimaModel `gorm:"foreignKey:PenerimaAntrianID;references:AntrianID;constraint:OnDelete:CASCADE" json:"penerima"`
}

func (AntrianModel) TableName() string {
	return "antrian"
}

func (a *AntrianModel) BeforeCreate(tx *gorm.DB) error {
	if a.AntrianID == uuid.Nil {
		a.AntrianID = uuid.New()
	}
	return nil
}

// AntrianPenerimaModel anggota antrian; urutan posisi signifikan
type AntrianPenerimaModel struct {
	PenerimaID        uuid.UUID `gorm:"column:penerima_id;type:uuid;primaryKey" json:"penerima_id"`
	PenerimaAntrianID uuid.UUID `gorm:"column:penerima_antrian_id;type:uuid;not null;uniqueIndex:idx_antrian_warga" json:"antrian_id"`
	PenerimaWargaID   uuid.UUID `gorm:"column:penerima_warga_id;type:uuid;not null;uniqueIndex:idx_antrian_warga" json:"warga_id"`
	PenerimaNama      string    `gorm:"column:penerima_nama;size:100;not null" json:"nama"`
	PenerimaUrutan    int       `gorm:"column:penerima_urutan;not null" json:"urutan"`
	CreatedAt         time.Time `gorm:"column:penerima_created_at;autoCreateTime" json:"penerima_created_at"`
}

func (AntrianPenerimaModel) TableName() string {
	return "antrian_penerima"
}

func (p *AntrianPenerimaModel) BeforeCreate(tx *gorm.DB) error {
	if p.PenerimaID == uuid.Nil {
		p.PenerimaID = uuid.New()
	}
	return nil
}
