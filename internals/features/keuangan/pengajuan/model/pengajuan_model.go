package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status pengajuan dana
const (
	StatusDiproses  = "diproses"
	StatusDisetujui = "disetujui"
)

// PengajuanDanaModel permohonan dana bantuan dari petugas
type PengajuanDanaModel struct {
	PengajuanID        uuid.UUID      `gorm:"column:pengajuan_id;type:uuid;primaryKey" json:"pengajuan_id"`
	PengajuanJumlah    int64          `gorm:"column:pengajuan_jumlah;not null" json:"jumlah"`
	PengajuanTujuan    string         `gorm:"column:pengajuan_tujuan;size:200;not null" json:"tujuan"`
	PengajuanKebutuhan string         `gorm:"column:pengajuan_kebutuhan;type:text" json:"kebutuhan"`
	PengajuanBulan     int            `gorm:"column:pengajuan_bulan;not null" json:"bulan"`
	PengajuanTahun     int            `gorm:"column:pengajuan_tahun;not null" json:"tahun"`
	PengajuanStatus    string         `gorm:"column:pengajuan_status;size:15;not null;default:'diproses'" json:"status"`
	PengajuanTanggal   datatypes.Date `gorm:"column:pengajuan_tanggal" json:"tanggal"`
	PengajuanPetugas   string         `gorm:"column:pengajuan_petugas;size:100" json:"petugas"`
	CreatedAt          time.Time      `gorm:"column:pengajuan_created_at;autoCreateTime" json:"pengajuan_created_at"`
	UpdatedAt          time.Time      `gorm:"column:pengajuan_updated_at;autoUpdateTime" json:"pengajuan_updated_at"`
}

func (PengajuanDanaModel) TableName() string {
	return "pengajuan_dana"
}

func (p *PengajuanDanaModel) BeforeCreate(tx *gorm.DB) error {
	if p.PengajuanID == uuid.Nil {
		p.PengajuanID = uuid.New()
	}
	return nil
}
