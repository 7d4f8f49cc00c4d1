package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiwayatLoginModel mencatat setiap login petugas yang berhasil
type RiwayatLoginModel struct {
	RiwayatLoginID      uuid.UUID `gorm:"column:riwayat_login_id;type:uuid;primaryKey" json:"riwayat_login_id"`
	RiwayatLoginPetugas uuid.UUID `gorm:"column:riwayat_login_petugas_id;type:uuid;not null" json:"riwayat_login_petugas_id"`
	RiwayatLoginNama    string    `gorm:"column:riwayat_login_nama;size:100;not null" json:"riwayat_login_nama"`
	RiwayatLoginRole    string    `gorm:"column:riwayat_login_role;size:20;not null" json:"riwayat_login_role"`
	RiwayatLoginIP      *string   `gorm:"column:riwayat_login_ip" json:"riwayat_login_ip,omitempty"`
	RiwayatLoginWaktu   time.Time `gorm:"column:riwayat_login_waktu;autoCreateTime" json:"riwayat_login_waktu"`
}

func (RiwayatLoginModel) TableName() string {
	return "riwayat_login"
}

func (r *RiwayatLoginModel) BeforeCreate(tx *gorm.DB) error {
	if r.RiwayatLoginID == uuid.Nil {
		r.RiwayatLoginID = uuid.New()
	}
	return nil
}
