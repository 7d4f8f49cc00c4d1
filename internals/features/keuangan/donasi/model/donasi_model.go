package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status donasi
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// DonasiModel donasi masyarakat untuk dana bansos (via Midtrans)
type DonasiModel struct {
	DonasiID      uuid.UUID  `gorm:"column:donasi_id;type:uuid;primaryKey" json:"donasi_id"`
	DonasiOrderID string     `gorm:"column:donasi_order_id;size:50;unique;not null" json:"order_id"`
	DonasiNama    string     `gorm:"column:donasi_nama;size:100;not null" json:"nama"`
	DonasiEmail   string     `gorm:"column:donasi_email;size:255;not null" json:"email"`
	DonasiJumlah  int64      `gorm:"column:donasi_jumlah;not null" json:"jumlah"`
	DonasiPesan   string     `gorm:"column:donasi_pesan;type:text" json:"pesan"`
	DonasiStatus  string     `gorm:"column:donasi_status;size:15;not null;default:'pending'" json:"status"`
	DonasiPaidAt  *time.Time `gorm:"column:donasi_paid_at" json:"paid_at,omitempty"`
	CreatedAt     time.Time  `gorm:"column:donasi_created_at;autoCreateTime" json:"donasi_created_at"`
	UpdatedAt     time.Time  `gorm:"column:donasi_updated_at;autoUpdateTime" json:"donasi_updated_at"`
}

func (DonasiModel) TableName() string {
	return "donasi"
}

func (d *DonasiModel) BeforeCreate(tx *gorm.DB) error {
	if d.DonasiID == uuid.Nil {
		d.DonasiID = uuid.New()
	}
	return nil
}
