package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// BahanPokokModel merepresentasikan stok barang bantuan
type BahanPokokModel struct {
	BahanID          uuid.UUID `gorm:"column:bahan_id;type:uuid;primaryKey" json:"bahan_id"`
	BahanNama        string    `gorm:"column:bahan_nama;size:100;not null" json:"nama" validate:"required,min=2,max=100"`
	BahanKategori    string    `gorm:"column:bahan_kategori;size:20;not null" json:"kategori" validate:"required,oneof=pakaian makanan bahan_pokok kesehatan"`
	BahanSatuan      string    `gorm:"column:bahan_satuan;size:20;not null" json:"satuan" validate:"required"`
	BahanHargaSatuan int64     `gorm:"column:bahan_harga_satuan;not null;default:0" json:"harga_satuan" validate:"min=0"`
	BahanStok        int       `gorm:"column:bahan_stok;not null;default:0" json:"stok" validate:"min=0"`
	CreatedAt        time.Time `gorm:"column:bahan_created_at;autoCreateTime" json:"bahan_created_at"`
	UpdatedAt        time.Time `gorm:"column:bahan_updated_at;autoUpdateTime" json:"bahan_updated_at"`
}

func (BahanPokokModel) TableName() string {
	return "bahan_pokok"
}

func (b *BahanPokokModel) BeforeCreate(tx *gorm.DB) error {
	if b.BahanID == uuid.Nil {
		b.BahanID = uuid.New()
	}
	return nil
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (b *BahanPokokModel) Validate() error {
	if err := validate.Struct(b); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			msg := ""
			for _, fieldErr := range validationErrs {
				switch fieldErr.Tag() {
				case "required":
					msg += fieldErr.Field() + " wajib diisi. "
				case "oneof":
					msg += fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + ". "
				case "min":
					msg += fieldErr.Field() + " minimal " + fieldErr.Param() + ". "
				default:
					msg += fieldErr.Field() + " tidak valid. "
				}
			}
			return errors.New(msg)
		}
		return err
	}
	return nil
}
