package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"bansosku_backend/internals/features/keuangan/donasi/model"
)

var (
	ErrJumlahTidakValid = errors.New("Jumlah donasi harus lebih dari 0")
	ErrDataTidakLengkap = errors.New("Nama dan email wajib diisi")
)

// CreateDonasiInput data donasi dari form publik.
type CreateDonasiInput struct {
	Nama   string `json:"nama"`
	Email  string `json:"email"`
	Jumlah int64  `json:"jumlah"`
	Pesan  string `json:"pesan"`
}

// CreateDonasi menyimpan donasi berstatus pending dan mengembalikan
// snap token Midtrans untuk pembayaran.
func CreateDonasi(db *gorm.DB, input CreateDonasiInput) (*model.DonasiModel, string, error) {
	if input.Jumlah <= 0 {
		return nil, "", ErrJumlahTidakValid
	}
	if strings.TrimSpace(input.Nama) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, "", ErrDataTidakLengkap
	}

	donasi := model.DonasiModel{
		DonasiOrderID: fmt.Sprintf("DONASI-%d", time.Now().UnixNano()),
		DonasiNama:    strings.TrimSpace(input.Nama),
		DonasiEmail:   strings.TrimSpace(input.Email),
		DonasiJumlah:  input.Jumlah,
		DonasiPesan:   input.Pesan,
		DonasiStatus:  model.StatusPending,
	}
	if err := db.Create(&donasi).Error; err != nil {
		return nil, "", err
	}

	token, err := GenerateSnapToken(&donasi)
	if err != nil {
		return nil, "", err
	}
	return &donasi, token, nil
}

// ListDonasi mengembalikan seluruh donasi, terbaru dulu.
func ListDonasi(db *gorm.DB) ([]model.DonasiModel, error) {
	var list []model.DonasiModel
	if err := db.Order("donasi_created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
