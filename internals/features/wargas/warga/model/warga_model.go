package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// Status warga (siklus: calon -> disetujui -> menerima, atau ditolak)
const (
	StatusCalon     = "calon"
	StatusDisetujui = "disetujui"
	StatusMenerima  = "menerima"
	StatusDitolak   = "ditolak"
)

// Label pekerjaan untuk tampilan
var pekerjaanLabels = map[string]string{
	"buruh_tani":        "Buruh Tani",
	"nelayan":           "Nelayan",
	"buruh_bangunan":    "Buruh Bangunan",
	"pekerja_serabutan": "Pekerja Serabutan",
	"pemulung":          "Pemulung",
	"pedagang_kecil":    "Pedagang Kecil",
}

// ResolvePekerjaanDisplay menentukan label pekerjaan:
// "lainnya" memakai teks bebas, selain itu memakai label baku.
func ResolvePekerjaanDisplay(pekerjaan, pekerjaanLain string) string {
	if pekerjaan == "lainnya" {
		return pekerjaanLain
	}
	if label, ok := pekerjaanLabels[pekerjaan]; ok {
		return label
	}
	return pekerjaan
}

// AlamatModel alamat warga, satu level nested di JSON
type AlamatModel struct {
	Rt        string `gorm:"column:rt;size:5;not null" json:"rt" validate:"required"`
	Rw        string `gorm:"column:rw;size:5;not null" json:"rw" validate:"required"`
	Jalan     string `gorm:"column:jalan;size:150;not null" json:"jalan" validate:"required"`
	Nomor     string `gorm:"column:nomor;size:10" json:"nomor"`
	Kelurahan string `gorm:"column:kelurahan;size:100" json:"kelurahan"`
	Kecamatan string `gorm:"column:kecamatan;size:100" json:"kecamatan"`
	Kabupaten string `gorm:"column:kabupaten;size:100" json:"kabupaten"`
	Provinsi  string `gorm:"column:provinsi;size:100" json:"provinsi"`
}

// WargaModel merepresentasikan tabel warga di database
type WargaModel struct {
	WargaID                uuid.UUID      `gorm:"column:warga_id;type:uuid;primaryKey" json:"warga_id"`
	WargaNama              string         `gorm:"column:warga_nama;size:100;not null" json:"nama" validate:"required,min=3,max=100"`
	WargaNIK               string         `gorm:"column:warga_nik;type:char(16);unique;not null" json:"nik" validate:"required,len=16,numeric"`
	WargaJumlahKeluarga    int            `gorm:"column:warga_jumlah_keluarga;not null" json:"jumlah_keluarga" validate:"required,min=1,max=10"`
	WargaPenghasilan       int64          `gorm:"column:warga_penghasilan;not null" json:"penghasilan" validate:"required,min=500000,max=3000000"`
	WargaPekerjaan         string         `gorm:"column:warga_pekerjaan;size:30;not null" json:"pekerjaan" validate:"required,oneof=buruh_tani nelayan buruh_bangunan pekerja_serabutan pemulung pedagang_kecil lainnya"`
	WargaPekerjaanLain     string         `gorm:"column:warga_pekerjaan_lain;size:100" json:"pekerjaan_lain"`
	WargaPekerjaanDisplay  string         `gorm:"column:warga_pekerjaan_display;size:100" json:"pekerjaan_display"`
	WargaStatus            string         `gorm:"column:warga_status;size:15;not null;default:'calon'" json:"status" validate:"omitempty,oneof=calon disetujui menerima ditolak"`
	WargaCatatan           string         `gorm:"column:warga_catatan;type:text" json:"catatan"`
	WargaFotoURL           string         `gorm:"column:warga_foto_url" json:"foto_url"`
	WargaAlamat            AlamatModel    `gorm:"embedded;embeddedPrefix:warga_alamat_" json:"alamat"`
	WargaTanggalDaftar     datatypes.Date `gorm:"column:warga_tanggal_daftar" json:"tanggal_daftar"`
	CreatedAt              time.Time      `gorm:"column:warga_created_at;autoCreateTime" json:"warga_created_at"`
	UpdatedAt              time.Time      `gorm:"column:warga_updated_at;autoUpdateTime" json:"warga_updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (WargaModel) TableName() string {
	return "warga"
}

func (w *WargaModel) BeforeCreate(tx *gorm.DB) error {
	if w.WargaID == uuid.Nil {
		w.WargaID = uuid.New()
	}
	return nil
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (w *WargaModel) SetDefaultValues() {
	if w.WargaStatus == "" {
		w.WargaStatus = StatusCalon
	}
	w.WargaPekerjaanDisplay = ResolvePekerjaanDisplay(w.WargaPekerjaan, w.WargaPekerjaanLain)
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (w *WargaModel) Validate() error {
	w.SetDefaultValues()

	if w.WargaPekerjaan == "lainnya" && w.WargaPekerjaanLain == "" {
		return errors.New("PekerjaanLain: pekerjaan lainnya wajib diisi.")
	}
	if err := validate.Struct(w); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make(map[string]string)
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " wajib diisi."
			case "len":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus tepat " + fieldErr.Param() + " karakter."
			case "numeric":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " hanya boleh berisi angka."
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " minimal " + fieldErr.Param() + "."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " maksimal " + fieldErr.Param() + "."
			case "oneof":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus salah satu dari " + fieldErr.Param() + "."
			default:
				errorMessages[fieldErr.Field()] = "Format tidak valid."
			}
		}
		return errors.New(formatErrorMessage(errorMessages))
	}
	return err
}

// formatErrorMessage mengubah map error menjadi string
func formatErrorMessage(errors map[string]string) string {
	var msg string
	for field, errorMsg := range errors {
		msg += field + ": " + errorMsg + "\n"
	}
	return msg
}
