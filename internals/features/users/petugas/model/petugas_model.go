package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Validator instance
var validate = validator.New()

// PetugasModel merepresentasikan tabel petugas di database
type PetugasModel struct {
	PetugasID       uuid.UUID `gorm:"column:petugas_id;type:uuid;primaryKey" json:"petugas_id"`
	PetugasUsername string    `gorm:"column:petugas_username;size:50;unique;not null" json:"petugas_username" validate:"required,min=3,max=50"`
	PetugasPassword string    `gorm:"column:petugas_password;not null" json:"-" validate:"required,min=6"`
	PetugasNama     string    `gorm:"column:petugas_nama;size:100;not null" json:"petugas_nama" validate:"required,min=3,max=100"`
	PetugasRole     string    `gorm:"column:petugas_role;type:varchar(20);not null;default:'petugas'" json:"petugas_role" validate:"omitempty,oneof=admin petugas"`
	PetugasIsActive bool      `gorm:"column:petugas_is_active;not null;default:true" json:"petugas_is_active"`
	CreatedAt       time.Time `gorm:"column:petugas_created_at;autoCreateTime" json:"petugas_created_at"`
	UpdatedAt       time.Time `gorm:"column:petugas_updated_at;autoUpdateTime" json:"petugas_updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (PetugasModel) TableName() string {
	return "petugas"
}

// BeforeCreate mengisi UUID sebelum insert.
func (p *PetugasModel) BeforeCreate(tx *gorm.DB) error {
	if p.PetugasID == uuid.Nil {
		p.PetugasID = uuid.New()
	}
	return nil
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (p *PetugasModel) SetDefaultValues() {
	if p.PetugasRole == "" {
		p.PetugasRole = "petugas"
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (p *PetugasModel) Validate() error {
	p.SetDefaultValues()

	if err := validate.Struct(p); err != nil {
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
			case "min":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus minimal " + fieldErr.Param() + " karakter."
			case "max":
				errorMessages[fieldErr.Field()] = fieldErr.Field() + " harus kurang dari " + fieldErr.Param() + " karakter."
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
