package dto

import (
	"time"

	"github.com/google/uuid"

	petugasModel "bansosku_backend/internals/features/users/petugas/model"
)

type PetugasResponse struct {
	PetugasID       uuid.UUID `json:"petugas_id"`
	PetugasUsername string    `json:"petugas_username"`
	PetugasNama     string    `json:"petugas_nama"`
	PetugasRole     string    `json:"petugas_role"`
	PetugasIsActive bool      `json:"petugas_is_active"`
	CreatedAt       time.Time `json:"petugas_created_at"`
}

type UpdatePetugasRequest struct {
	PetugasNama     *string `json:"petugas_nama"`
	PetugasRole     *string `json:"petugas_role" validate:"omitempty,oneof=admin petugas"`
	PetugasIsActive *bool   `json:"petugas_is_active"`
}

func ToPetugasResponse(m *petugasModel.PetugasModel) PetugasResponse {
	return PetugasResponse{
		PetugasID:       m.PetugasID,
		PetugasUsername: m.PetugasUsername,
		PetugasNama:     m.PetugasNama,
		PetugasRole:     m.PetugasRole,
		PetugasIsActive: m.PetugasIsActive,
		CreatedAt:       m.CreatedAt,
	}
}
