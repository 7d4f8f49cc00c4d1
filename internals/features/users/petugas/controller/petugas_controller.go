package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/users/petugas/dto"
	"bansosku_backend/internals/features/users/petugas/model"
	helper "bansosku_backend/internals/helpers"
)

type PetugasController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPetugasController(db *gorm.DB) *PetugasController {
	return &PetugasController{DB: db, Validate: validator.New()}
}

// GetAll list semua petugas (admin)
func (pc *PetugasController) GetAll(c *fiber.Ctx) error {
	var list []model.PetugasModel
	if err := pc.DB.Order("petugas_created_at ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data petugas")
	}
	out := make([]dto.PetugasResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.ToPetugasResponse(&list[i]))
	}
	return helper.Success(c, "OK", out)
}

// GetByID detail satu petugas
func (pc *PetugasController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID petugas tidak valid")
	}
	var p model.PetugasModel
	if err := pc.DB.Where("petugas_id = ?", id).First(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
	}
	return helper.Success(c, "OK", dto.ToPetugasResponse(&p))
}

// Update nama/role/status aktif petugas (admin)
func (pc *PetugasController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID petugas tidak valid")
	}

	var req dto.UpdatePetugasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var p model.PetugasModel
	if err := pc.DB.Where("petugas_id = ?", id).First(&p).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if req.PetugasNama != nil {
		updates["petugas_nama"] = *req.PetugasNama
	}
	if req.PetugasRole != nil {
		updates["petugas_role"] = *req.PetugasRole
	}
	if req.PetugasIsActive != nil {
		updates["petugas_is_active"] = *req.PetugasIsActive
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := pc.DB.Model(&p).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui petugas")
	}
	return helper.Success(c, "Petugas berhasil diperbarui", dto.ToPetugasResponse(&p))
}

// Delete hapus akun petugas (admin)
func (pc *PetugasController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID petugas tidak valid")
	}

	// Jangan biarkan admin menghapus dirinya sendiri
	if callerID, _ := c.Locals("user_id").(string); callerID == id.String() {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak dapat menghapus akun sendiri")
	}

	res := pc.DB.Where("petugas_id = ?", id).Delete(&model.PetugasModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus petugas")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Petugas tidak ditemukan")
	}
	return helper.Success(c, "Petugas berhasil dihapus", nil)
}
