package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/keuangan/pengajuan/service"
	helper "bansosku_backend/internals/helpers"
)

type PengajuanController struct {
	DB *gorm.DB
}

func NewPengajuanController(db *gorm.DB) *PengajuanController {
	return &PengajuanController{DB: db}
}

// Create ajukan permohonan dana baru
func (pc *PengajuanController) Create(c *fiber.Ctx) error {
	var req struct {
		Jumlah    int64  `json:"jumlah"`
		Tujuan    string `json:"tujuan"`
		Kebutuhan string `json:"kebutuhan"`
		Bulan     int    `json:"bulan"`
		Tahun     int    `json:"tahun"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	petugasNama, _ := c.Locals("user_name").(string)
	pengajuan, err := service.Create(pc.DB, service.CreatePengajuanInput{
		Jumlah:    req.Jumlah,
		Tujuan:    req.Tujuan,
		Kebutuhan: req.Kebutuhan,
		Bulan:     req.Bulan,
		Tahun:     req.Tahun,
		Petugas:   petugasNama,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan dana berhasil dikirim!", pengajuan)
}

// GetAll list seluruh pengajuan
func (pc *PengajuanController) GetAll(c *fiber.Ctx) error {
	list, err := service.List(pc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajuan")
	}
	return helper.Success(c, "OK", list)
}

// Approve setujui pengajuan (khusus admin, dijaga role middleware)
func (pc *PengajuanController) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}

	approver, _ := c.Locals("user_name").(string)
	pengajuan, err := service.Approve(pc.DB, id, approver)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPengajuanTidakDitemukan):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPengajuanSudahDisetujui):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyetujui pengajuan")
		}
	}
	return helper.Success(c, "Pengajuan dana disetujui", pengajuan)
}
