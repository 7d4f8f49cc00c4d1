package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "bansosku_backend/internals/helpers"

	"bansosku_backend/internals/features/keuangan/donasi/service"
)

type DonasiController struct {
	DB *gorm.DB
}

func NewDonasiController(db *gorm.DB) *DonasiController {
	return &DonasiController{DB: db}
}

// Create menerima donasi dari form publik dan mengembalikan snap token.
func (dc *DonasiController) Create(c *fiber.Ctx) error {
	var input service.CreateDonasiInput
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format data tidak valid")
	}

	donasi, token, err := service.CreateDonasi(dc.DB, input)
	if err != nil {
		if errors.Is(err, service.ErrJumlahTidakValid) || errors.Is(err, service.ErrDataTidakLengkap) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] Gagal membuat donasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses donasi")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi berhasil dibuat", fiber.Map{
		"order_id":   donasi.DonasiOrderID,
		"snap_token": token,
	})
}

// GetAll daftar donasi untuk petugas.
func (dc *DonasiController) GetAll(c *fiber.Ctx) error {
	list, err := service.ListDonasi(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}
	return helper.Success(c, "Data donasi berhasil diambil", list)
}

// HandleNotification menerima webhook status pembayaran dari Midtrans.
// Endpoint ini publik dan dikecualikan dari middleware auth.
func (dc *DonasiController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandleDonasiStatusWebhook(dc.DB, body); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Notifikasi berhasil diproses", nil)
}
