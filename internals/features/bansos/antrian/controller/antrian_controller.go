package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/bansos/antrian/service"
	helper "bansosku_backend/internals/helpers"
)

type AntrianController struct {
	DB *gorm.DB
}

func NewAntrianController(db *gorm.DB) *AntrianController {
	return &AntrianController{DB: db}
}

// Create buat batch antrian baru dengan daftar penerima terurut
func (ac *AntrianController) Create(c *fiber.Ctx) error {
	var req struct {
		Bulan    int      `json:"bulan"`
		Tahun    int      `json:"tahun"`
		Penerima []string `json:"penerima"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	wargaIDs := make([]uuid.UUID, 0, len(req.Penerima))
	for _, raw := range req.Penerima {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "ID warga tidak valid: "+raw)
		}
		wargaIDs = append(wargaIDs, id)
	}

	petugasNama, _ := c.Locals("user_name").(string)
	antrian, err := service.Create(ac.DB, service.CreateAntrianInput{
		Bulan:    req.Bulan,
		Tahun:    req.Tahun,
		WargaIDs: wargaIDs,
		Petugas:  petugasNama,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Antrian baru berhasil dibuat!", antrian)
}

// GetAll list seluruh antrian
func (ac *AntrianController) GetAll(c *fiber.Ctx) error {
	list, err := service.List(ac.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data antrian")
	}
	return helper.Success(c, "OK", list)
}

// GetByID detail satu antrian
func (ac *AntrianController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID antrian tidak valid")
	}
	antrian, err := service.Get(ac.DB, id)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	}
	return helper.Success(c, "OK", antrian)
}

// AddPenerima tambah penerima ke posisi terakhir
func (ac *AntrianController) AddPenerima(c *fiber.Ctx) error {
	antrianID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID antrian tidak valid")
	}
	var req struct {
		WargaID string `json:"warga_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	wargaID, err := uuid.Parse(req.WargaID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID warga tidak valid")
	}

	member, err := service.AddMember(ac.DB, antrianID, wargaID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penerima ditambahkan ke antrian", member)
}

// RemovePenerima keluarkan penerima, urutan di belakang merapat
func (ac *AntrianController) RemovePenerima(c *fiber.Ctx) error {
	antrianID, wargaID, ferr := ac.parsePathIDs(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	if err := service.RemoveMember(ac.DB, antrianID, wargaID); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Penerima dihapus dari antrian", nil)
}

// NaikkanPenerima tukar posisi dengan tetangga di atas (no-op di puncak)
func (ac *AntrianController) NaikkanPenerima(c *fiber.Ctx) error {
	return ac.move(c, -1)
}

// TurunkanPenerima tukar posisi dengan tetangga di bawah (no-op di dasar)
func (ac *AntrianController) TurunkanPenerima(c *fiber.Ctx) error {
	return ac.move(c, +1)
}

func (ac *AntrianController) move(c *fiber.Ctx, delta int) error {
	antrianID, wargaID, ferr := ac.parsePathIDs(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	if err := service.MoveMember(ac.DB, antrianID, wargaID, delta); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	antrian, err := service.Get(ac.DB, antrianID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	}
	return helper.Success(c, "Urutan antrian diperbarui", antrian)
}

// Delete hapus satu batch antrian
func (ac *AntrianController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID antrian tidak valid")
	}
	if err := service.Delete(ac.DB, id); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.Success(c, "Antrian berhasil dihapus", nil)
}

// Export CSV antrian per periode
func (ac *AntrianController) Export(c *fiber.Ctx) error {
	list, err := service.List(ac.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data antrian")
	}

	records := make([]map[string]interface{}, 0)
	for _, a := range list {
		for _, p := range a.Penerima {
			records = append(records, map[string]interface{}{
				"bulan":   a.AntrianBulan,
				"tahun":   a.AntrianTahun,
				"urutan":  p.PenerimaUrutan,
				"nama":    p.PenerimaNama,
				"petugas": a.AntrianPetugas,
			})
		}
	}

	petugasNama, _ := c.Locals("user_name").(string)
	payload, err := helper.BuildCSV(helper.ExportMeta{
		Judul:   "Laporan Antrian Bansos",
		Jenis:   "antrian",
		Petugas: petugasNama,
	}, []helper.ExportColumn{
		{Key: "bulan", Label: "Bulan"},
		{Key: "tahun", Label: "Tahun"},
		{Key: "urutan", Label: "Urutan"},
		{Key: "nama", Label: "Nama Penerima"},
		{Key: "petugas", Label: "Petugas"},
	}, records)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SendCSV(c, "laporan_antrian", payload)
}

func (ac *AntrianController) parsePathIDs(c *fiber.Ctx) (antrianID, wargaID uuid.UUID, ferr *fiber.Error) {
	antrianID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID antrian tidak valid")
	}
	wargaID, err = uuid.Parse(c.Params("wargaID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID warga tidak valid")
	}
	return antrianID, wargaID, nil
}
