package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/bansos/distribusi/service"
	helper "bansosku_backend/internals/helpers"
)

type DistribusiController struct {
	DB *gorm.DB
}

func NewDistribusiController(db *gorm.DB) *DistribusiController {
	return &DistribusiController{DB: db}
}

// Create catat penyaluran bantuan
func (dc *DistribusiController) Create(c *fiber.Ctx) error {
	var req struct {
		BahanID string `json:"bahan_id"`
		WargaID string `json:"warga_id"`
		Jumlah  int    `json:"jumlah"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	bahanID, err := uuid.Parse(req.BahanID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID bahan tidak valid")
	}
	wargaID, err := uuid.Parse(req.WargaID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID warga tidak valid")
	}

	petugasNama, _ := c.Locals("user_name").(string)
	record, err := service.Create(dc.DB, service.CreateDistribusiInput{
		BahanID: bahanID,
		WargaID: wargaID,
		Jumlah:  req.Jumlah,
		Petugas: petugasNama,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWargaTidakDitemukan),
			errors.Is(err, service.ErrBahanTidakDitemukan):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Distribusi bantuan berhasil dicatat!", record)
}

// GetAll list riwayat distribusi
func (dc *DistribusiController) GetAll(c *fiber.Ctx) error {
	list, err := service.List(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data distribusi")
	}
	return helper.Success(c, "OK", list)
}

// Export CSV riwayat distribusi
func (dc *DistribusiController) Export(c *fiber.Ctx) error {
	list, err := service.List(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data distribusi")
	}

	records := make([]map[string]interface{}, 0, len(list))
	for _, d := range list {
		records = append(records, map[string]interface{}{
			"tanggal":      time.Time(d.DistribusiTanggal).Format("2006-01-02"),
			"nama_bahan":   d.DistribusiNamaBahan,
			"kategori":     d.DistribusiKategori,
			"jumlah":       d.DistribusiJumlah,
			"satuan":       d.DistribusiSatuan,
			"harga_satuan": d.DistribusiHargaSatuan,
			"total":        d.DistribusiTotal,
			"penerima":     d.DistribusiPenerima,
			"petugas":      d.DistribusiPetugas,
		})
	}

	petugasNama, _ := c.Locals("user_name").(string)
	payload, err := helper.BuildCSV(helper.ExportMeta{
		Judul:   "Laporan Distribusi Bantuan",
		Jenis:   "distribusi",
		Petugas: petugasNama,
	}, []helper.ExportColumn{
		{Key: "tanggal", Label: "Tanggal"},
		{Key: "nama_bahan", Label: "Nama Bahan"},
		{Key: "kategori", Label: "Kategori"},
		{Key: "jumlah", Label: "Jumlah"},
		{Key: "satuan", Label: "Satuan"},
		{Key: "harga_satuan", Label: "Harga Satuan"},
		{Key: "total", Label: "Total"},
		{Key: "penerima", Label: "Penerima"},
		{Key: "petugas", Label: "Petugas"},
	}, records)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SendCSV(c, "laporan_distribusi", payload)
}
