package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/keuangan/dana/service"
	helper "bansosku_backend/internals/helpers"
)

type DanaController struct {
	DB *gorm.DB
}

func NewDanaController(db *gorm.DB) *DanaController {
	return &DanaController{DB: db}
}

// Create catat transaksi dana (pemasukan/pengeluaran)
func (dc *DanaController) Create(c *fiber.Ctx) error {
	var req struct {
		Jenis      string `json:"jenis"`
		Jumlah     int64  `json:"jumlah"`
		Keterangan string `json:"keterangan"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	petugasNama, _ := c.Locals("user_name").(string)
	entry, err := service.PostTransaction(dc.DB, service.PostTransactionInput{
		Jenis:      req.Jenis,
		Jumlah:     req.Jumlah,
		Keterangan: req.Keterangan,
		Petugas:    petugasNama,
	})
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi dana "+req.Jenis+" berhasil dicatat", entry)
}

// GetAll saldo + ringkasan + riwayat
func (dc *DanaController) GetAll(c *fiber.Ctx) error {
	summary, err := service.GetSummary(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan dana")
	}
	entries, err := service.ListEntries(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat dana")
	}
	return helper.Success(c, "OK", fiber.Map{
		"saldo":             summary.Saldo,
		"total_pemasukan":   summary.TotalPemasukan,
		"total_pengeluaran": summary.TotalPengeluaran,
		"riwayat":           entries,
	})
}

// ListTransactions alias read-only (untuk integrasi klien lama)
func (dc *DanaController) ListTransactions(c *fiber.Ctx) error {
	entries, err := service.ListEntries(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat dana")
	}
	return helper.Success(c, "OK", entries)
}

// Export CSV riwayat dana
func (dc *DanaController) Export(c *fiber.Ctx) error {
	entries, err := service.ListEntries(dc.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat dana")
	}

	records := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		records = append(records, map[string]interface{}{
			"tanggal":    time.Time(e.RiwayatDanaTanggal).Format("2006-01-02"),
			"jenis":      e.RiwayatDanaJenis,
			"jumlah":     e.RiwayatDanaJumlah,
			"keterangan": e.RiwayatDanaKeterangan,
			"petugas":    e.RiwayatDanaPetugas,
		})
	}

	petugasNama, _ := c.Locals("user_name").(string)
	payload, err := helper.BuildCSV(helper.ExportMeta{
		Judul:   "Laporan Dana Bantuan Sosial",
		Jenis:   "dana",
		Petugas: petugasNama,
	}, []helper.ExportColumn{
		{Key: "tanggal", Label: "Tanggal"},
		{Key: "jenis", Label: "Jenis"},
		{Key: "jumlah", Label: "Jumlah"},
		{Key: "keterangan", Label: "Keterangan"},
		{Key: "petugas", Label: "Petugas"},
	}, records)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SendCSV(c, "laporan_dana", payload)
}
