package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/wargas/warga/dto"
	"bansosku_backend/internals/features/wargas/warga/model"
	"bansosku_backend/internals/features/wargas/warga/service"
	helper "bansosku_backend/internals/helpers"
)

type WargaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewWargaController(db *gorm.DB) *WargaController {
	return &WargaController{DB: db, Validate: validator.New()}
}

// Create mendaftarkan warga calon penerima baru
func (wc *WargaController) Create(c *fiber.Ctx) error {
	var req dto.WargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	warga := req.ToModel()
	warga.WargaStatus = model.StatusCalon
	warga.WargaTanggalDaftar = dto.TodayDate()

	// Validasi gagal = tidak ada mutasi sama sekali
	if err := warga.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := wc.DB.Create(warga).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data warga")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data warga berhasil ditambahkan!", warga)
}

// GetAll list warga dengan pipeline filter -> sort -> paginate
func (wc *WargaController) GetAll(c *fiber.Ctx) error {
	var list []model.WargaModel
	if err := wc.DB.Order("warga_created_at ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data warga")
	}

	records := make([]map[string]interface{}, 0, len(list))
	for i := range list {
		records = append(records, dto.ToRecord(&list[i]))
	}

	p := helper.ParseFiber(c, "nama", "asc", helper.DefaultOpts)
	page, total := service.ApplyPipeline(records, service.ListParams{
		Search:    c.Query("search"),
		Status:    c.Query("status", "semua"),
		SortBy:    p.SortBy,
		SortOrder: p.SortOrder,
		Page:      p.Page,
		PerPage:   p.PerPage,
	})

	return helper.Success(c, "OK", fiber.Map{
		"items": page,
		"meta":  helper.BuildMeta(int64(total), p),
	})
}

// GetByID detail satu warga
func (wc *WargaController) GetByID(c *fiber.Ctx) error {
	warga, ferr := wc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	return helper.Success(c, "OK", warga)
}

// Update edit data warga (form edit memakai kontrak submit yang sama)
func (wc *WargaController) Update(c *fiber.Ctx) error {
	warga, ferr := wc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	var req dto.WargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ApplyTo(warga)

	if err := warga.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := wc.DB.Save(warga).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data warga")
	}
	return helper.Success(c, "Data warga berhasil diperbarui", warga)
}

// UpdateStatus aksi verifikasi: calon -> disetujui / ditolak, dst.
func (wc *WargaController) UpdateStatus(c *fiber.Ctx) error {
	warga, ferr := wc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := wc.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := wc.DB.Model(warga).Update("warga_status", req.Status).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status warga")
	}
	warga.WargaStatus = req.Status
	return helper.Success(c, "Status warga diperbarui menjadi "+req.Status, warga)
}

// Delete hapus data warga
func (wc *WargaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID warga tidak valid")
	}
	res := wc.DB.Where("warga_id = ?", id).Delete(&model.WargaModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data warga")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Warga tidak ditemukan")
	}
	return helper.Success(c, "Data warga berhasil dihapus", nil)
}

// UploadFoto upload foto verifikasi, dikonversi ke WebP
func (wc *WargaController) UploadFoto(c *fiber.Ctx) error {
	warga, ferr := wc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File foto tidak ditemukan di form")
	}

	fotoURL, err := helper.UploadImageAsWebP("warga", fileHeader)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Hapus foto lama (best effort)
	if warga.WargaFotoURL != "" {
		_ = helper.DeleteUploadedFile(warga.WargaFotoURL)
	}

	if err := wc.DB.Model(warga).Update("warga_foto_url", fotoURL).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto warga")
	}
	warga.WargaFotoURL = fotoURL
	return helper.Success(c, "Foto warga berhasil diunggah", fiber.Map{"foto_url": fotoURL})
}

// Export CSV daftar warga (mengikuti filter & sort yang sama dengan list)
func (wc *WargaController) Export(c *fiber.Ctx) error {
	var list []model.WargaModel
	if err := wc.DB.Order("warga_created_at ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data warga")
	}

	records := make([]map[string]interface{}, 0, len(list))
	for i := range list {
		records = append(records, dto.ToRecord(&list[i]))
	}

	p := helper.ParseFiber(c, "nama", "asc", helper.ExportOpts)
	filtered := service.Filter(records, c.Query("search"), c.Query("status", "semua"))
	service.Sort(filtered, p.SortBy, p.SortOrder)

	petugasNama, _ := c.Locals("user_name").(string)
	payload, err := helper.BuildCSV(helper.ExportMeta{
		Judul:   "Laporan Data Warga Penerima",
		Jenis:   "warga",
		Petugas: petugasNama,
	}, wargaExportColumns, filtered)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.SendCSV(c, "laporan_warga", payload)
}

var wargaExportColumns = []helper.ExportColumn{
	{Key: "nama", Label: "Nama"},
	{Key: "nik", Label: "NIK"},
	{Key: "jumlah_keluarga", Label: "Jumlah Keluarga"},
	{Key: "penghasilan", Label: "Penghasilan"},
	{Key: "pekerjaan_display", Label: "Pekerjaan"},
	{Key: "status", Label: "Status"},
	{Key: "alamat.rt", Label: "RT"},
	{Key: "alamat.rw", Label: "RW"},
	{Key: "alamat.jalan", Label: "Jalan"},
	{Key: "alamat.kelurahan", Label: "Kelurahan"},
	{Key: "alamat.kecamatan", Label: "Kecamatan"},
	{Key: "alamat.kabupaten", Label: "Kabupaten"},
	{Key: "alamat.provinsi", Label: "Provinsi"},
	{Key: "tanggal_daftar", Label: "Tanggal Daftar"},
}

func (wc *WargaController) findByID(c *fiber.Ctx) (*model.WargaModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID warga tidak valid")
	}
	var warga model.WargaModel
	if err := wc.DB.Where("warga_id = ?", id).First(&warga).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Warga tidak ditemukan")
	}
	return &warga, nil
}
