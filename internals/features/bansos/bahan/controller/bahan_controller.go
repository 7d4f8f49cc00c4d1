package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/features/bansos/bahan/model"
	helper "bansosku_backend/internals/helpers"
)

type BahanController struct {
	DB *gorm.DB
}

func NewBahanController(db *gorm.DB) *BahanController {
	return &BahanController{DB: db}
}

// GetAll list seluruh bahan pokok (juga dipakai alias publik /api/programs)
func (bc *BahanController) GetAll(c *fiber.Ctx) error {
	var list []model.BahanPokokModel
	if err := bc.DB.Order("bahan_nama ASC").Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data bahan pokok")
	}
	return helper.Success(c, "OK", list)
}

func (bc *BahanController) GetByID(c *fiber.Ctx) error {
	bahan, ferr := bc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}
	return helper.Success(c, "OK", bahan)
}

// Create tambah jenis bahan bantuan baru
func (bc *BahanController) Create(c *fiber.Ctx) error {
	var bahan model.BahanPokokModel
	if err := c.BodyParser(&bahan); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := bahan.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := bc.DB.Create(&bahan).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan bahan pokok")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Bahan pokok berhasil ditambahkan", bahan)
}

// Update edit data bahan (nama/kategori/satuan/harga/stok)
func (bc *BahanController) Update(c *fiber.Ctx) error {
	bahan, ferr := bc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	var req model.BahanPokokModel
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	bahan.BahanNama = req.BahanNama
	bahan.BahanKategori = req.BahanKategori
	bahan.BahanSatuan = req.BahanSatuan
	bahan.BahanHargaSatuan = req.BahanHargaSatuan
	bahan.BahanStok = req.BahanStok

	if err := bahan.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := bc.DB.Save(bahan).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui bahan pokok")
	}
	return helper.Success(c, "Bahan pokok berhasil diperbarui", bahan)
}

// Restock menambah stok dengan jumlah positif
func (bc *BahanController) Restock(c *fiber.Ctx) error {
	bahan, ferr := bc.findByID(c)
	if ferr != nil {
		return helper.Error(c, ferr.Code, ferr.Message)
	}

	var req struct {
		Jumlah int `json:"jumlah"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Jumlah <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Jumlah restock harus lebih dari 0")
	}

	if err := bc.DB.Model(bahan).
		Update("bahan_stok", gorm.Expr("bahan_stok + ?", req.Jumlah)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menambah stok")
	}
	bahan.BahanStok += req.Jumlah
	return helper.Success(c, "Stok berhasil ditambahkan", bahan)
}

func (bc *BahanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID bahan tidak valid")
	}
	res := bc.DB.Where("bahan_id = ?", id).Delete(&model.BahanPokokModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus bahan pokok")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Bahan pokok tidak ditemukan")
	}
	return helper.Success(c, "Bahan pokok berhasil dihapus", nil)
}

func (bc *BahanController) findByID(c *fiber.Ctx) (*model.BahanPokokModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID bahan tidak valid")
	}
	var bahan model.BahanPokokModel
	if err := bc.DB.Where("bahan_id = ?", id).First(&bahan).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Bahan pokok tidak ditemukan")
	}
	return &bahan, nil
}
