package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "bansosku_backend/internals/features/users/auth/repository"
	"bansosku_backend/internals/features/users/auth/service"
	helper "bansosku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

// Me mengembalikan profil petugas yang sedang login
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	petugasID, err := uuid.Parse(userIDStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}

	petugas, err := authRepo.FindPetugasByID(ac.DB, petugasID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Petugas tidak ditemukan")
	}

	return helper.Success(c, "OK", fiber.Map{
		"id":       petugas.PetugasID,
		"username": petugas.PetugasUsername,
		"nama":     petugas.PetugasNama,
		"role":     petugas.PetugasRole,
	})
}

// GetRiwayatLogin list riwayat login, terbaru duluan, berpaging preset admin
func (ac *AuthController) GetRiwayatLogin(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "waktu", "desc", helper.AdminOpts)

	total, err := authRepo.CountRiwayatLogin(ac.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat login")
	}
	list, err := authRepo.ListRiwayatLogin(ac.DB, p.Limit(), p.Offset())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat login")
	}

	return helper.Success(c, "OK", fiber.Map{
		"items": list,
		"meta":  helper.BuildMeta(total, p),
	})
}
