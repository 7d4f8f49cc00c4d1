package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bansosku_backend/internals/features/users/auth/controller"
	petugasController "bansosku_backend/internals/features/users/petugas/controller"
)

// PetugasAdminRoutes manajemen akun petugas & riwayat login, khusus admin.
func PetugasAdminRoutes(admin fiber.Router, db *gorm.DB) {
	petugasCtrl := petugasController.NewPetugasController(db)
	authCtrl := authController.NewAuthController(db)

	petugas := admin.Group("/petugas")
	petugas.Get("/", petugasCtrl.GetAll)
	// Lewat grup ini Locals userRole sudah terisi, jadi admin bisa
	// membuat akun admin baru (endpoint register publik menolaknya).
	petugas.Post("/", authCtrl.Register)
	petugas.Get("/:id", petugasCtrl.GetByID)
	petugas.Put("/:id", petugasCtrl.Update)
	petugas.Delete("/:id", petugasCtrl.Delete)

	admin.Get("/riwayat-login", authCtrl.GetRiwayatLogin)
}
