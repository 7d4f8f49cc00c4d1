package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "bansosku_backend/internals/route/details"

	"bansosku_backend/internals/constants"
	authMiddleware "bansosku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	// Login, refresh token, donasi masyarakat, dan daftar program bantuan.
	log.Println("[INFO] Setting up PUBLIC routes...")
	routeDetails.AuthRoutes(app, db)
	routeDetails.DonasiPublicRoutes(app, db)
	routeDetails.ProgramPublicRoutes(app, db)

	// ===================== PETUGAS =====================
	// Seluruh operasi harian petugas kelurahan: data warga, stok bahan,
	// distribusi, antrian bulanan, dan kas dana bansos.
	log.Println("[INFO] Setting up PETUGAS group (JWT)...")
	petugas := app.Group("/api", authMiddleware.AuthMiddleware(db))

	routeDetails.AuthProtectedRoutes(petugas, db)
	routeDetails.WargaRoutes(petugas, db)
	routeDetails.BansosRoutes(petugas, db)
	routeDetails.KeuanganRoutes(petugas, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + role)...")
	admin := app.Group("/api", authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Hanya admin yang dapat mengakses fitur ini", constants.RoleAdmin),
	)

	routeDetails.PetugasAdminRoutes(admin, db)
	routeDetails.KeuanganAdminRoutes(admin, db)
}
