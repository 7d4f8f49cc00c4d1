package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	danaController "bansosku_backend/internals/features/keuangan/dana/controller"
	donasiController "bansosku_backend/internals/features/keuangan/donasi/controller"
	pengajuanController "bansosku_backend/internals/features/keuangan/pengajuan/controller"
)

// DonasiPublicRoutes form donasi masyarakat + webhook Midtrans.
// Endpoint notification masuk daftar pengecualian middleware auth.
func DonasiPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := donasiController.NewDonasiController(db)

	app.Post("/api/donations", ctrl.Create)
	app.Post("/api/donations/notification", ctrl.HandleNotification)
}

// KeuanganRoutes endpoint dana, pengajuan, dan riwayat donasi untuk petugas.
func KeuanganRoutes(api fiber.Router, db *gorm.DB) {
	danaCtrl := danaController.NewDanaController(db)
	pengajuanCtrl := pengajuanController.NewPengajuanController(db)
	donasiCtrl := donasiController.NewDonasiController(db)

	dana := api.Group("/dana")
	dana.Get("/export", danaCtrl.Export)
	dana.Get("/", danaCtrl.GetAll)
	dana.Post("/", danaCtrl.Create)

	// Alias read-only untuk klien lama
	api.Get("/transactions", danaCtrl.ListTransactions)

	pengajuan := api.Group("/pengajuan")
	pengajuan.Get("/", pengajuanCtrl.GetAll)
	pengajuan.Post("/", pengajuanCtrl.Create)

	api.Get("/donasi", donasiCtrl.GetAll)
}

// KeuanganAdminRoutes persetujuan pengajuan dana, khusus admin.
func KeuanganAdminRoutes(admin fiber.Router, db *gorm.DB) {
	pengajuanCtrl := pengajuanController.NewPengajuanController(db)

	admin.Patch("/pengajuan/:id/approve", pengajuanCtrl.Approve)
}
