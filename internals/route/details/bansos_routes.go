package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	antrianController "bansosku_backend/internals/features/bansos/antrian/controller"
	bahanController "bansosku_backend/internals/features/bansos/bahan/controller"
	distribusiController "bansosku_backend/internals/features/bansos/distribusi/controller"
)

// ProgramPublicRoutes daftar program bantuan yang bisa dilihat publik.
func ProgramPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := bahanController.NewBahanController(db)
	app.Get("/api/programs", ctrl.GetAll)
}

// BansosRoutes endpoint stok bahan, distribusi, dan antrian bulanan.
func BansosRoutes(api fiber.Router, db *gorm.DB) {
	bahanCtrl := bahanController.NewBahanController(db)
	distribusiCtrl := distribusiController.NewDistribusiController(db)
	antrianCtrl := antrianController.NewAntrianController(db)

	bahan := api.Group("/bahan")
	bahan.Get("/", bahanCtrl.GetAll)
	bahan.Post("/", bahanCtrl.Create)
	bahan.Get("/:id", bahanCtrl.GetByID)
	bahan.Put("/:id", bahanCtrl.Update)
	bahan.Post("/:id/restock", bahanCtrl.Restock)
	bahan.Delete("/:id", bahanCtrl.Delete)

	distribusi := api.Group("/distribusi")
	distribusi.Get("/export", distribusiCtrl.Export)
	distribusi.Get("/", distribusiCtrl.GetAll)
	distribusi.Post("/", distribusiCtrl.Create)

	antrian := api.Group("/antrian")
	antrian.Get("/export", antrianCtrl.Export)
	antrian.Get("/", antrianCtrl.GetAll)
	antrian.Post("/", antrianCtrl.Create)
	antrian.Get("/:id", antrianCtrl.GetByID)
	antrian.Delete("/:id", antrianCtrl.Delete)
	antrian.Post("/:id/penerima", antrianCtrl.AddPenerima)
	antrian.Delete("/:id/penerima/:wargaID", antrianCtrl.RemovePenerima)
	antrian.Patch("/:id/penerima/:wargaID/naik", antrianCtrl.NaikkanPenerima)
	antrian.Patch("/:id/penerima/:wargaID/turun", antrianCtrl.TurunkanPenerima)
}
