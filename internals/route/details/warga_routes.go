package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wargaController "bansosku_backend/internals/features/wargas/warga/controller"
)

// WargaRoutes endpoint data warga calon & penerima bansos.
func WargaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := wargaController.NewWargaController(db)

	warga := api.Group("/warga")
	warga.Get("/export", ctrl.Export)
	warga.Get("/", ctrl.GetAll)
	warga.Post("/", ctrl.Create)
	warga.Get("/:id", ctrl.GetByID)
	warga.Put("/:id", ctrl.Update)
	warga.Patch("/:id/status", ctrl.UpdateStatus)
	warga.Post("/:id/foto", ctrl.UploadFoto)
	warga.Delete("/:id", ctrl.Delete)

	// Alias untuk klien lama
	recipients := api.Group("/recipients")
	recipients.Get("/", ctrl.GetAll)
	recipients.Post("/", ctrl.Create)
	recipients.Get("/:id", ctrl.GetByID)
	recipients.Put("/:id", ctrl.Update)
	recipients.Delete("/:id", ctrl.Delete)
}
