package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "bansosku_backend/internals/features/users/auth/controller"
	"bansosku_backend/internals/middlewares"
)

// AuthRoutes endpoint autentikasi publik. Login dan register memakai
// rate limiter yang lebih ketat dari limiter global.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
}

// AuthProtectedRoutes endpoint autentikasi yang membutuhkan JWT.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")
	auth.Get("/me", ctrl.Me)
	auth.Post("/logout", ctrl.Logout)
}
