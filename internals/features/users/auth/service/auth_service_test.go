package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bansosku_backend/internals/configs"
	"bansosku_backend/internals/constants"
	"bansosku_backend/internals/databases/testdb"
	authHelper "bansosku_backend/internals/features/users/auth/helper"
	authModel "bansosku_backend/internals/features/users/auth/model"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
	authMiddleware "bansosku_backend/internals/middlewares/auth"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "unit-test-secret"
	configs.JWTRefreshSecret = "unit-test-refresh-secret"

	db := testdb.Open(t)
	app := fiber.New()
	app.Post("/api/auth/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/api/auth/login", func(c *fiber.Ctx) error { return Login(db, c) })

	// Cermin grup admin di routing asli
	admin := app.Group("/api", authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Hanya admin yang dapat mengakses fitur ini", constants.RoleAdmin),
	)
	admin.Post("/petugas", func(c *fiber.Ctx) error { return Register(db, c) })

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	return postJSONAuth(t, app, path, payload, "")
}

func postJSONAuth(t *testing.T, app *fiber.App, path string, payload interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp, parsed
}

func TestRegisterDanLogin(t *testing.T) {
	app, db := newAuthApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Budi Santoso",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	var petugas petugasModel.PetugasModel
	require.NoError(t, db.First(&petugas, "petugas_username = ?", "petugas1").Error)
	assert.Equal(t, "petugas", petugas.PetugasRole)
	assert.NotEqual(t, "rahasia123", petugas.PetugasPassword, "password harus tersimpan sebagai hash")

	resp, body = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "petugas1",
		"password": "rahasia123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "Budi Santoso", user["nama"])

	// Login tercatat di riwayat
	var riwayat int64
	db.Model(&authModel.RiwayatLoginModel{}).Count(&riwayat)
	assert.EqualValues(t, 1, riwayat)

	// Refresh token tersimpan dalam bentuk hash
	var refresh authModel.RefreshToken
	require.NoError(t, db.First(&refresh).Error)
	assert.Len(t, refresh.TokenHash, 32)
}

func TestRegisterKonfirmasiTidakCocok(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "beda",
		"nama":                "Budi Santoso",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Konfirmasi password tidak cocok", body["message"])
}

func TestRegisterUsernameDuplikat(t *testing.T) {
	app, _ := newAuthApp(t)

	payload := fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Budi Santoso",
	}
	resp, _ := postJSON(t, app, "/api/auth/register", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/api/auth/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username sudah digunakan", body["message"])
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hashed, err := authHelper.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&petugasModel.PetugasModel{
		PetugasUsername: "admin",
		PetugasPassword: hashed,
		PetugasNama:     "Administrator",
		PetugasRole:     constants.RoleAdmin,
		PetugasIsActive: true,
	}).Error)
}

func loginToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := body["data"].(map[string]interface{})["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRegisterAdminOlehAdminBerhasil(t *testing.T) {
	app, db := newAuthApp(t)
	seedAdmin(t, db)
	token := loginToken(t, app, "admin", "admin123")

	resp, body := postJSONAuth(t, app, "/api/petugas", fiber.Map{
		"username":            "admin2",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Admin Kedua",
		"role":                "admin",
	}, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])

	var created petugasModel.PetugasModel
	require.NoError(t, db.First(&created, "petugas_username = ?", "admin2").Error)
	assert.Equal(t, constants.RoleAdmin, created.PetugasRole)
	assert.True(t, created.PetugasIsActive)
}

func TestRegisterAdminOlehPetugasDitolak(t *testing.T) {
	app, db := newAuthApp(t)
	seedAdmin(t, db)

	_, _ = postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Budi Santoso",
	})
	token := loginToken(t, app, "petugas1", "rahasia123")

	resp, body := postJSONAuth(t, app, "/api/petugas", fiber.Map{
		"username":            "admin2",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Admin Gadungan",
		"role":                "admin",
	}, token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Hanya admin yang dapat mengakses fitur ini", body["message"])
}

func TestRegisterAdminTanpaHakDitolak(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, body := postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "admin2",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Admin Baru",
		"role":                "admin",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Hanya admin yang dapat membuat akun admin", body["message"])
}

func TestLoginPesanErrorGenerik(t *testing.T) {
	app, _ := newAuthApp(t)

	_, _ = postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Budi Santoso",
	})

	// Username tidak ada dan password salah menghasilkan pesan yang sama
	resp, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "tidakada",
		"password": "rahasia123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Username atau password salah!", body["message"])

	resp, body = postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "petugas1",
		"password": "salah",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Username atau password salah!", body["message"])
}

func TestLoginAkunNonaktif(t *testing.T) {
	app, db := newAuthApp(t)

	_, _ = postJSON(t, app, "/api/auth/register", fiber.Map{
		"username":            "petugas1",
		"password":            "rahasia123",
		"konfirmasi_password": "rahasia123",
		"nama":                "Budi Santoso",
	})
	require.NoError(t, db.Model(&petugasModel.PetugasModel{}).
		Where("petugas_username = ?", "petugas1").
		Update("petugas_is_active", false).Error)

	resp, body := postJSON(t, app, "/api/auth/login", fiber.Map{
		"username": "petugas1",
		"password": "rahasia123",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Akun Anda telah dinonaktifkan. Hubungi admin.", body["message"])
}
