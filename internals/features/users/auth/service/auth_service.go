package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bansosku_backend/internals/configs"
	"bansosku_backend/internals/constants"
	authHelper "bansosku_backend/internals/features/users/auth/helper"
	authModel "bansosku_backend/internals/features/users/auth/model"
	authRepo "bansosku_backend/internals/features/users/auth/repository"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
	helper "bansosku_backend/internals/helpers"
)

/* ==========================
   Const & Helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   REGISTER
========================== */

type registerInput struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	KonfirmasiPassword string `json:"konfirmasi_password"`
	Nama               string `json:"nama"`
	Role               string `json:"role"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.Username, input.Password, input.KonfirmasiPassword); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Role admin hanya boleh dibuat oleh admin yang sedang login
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.RolePetugas
	}
	if role == constants.RoleAdmin {
		callerRole, _ := c.Locals("userRole").(string)
		if callerRole != constants.RoleAdmin {
			return helper.Error(c, fiber.StatusForbidden, "Hanya admin yang dapat membuat akun admin")
		}
	}

	taken, err := authRepo.IsUsernameTaken(db, strings.TrimSpace(input.Username))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa username")
	}
	if taken {
		return helper.Error(c, fiber.StatusBadRequest, "Username sudah digunakan")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	petugas := petugasModel.PetugasModel{
		PetugasUsername: strings.TrimSpace(input.Username),
		PetugasPassword: passwordHash,
		PetugasNama:     strings.TrimSpace(input.Nama),
		PetugasRole:     role,
		PetugasIsActive: true,
	}
	if err := petugas.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := authRepo.CreatePetugas(db, &petugas); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "Username sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun petugas")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"petugas_id": petugas.PetugasID,
		"username":   petugas.PetugasUsername,
		"role":       petugas.PetugasRole,
	})
}

/* ==========================
   LOGIN (username + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Username = strings.TrimSpace(input.Username)

	if err := authHelper.ValidateLoginInput(input.Username, input.Password); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	// Pesan error sengaja generik (jangan bocorkan username mana yang ada)
	petugas, err := authRepo.FindPetugasByUsername(db, input.Username)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah!")
	}
	if err := authHelper.CheckPasswordHash(petugas.PetugasPassword, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah!")
	}
	if !petugas.PetugasIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	// Catat riwayat login (best effort, gagal tidak membatalkan login)
	if err := authRepo.CreateRiwayatLogin(db, &authModel.RiwayatLoginModel{
		RiwayatLoginPetugas: petugas.PetugasID,
		RiwayatLoginNama:    petugas.PetugasNama,
		RiwayatLoginRole:    petugas.PetugasRole,
		RiwayatLoginIP:      strptr(c.IP()),
	}); err != nil {
		log.Printf("[WARN] gagal catat riwayat login: %v", err)
	}

	return issueTokens(c, db, petugas)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	// Akun petugas harus sudah terdaftar dengan username = email Google.
	// Login Google tidak membuat akun baru (pendaftaran petugas lewat admin).
	petugas, err := authRepo.FindPetugasByUsername(db, claimSet.Email)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun Google belum terdaftar sebagai petugas")
	}
	if !petugas.PetugasIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	if err := authRepo.CreateRiwayatLogin(db, &authModel.RiwayatLoginModel{
		RiwayatLoginPetugas: petugas.PetugasID,
		RiwayatLoginNama:    petugas.PetugasNama,
		RiwayatLoginRole:    petugas.PetugasRole,
		RiwayatLoginIP:      strptr(c.IP()),
	}); err != nil {
		log.Printf("[WARN] gagal catat riwayat login: %v", err)
	}

	return issueTokens(c, db, petugas)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

func buildAccessClaims(p *petugasModel.PetugasModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       p.PetugasID.String(),
		"id":        p.PetugasID.String(),
		"user_name": p.PetugasNama,
		"role":      p.PetugasRole,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(petugasID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": petugasID.String(),
		"id":  petugasID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, petugas *petugasModel.PetugasModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(petugas, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(petugas.PetugasID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	// Simpan refresh token (hashed)
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		PetugasID: petugas.PetugasID,
		TokenHash: computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"user": fiber.Map{
			"id":       petugas.PetugasID,
			"username": petugas.PetugasUsername,
			"nama":     petugas.PetugasNama,
			"role":     petugas.PetugasRole,
		},
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Ambil raw access token (Authorization / cookie)
	accessToken := rawAccessToken(c)

	// Blacklist access token (idempotent)
	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, resolveBlacklistTTL(accessToken)); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookies (idempotent)")
	}

	// Hapus refresh token dari DB jika ada di cookie
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, refreshSecret))
		}
	}

	// Hapus cookies
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helper.Success(c, "Logout berhasil", nil)
}

func rawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret, err := getJWTSecret()
	if err != nil || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}
