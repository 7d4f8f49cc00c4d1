package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"bansosku_backend/internals/configs"
)

const (
	maxUploadSize = 5 * 1024 * 1024 // 5MB
	maxImageWidth = 1280
	webpQuality   = 85
)

// UploadImageAsWebP menyimpan foto upload ke disk lokal sebagai WebP.
// Gambar di-decode (jpeg/png), di-resize bila lebih lebar dari maxImageWidth,
// lalu di-encode ulang ke WebP quality 85. Return path relatif (untuk
// disajikan via /uploads static route).
func UploadImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", fmt.Errorf("ukuran gambar melebihi 5MB (%dKB)", fileHeader.Size/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("format gambar tidak didukung (hanya JPEG/PNG): %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode WebP: %w", err)
	}

	relPath := GenerateUniqueFilename(folder, fileHeader.Filename)
	relPath = strings.TrimSuffix(relPath, filepath.Ext(relPath)) + ".webp"

	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
	fullPath := filepath.Join(uploadDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return "/uploads/" + filepath.ToSlash(relPath), nil
}

// DeleteUploadedFile menghapus file yang sebelumnya di-upload (best effort).
func DeleteUploadedFile(publicPath string) error {
	if !strings.HasPrefix(publicPath, "/uploads/") {
		return fmt.Errorf("path upload tidak valid: %s", publicPath)
	}
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
	return os.Remove(filepath.Join(uploadDir, filepath.FromSlash(rel)))
}

// ✅ Buat nama unik
func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}
