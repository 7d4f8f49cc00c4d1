package helper

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateRegisterInput validasi awal sebelum masuk model.Validate()
func ValidateRegisterInput(username, password, konfirmasi string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("Username wajib diisi")
	}
	if len(password) < 6 {
		return errors.New("Password minimal 6 karakter")
	}
	if password != konfirmasi {
		return errors.New("Konfirmasi password tidak cocok")
	}
	return nil
}

func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.New("Username dan password wajib diisi")
	}
	return nil
}
