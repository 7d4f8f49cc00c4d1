package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "bansosku_backend/internals/features/users/auth/model"
	petugasModel "bansosku_backend/internals/features/users/petugas/model"
)

/* ====================== PETUGAS ====================== */

func FindPetugasByUsername(db *gorm.DB, username string) (*petugasModel.PetugasModel, error) {
	var p petugasModel.PetugasModel
	if err := db.Where("petugas_username = ?", username).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func FindPetugasByID(db *gorm.DB, id uuid.UUID) (*petugasModel.PetugasModel, error) {
	var p petugasModel.PetugasModel
	if err := db.Where("petugas_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func CreatePetugas(db *gorm.DB, p *petugasModel.PetugasModel) error {
	return db.Create(p).Error
}

func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	var count int64
	if err := db.Model(&petugasModel.PetugasModel{}).
		Where("petugas_username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

/* ====================== RIWAYAT LOGIN ====================== */

func CreateRiwayatLogin(db *gorm.DB, r *authModel.RiwayatLoginModel) error {
	return db.Create(r).Error
}

func ListRiwayatLogin(db *gorm.DB, limit, offset int) ([]authModel.RiwayatLoginModel, error) {
	var list []authModel.RiwayatLoginModel
	q := db.Order("riwayat_login_waktu DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func CountRiwayatLogin(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&authModel.RiwayatLoginModel{}).Count(&total).Error
	return total, err
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshToken) error {
	return db.Create(token).Error
}

func FindRefreshTokenByHash(db *gorm.DB, hash []byte) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now().UTC()).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token_hash = ?", hash).Delete(&authModel.RefreshToken{}).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
