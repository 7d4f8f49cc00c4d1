package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	antrianModel "bansosku_backend/internals/features/bansos/antrian/model"
	wargaModel "bansosku_backend/internals/features/wargas/warga/model"
)

var (
	ErrPeriodeSudahAda        = errors.New("Antrian untuk bulan ini sudah ada")
	ErrMelebihiBatas          = errors.New("Maksimal 33 penerima per bulan")
	ErrWargaSudahDiAntrian    = errors.New("Warga sudah ada dalam antrian bulan ini")
	ErrWargaBelumDisetujui    = errors.New("Hanya warga berstatus disetujui yang dapat masuk antrian")
	ErrAntrianTidakDitemukan  = errors.New("Antrian tidak ditemukan")
	ErrPenerimaTidakDitemukan = errors.New("Penerima tidak ada dalam antrian")
	ErrBulanTidakValid        = errors.New("Bulan harus 1-12")
)

type CreateAntrianInput struct {
	Bulan    int
	Tahun    int
	WargaIDs []uuid.UUID // urutan list = urutan antrian
	Petugas  string
}

// Create membuat batch antrian baru. Seluruh invariant (periode unik,
// batas 33, anggota unik, status disetujui) divalidasi dalam satu
// transaksi; gagal satu berarti tidak ada yang tersimpan.
func Create(db *gorm.DB, input CreateAntrianInput) (*antrianModel.AntrianModel, error) {
	if input.Bulan < 1 || input.Bulan > 12 {
		return nil, ErrBulanTidakValid
	}
	if len(input.WargaIDs) > antrianModel.MaxPenerimaPerAntrian {
		return nil, ErrMelebihiBatas
	}

	seen := make(map[uuid.UUID]struct{}, len(input.WargaIDs))
	for _, id := range input.WargaIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrWargaSudahDiAntrian
		}
		seen[id] = struct{}{}
	}

	var antrian *antrianModel.AntrianModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&antrianModel.AntrianModel{}).
			Where("antrian_bulan = ? AND antrian_tahun = ?", input.Bulan, input.Tahun).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrPeriodeSudahAda
		}

		antrian = &antrianModel.AntrianModel{
			AntrianBulan:         input.Bulan,
			AntrianTahun:         input.Tahun,
			AntrianTanggalDibuat: datatypes.Date(time.Now()),
			AntrianPetugas:       input.Petugas,
		}
		if err := tx.Create(antrian).Error; err != nil {
			return err
		}

		for i, wargaID := range input.WargaIDs {
			member, err := buildMember(tx, antrian.AntrianID, wargaID, i+1)
			if err != nil {
				return err
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
			antrian.Penerima = append(antrian.Penerima, *member)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return antrian, nil
}

func buildMember(tx *gorm.DB, antrianID, wargaID uuid.UUID, urutan int) (*antrianModel.AntrianPenerimaModel, error) {
	var warga wargaModel.WargaModel
	if err := tx.Where("warga_id = ?", wargaID).First(&warga).Error; err != nil {
		return nil, fmt.Errorf("Warga %s tidak ditemukan", wargaID)
	}
	if warga.WargaStatus != wargaModel.StatusDisetujui {
		return nil, ErrWargaBelumDisetujui
	}
	return &antrianModel.AntrianPenerimaModel{
		PenerimaAntrianID: antrianID,
		PenerimaWargaID:   warga.WargaID,
		PenerimaNama:      warga.WargaNama,
		PenerimaUrutan:    urutan,
	}, nil
}

// AddMember menambah penerima di posisi terakhir (edit-in-place)
func AddMember(db *gorm.DB, antrianID, wargaID uuid.UUID) (*antrianModel.AntrianPenerimaModel, error) {
	var member *antrianModel.AntrianPenerimaModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := ensureAntrian(tx, antrianID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&antrianModel.AntrianPenerimaModel{}).
			Where("penerima_antrian_id = ?", antrianID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= antrianModel.MaxPenerimaPerAntrian {
			return errors.New("Sudah mencapai batas 33 penerima per bulan")
		}

		var dup int64
		if err := tx.Model(&antrianModel.AntrianPenerimaModel{}).
			Where("penerima_antrian_id = ? AND penerima_warga_id = ?", antrianID, wargaID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrWargaSudahDiAntrian
		}

		m, err := buildMember(tx, antrianID, wargaID, int(count)+1)
		if err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		member = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember menghapus penerima dan menutup celah urutan
func RemoveMember(db *gorm.DB, antrianID, wargaID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var member antrianModel.AntrianPenerimaModel
		if err := tx.Where("penerima_antrian_id = ? AND penerima_warga_id = ?", antrianID, wargaID).
			First(&member).Error; err != nil {
			return ErrPenerimaTidakDitemukan
		}
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}
		// Geser urutan di belakangnya naik satu
		return tx.Model(&antrianModel.AntrianPenerimaModel{}).
			Where("penerima_antrian_id = ? AND penerima_urutan > ?", antrianID, member.PenerimaUrutan).
			Update("penerima_urutan", gorm.Expr("penerima_urutan - 1")).Error
	})
}

// MoveMember menukar posisi dengan tetangga. delta -1 = naik, +1 = turun.
// No-op di batas atas/bawah.
func MoveMember(db *gorm.DB, antrianID, wargaID uuid.UUID, delta int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var member antrianModel.AntrianPenerimaModel
		if err := tx.Where("penerima_antrian_id = ? AND penerima_warga_id = ?", antrianID, wargaID).
			First(&member).Error; err != nil {
			return ErrPenerimaTidakDitemukan
		}

		targetUrutan := member.PenerimaUrutan + delta
		var neighbour antrianModel.AntrianPenerimaModel
		if err := tx.Where("penerima_antrian_id = ? AND penerima_urutan = ?", antrianID, targetUrutan).
			First(&neighbour).Error; err != nil {
			// Di batas: tidak ada tetangga, no-op
			return nil
		}

		if err := tx.Model(&neighbour).Update("penerima_urutan", member.PenerimaUrutan).Error; err != nil {
			return err
		}
		return tx.Model(&member).Update("penerima_urutan", targetUrutan).Error
	})
}

// Delete menghapus satu batch antrian beserta anggotanya
func Delete(db *gorm.DB, antrianID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureAntrian(tx, antrianID); err != nil {
			return err
		}
		if err := tx.Where("penerima_antrian_id = ?", antrianID).
			Delete(&antrianModel.AntrianPenerimaModel{}).Error; err != nil {
			return err
		}
		return tx.Where("antrian_id = ?", antrianID).
			Delete(&antrianModel.AntrianModel{}).Error
	})
}

// List seluruh antrian dengan anggota terurut
func List(db *gorm.DB) ([]antrianModel.AntrianModel, error) {
	var list []antrianModel.AntrianModel
	if err := db.
		Preload("Penerima", func(db *gorm.DB) *gorm.DB {
			return db.Order("penerima_urutan ASC")
		}).
		Order("antrian_tahun DESC, antrian_bulan DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Get satu antrian dengan anggota terurut
func Get(db *gorm.DB, antrianID uuid.UUID) (*antrianModel.AntrianModel, error) {
	var antrian antrianModel.AntrianModel
	if err := db.
		Preload("Penerima", func(db *gorm.DB) *gorm.DB {
			return db.Order("penerima_urutan ASC")
		}).
		Where("antrian_id = ?", antrianID).
		First(&antrian).Error; err != nil {
		return nil, ErrAntrianTidakDitemukan
	}
	return &antrian, nil
}

func ensureAntrian(tx *gorm.DB, antrianID uuid.UUID) error {
	var count int64
	if err := tx.Model(&antrianModel.AntrianModel{}).
		Where("antrian_id = ?", antrianID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAntrianTidakDitemukan
	}
	return nil
}
