package dto

import (
	"time"

	"gorm.io/datatypes"

	"bansosku_backend/internals/features/wargas/warga/model"
)

type AlamatRequest struct {
	Rt        string `json:"rt"`
	Rw        string `json:"rw"`
	Jalan     string `json:"jalan"`
	Nomor     string `json:"nomor"`
	Kelurahan string `json:"kelurahan"`
	Kecamatan string `json:"kecamatan"`
	Kabupaten string `json:"kabupaten"`
	Provinsi  string `json:"provinsi"`
}

type WargaRequest struct {
	Nama           string        `json:"nama"`
	NIK            string        `json:"nik"`
	JumlahKeluarga int           `json:"jumlah_keluarga"`
	Penghasilan    int64         `json:"penghasilan"`
	Pekerjaan      string        `json:"pekerjaan"`
	PekerjaanLain  string        `json:"pekerjaan_lain"`
	Catatan        string        `json:"catatan"`
	Alamat         AlamatRequest `json:"alamat"`
}

// ToModel membangun WargaModel baru dari request (status & tanggal daftar
// distempel oleh controller saat create)
func (r *WargaRequest) ToModel() *model.WargaModel {
	return &model.WargaModel{
		WargaNama:           r.Nama,
		WargaNIK:            r.NIK,
		WargaJumlahKeluarga: r.JumlahKeluarga,
		WargaPenghasilan:    r.Penghasilan,
		WargaPekerjaan:      r.Pekerjaan,
		WargaPekerjaanLain:  r.PekerjaanLain,
		WargaCatatan:        r.Catatan,
		WargaAlamat: model.AlamatModel{
			Rt:        r.Alamat.Rt,
			Rw:        r.Alamat.Rw,
			Jalan:     r.Alamat.Jalan,
			Nomor:     r.Alamat.Nomor,
			Kelurahan: r.Alamat.Kelurahan,
			Kecamatan: r.Alamat.Kecamatan,
			Kabupaten: r.Alamat.Kabupaten,
			Provinsi:  r.Alamat.Provinsi,
		},
	}
}

// ApplyTo menyalin field request ke model yang sudah ada (edit form)
func (r *WargaRequest) ApplyTo(w *model.WargaModel) {
	w.WargaNama = r.Nama
	w.WargaNIK = r.NIK
	w.WargaJumlahKeluarga = r.JumlahKeluarga
	w.WargaPenghasilan = r.Penghasilan
	w.WargaPekerjaan = r.Pekerjaan
	w.WargaPekerjaanLain = r.PekerjaanLain
	w.WargaCatatan = r.Catatan
	w.WargaAlamat = model.AlamatModel{
		Rt:        r.Alamat.Rt,
		Rw:        r.Alamat.Rw,
		Jalan:     r.Alamat.Jalan,
		Nomor:     r.Alamat.Nomor,
		Kelurahan: r.Alamat.Kelurahan,
		Kecamatan: r.Alamat.Kecamatan,
		Kabupaten: r.Alamat.Kabupaten,
		Provinsi:  r.Alamat.Provinsi,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=calon disetujui menerima ditolak"`
}

// ToRecord meratakan warga jadi record generik untuk pipeline list & ekspor
// CSV (alamat tetap satu level nested, di-flatten oleh pemakainya).
func ToRecord(w *model.WargaModel) map[string]interface{} {
	return map[string]interface{}{
		"warga_id":          w.WargaID.String(),
		"nama":              w.WargaNama,
		"nik":               w.WargaNIK,
		"jumlah_keluarga":   w.WargaJumlahKeluarga,
		"penghasilan":       w.WargaPenghasilan,
		"pekerjaan":         w.WargaPekerjaan,
		"pekerjaan_display": w.WargaPekerjaanDisplay,
		"status":            w.WargaStatus,
		"catatan":           w.WargaCatatan,
		"foto_url":          w.WargaFotoURL,
		"tanggal_daftar":    time.Time(w.WargaTanggalDaftar).Format("2006-01-02"),
		"alamat": map[string]interface{}{
			"rt":        w.WargaAlamat.Rt,
			"rw":        w.WargaAlamat.Rw,
			"jalan":     w.WargaAlamat.Jalan,
			"nomor":     w.WargaAlamat.Nomor,
			"kelurahan": w.WargaAlamat.Kelurahan,
			"kecamatan": w.WargaAlamat.Kecamatan,
			"kabupaten": w.WargaAlamat.Kabupaten,
			"provinsi":  w.WargaAlamat.Provinsi,
		},
	}
}

// TodayDate tanggal hari ini sebagai datatypes.Date
func TodayDate() datatypes.Date {
	return datatypes.Date(time.Now())
}
