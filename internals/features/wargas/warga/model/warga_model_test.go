package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWarga() *WargaModel {
	w := &WargaModel{
		WargaNama:           "Siti Aminah",
		WargaNIK:            "3201234567890001",
		WargaJumlahKeluarga: 4,
		WargaPenghasilan:    1500000,
		WargaPekerjaan:      "buruh_tani",
		WargaAlamat: AlamatModel{
			Rt:    "01",
			Rw:    "05",
			Jalan: "Jl. Melati",
		},
	}
	w.SetDefaultValues()
	return w
}

func TestValidateWargaLengkap(t *testing.T) {
	require.NoError(t, validWarga().Validate())
}

func TestValidateNIK(t *testing.T) {
	cases := []struct {
		name string
		nik  string
	}{
		{"kurang dari 16 digit", "320123456789"},
		{"lebih dari 16 digit", "32012345678900011"},
		{"mengandung huruf", "32012345678900AB"},
		{"kosong", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := validWarga()
			w.WargaNIK = tc.nik
			assert.Error(t, w.Validate())
		})
	}
}

func TestValidatePenghasilanDiLuarRentang(t *testing.T) {
	w := validWarga()
	w.WargaPenghasilan = 400000
	assert.Error(t, w.Validate())

	w = validWarga()
	w.WargaPenghasilan = 4000000
	assert.Error(t, w.Validate())
}

func TestValidateAlamatWajib(t *testing.T) {
	w := validWarga()
	w.WargaAlamat.Rt = ""
	assert.Error(t, w.Validate())

	w = validWarga()
	w.WargaAlamat.Jalan = ""
	assert.Error(t, w.Validate())

	// Field alamat opsional boleh kosong
	w = validWarga()
	w.WargaAlamat.Kelurahan = ""
	w.WargaAlamat.Provinsi = ""
	assert.NoError(t, w.Validate())
}

func TestValidatePekerjaanLainnya(t *testing.T) {
	w := validWarga()
	w.WargaPekerjaan = "lainnya"
	w.WargaPekerjaanLain = ""
	assert.Error(t, w.Validate())

	w.WargaPekerjaanLain = "Tukang Ojek"
	w.SetDefaultValues()
	require.NoError(t, w.Validate())
	assert.Equal(t, "Tukang Ojek", w.WargaPekerjaanDisplay)
}

func TestResolvePekerjaanDisplay(t *testing.T) {
	assert.Equal(t, "Buruh Tani", ResolvePekerjaanDisplay("buruh_tani", ""))
	assert.Equal(t, "Pedagang Kecil", ResolvePekerjaanDisplay("pedagang_kecil", ""))
	assert.Equal(t, "Tukang Ojek", ResolvePekerjaanDisplay("lainnya", "Tukang Ojek"))
}

func TestSetDefaultValuesStatusCalon(t *testing.T) {
	w := &WargaModel{WargaPekerjaan: "nelayan"}
	w.SetDefaultValues()
	assert.Equal(t, StatusCalon, w.WargaStatus)
	assert.Equal(t, "Nelayan", w.WargaPekerjaanDisplay)
}
