package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bansosku_backend/internals/databases/testdb"
	danaModel "bansosku_backend/internals/features/keuangan/dana/model"
	donasiModel "bansosku_backend/internals/features/keuangan/donasi/model"
)

func seedDonasi(t *testing.T, db *gorm.DB, orderID string, jumlah int64) *donasiModel.DonasiModel {
	t.Helper()
	d := &donasiModel.DonasiModel{
		DonasiOrderID: orderID,
		DonasiNama:    "Hamba Allah",
		DonasiEmail:   "donatur@example.com",
		DonasiJumlah:  jumlah,
		DonasiStatus:  donasiModel.StatusPending,
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func TestWebhookSettlementMencatatPemasukan(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&danaModel.SaldoModel{SaldoJumlah: 1_000_000}).Error)
	seedDonasi(t, db, "DONASI-1", 500_000)

	err := HandleDonasiStatusWebhook(db, map[string]interface{}{
		"order_id":           "DONASI-1",
		"transaction_status": "settlement",
	})
	require.NoError(t, err)

	var donasi donasiModel.DonasiModel
	require.NoError(t, db.First(&donasi, "donasi_order_id = ?", "DONASI-1").Error)
	assert.Equal(t, donasiModel.StatusCompleted, donasi.DonasiStatus)
	require.NotNil(t, donasi.DonasiPaidAt)

	var saldo danaModel.SaldoModel
	require.NoError(t, db.First(&saldo).Error)
	assert.EqualValues(t, 1_500_000, saldo.SaldoJumlah)

	var entries []danaModel.RiwayatDanaModel
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, danaModel.JenisPemasukan, entries[0].RiwayatDanaJenis)
	assert.EqualValues(t, 500_000, entries[0].RiwayatDanaJumlah)
}

func TestWebhookSettlementIdempoten(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, db.Create(&danaModel.SaldoModel{SaldoJumlah: 0}).Error)
	seedDonasi(t, db, "DONASI-1", 250_000)

	body := map[string]interface{}{
		"order_id":           "DONASI-1",
		"transaction_status": "settlement",
	}
	require.NoError(t, HandleDonasiStatusWebhook(db, body))
	require.NoError(t, HandleDonasiStatusWebhook(db, body))

	// Kiriman ulang tidak menggandakan pemasukan
	var saldo danaModel.SaldoModel
	require.NoError(t, db.First(&saldo).Error)
	assert.EqualValues(t, 250_000, saldo.SaldoJumlah)

	var count int64
	db.Model(&danaModel.RiwayatDanaModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestWebhookExpireMenandaiGagal(t *testing.T) {
	db := testdb.Open(t)
	seedDonasi(t, db, "DONASI-1", 100_000)

	err := HandleDonasiStatusWebhook(db, map[string]interface{}{
		"order_id":           "DONASI-1",
		"transaction_status": "expire",
	})
	require.NoError(t, err)

	var donasi donasiModel.DonasiModel
	require.NoError(t, db.First(&donasi, "donasi_order_id = ?", "DONASI-1").Error)
	assert.Equal(t, donasiModel.StatusFailed, donasi.DonasiStatus)
	assert.Nil(t, donasi.DonasiPaidAt)

	// Tidak ada pemasukan tercatat
	var count int64
	db.Model(&danaModel.RiwayatDanaModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestWebhookOrderTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	err := HandleDonasiStatusWebhook(db, map[string]interface{}{
		"order_id":           "DONASI-XXX",
		"transaction_status": "settlement",
	})
	assert.Error(t, err)
}

func TestWebhookPayloadTidakLengkap(t *testing.T) {
	db := testdb.Open(t)
	err := HandleDonasiStatusWebhook(db, map[string]interface{}{
		"order_id": "DONASI-1",
	})
	assert.Error(t, err)
}
