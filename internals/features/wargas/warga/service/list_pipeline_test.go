package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"nama": "Siti Aminah", "nik": "3201010101010001", "penghasilan": int64(750000),
			"status": "disetujui",
			"alamat": map[string]interface{}{"kelurahan": "Sukamaju", "rt": "02"},
		},
		{
			"nama": "budi hartono", "nik": "3201010101010002", "penghasilan": int64(500000),
			"status": "calon",
			"alamat": map[string]interface{}{"kelurahan": "Cempaka", "rt": "01"},
		},
		{
			"nama": "Agus Salim", "nik": "3201010101010003", "penghasilan": int64(1500000),
			"status": "disetujui",
			"alamat": map[string]interface{}{"kelurahan": "sukamaju", "rt": "03"},
		},
	}
}

func TestFilterFreeTextReachesNestedAlamat(t *testing.T) {
	got := Filter(sampleRecords(), "cempaka", "")
	require.Len(t, got, 1)
	assert.Equal(t, "budi hartono", got[0]["nama"])
}

func TestFilterStatusExact(t *testing.T) {
	got := Filter(sampleRecords(), "", "disetujui")
	assert.Len(t, got, 2)

	// "semua" berarti tanpa filter status
	got = Filter(sampleRecords(), "", "semua")
	assert.Len(t, got, 3)
}

func TestFilterCombinesSearchAndStatus(t *testing.T) {
	got := Filter(sampleRecords(), "sukamaju", "disetujui")
	assert.Len(t, got, 2)
}

func TestSortStringCaseInsensitive(t *testing.T) {
	records := sampleRecords()
	Sort(records, "nama", "asc")
	assert.Equal(t, "Agus Salim", records[0]["nama"])
	assert.Equal(t, "budi hartono", records[1]["nama"])
	assert.Equal(t, "Siti Aminah", records[2]["nama"])
}

func TestSortNumericByValue(t *testing.T) {
	records := sampleRecords()
	Sort(records, "penghasilan", "desc")
	assert.Equal(t, int64(1500000), records[0]["penghasilan"])
	assert.Equal(t, int64(500000), records[2]["penghasilan"])
}

func TestSortDottedPath(t *testing.T) {
	records := sampleRecords()
	Sort(records, "alamat.rt", "asc")
	assert.Equal(t, "budi hartono", records[0]["nama"])
}

func TestPaginateBounds(t *testing.T) {
	records := sampleRecords()

	page := Paginate(records, 1, 2)
	assert.Len(t, page, 2)

	page = Paginate(records, 2, 2)
	assert.Len(t, page, 1)

	page = Paginate(records, 3, 2)
	assert.Empty(t, page)
}

func TestApplyPipelineDeterministic(t *testing.T) {
	p := ListParams{Search: "", Status: "semua", SortBy: "nama", SortOrder: "asc", Page: 1, PerPage: 10}

	first, total1 := ApplyPipeline(sampleRecords(), p)
	second, total2 := ApplyPipeline(sampleRecords(), p)

	assert.Equal(t, total1, total2)
	assert.Equal(t, first, second)
}
