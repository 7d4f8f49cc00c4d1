package helper

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ExportMeta metadata laporan untuk blok judul CSV.
type ExportMeta struct {
	Judul   string // contoh: "Laporan Data Warga Penerima"
	Jenis   string // contoh: "warga"
	Petugas string // nama petugas yang mengekspor
}

// ExportColumn memetakan key record (boleh dotted, contoh "alamat.rt")
// ke label header CSV.
type ExportColumn struct {
	Key   string
	Label string
}

// FlattenRecord meratakan SATU level objek bersarang jadi key bertitik:
// {"alamat": {"rt": "01"}} -> {"alamat.rt": "01"}. Level lebih dalam
// tidak diratakan lagi (di-render apa adanya).
func FlattenRecord(record map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(record))
	for k, v := range record {
		nested, ok := v.(map[string]interface{})
		if !ok {
			out[k] = v
			continue
		}
		for nk, nv := range nested {
			out[k+"."+nk] = nv
		}
	}
	return out
}

// ColumnsFromRecords menurunkan kolom dari union key semua record
// (sudah di-flatten), urut alfabetis supaya deterministik. Dipakai saat
// pemanggil tidak menentukan kolom eksplisit.
func ColumnsFromRecords(records []map[string]interface{}) []ExportColumn {
	seen := map[string]struct{}{}
	for _, r := range records {
		for k := range FlattenRecord(r) {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	cols := make([]ExportColumn, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, ExportColumn{Key: k, Label: k})
	}
	return cols
}

// BuildCSV menyusun isi file laporan: blok judul, header + baris data,
// lalu banner kerahasiaan. Nilai yang mengandung koma/kutip di-escape
// oleh encoding/csv.
func BuildCSV(meta ExportMeta, columns []ExportColumn, records []map[string]interface{}) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("tidak ada data untuk diekspor")
	}
	if len(columns) == 0 {
		columns = ColumnsFromRecords(records)
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	now := time.Now()
	titleBlock := [][]string{
		{meta.Judul},
		{"Jenis Laporan", meta.Jenis},
		{"Tanggal Ekspor", now.Format("2006-01-02 15:04:05")},
		{"Diekspor Oleh", meta.Petugas},
		{},
	}
	for _, row := range titleBlock {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	header := make([]string, len(columns))
	for i, col := range columns {
		header[i] = col.Label
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, record := range records {
		flat := FlattenRecord(record)
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = stringifyCell(flat[col.Key])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"DOKUMEN RAHASIA - Hanya untuk penggunaan internal Kelurahan"}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendCSV mengirim payload CSV sebagai attachment download.
// Nama file: <label>_<yyyy-mm-dd>.csv
func SendCSV(c *fiber.Ctx, label string, payload []byte) error {
	filename := fmt.Sprintf("%s_%s.csv", label, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(payload)
}

func stringifyCell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case time.Time:
		return t.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", t)
	}
}
