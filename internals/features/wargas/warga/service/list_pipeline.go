// Pipeline list warga: filter -> sort -> paginate, murni in-memory.
// Skala data kelurahan kecil, jadi seluruh pipeline dijalankan di atas
// record hasil query; hasilnya deterministik untuk input yang sama.
package service

import (
	"fmt"
	"sort"
	"strings"
)

type ListParams struct {
	Search    string
	Status    string // "semua" / kosong = tanpa filter status
	SortBy    string // boleh dotted path, contoh "alamat.kelurahan"
	SortOrder string // asc|desc
	Page      int
	PerPage   int
}

// ApplyPipeline menjalankan filter -> sort -> paginate (urutan ketat).
// Return: halaman record + total setelah filter (sebelum paginate).
func ApplyPipeline(records []map[string]interface{}, p ListParams) ([]map[string]interface{}, int) {
	filtered := Filter(records, p.Search, p.Status)
	Sort(filtered, p.SortBy, p.SortOrder)
	return Paginate(filtered, p.Page, p.PerPage), len(filtered)
}

// Filter: substring case-insensitive atas semua field skalar plus satu
// level nested, DAN filter status exact (kecuali "semua").
func Filter(records []map[string]interface{}, search, status string) []map[string]interface{} {
	search = strings.ToLower(strings.TrimSpace(search))
	status = strings.TrimSpace(status)
	filterStatus := status != "" && status != "semua"

	out := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		if filterStatus {
			if s, _ := r["status"].(string); s != status {
				continue
			}
		}
		if search != "" && !recordMatches(r, search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func recordMatches(record map[string]interface{}, search string) bool {
	for _, v := range record {
		if nested, ok := v.(map[string]interface{}); ok {
			for _, nv := range nested {
				if valueContains(nv, search) {
					return true
				}
			}
			continue
		}
		if valueContains(v, search) {
			return true
		}
	}
	return false
}

func valueContains(v interface{}, search string) bool {
	if v == nil {
		return false
	}
	return strings.Contains(strings.ToLower(fmt.Sprintf("%v", v)), search)
}

// Sort mengurutkan in-place, stabil. String dibandingkan case-insensitive,
// angka secara numerik. Dotted path menjangkau field nested.
func Sort(records []map[string]interface{}, sortBy, order string) {
	if sortBy == "" {
		return
	}
	desc := strings.EqualFold(order, "desc")

	sort.SliceStable(records, func(i, j int) bool {
		less := compareValues(lookupPath(records[i], sortBy), lookupPath(records[j], sortBy))
		if desc {
			return less > 0
		}
		return less < 0
	})
}

func lookupPath(record map[string]interface{}, path string) interface{} {
	parts := strings.SplitN(path, ".", 2)
	v, ok := record[parts[0]]
	if !ok {
		return nil
	}
	if len(parts) == 1 {
		return v
	}
	nested, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return nested[parts[1]]
}

// compareValues: -1 jika a<b, 0 sama, 1 jika a>b. Nil selalu di akhir.
func compareValues(a, b interface{}) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return 1
	}
	if b == nil {
		return -1
	}

	an, aok := toFloat(a)
	bn, bok := toFloat(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	as := strings.ToLower(fmt.Sprintf("%v", a))
	bs := strings.ToLower(fmt.Sprintf("%v", b))
	return strings.Compare(as, bs)
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// Paginate memotong halaman. Page mulai dari 1; di luar rentang -> kosong.
func Paginate(records []map[string]interface{}, page, perPage int) []map[string]interface{} {
	if perPage <= 0 {
		return records
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(records) {
		return []map[string]interface{}{}
	}
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}
