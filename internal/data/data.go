// Package data loads the literacy-rate CSV into validated records. It is
// the only place that touches the raw file; everything downstream receives
// finite, in-domain values.
package data

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/wan3s/literacy-art/internal/mapping"
)

// Record is one country's most recent observation of the mapped column.
type Record struct {
	Name  string
	Code  string
	Year  int
	Value float64
}

// LoadCSV reads path and returns one record per entity for the given value
// column. When year is zero the most recent year per entity is kept,
// otherwise only rows from that year. Rows with non-numeric values are
// dropped. The result is sorted by name.
func LoadCSV(path, column string, year int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv %s has no data rows", path)
	}

	header := rows[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	nameIdx, codeIdx, yearIdx, valIdx := col("Entity"), col("Code"), col("Year"), col(column)
	if nameIdx < 0 || valIdx < 0 {
		return nil, fmt.Errorf("csv %s: missing column %q (have %v)", path, column, header)
	}

	latest := make(map[string]Record)
	for _, row := range rows[1:] {
		if nameIdx >= len(row) || valIdx >= len(row) {
			continue
		}
		value, err := strconv.ParseFloat(row[valIdx], 64)
		if err != nil {
			continue
		}
		rec := Record{Name: row[nameIdx], Value: value}
		if codeIdx >= 0 && codeIdx < len(row) {
			rec.Code = row[codeIdx]
		}
		if yearIdx >= 0 && yearIdx < len(row) {
			rec.Year, _ = strconv.Atoi(row[yearIdx])
		}
		if year != 0 {
			if rec.Year == year {
				latest[rec.Name] = rec
			}
			continue
		}
		if prev, ok := latest[rec.Name]; !ok || rec.Year >= prev.Year {
			latest[rec.Name] = rec
		}
	}

	out := make([]Record, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// FilterRange drops records whose value falls outside [min, max].
func FilterRange(records []Record, min, max float64) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Value >= min && r.Value <= max {
			out = append(out, r)
		}
	}
	return out
}

// BoundsOf computes the normalization context over the full population.
func BoundsOf(records []Record) mapping.Bounds {
	if len(records) == 0 {
		return mapping.Bounds{}
	}
	b := mapping.Bounds{Min: records[0].Value, Max: records[0].Value}
	for _, r := range records[1:] {
		if r.Value < b.Min {
			b.Min = r.Value
		}
		if r.Value > b.Max {
			b.Max = r.Value
		}
	}
	return b
}

// Stats summarizes a population for the info panel.
type Stats struct {
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// Summarize computes population statistics.
func Summarize(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}
	b := BoundsOf(records)
	sum := 0.0
	for _, r := range records {
		sum += r.Value
	}
	return Stats{
		Count: len(records),
		Mean:  sum / float64(len(records)),
		Min:   b.Min,
		Max:   b.Max,
	}
}

// Countries favored when sampling the high-literacy tier so that familiar
// names show up in the piece.
var priorityCountries = []string{
	"Finland", "Norway", "Denmark", "Germany", "Japan", "United States",
	"Canada", "Australia", "United Kingdom", "France", "Sweden",
}

// SampleRepresentative reduces the population to roughly 45 entities with
// stratified sampling so every literacy tier stays represented: up to 15
// high (>=90, well-known countries first), 12 medium-high [70,90), 10
// medium [50,70) and 8 low (<50). Small populations pass through intact.
func SampleRepresentative(records []Record, rng *rand.Rand) []Record {
	var high, mediumHigh, medium, low []Record
	for _, r := range records {
		switch {
		case r.Value >= 90:
			high = append(high, r)
		case r.Value >= 70:
			mediumHigh = append(mediumHigh, r)
		case r.Value >= 50:
			medium = append(medium, r)
		default:
			low = append(low, r)
		}
	}

	var out []Record
	out = append(out, sampleHighTier(high, 15, rng)...)
	out = append(out, sampleTier(mediumHigh, 12, rng)...)
	out = append(out, sampleTier(medium, 10, rng)...)
	out = append(out, sampleTier(low, 8, rng)...)
	if len(out) == 0 {
		if len(records) > 50 {
			return records[:50]
		}
		return records
	}
	return out
}

func sampleHighTier(tier []Record, n int, rng *rand.Rand) []Record {
	if len(tier) <= n {
		return tier
	}
	isPriority := make(map[string]bool, len(priorityCountries))
	for _, c := range priorityCountries {
		isPriority[c] = true
	}
	var picked, rest []Record
	for _, r := range tier {
		if isPriority[r.Name] && len(picked) < 10 {
			picked = append(picked, r)
		} else {
			rest = append(rest, r)
		}
	}
	picked = append(picked, sampleTier(rest, n-len(picked), rng)...)
	return picked
}

func sampleTier(tier []Record, n int, rng *rand.Rand) []Record {
	if len(tier) <= n {
		return tier
	}
	idx := rng.Perm(len(tier))[:n]
	sort.Ints(idx)
	out := make([]Record, 0, n)
	for _, i := range idx {
		out = append(out, tier[i])
	}
	return out
}
