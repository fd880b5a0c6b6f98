package data

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

const sampleCSV = `Entity,Code,Year,Literacy rate
Finland,FIN,2000,99.0
Finland,FIN,2015,99.5
Chad,TCD,2016,22.3
Chad,TCD,2004,25.7
India,IND,2018,74.4
Bolivia,BOL,2015,92.5
NoValue,NOV,2015,
BadValue,BAD,2015,n/a
`

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "literacy.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSVLatestPerEntity(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	records, err := LoadCSV(path, "Literacy rate", 0)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4: %+v", len(records), records)
	}

	byName := map[string]Record{}
	for _, r := range records {
		byName[r.Name] = r
	}
	if fin := byName["Finland"]; fin.Year != 2015 || fin.Value != 99.5 {
		t.Errorf("Finland: got %+v, want latest year 2015 value 99.5", fin)
	}
	if chad := byName["Chad"]; chad.Year != 2016 || chad.Value != 22.3 {
		t.Errorf("Chad: got %+v, want latest year 2016 value 22.3", chad)
	}
	if _, ok := byName["NoValue"]; ok {
		t.Error("empty-value row should have been dropped")
	}
	if _, ok := byName["BadValue"]; ok {
		t.Error("non-numeric row should have been dropped")
	}

	for i := 1; i < len(records); i++ {
		if records[i-1].Name > records[i].Name {
			t.Fatalf("records not sorted by name: %q before %q", records[i-1].Name, records[i].Name)
		}
	}
}

func TestLoadCSVFixedYear(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	records, err := LoadCSV(path, "Literacy rate", 2015)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range records {
		if r.Year != 2015 {
			t.Errorf("%s: got year %d, want 2015", r.Name, r.Year)
		}
	}
	if len(records) != 2 {
		t.Fatalf("got %d records for 2015, want 2 (Finland, Bolivia)", len(records))
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeTempCSV(t, sampleCSV)
	if _, err := LoadCSV(path, "GDP per capita", 0); err == nil {
		t.Fatal("expected an error for a missing column")
	}
}

func TestFilterRangeAndBounds(t *testing.T) {
	records := []Record{
		{Name: "A", Value: -3},
		{Name: "B", Value: 15},
		{Name: "C", Value: 80},
		{Name: "D", Value: 120},
	}

	in := FilterRange(records, 0, 100)
	if len(in) != 2 {
		t.Fatalf("got %d in-range records, want 2", len(in))
	}

	b := BoundsOf(in)
	if b.Min != 15 || b.Max != 80 {
		t.Errorf("bounds: got [%v, %v], want [15, 80]", b.Min, b.Max)
	}

	if b := BoundsOf(nil); b.Min != 0 || b.Max != 0 {
		t.Errorf("empty bounds: got %+v, want zero", b)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Record{{Value: 20}, {Value: 60}, {Value: 100}})
	if s.Count != 3 || s.Mean != 60 || s.Min != 20 || s.Max != 100 {
		t.Errorf("got %+v", s)
	}
	if z := Summarize(nil); z.Count != 0 {
		t.Errorf("empty summary: got %+v", z)
	}
}

func TestSampleRepresentativeSmallPassThrough(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	records := []Record{
		{Name: "A", Value: 95},
		{Name: "B", Value: 75},
		{Name: "C", Value: 55},
		{Name: "D", Value: 30},
	}
	out := SampleRepresentative(records, rng)
	if len(out) != 4 {
		t.Fatalf("small population should pass through, got %d", len(out))
	}
}

func TestSampleRepresentativeTierCaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var records []Record
	add := func(prefix string, n int, value float64) {
		for i := 0; i < n; i++ {
			records = append(records, Record{
				Name:  prefix + string(rune('A'+i%26)) + string(rune('a'+i/26)),
				Value: value + float64(i%5),
			})
		}
	}
	add("high", 40, 90)
	add("mid+", 30, 72)
	add("mid", 25, 52)
	add("low", 20, 20)

	out := SampleRepresentative(records, rng)

	counts := map[string]int{}
	for _, r := range out {
		switch {
		case r.Value >= 90:
			counts["high"]++
		case r.Value >= 70:
			counts["mediumHigh"]++
		case r.Value >= 50:
			counts["medium"]++
		default:
			counts["low"]++
		}
	}
	if counts["high"] != 15 {
		t.Errorf("high tier: got %d, want 15", counts["high"])
	}
	if counts["mediumHigh"] != 12 {
		t.Errorf("medium-high tier: got %d, want 12", counts["mediumHigh"])
	}
	if counts["medium"] != 10 {
		t.Errorf("medium tier: got %d, want 10", counts["medium"])
	}
	if counts["low"] != 8 {
		t.Errorf("low tier: got %d, want 8", counts["low"])
	}
}

func TestSampleHighTierPrefersKnownCountries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	var tier []Record
	for _, name := range priorityCountries {
		tier = append(tier, Record{Name: name, Value: 99})
	}
	for i := 0; i < 30; i++ {
		tier = append(tier, Record{Name: "Other" + string(rune('A'+i)), Value: 95})
	}

	out := sampleHighTier(tier, 15, rng)
	if len(out) != 15 {
		t.Fatalf("got %d, want 15", len(out))
	}

	priority := 0
	known := map[string]bool{}
	for _, c := range priorityCountries {
		known[c] = true
	}
	for _, r := range out {
		if known[r.Name] {
			priority++
		}
	}
	if priority != 10 {
		t.Errorf("got %d priority countries, want 10", priority)
	}
}
