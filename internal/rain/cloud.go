package rain

import (
	"sort"

	"github.com/wan3s/literacy-art/internal/data"
)

// Cloud is a clickable rain emitter bound to one country's value. Clouds
// never own drops; the selected cloud drives the global spawn rate and the
// value new drops carry.
type Cloud struct {
	X, Y     float64
	Radius   float64
	Name     string
	Value    float64
	Selected bool
}

// Contains reports whether the point lies inside the cloud's hit circle.
func (c *Cloud) Contains(px, py float64) bool {
	dx, dy := px-c.X, py-c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// pickCloudRecords chooses up to five records spread across the value
// range: the 0/25/50/75/100 percent positions of the sorted population,
// deduplicated by name.
func pickCloudRecords(records []data.Record) []data.Record {
	if len(records) == 0 {
		return nil
	}
	sorted := make([]data.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })

	n := len(sorted)
	indices := []int{0, n / 4, n / 2, n * 3 / 4, n - 1}

	seen := make(map[string]bool)
	var out []data.Record
	for _, i := range indices {
		if i < 0 {
			i = 0
		}
		if i > n-1 {
			i = n - 1
		}
		rec := sorted[i]
		if seen[rec.Name] {
			continue
		}
		seen[rec.Name] = true
		out = append(out, rec)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

// placeClouds spreads the chosen emitters evenly across the top of the
// canvas.
func placeClouds(records []data.Record, width float64) []*Cloud {
	const (
		margin = 80.0
		cloudY = 80.0
		radius = 56.0
	)
	count := len(records)
	if count == 0 {
		return nil
	}
	spacing := 1.0
	if count > 1 {
		spacing = (width - 2*margin) / float64(count-1)
	}
	clouds := make([]*Cloud, 0, count)
	for i, rec := range records {
		clouds = append(clouds, &Cloud{
			X:      margin + float64(i)*spacing,
			Y:      cloudY,
			Radius: radius,
			Name:   rec.Name,
			Value:  rec.Value,
		})
	}
	return clouds
}
