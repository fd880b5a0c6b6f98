// Command geoart renders animated geometric shapes whose form, color,
// clarity and motion encode per-country literacy rates.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/wan3s/literacy-art/internal/config"
	"github.com/wan3s/literacy-art/internal/data"
	"github.com/wan3s/literacy-art/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	csvPath := flag.String("csv", cfg.DataCSV, "path to the literacy-rate CSV")
	column := flag.String("column", cfg.DataColumn, "numeric column to visualize")
	year := flag.Int("year", 0, "use only this year (default: latest per entity)")
	flag.Parse()

	path := *csvPath
	if _, err := os.Stat(path); err != nil {
		path, err = pickCSV()
		if err != nil {
			log.Fatalf("no data file: %v", err)
		}
	}

	records, err := data.LoadCSV(path, *column, *year)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}
	records = data.FilterRange(records, 0, 100)
	if len(records) == 0 {
		log.Fatalf("no usable rows in %s for column %q", path, *column)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled := data.SampleRepresentative(records, rng)
	log.Printf("loaded %d records, showing %d entities", len(records), len(sampled))

	world := game.NewWorld(sampled, game.ParamsFromConfig(cfg), rng)
	scene := game.NewScene(world, cfg.CacheLimit, data.Summarize(sampled))

	ebiten.SetWindowSize(cfg.GeoWidth, cfg.GeoHeight)
	ebiten.SetWindowTitle("Abstract Geometric Art - Literacy Data Visualization")
	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// pickCSV opens a native file dialog when no CSV was found on disk.
func pickCSV() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Literacy Data CSV"),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errors.New("file selection canceled")
		}
		return "", err
	}
	return path, nil
}
