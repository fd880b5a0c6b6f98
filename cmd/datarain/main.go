// Command datarain renders falling particles whose speed, size and
// opacity encode a country's literacy rate, with clickable cloud emitters
// that set rain density and play audio at value-mapped volume.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/wan3s/literacy-art/internal/audio"
	"github.com/wan3s/literacy-art/internal/config"
	"github.com/wan3s/literacy-art/internal/data"
	"github.com/wan3s/literacy-art/internal/rain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	csvPath := flag.String("csv", cfg.DataCSV, "path to the literacy-rate CSV")
	column := flag.String("column", cfg.DataColumn, "numeric column to map to rain")
	year := flag.Int("year", 0, "use only this year (default: latest per entity)")
	flag.Parse()

	path := *csvPath
	if _, err := os.Stat(path); err != nil {
		path, err = pickCSV()
		if err != nil {
			log.Fatalf("no data file: %v", err)
		}
	}

	cfg.DataColumn = *column

	records, err := data.LoadCSV(path, *column, *year)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}
	if len(records) == 0 {
		log.Fatalf("no numeric rows in %s for column %q", path, *column)
	}
	log.Printf("loaded %d records", len(records))

	bounds := data.BoundsOf(records)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world := rain.NewWorld(records, rain.ParamsFromConfig(cfg, bounds), rng)
	scene := rain.NewScene(world, loadSounds(cfg.AssetsDir))

	ebiten.SetWindowSize(cfg.RainWidth, cfg.RainHeight)
	ebiten.SetWindowTitle("Data Rain - each drop is a country")
	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// sounds routes the scene's audio requests onto the loaded samples,
// falling back to the click sound when no cloud sample is available.
type sounds struct {
	click *audio.Sample
	cloud *audio.Sample
}

func (s *sounds) PlayCloud(volume float64) {
	if s.cloud != nil {
		s.cloud.Play(volume)
		return
	}
	s.click.Play(volume)
}

func (s *sounds) PlayClick(volume float64) {
	s.click.Play(volume)
}

// loadSounds loads the WAV assets; missing files degrade to silence.
func loadSounds(assetsDir string) rain.Sounds {
	var sys audio.System
	s := &sounds{}

	if smp, err := sys.Load(filepath.Join(assetsDir, "rain.wav")); err != nil {
		log.Printf("rain sound unavailable: %v", err)
	} else {
		s.click = smp
	}
	if smp, err := sys.Load(filepath.Join(assetsDir, "cloud.wav")); err != nil {
		log.Printf("cloud sound unavailable: %v", err)
	} else {
		s.cloud = smp
	}
	return s
}

// pickCSV opens a native file dialog when no CSV was found on disk.
func pickCSV() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Data CSV"),
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
