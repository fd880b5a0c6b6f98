// Package config holds every tunable of the two pieces. Values layer as
// compiled defaults, then an optional YAML file named by LITART_CONFIG,
// then LITART_* environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains the tunables for both scenes.
type Config struct {
	// Geometric art window.
	GeoWidth  int `koanf:"geo_width"`
	GeoHeight int `koanf:"geo_height"`

	// Data rain window.
	RainWidth  int `koanf:"rain_width"`
	RainHeight int `koanf:"rain_height"`

	// Mouse force field.
	MouseRadius   float64 `koanf:"mouse_radius"`
	MouseStrength float64 `koanf:"mouse_strength"`
	MaxVelocity   float64 `koanf:"max_velocity"`

	// Click pulse.
	ClickScale          float64 `koanf:"click_scale"`
	ClickDurationFrames float64 `koanf:"click_duration_frames"`

	// Entity rendering.
	EntitySizePx float64 `koanf:"entity_size_px"`

	// Tooltip geometry and fade, in pixels and 60fps frames.
	TooltipWidth      float64 `koanf:"tooltip_width"`
	TooltipHeight     float64 `koanf:"tooltip_height"`
	TooltipGap        float64 `koanf:"tooltip_gap"`
	TooltipMargin     float64 `koanf:"tooltip_margin"`
	TooltipFadeFrames float64 `koanf:"tooltip_fade_frames"`

	// Render cache bound.
	CacheLimit int `koanf:"cache_limit"`

	// Rain mapping: exponent >1 exaggerates differences between values.
	MappingExponent float64 `koanf:"mapping_exponent"`
	DropSpeedMin    float64 `koanf:"drop_speed_min"`
	DropSpeedMax    float64 `koanf:"drop_speed_max"`
	DropSizeMin     float64 `koanf:"drop_size_min"`
	DropSizeMax     float64 `koanf:"drop_size_max"`
	DropAlphaMin    float64 `koanf:"drop_alpha_min"`
	DropAlphaMax    float64 `koanf:"drop_alpha_max"`

	// Spawn density: interval shrinks as the selected value grows.
	SpawnIntervalMax float64 `koanf:"spawn_interval_max"`
	SpawnIntervalMin float64 `koanf:"spawn_interval_min"`
	MaxDrops         int     `koanf:"max_drops"`

	// Cloud click audio volume range.
	VolumeMin float64 `koanf:"volume_min"`
	VolumeMax float64 `koanf:"volume_max"`

	// Assets and data.
	AssetsDir  string `koanf:"assets_dir"`
	DataCSV    string `koanf:"data_csv"`
	DataColumn string `koanf:"data_column"`
}

// New returns the compiled-in defaults, matching the constants the pieces
// were tuned with.
func New() *Config {
	return &Config{
		GeoWidth:   1200,
		GeoHeight:  800,
		RainWidth:  1000,
		RainHeight: 700,

		MouseRadius:   150,
		MouseStrength: 0.5,
		MaxVelocity:   3.0,

		ClickScale:          2.0,
		ClickDurationFrames: 60,

		EntitySizePx: 30,

		TooltipWidth:      280,
		TooltipHeight:     140,
		TooltipGap:        30,
		TooltipMargin:     10,
		TooltipFadeFrames: 180,

		CacheLimit: 128,

		MappingExponent: 2.2,
		DropSpeedMin:    150,
		DropSpeedMax:    900,
		DropSizeMin:     1,
		DropSizeMax:     12,
		DropAlphaMin:    100,
		DropAlphaMax:    255,

		SpawnIntervalMax: 0.12,
		SpawnIntervalMin: 0.002,
		MaxDrops:         1200,

		VolumeMin: 0.03,
		VolumeMax: 1.0,

		AssetsDir:  "assets",
		DataCSV:    "cross-country-literacy-rates.csv",
		DataColumn: "Literacy rate",
	}
}

// Load builds a Config by layering defaults, an optional YAML file and env
// vars. Precedence (low -> high):
//  1. defaults (New())
//  2. YAML file if LITART_CONFIG is set
//  3. env (prefix LITART_, e.g. LITART_MOUSE_RADIUS -> mouse_radius)
func Load() (*Config, error) {
	cfg := *New()

	k := koanf.New(".")

	if path := os.Getenv("LITART_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("LITART_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "litart_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.GeoWidth <= 0 || cfg.GeoHeight <= 0 || cfg.RainWidth <= 0 || cfg.RainHeight <= 0 {
		return nil, errors.New("window dimensions must be positive")
	}
	if cfg.MappingExponent < 1 {
		return nil, errors.New("mapping_exponent must be >= 1")
	}
	return &cfg, nil
}
