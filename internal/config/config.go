// seehuhn.de/go/winerender - render wine tasting attributes as images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the settings of the winerender command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/winerender"
	"seehuhn.de/go/winerender/effects"
)

// ErrInvalid is returned by [Config.Validate] for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config aggregates the settings of a rendering run.
type Config struct {
	Profile     string  `yaml:"profile"`
	Format      string  `yaml:"format"`
	JPEGQuality int     `yaml:"jpegQuality"`
	SugarMode   string  `yaml:"sugarMode"`
	Seed        *uint32 `yaml:"seed"`
	Bubbles     Bubbles `yaml:"bubbles"`
	LogLevel    string  `yaml:"logLevel"`
}

// Bubbles controls the bubble layer.
type Bubbles struct {
	Intensity float64  `yaml:"intensity"`
	Passes    []string `yaml:"passes"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Profile:     winerender.Standard.Name,
		Format:      winerender.PNG.String(),
		JPEGQuality: winerender.DefaultJPEGQuality,
		SugarMode:   winerender.SugarGlow.String(),
		Bubbles: Bubbles{
			Intensity: 1,
			Passes:    []string{"outside", "rim", "sparkle"},
		},
		LogLevel: "info",
	}
}

// Load reads the settings from a YAML file, if path is not empty, and
// applies overrides from WINERENDER_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WINERENDER_PROFILE"); v != "" {
		cfg.Profile = v
	}
	if v := os.Getenv("WINERENDER_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("WINERENDER_JPEG_QUALITY"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.JPEGQuality = parsed
		}
	}
	if v := os.Getenv("WINERENDER_SUGAR_MODE"); v != "" {
		cfg.SugarMode = v
	}
	if v := os.Getenv("WINERENDER_SEED"); v != "" {
		if parsed, err := strconv.ParseUint(v, 0, 32); err == nil {
			seed := uint32(parsed)
			cfg.Seed = &seed
		}
	}
	if v := os.Getenv("WINERENDER_BUBBLE_INTENSITY"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Bubbles.Intensity = parsed
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks that all settings can be used.
func (c *Config) Validate() error {
	if _, ok := winerender.ProfileByName(c.Profile); !ok {
		return fmt.Errorf("%w: unknown profile %q", ErrInvalid, c.Profile)
	}
	if _, err := winerender.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("%w: jpegQuality %d not in 1..100", ErrInvalid, c.JPEGQuality)
	}
	if _, err := winerender.ParseSugarMode(c.SugarMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !(c.Bubbles.Intensity >= 0) {
		return fmt.Errorf("%w: bubble intensity %g", ErrInvalid, c.Bubbles.Intensity)
	}
	if _, err := parsePasses(c.Bubbles.Passes); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the settings into rendering options.  The
// configuration must be valid.
func (c *Config) Options() ([]winerender.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	profile, _ := winerender.ProfileByName(c.Profile)
	format, _ := winerender.ParseFormat(c.Format)
	sugar, _ := winerender.ParseSugarMode(c.SugarMode)
	passes, _ := parsePasses(c.Bubbles.Passes)

	opts := []winerender.Option{
		winerender.WithProfile(profile),
		winerender.WithFormat(format),
		winerender.WithJPEGQuality(c.JPEGQuality),
		winerender.WithSugarMode(sugar),
		winerender.WithBubbleIntensity(c.Bubbles.Intensity),
		winerender.WithBubblePasses(passes),
	}
	if c.Seed != nil {
		opts = append(opts, winerender.WithSeed(*c.Seed))
	}
	return opts, nil
}

func parsePasses(names []string) (effects.Passes, error) {
	if len(names) == 0 {
		return 0, errors.New("no bubble passes selected")
	}
	var p effects.Passes
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "outside":
			p |= effects.PassOutside
		case "rim":
			p |= effects.PassRim
		case "sparkle":
			p |= effects.PassSparkle
		default:
			return 0, fmt.Errorf("unknown bubble pass %q", name)
		}
	}
	return p, nil
}

// ParseLevel converts a log level name into a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}
