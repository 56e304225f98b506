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

// Command winerender renders the tasting attributes of a wine, read from
// a YAML or JSON file, into a PNG or JPEG image.
//
// Usage:
//
//	winerender [-config settings.yaml] [-o out.png] wine.yaml
//
// Without -o, the image is written to standard output.  Log records are
// written to standard error in JSON form.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/winerender"
	"seehuhn.de/go/winerender/internal/config"
	"seehuhn.de/go/winerender/wine"
)

func main() {
	configPath := flag.String("config", os.Getenv("WINERENDER_CONFIG"), "settings `file` (YAML)")
	output := flag.String("o", "", "write the image to `file` instead of standard output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] wine.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, flag.Arg(0), *output); err != nil {
		fmt.Fprintln(os.Stderr, "winerender:", err)
		os.Exit(1)
	}
}

func run(configPath, input, output string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// the format follows the output file name, unless set explicitly
	if output != "" && os.Getenv("WINERENDER_FORMAT") == "" {
		if _, err := winerender.ParseFormat(filepath.Ext(output)); err == nil {
			cfg.Format = filepath.Ext(output)
		}
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	log := slog.New(handler).With("service", "winerender")
	winerender.SetLogger(log)

	attrs, err := wine.Load(input)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	data, rep, err := winerender.Render(attrs, opts...)
	if err != nil {
		return err
	}

	for _, l := range rep.Layers {
		if l.Skipped != nil {
			log.Warn("layer left out", "layer", l.Name, "err", l.Skipped)
		}
	}
	log.Info("rendered",
		"input", input,
		"profile", rep.Profile.Name,
		"seed", rep.Seed,
		"bubbles", rep.Bubbles.Stage,
		"bytes", len(data))

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(output, data, 0o644)
}
