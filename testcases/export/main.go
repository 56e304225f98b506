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

// Command export renders all test cases into an image gallery, together
// with a JSON manifest describing each rendering.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/winerender"
	"seehuhn.de/go/winerender/testcases"
)

const galleryDir = "testdata/gallery"

func main() {
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		panic(err)
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := export(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	f, err := os.Create(filepath.Join(galleryDir, "manifest.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string      `json:"name"`
	File    string      `json:"file"`
	Profile string      `json:"profile"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Seed    uint32      `json:"seed"`
	Layers  []jsonLayer `json:"layers"`
}

type jsonLayer struct {
	Name      string `json:"name"`
	Applied   bool   `json:"applied"`
	Particles int    `json:"particles,omitempty"`
	Skipped   string `json:"skipped,omitempty"`
}

func export(name string, tc testcases.TestCase) (jsonTestCase, error) {
	profile, ok := winerender.ProfileByName(tc.Profile)
	if !ok {
		return jsonTestCase{}, fmt.Errorf("unknown profile %q", tc.Profile)
	}
	opts := []winerender.Option{winerender.WithProfile(profile)}
	if tc.SugarBar {
		opts = append(opts, winerender.WithSugarMode(winerender.SugarBar))
	}

	data, rep, err := winerender.Render(tc.Attrs, opts...)
	if err != nil {
		return jsonTestCase{}, err
	}
	file := name + ".png"
	if err := os.WriteFile(filepath.Join(galleryDir, file), data, 0644); err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:    name,
		File:    file,
		Profile: rep.Profile.Name,
		Width:   rep.Profile.Width,
		Height:  rep.Profile.Height,
		Seed:    rep.Seed,
	}
	for _, l := range rep.Layers {
		jl := jsonLayer{Name: l.Name, Applied: l.Applied, Particles: l.Particles}
		if l.Skipped != nil {
			jl.Skipped = l.Skipped.Error()
		}
		jtc.Layers = append(jtc.Layers, jl)
	}
	return jtc, nil
}
