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

package wine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by [Load] for files which are neither YAML
// nor JSON.
var ErrUnknownFormat = errors.New("wine: unknown file format")

// Decode reads attributes in YAML or JSON form.  Colours may be given
// either as {h, s, v} maps or as "#rrggbb" strings.  The result is not
// normalized.
func Decode(r io.Reader) (Attributes, error) {
	var a Attributes
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return Attributes{}, fmt.Errorf("wine: empty input")
		}
		return Attributes{}, fmt.Errorf("wine: %w", err)
	}
	return a, nil
}

// Load reads attributes from a .yaml, .yml or .json file.
func Load(path string) (Attributes, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return Attributes{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return Attributes{}, err
	}
	defer f.Close()

	a, err := Decode(f)
	if err != nil {
		return Attributes{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
