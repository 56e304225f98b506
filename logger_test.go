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

package winerender

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/winerender/wine"
)

func TestLoggerDefault(t *testing.T) {
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	bad := Profile{Name: "tiny", Width: 0, Height: 0}
	RenderImage(wine.Attributes{}, WithProfile(bad))

	out := buf.String()
	require.Contains(t, out, "invalid profile")
	require.Contains(t, out, "profile=tiny")
	require.Contains(t, out, "layer done")

	SetLogger(nil)
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
