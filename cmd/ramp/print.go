// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/ramp/gradient"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// printInfo prints the keys of each channel, the merged key counts,
// and the simplified form of the given gradient, followed by a color bar
// of the given width.
func printInfo(w io.Writer, g *gradient.Gradient, maxKeyCount, width int, p termenv.Profile) {
	for c := range gradient.Channel(gradient.NumChannels) {
		fmt.Fprintf(w, "%-5s %d keys %v\n", c, g.Curve(c).Len(), g.Curve(c))
	}
	m := g.Merged()
	fmt.Fprintf(w, "Color keys: %d\nAlpha keys: %d\n", m.ColorKeyCount(), m.AlphaKeyCount())
	warnCapped(g, maxKeyCount)
	s := g.Simple(maxKeyCount)
	fmt.Fprintln(w, s)
	fmt.Fprintln(w, colorBar(g.Pixels(width, 1, gradient.All), p))
}

// warnCapped logs a warning if the given gradient has more keys
// than its simplified form can hold.
func warnCapped(g *gradient.Gradient, maxKeyCount int) {
	if maxKeyCount <= 0 {
		return
	}
	m := g.Merged()
	if n := m.ColorKeyCount(); n > maxKeyCount {
		slog.Warn("color keys past the limit are dropped", "keys", n, "max", maxKeyCount)
	}
	if n := m.AlphaKeyCount(); n > maxKeyCount {
		slog.Warn("alpha keys past the limit are dropped", "keys", n, "max", maxKeyCount)
	}
}

// colorBar returns the given colors as a row of terminal cells,
// composited over black.
func colorBar(colors []gradient.Color, p termenv.Profile) string {
	var sb strings.Builder
	for _, c := range colors {
		cf := colorful.Color{R: float64(c.R * c.A), G: float64(c.G * c.A), B: float64(c.B * c.A)}.Clamped()
		sb.WriteString(p.String(" ").Background(p.Color(cf.Hex())).String())
	}
	return sb.String()
}

// hexColor returns the given color as #rrggbbaa.
func hexColor(c gradient.Color) string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// parseTime parses a time given on the command line.
func parseTime(s string) (float32, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return float32(t), nil
}

// expand expands a leading ~ in the given path to the home directory.
func expand(path string) (string, error) {
	return homedir.Expand(path)
}
