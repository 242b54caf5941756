// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseSimple parses a simplified gradient from the given CSS-like string,
// either a full "linear-gradient(...)" or just its comma separated list of
// color stops, such as "#e66465, #9198e5 40%, #fff". Stop positions can be
// fractions or percentages; missing positions are spread evenly between
// their neighbors, with the first and last stops defaulting to 0 and 1.
// Colors are hex (#rgb, #rgba, #rrggbb, #rrggbbaa) or one of white, black
// and transparent. If any stop has an alpha, every stop also becomes an
// alpha key; otherwise the result has no alpha keys and is opaque.
func ParseSimple(str string) (*Simple, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	str = strings.TrimSuffix(str, ";")
	if rest, ok := strings.CutPrefix(str, "linear-gradient"); ok {
		rest = strings.TrimSpace(rest)
		if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
			return nil, fmt.Errorf("gradient.ParseSimple: missing parentheses in %q", str)
		}
		str = rest[1 : len(rest)-1]
	}
	if strings.TrimSpace(str) == "" {
		return nil, fmt.Errorf("gradient.ParseSimple: no color stops")
	}

	pars := strings.Split(str, ",")
	stops := make([]stop, len(pars))
	hasAlpha := false
	for i, par := range pars {
		if err := parseStop(&stops[i], strings.TrimSpace(par)); err != nil {
			return nil, fmt.Errorf("gradient.ParseSimple: stop %d: %w", i, err)
		}
		if stops[i].color.A != 1 {
			hasAlpha = true
		}
	}
	fixStops(stops)

	s := &Simple{}
	for _, st := range stops {
		s.AddColorKey(Color{st.color.R, st.color.G, st.color.B, 1}, st.pos)
		if hasAlpha {
			s.AddAlphaKey(st.color.A, st.pos)
		}
	}
	return s, nil
}

// stop is a color stop being parsed; pos is negative until it is known.
type stop struct {
	color Color
	pos   float32
}

// parseStop parses the given "color [position]" stop.
func parseStop(st *stop, par string) error {
	st.pos = -1
	cnm := par
	if spcidx := strings.IndexByte(par, ' '); spcidx > 0 {
		cnm = par[:spcidx]
		offs := strings.TrimSpace(par[spcidx+1:])
		off, err := readFraction(offs)
		if err != nil {
			return fmt.Errorf("invalid position %q: %w", offs, err)
		}
		st.pos = off
	}
	clr, err := parseColor(cnm)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", cnm, err)
	}
	st.color = clr
	return nil
}

func parseColor(s string) (Color, error) {
	switch s {
	case "white":
		return White, nil
	case "black":
		return Color{0, 0, 0, 1}, nil
	case "transparent":
		return Color{0, 0, 0, 0}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("expected a hex color or color name")
	}
	if len(hex) == 3 || len(hex) == 4 {
		var sb strings.Builder
		for _, r := range hex {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		hex = sb.String()
	}
	alpha := float32(1)
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, err
		}
		alpha = float32(a) / 255
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits")
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, err
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

// readFraction reads a position given either as a fraction or as a
// percentage, clamped to the 0 to 1 range.
func readFraction(v string) (float32, error) {
	v = strings.TrimSpace(v)
	d := float32(1)
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f64, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, err
	}
	return clamp01(float32(f64) / d), nil
}

// fixStops fills in the missing stop positions: the first stop defaults
// to 0, the last to 1, and runs of missing positions in between are spread
// evenly between the known positions around them. Positions are also
// kept from going backwards.
func fixStops(stops []stop) {
	sz := len(stops)
	if stops[0].pos < 0 {
		stops[0].pos = 0
	}
	if sz > 1 && stops[sz-1].pos < 0 {
		stops[sz-1].pos = max(1, stops[0].pos)
	}
	last := stops[0].pos
	splitSt := -1
	for i := 1; i < sz; i++ {
		st := &stops[i]
		if st.pos < 0 {
			if splitSt < 0 {
				splitSt = i
			}
			continue
		}
		st.pos = max(st.pos, last)
		if splitSt > 0 {
			per := (st.pos - last) / float32(1+i-splitSt)
			cur := last + per
			for j := splitSt; j < i; j++ {
				stops[j].pos = cur
				cur += per
			}
			splitSt = -1
		}
		last = st.pos
	}
}
