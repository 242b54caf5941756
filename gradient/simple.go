// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultMaxKeyCount is the usual maximum number of color keys and of alpha
// keys that swatch-style gradient editors can show. It is only a default;
// every conversion takes the limit as a parameter.
const DefaultMaxKeyCount = 8

// Simple is a simplified gradient with separate lists of color keys and
// alpha keys, each normally capped to a maximum count. It is the form
// that swatch-style editors display, with one swatch per key.
type Simple struct {

	// ColorKeys are the color keys, sorted by time.
	// The alpha of their colors is ignored.
	ColorKeys []ColorKey

	// AlphaKeys are the alpha keys, sorted by time.
	AlphaKeys []AlphaKey
}

// ColorKey is one color stop of a [Simple] gradient.
type ColorKey struct {
	Color Color
	Time  float32
}

// AlphaKey is one alpha stop of a [Simple] gradient.
type AlphaKey struct {
	Alpha float32
	Time  float32
}

// AddColorKey adds the given color key to the gradient.
func (s *Simple) AddColorKey(c Color, time float32) *Simple {
	s.ColorKeys = append(s.ColorKeys, ColorKey{c, time})
	return s
}

// AddAlphaKey adds the given alpha key to the gradient.
func (s *Simple) AddAlphaKey(alpha, time float32) *Simple {
	s.AlphaKeys = append(s.AlphaKeys, AlphaKey{alpha, time})
	return s
}

// String returns the color keys of the gradient in CSS linear-gradient form.
// Alpha keys are not included.
func (s *Simple) String() string {
	stops := make([]string, len(s.ColorKeys))
	for i, ck := range s.ColorKeys {
		c := colorful.Color{R: float64(clamp01(ck.Color.R)), G: float64(clamp01(ck.Color.G)), B: float64(clamp01(ck.Color.B))}
		stops[i] = fmt.Sprintf("%s %g%%", c.Hex(), ck.Time*100)
	}
	return "linear-gradient(" + strings.Join(stops, ", ") + ")"
}
