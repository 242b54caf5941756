// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a non alpha-premultiplied color with float32 components,
// as produced by sampling a [Gradient]. Components are nominally in
// the 0 to 1 range, but values outside of it are preserved (the curves
// themselves are unbounded); they are only clamped when the color is
// converted through the [color.Color] interface.
type Color struct {
	R, G, B, A float32
}

// White is opaque white, the color of a default [Gradient].
var White = Color{1, 1, 1, 1}

// Channel returns the value of the given channel.
func (c Color) Channel(ch Channel) float32 {
	switch ch {
	case Red:
		return c.R
	case Green:
		return c.G
	case Blue:
		return c.B
	case Alpha:
		return c.A
	}
	return 0
}

// SetChannel sets the value of the given channel.
func (c *Color) SetChannel(ch Channel, v float32) {
	switch ch {
	case Red:
		c.R = v
	case Green:
		c.G = v
	case Blue:
		c.B = v
	case Alpha:
		c.A = v
	}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	af := clamp01(c.A)
	r = uint32(clamp01(c.R)*af*65535.0 + 0.5)
	g = uint32(clamp01(c.G)*af*65535.0 + 0.5)
	b = uint32(clamp01(c.B)*af*65535.0 + 0.5)
	a = uint32(af*65535.0 + 0.5)
	return
}

// NRGBA returns the color as 8-bit non alpha-premultiplied components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(c.A)}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func to8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
