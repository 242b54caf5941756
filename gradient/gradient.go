// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides color ramps stored as four independent
// piecewise-linear curves, one per RGBA channel, along with the
// merged color key view used by swatch-style editors and conversion
// to and from a capped, simplified gradient form.
package gradient

import (
	"cogentcore.org/ramp/curve"
)

// Gradient is a color ramp represented by one [curve.Curve] per channel.
// It exclusively owns its curves. It is not safe for concurrent use;
// callers must serialize all mutations.
type Gradient struct {
	curves [NumChannels]*curve.Curve
}

// New returns a new gradient with the default curve on every channel,
// which is opaque white everywhere.
func New() *Gradient {
	g := &Gradient{}
	for c := range g.curves {
		g.curves[c] = curve.Default()
	}
	return g
}

// NewFromKeys returns a new gradient with each of the given keys added
// to every channel. With no keys, it is the same as [New].
func NewFromKeys(keys ...curve.Keyframe) *Gradient {
	if len(keys) == 0 {
		return New()
	}
	g := &Gradient{}
	for c := range g.curves {
		g.curves[c] = curve.New()
	}
	g.AddKeys(keys, All)
	return g
}

// NewFromCurves returns a new gradient with copies of the given
// per-channel curves, in channel order. See [Gradient.SetCurves].
func NewFromCurves(curves ...*curve.Curve) *Gradient {
	g := &Gradient{}
	g.SetCurves(curves...)
	return g
}

// Clone returns a deep copy of the gradient.
func (g *Gradient) Clone() *Gradient {
	cp := &Gradient{}
	for c, cv := range g.curves {
		cp.curves[c] = cv.Clone()
	}
	return cp
}

// Curve returns the curve for the given channel. The curve is owned
// by the gradient; changes to it change the gradient.
func (g *Gradient) Curve(ch Channel) *curve.Curve {
	return g.curves[ch]
}

// Curves returns copies of all of the curves, in channel order.
func (g *Gradient) Curves() []*curve.Curve {
	cs := make([]*curve.Curve, NumChannels)
	for c, cv := range g.curves {
		cs[c] = cv.Clone()
	}
	return cs
}

// Clear removes all of the keys from the channels in the given mask.
func (g *Gradient) Clear(mask ChannelMask) {
	for _, c := range mask.Channels() {
		g.curves[c].Clear()
	}
}

// SetCurve sets each channel in the given mask to its own copy of
// the given curve, or to the default curve if it is nil.
func (g *Gradient) SetCurve(cv *curve.Curve, mask ChannelMask) {
	if cv == nil {
		cv = curve.Default()
	}
	for _, c := range mask.Channels() {
		g.curves[c] = cv.Clone()
	}
}

// SetCurves sets all of the channels from the given curves, in channel
// order. Channels with a missing, nil, or empty curve get the default curve.
func (g *Gradient) SetCurves(curves ...*curve.Curve) {
	for c := range g.curves {
		if c < len(curves) && curves[c] != nil && curves[c].Len() > 0 {
			g.curves[c] = curves[c].Clone()
		} else {
			g.curves[c] = curve.Default()
		}
	}
}

// AddKey adds the given key to each channel in the given mask.
// A key at the same time as an existing key replaces its value.
func (g *Gradient) AddKey(key curve.Keyframe, mask ChannelMask) {
	for _, c := range mask.Channels() {
		g.curves[c].AddKey(key)
	}
}

// AddKeys adds each of the given keys to each channel in the given mask.
func (g *Gradient) AddKeys(keys []curve.Keyframe, mask ChannelMask) {
	for _, k := range keys {
		g.AddKey(k, mask)
	}
}

// Evaluate returns the color of the gradient at the given time, which is
// first divided by the given time range. Channels outside of the mask are
// 0 for red, green and blue, and 1 for alpha. As a special case, a mask of
// only [AlphaMask] returns the alpha value as an opaque gray, which is how
// the alpha channel is previewed on its own.
func (g *Gradient) Evaluate(time float32, mask ChannelMask, timeRange TimeRange) Color {
	time /= timeRange.Scale()
	if mask == AlphaMask {
		a := g.curves[Alpha].Evaluate(time)
		return Color{a, a, a, 1}
	}
	res := Color{A: 1}
	for _, c := range mask.Channels() {
		res.SetChannel(c, g.curves[c].Evaluate(time))
	}
	return res
}

// At returns the color of the gradient at the given normalized time,
// for all channels.
func (g *Gradient) At(time float32) Color {
	return g.Evaluate(time, All, One)
}

// Pixels samples the gradient at width evenly spaced times in [0, 1),
// and returns a row-major buffer of height rows of those samples, so that
// the pixel at (x, y) is at index x + y*width. It returns nil if either
// size is not positive.
func (g *Gradient) Pixels(width, height int, mask ChannelMask) []Color {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]Color, width*height)
	for x := range width {
		col := g.Evaluate(float32(x)/float32(width), mask, One)
		for y := range height {
			pixels[x+y*width] = col
		}
	}
	return pixels
}

// Equal returns whether the two gradients have curves with
// the same key times and values.
func (g *Gradient) Equal(o *Gradient) bool {
	for c, cv := range g.curves {
		if !cv.Equal(o.curves[c]) {
			return false
		}
	}
	return true
}
