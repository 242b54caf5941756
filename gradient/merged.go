// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"slices"

	"cogentcore.org/ramp/curve"
)

// numColorChannels is the number of channels that make up one color key.
const numColorChannels = int(Blue) + 1

// MergedKeyframe is a projection of one curve key into a [Merged] view.
type MergedKeyframe struct {

	// Time is the time of the key.
	Time float32

	// Value is the value of the key on its channel.
	Value float32

	// Index is the index of the source key in its channel curve.
	// It is 0 for views built from a [Simple] gradient.
	Index int
}

// Merged is the merged key view of a gradient: the red, green and blue
// channels only contain the times at which all three of them have a key,
// so that each index across those channels is one color key, and the
// alpha channel contains every alpha key. It is derived on demand and
// never stored; building it does not modify the gradient.
type Merged struct {

	// Keys are the merged keys for each channel, sorted by time.
	// The red, green and blue lists always have the same length.
	Keys [NumChannels][]MergedKeyframe
}

// NewMerged returns the merged view of the given gradient. A time becomes a
// color key only if the red, green and blue curves all have a key at exactly
// that time; keys on fewer channels are left out of the view.
func NewMerged(g *Gradient) *Merged {
	m := &Merged{}

	type contrib struct {
		value float32
		index int
	}
	byTime := map[float32][]contrib{}
	var times []float32
	for c := Red; c <= Blue; c++ {
		cv := g.curves[c]
		for i := range cv.Len() {
			k := cv.Key(i)
			if _, ok := byTime[k.Time]; !ok {
				times = append(times, k.Time)
			}
			byTime[k.Time] = append(byTime[k.Time], contrib{k.Value, i})
		}
	}
	slices.Sort(times)
	for _, t := range times {
		cs := byTime[t]
		if len(cs) != numColorChannels {
			continue
		}
		for c := Red; c <= Blue; c++ {
			m.Keys[c] = append(m.Keys[c], MergedKeyframe{t, cs[c].value, cs[c].index})
		}
	}

	ac := g.curves[Alpha]
	for i := range ac.Len() {
		k := ac.Key(i)
		m.Keys[Alpha] = append(m.Keys[Alpha], MergedKeyframe{k.Time, k.Value, i})
	}
	return m
}

// NewMergedFromSimple returns the merged view of the given simplified
// gradient, with one key on each of red, green and blue per color key,
// and one alpha key per alpha key.
func NewMergedFromSimple(s *Simple) *Merged {
	m := &Merged{}
	for _, ck := range s.ColorKeys {
		for c := Red; c <= Blue; c++ {
			m.Keys[c] = append(m.Keys[c], MergedKeyframe{Time: ck.Time, Value: ck.Color.Channel(c)})
		}
	}
	for _, ak := range s.AlphaKeys {
		m.Keys[Alpha] = append(m.Keys[Alpha], MergedKeyframe{Time: ak.Time, Value: ak.Alpha})
	}
	return m
}

// ColorKeyCount returns the number of merged color keys.
func (m *Merged) ColorKeyCount() int {
	return len(m.Keys[Red])
}

// AlphaKeyCount returns the number of alpha keys.
func (m *Merged) AlphaKeyCount() int {
	return len(m.Keys[Alpha])
}

// Curves returns one linear curve per channel built from the merged keys.
func (m *Merged) Curves() []*curve.Curve {
	cs := make([]*curve.Curve, NumChannels)
	for c, keys := range m.Keys {
		ks := make([]curve.Keyframe, len(keys))
		for i, k := range keys {
			ks[i] = curve.Key(k.Time, k.Value)
		}
		cs[c] = curve.New(ks...)
	}
	return cs
}

// Gradient returns a new gradient built from [Merged.Curves].
// Channels without any keys get the default curve.
func (m *Merged) Gradient() *Gradient {
	return NewFromCurves(m.Curves()...)
}

// Simple returns the simplified form of the merged view, keeping at
// most maxKeyCount color keys and maxKeyCount alpha keys (the earliest
// ones). A maxKeyCount of 0 or less keeps all of the keys.
func (m *Merged) Simple(maxKeyCount int) *Simple {
	s := &Simple{}
	for i, rk := range m.Keys[Red] {
		if maxKeyCount > 0 && i >= maxKeyCount {
			break
		}
		col := Color{rk.Value, m.Keys[Green][i].Value, m.Keys[Blue][i].Value, 1}
		s.ColorKeys = append(s.ColorKeys, ColorKey{Color: col, Time: rk.Time})
	}
	for i, ak := range m.Keys[Alpha] {
		if maxKeyCount > 0 && i >= maxKeyCount {
			break
		}
		s.AlphaKeys = append(s.AlphaKeys, AlphaKey{Alpha: ak.Value, Time: ak.Time})
	}
	return s
}

// Merged returns the merged key view of the gradient.
func (g *Gradient) Merged() *Merged {
	return NewMerged(g)
}

// Simple returns the simplified form of the gradient, with at most
// maxKeyCount color keys and maxKeyCount alpha keys. Keys past the limit
// are dropped silently; compare with the [Merged] key counts to detect it.
func (g *Gradient) Simple(maxKeyCount int) *Simple {
	return NewMerged(g).Simple(maxKeyCount)
}

// FromSimple returns a new gradient built from the given simplified gradient.
func FromSimple(s *Simple) *Gradient {
	return NewMergedFromSimple(s).Gradient()
}
