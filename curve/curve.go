// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides piecewise-linear keyframe curves,
// as used for the individual channels of a color ramp.
package curve

import (
	"fmt"
	"slices"
	"sort"

	"github.com/chewxy/math32"
)

// TangentMode is the tangent mode marker stored on each [Keyframe].
type TangentMode int32

const (
	// Free indicates a keyframe whose tangents were set explicitly.
	// Keys are never left in this mode once they are in a [Curve].
	Free TangentMode = 0

	// Linear is the fixed linear tangent marker. The numeric value
	// matches what authored assets store for keys whose in and out
	// tangents are both linear (and broken).
	Linear TangentMode = 69
)

func (m TangentMode) String() string {
	switch m {
	case Free:
		return "free"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("TangentMode(%d)", int32(m))
}

// Keyframe is one key of a [Curve].
type Keyframe struct {

	// Time is the position of the key on the curve.
	Time float32

	// Value is the value of the curve at Time.
	Value float32

	// InTangent is the slope of the curve arriving at this key.
	// It is computed by the owning curve.
	InTangent float32

	// OutTangent is the slope of the curve leaving this key.
	// It is computed by the owning curve.
	OutTangent float32

	// TangentMode is always [Linear] for keys stored in a curve.
	TangentMode TangentMode
}

// Key returns a new linear [Keyframe] at the given time and value.
func Key(time, value float32) Keyframe {
	return Keyframe{Time: time, Value: value, TangentMode: Linear}
}

func (k Keyframe) String() string {
	return fmt.Sprintf("(%g, %g)", k.Time, k.Value)
}

// Curve is a sequence of keyframes sorted strictly by time, evaluated
// by linear interpolation between neighboring keys and clamped to the
// first and last keys outside of its time span. The tangents of all
// keys are recomputed from their neighbors whenever the keys change,
// so the stored tangents always describe the same straight segments.
// The zero value is an empty curve that evaluates to 0 everywhere.
type Curve struct {
	keys []Keyframe
}

// New returns a new curve with the given keys. The keys do not need to be
// sorted; if more than one key has the same time, the last one wins.
func New(keys ...Keyframe) *Curve {
	c := &Curve{}
	c.SetKeys(keys...)
	return c
}

// Default returns the default curve, which has a value of 1 at times 0 and 1.
func Default() *Curve {
	return New(Key(0, 1), Key(1, 1))
}

// Len returns the number of keys in the curve.
func (c *Curve) Len() int {
	return len(c.keys)
}

// Key returns the key at the given index.
func (c *Curve) Key(i int) Keyframe {
	return c.keys[i]
}

// Keys returns a copy of the keys of the curve.
func (c *Curve) Keys() []Keyframe {
	return slices.Clone(c.keys)
}

// Times returns the times of all of the keys of the curve, in order.
func (c *Curve) Times() []float32 {
	ts := make([]float32, len(c.keys))
	for i, k := range c.keys {
		ts[i] = k.Time
	}
	return ts
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	return &Curve{keys: slices.Clone(c.keys)}
}

// Clear removes all of the keys of the curve.
func (c *Curve) Clear() {
	c.keys = c.keys[:0]
}

// SetKeys replaces all of the keys of the curve with the given keys.
func (c *Curve) SetKeys(keys ...Keyframe) {
	c.keys = c.keys[:0]
	for _, k := range keys {
		c.insert(k)
	}
	c.UpdateTangents()
}

// AddKey inserts the given key in time order and returns its index.
// If there is already a key at exactly the same time, its value
// is replaced by that of the given key.
func (c *Curve) AddKey(k Keyframe) int {
	i := c.insert(k)
	c.UpdateTangents()
	return i
}

// MoveKey replaces the key at the given index with the given key,
// which may have a different time, and returns the new index of the key.
// If the new time lands exactly on another key, that key is replaced.
func (c *Curve) MoveKey(i int, k Keyframe) int {
	c.keys = slices.Delete(c.keys, i, i+1)
	return c.AddKey(k)
}

// RemoveKey removes the key at the given index.
func (c *Curve) RemoveKey(i int) {
	c.keys = slices.Delete(c.keys, i, i+1)
	c.UpdateTangents()
}

// Find returns the index of the key at exactly the given time, or -1.
func (c *Curve) Find(time float32) int {
	i, found := c.search(time)
	if !found {
		return -1
	}
	return i
}

// search returns the index at which a key with the given time
// is or would be stored.
func (c *Curve) search(time float32) (int, bool) {
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time >= time
	})
	return i, i < len(c.keys) && c.keys[i].Time == time
}

func (c *Curve) insert(k Keyframe) int {
	k.TangentMode = Linear
	i, found := c.search(k.Time)
	if found {
		c.keys[i].Value = k.Value
		return i
	}
	c.keys = slices.Insert(c.keys, i, k)
	return i
}

// UpdateTangents forces every key into [Linear] mode and sets its
// tangents to the slope of the adjacent segments. The first and last
// keys take both tangents from their only segment, and a lone key
// gets flat tangents.
func (c *Curve) UpdateTangents() {
	n := len(c.keys)
	for i := range c.keys {
		c.keys[i].TangentMode = Linear
	}
	if n == 1 {
		c.keys[0].InTangent, c.keys[0].OutTangent = 0, 0
		return
	}
	for i := 1; i < n; i++ {
		k0, k1 := &c.keys[i-1], &c.keys[i]
		slope := (k1.Value - k0.Value) / (k1.Time - k0.Time)
		k0.OutTangent = slope
		k1.InTangent = slope
	}
	if n > 1 {
		c.keys[0].InTangent = c.keys[0].OutTangent
		c.keys[n-1].OutTangent = c.keys[n-1].InTangent
	}
}

// Evaluate returns the value of the curve at the given time.
// Times outside of the span of the keys are clamped to the end keys.
func (c *Curve) Evaluate(time float32) float32 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case math32.IsNaN(time), time <= c.keys[0].Time:
		return c.keys[0].Value
	case time >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}
	// first key strictly after time; always in [1, n-1] here
	i := sort.Search(n, func(i int) bool {
		return c.keys[i].Time > time
	})
	k0, k1 := c.keys[i-1], c.keys[i]
	return k0.Value + (k1.Value-k0.Value)*((time-k0.Time)/(k1.Time-k0.Time))
}

// Equal returns whether the two curves have the same key times and values.
// Tangents are not compared, since they are always derived.
func (c *Curve) Equal(o *Curve) bool {
	if c.Len() != o.Len() {
		return false
	}
	for i, k := range c.keys {
		ok := o.keys[i]
		if k.Time != ok.Time || k.Value != ok.Value {
			return false
		}
	}
	return true
}

func (c *Curve) String() string {
	return fmt.Sprint(c.keys)
}
