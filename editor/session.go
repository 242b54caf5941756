// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the state behind a gradient editor: a session
// holding one canonical gradient, the swatch and curve key views derived
// from it, and the key selection shared between those views.
package editor

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/ramp/curve"
	"cogentcore.org/ramp/gradient"
	"github.com/chewxy/math32"
)

// Tolerance is the time difference within which a curve key and
// a swatch are considered to be at the same time.
const Tolerance = 1e-5

var (
	// ErrKeyLimit is returned when adding a swatch to a row that
	// already has the maximum number of keys.
	ErrKeyLimit = errors.New("editor: maximum number of keys reached")

	// ErrNoSelection is returned by edits of the selected keys
	// when there are no matching selected keys.
	ErrNoSelection = errors.New("editor: no keys selected")

	// ErrHidden is returned by edits of channels outside of the view mask.
	ErrHidden = errors.New("editor: channel not in view mask")
)

// KeyRef refers to one key of one channel curve of the session gradient.
type KeyRef struct {
	Channel gradient.Channel
	Index   int
}

func (r KeyRef) String() string {
	return fmt.Sprintf("%v[%d]", r.Channel, r.Index)
}

// Swatch is one key of the simplified gradient, as shown in
// the color or alpha row of a gradient editor.
type Swatch struct {

	// Time is the normalized time of the swatch.
	Time float32

	// Color is the color of the swatch. Alpha swatches are the
	// opaque gray of their alpha value.
	Color gradient.Color

	// Alpha is whether this is an alpha swatch.
	Alpha bool

	// Index is the index of the swatch in its row.
	Index int
}

// Session is the editing state for one gradient. All of the views are
// computed from Gradient when they are requested, and every edit goes
// through [Session.Apply]. It is not safe for concurrent use.
type Session struct {

	// Gradient is the gradient being edited. If it is replaced directly,
	// selected keys that no longer exist are ignored.
	Gradient *gradient.Gradient

	// ViewMask is the channels that are shown and can be edited.
	ViewMask gradient.ChannelMask

	// TimeRange is the range that times are displayed and entered in.
	TimeRange gradient.TimeRange

	// MaxKeyCount is the maximum number of swatches in each row.
	// A value of 0 or less allows any number of swatches.
	MaxKeyCount int

	// OnChange, if set, is called after every change to the gradient.
	OnChange func(s *Session)

	selection []KeyRef
	version   int
}

// New returns a new session editing the given gradient, or a new
// default gradient if it is nil, with all channels shown.
func New(g *gradient.Gradient) *Session {
	if g == nil {
		g = gradient.New()
	}
	return &Session{
		Gradient:    g,
		ViewMask:    gradient.All,
		TimeRange:   gradient.One,
		MaxKeyCount: gradient.DefaultMaxKeyCount,
	}
}

// Clone returns a copy of the session with its own copy of the gradient.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Gradient = s.Gradient.Clone()
	cp.selection = slices.Clone(s.selection)
	return &cp
}

// Version returns the number of changes applied to the gradient.
func (s *Session) Version() int {
	return s.version
}

// Apply calls the given function to change the gradient, and then
// finds the selected keys again by their channel and time, dropping
// those that no longer exist, and calls OnChange. All changes to the
// gradient should be made through it.
func (s *Session) Apply(fn func(g *gradient.Gradient) error) error {
	sel := s.selectedTimes()
	return s.apply(func(g *gradient.Gradient) ([]KeyRef, error) {
		err := fn(g)
		return s.find(sel), err
	})
}

// apply calls the given function to change the gradient and sets the
// selection to the keys it returns before calling OnChange.
func (s *Session) apply(fn func(g *gradient.Gradient) ([]KeyRef, error)) error {
	sel, err := fn(s.Gradient)
	s.version++
	s.selection = compactRefs(slices.DeleteFunc(sel, func(r KeyRef) bool {
		return !s.valid(r)
	}))
	if s.OnChange != nil {
		s.OnChange(s)
	}
	return err
}

// keyTime identifies a key by its channel and time,
// which stay the same when other keys are added or removed.
type keyTime struct {
	ch   gradient.Channel
	time float32
}

// selectedTimes returns the channel and time of each selected key.
func (s *Session) selectedTimes() []keyTime {
	var kts []keyTime
	for _, r := range s.current() {
		kts = append(kts, keyTime{r.Channel, s.Gradient.Curve(r.Channel).Key(r.Index).Time})
	}
	return kts
}

// find returns references to the keys at the given channels and times,
// skipping those that do not exist.
func (s *Session) find(kts []keyTime) []KeyRef {
	var refs []KeyRef
	for _, kt := range kts {
		if i := s.Gradient.Curve(kt.ch).Find(kt.time); i >= 0 {
			refs = append(refs, KeyRef{kt.ch, i})
		}
	}
	return refs
}

// current returns the selected keys that exist in the gradient,
// which may have been replaced without going through Apply.
func (s *Session) current() []KeyRef {
	return slices.DeleteFunc(slices.Clone(s.selection), func(r KeyRef) bool {
		return !s.valid(r)
	})
}

// SetViewMask sets the channels that are shown, dropping
// selected keys on channels that are no longer shown.
func (s *Session) SetViewMask(m gradient.ChannelMask) {
	s.ViewMask = m
	s.selection = slices.DeleteFunc(s.selection, func(r KeyRef) bool {
		return !m.Has(r.Channel)
	})
}

// SetTimeRange sets the range that times are displayed in.
func (s *Session) SetTimeRange(r gradient.TimeRange) {
	s.TimeRange = r
}

// DisplayTime converts the given normalized time to the time range.
func (s *Session) DisplayTime(t float32) float32 {
	return t * s.TimeRange.Scale()
}

// NormalizedTime converts the given time in the time range to
// a normalized time clamped to the 0 to 1 range.
func (s *Session) NormalizedTime(t float32) float32 {
	return clamp01(t / s.TimeRange.Scale())
}

// Keys returns the keys of the given channel,
// or nil if it is not in the view mask.
func (s *Session) Keys(ch gradient.Channel) []curve.Keyframe {
	if !s.ViewMask.Has(ch) {
		return nil
	}
	return s.Gradient.Curve(ch).Keys()
}

// ColorSwatches returns the color row, with one swatch per color key of the
// simplified gradient. It is empty unless all of red, green and blue are in
// the view mask.
func (s *Session) ColorSwatches() []Swatch {
	if s.ViewMask&gradient.RGB != gradient.RGB {
		return nil
	}
	sg := s.Gradient.Simple(s.MaxKeyCount)
	sw := make([]Swatch, len(sg.ColorKeys))
	for i, ck := range sg.ColorKeys {
		sw[i] = Swatch{Time: ck.Time, Color: ck.Color, Index: i}
	}
	return sw
}

// AlphaSwatches returns the alpha row, with one swatch per alpha key of the
// simplified gradient. It is empty unless alpha is in the view mask.
func (s *Session) AlphaSwatches() []Swatch {
	if !s.ViewMask.Has(gradient.Alpha) {
		return nil
	}
	sg := s.Gradient.Simple(s.MaxKeyCount)
	sw := make([]Swatch, len(sg.AlphaKeys))
	for i, ak := range sg.AlphaKeys {
		sw[i] = Swatch{Time: ak.Time, Color: gradient.Color{R: ak.Alpha, G: ak.Alpha, B: ak.Alpha, A: 1}, Alpha: true, Index: i}
	}
	return sw
}

// Swatches returns the alpha row if alpha is true, and the color row otherwise.
func (s *Session) Swatches(alpha bool) []Swatch {
	if alpha {
		return s.AlphaSwatches()
	}
	return s.ColorSwatches()
}

// valid returns whether the given key reference exists.
func (s *Session) valid(r KeyRef) bool {
	return r.Channel >= 0 && r.Channel < gradient.NumChannels &&
		r.Index >= 0 && r.Index < s.Gradient.Curve(r.Channel).Len()
}

func (s *Session) checkRef(r KeyRef) error {
	if !s.valid(r) {
		return fmt.Errorf("editor: key %v does not exist", r)
	}
	if !s.ViewMask.Has(r.Channel) {
		return fmt.Errorf("%w: %v", ErrHidden, r.Channel)
	}
	return nil
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return max(0, min(1, v))
}

func abs(v float32) float32 {
	return math32.Abs(v)
}
