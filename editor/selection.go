// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"slices"

	"cogentcore.org/ramp/curve"
	"cogentcore.org/ramp/gradient"
)

// SelectionInfo summarizes the selected keys for the fields of an editor.
// Values that differ between the selected keys are reported as mixed, and
// the last selected key provides the value shown for them.
type SelectionInfo struct {

	// Count is the number of selected keys.
	Count int

	// Time is the normalized time of the selected keys.
	Time float32

	// MixedTime is whether the selected keys have different times.
	MixedTime bool

	// Values are the values of the selected keys on each channel,
	// or 0 for channels without selected keys.
	Values [gradient.NumChannels]float32

	// MixedChannel is whether the selected keys on each channel
	// have different values.
	MixedChannel [gradient.NumChannels]bool

	// Value is the value of the selected keys across all channels.
	Value float32

	// MixedValue is whether the selected keys have different values.
	MixedValue bool

	// MixedColor is whether only color keys are selected and
	// they have different values on one of the color channels.
	MixedColor bool

	// OnlyColorKeys is whether the selection is made of whole color keys,
	// with one key on each of red, green and blue at every selected time.
	OnlyColorKeys bool
}

// Selection returns the selected keys, sorted by channel and index.
func (s *Session) Selection() []KeyRef {
	return s.current()
}

// SelectKeys sets the selection to the given keys, which must
// all exist and be in the view mask.
func (s *Session) SelectKeys(refs ...KeyRef) error {
	for _, r := range refs {
		if err := s.checkRef(r); err != nil {
			return err
		}
	}
	s.selection = compactRefs(slices.Clone(refs))
	return nil
}

// SelectSwatch selects the curve keys behind the given swatch.
func (s *Session) SelectSwatch(alpha bool, i int) error {
	refs, err := s.swatchRefs(alpha, i)
	if err != nil {
		return err
	}
	s.selection = refs
	return nil
}

// ClearSelection deselects all keys.
func (s *Session) ClearSelection() {
	s.selection = nil
}

// selected returns a gradient holding only the selected keys.
func (s *Session) selected() *gradient.Gradient {
	var keys [gradient.NumChannels][]curve.Keyframe
	for _, r := range s.current() {
		keys[r.Channel] = append(keys[r.Channel], s.Gradient.Curve(r.Channel).Key(r.Index))
	}
	g := gradient.New()
	for c, ks := range keys {
		ch := gradient.Channel(c)
		g.SetCurve(curve.New(ks...), ch.Mask())
	}
	return g
}

// SelectedSwatch returns the swatch matching the selected keys, if they
// line up with exactly one swatch within [Tolerance] of its time.
func (s *Session) SelectedSwatch() (Swatch, bool) {
	if len(s.current()) == 0 {
		return Swatch{}, false
	}
	m := s.selected().Merged()
	var found []Swatch
	find := func(keys []gradient.MergedKeyframe, row []Swatch) {
		for _, k := range keys {
			if len(found) > 1 {
				return
			}
			i := slices.IndexFunc(row, func(sw Swatch) bool {
				return abs(sw.Time-k.Time) < Tolerance
			})
			if i >= 0 {
				found = append(found, row[i])
			}
		}
	}
	find(m.Keys[gradient.Red], s.ColorSwatches())
	find(m.Keys[gradient.Alpha], s.AlphaSwatches())
	if len(found) != 1 {
		return Swatch{}, false
	}
	return found[0], true
}

// Info returns the summary of the selected keys.
func (s *Session) Info() SelectionInfo {
	sel := s.current()
	info := SelectionInfo{Count: len(sel)}
	if info.Count == 0 {
		return info
	}
	var hasChannel [gradient.NumChannels]bool
	for i, r := range sel {
		k := s.Gradient.Curve(r.Channel).Key(r.Index)
		if i > 0 {
			info.MixedTime = info.MixedTime || k.Time != info.Time
			info.MixedValue = info.MixedValue || k.Value != info.Value
		}
		info.Time = k.Time
		info.Value = k.Value
		if hasChannel[r.Channel] && k.Value != info.Values[r.Channel] {
			info.MixedChannel[r.Channel] = true
		}
		hasChannel[r.Channel] = true
		info.Values[r.Channel] = k.Value
	}

	sg := s.selected()
	m := sg.Merged()
	if m.AlphaKeyCount() > 0 {
		return info
	}
	info.OnlyColorKeys = true
	for c := gradient.Red; c <= gradient.Blue; c++ {
		info.MixedColor = info.MixedColor || info.MixedChannel[c]
		if sg.Curve(c).Len() != m.ColorKeyCount() {
			info.OnlyColorKeys = false
		}
	}
	return info
}

// SetSelectedTime moves all of the selected keys to the given time,
// which is in the time range and is clamped to it.
func (s *Session) SetSelectedTime(t float32) error {
	sel := s.current()
	if len(sel) == 0 {
		return ErrNoSelection
	}
	t = s.NormalizedTime(t)
	_, err := s.editKeys(sel, false, func(_ gradient.Channel, k *curve.Keyframe) {
		k.Time = t
	})
	return err
}

// SetSelectedChannelValue sets the value of the selected keys
// on the given channel.
func (s *Session) SetSelectedChannelValue(ch gradient.Channel, v float32) error {
	return s.setSelectedValues(ch.Mask(), func(gradient.Channel) float32 { return v })
}

// SetSelectedColor sets the value of the selected red, green and blue
// keys from the given color. The alpha of the color is ignored.
func (s *Session) SetSelectedColor(c gradient.Color) error {
	return s.setSelectedValues(gradient.RGB, c.Channel)
}

// SetSelectedValue sets the value of all of the selected keys.
func (s *Session) SetSelectedValue(v float32) error {
	return s.setSelectedValues(gradient.All, func(gradient.Channel) float32 { return v })
}

// setSelectedValues sets the value of the selected keys on the channels
// in the given mask. The selection is unchanged, since no key moves.
func (s *Session) setSelectedValues(mask gradient.ChannelMask, value func(ch gradient.Channel) float32) error {
	var refs []KeyRef
	for _, r := range s.current() {
		if mask.Has(r.Channel) {
			refs = append(refs, r)
		}
	}
	if len(refs) == 0 {
		return ErrNoSelection
	}
	_, err := s.editKeys(refs, true, func(ch gradient.Channel, k *curve.Keyframe) {
		k.Value = value(ch)
	})
	return err
}
