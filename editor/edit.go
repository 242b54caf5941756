// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"slices"

	"cogentcore.org/ramp/curve"
	"cogentcore.org/ramp/gradient"
)

// rowMask returns the channels behind the alpha row or the color row.
func rowMask(alpha bool) gradient.ChannelMask {
	if alpha {
		return gradient.AlphaMask
	}
	return gradient.RGB
}

func (s *Session) rowShown(alpha bool) bool {
	m := rowMask(alpha)
	return s.ViewMask&m == m
}

// swatchRefs returns the curve keys behind the given swatch:
// one alpha key, or one key on each of red, green and blue.
func (s *Session) swatchRefs(alpha bool, i int) ([]KeyRef, error) {
	if !s.rowShown(alpha) {
		return nil, ErrHidden
	}
	n := len(s.Swatches(alpha))
	if i < 0 || i >= n {
		return nil, fmt.Errorf("editor: swatch index %d out of range [0, %d)", i, n)
	}
	m := s.Gradient.Merged()
	var refs []KeyRef
	for _, c := range rowMask(alpha).Channels() {
		refs = append(refs, KeyRef{c, m.Keys[c][i].Index})
	}
	return refs, nil
}

// swatchIndex returns the index of the swatch at the given time, or -1.
func (s *Session) swatchIndex(alpha bool, t float32) int {
	return slices.IndexFunc(s.Swatches(alpha), func(sw Swatch) bool {
		return abs(sw.Time-t) < Tolerance
	})
}

// AddSwatch adds a swatch at the given normalized time to the alpha row or
// the color row, with the value the curves already have at that time, and
// selects it. It returns the index of the new swatch. If the row is already
// full, the keys are still added to the curves and selected, where they can
// be edited as curve keys, and it returns -1 and an error wrapping
// [ErrKeyLimit].
func (s *Session) AddSwatch(alpha bool, t float32) (int, error) {
	if !s.rowShown(alpha) {
		return -1, ErrHidden
	}
	full := s.MaxKeyCount > 0 && len(s.Swatches(alpha)) >= s.MaxKeyCount
	t = clamp01(t)
	err := s.apply(func(g *gradient.Gradient) ([]KeyRef, error) {
		var refs []KeyRef
		for _, c := range rowMask(alpha).Channels() {
			cv := g.Curve(c)
			refs = append(refs, KeyRef{c, cv.AddKey(curve.Key(t, cv.Evaluate(t)))})
		}
		return refs, nil
	})
	if err != nil {
		return -1, err
	}
	if full {
		return -1, fmt.Errorf("%w: only %d swatches can be shown, the keys at %g are curve keys", ErrKeyLimit, s.MaxKeyCount, t)
	}
	return s.swatchIndex(alpha, t), nil
}

// MoveSwatch moves the given swatch to the given normalized time and
// selects it. It returns the new index of the swatch.
func (s *Session) MoveSwatch(alpha bool, i int, t float32) (int, error) {
	refs, err := s.swatchRefs(alpha, i)
	if err != nil {
		return -1, err
	}
	t = clamp01(t)
	_, err = s.editKeys(refs, false, func(_ gradient.Channel, k *curve.Keyframe) {
		k.Time = t
	})
	return s.swatchIndex(alpha, t), err
}

// SetSwatchColor sets the color of the given color swatch and selects it.
// The alpha of the color is ignored.
func (s *Session) SetSwatchColor(i int, c gradient.Color) error {
	refs, err := s.swatchRefs(false, i)
	if err != nil {
		return err
	}
	_, err = s.editKeys(refs, false, func(ch gradient.Channel, k *curve.Keyframe) {
		k.Value = c.Channel(ch)
	})
	return err
}

// SetSwatchAlpha sets the alpha of the given alpha swatch and selects it.
func (s *Session) SetSwatchAlpha(i int, alpha float32) error {
	refs, err := s.swatchRefs(true, i)
	if err != nil {
		return err
	}
	_, err = s.editKeys(refs, false, func(_ gradient.Channel, k *curve.Keyframe) {
		k.Value = alpha
	})
	return err
}

// RemoveSwatch removes the curve keys behind the given swatch
// and clears the selection.
func (s *Session) RemoveSwatch(alpha bool, i int) error {
	refs, err := s.swatchRefs(alpha, i)
	if err != nil {
		return err
	}
	return s.removeKeys(refs)
}

// AddKey adds the given key to the curve of the given channel and selects it.
// A key at the same time as an existing key replaces its value.
func (s *Session) AddKey(ch gradient.Channel, k curve.Keyframe) (KeyRef, error) {
	if ch < 0 || ch >= gradient.NumChannels {
		return KeyRef{}, fmt.Errorf("editor: invalid channel %v", ch)
	}
	if !s.ViewMask.Has(ch) {
		return KeyRef{}, fmt.Errorf("%w: %v", ErrHidden, ch)
	}
	ref := KeyRef{Channel: ch}
	err := s.apply(func(g *gradient.Gradient) ([]KeyRef, error) {
		ref.Index = g.Curve(ch).AddKey(k)
		return []KeyRef{ref}, nil
	})
	return ref, err
}

// MoveKey replaces the given key with the given key, which may have
// a different time, and selects it. It returns where the key ended up.
func (s *Session) MoveKey(ref KeyRef, k curve.Keyframe) (KeyRef, error) {
	moved, err := s.editKeys([]KeyRef{ref}, false, func(_ gradient.Channel, kf *curve.Keyframe) {
		*kf = k
	})
	if err != nil {
		return KeyRef{}, err
	}
	return moved[0], nil
}

// RemoveKey removes the given key and clears the selection.
func (s *Session) RemoveKey(ref KeyRef) error {
	return s.removeKeys([]KeyRef{ref})
}

// refsByChannel returns the sorted, distinct key indexes of the
// given references for each channel.
func refsByChannel(refs []KeyRef) [gradient.NumChannels][]int {
	var idx [gradient.NumChannels][]int
	for _, r := range refs {
		idx[r.Channel] = append(idx[r.Channel], r.Index)
	}
	for c := range idx {
		slices.Sort(idx[c])
		idx[c] = slices.Compact(idx[c])
	}
	return idx
}

// editKeys applies the given edit to each of the given keys, which must
// all exist and be shown, and returns where the keys ended up. Keys that
// end up at the same time as another key replace it. The edited keys are
// selected, along with the rest of the selection if keep is true.
func (s *Session) editKeys(refs []KeyRef, keep bool, edit func(ch gradient.Channel, k *curve.Keyframe)) ([]KeyRef, error) {
	for _, r := range refs {
		if err := s.checkRef(r); err != nil {
			return nil, err
		}
	}
	var sel []keyTime
	if keep {
		sel = s.selectedTimes()
	}
	var moved []KeyRef
	err := s.apply(func(g *gradient.Gradient) ([]KeyRef, error) {
		for c, idx := range refsByChannel(refs) {
			if len(idx) == 0 {
				continue
			}
			ch := gradient.Channel(c)
			cv := g.Curve(ch)
			keys := make([]curve.Keyframe, len(idx))
			for i, ki := range idx {
				keys[i] = cv.Key(ki)
				edit(ch, &keys[i])
			}
			for i := len(idx) - 1; i >= 0; i-- {
				cv.RemoveKey(idx[i])
			}
			for _, k := range keys {
				cv.AddKey(k)
			}
			for _, k := range keys {
				moved = append(moved, KeyRef{ch, cv.Find(k.Time)})
			}
		}
		return append(s.find(sel), moved...), nil
	})
	return compactRefs(moved), err
}

// removeKeys removes each of the given keys, which must all exist
// and be shown, and clears the selection.
func (s *Session) removeKeys(refs []KeyRef) error {
	for _, r := range refs {
		if err := s.checkRef(r); err != nil {
			return err
		}
	}
	return s.apply(func(g *gradient.Gradient) ([]KeyRef, error) {
		for c, idx := range refsByChannel(refs) {
			cv := g.Curve(gradient.Channel(c))
			for i := len(idx) - 1; i >= 0; i-- {
				cv.RemoveKey(idx[i])
			}
		}
		return nil, nil
	})
}

// compactRefs sorts the given references and removes duplicates.
func compactRefs(refs []KeyRef) []KeyRef {
	slices.SortFunc(refs, func(a, b KeyRef) int {
		if a.Channel != b.Channel {
			return int(a.Channel - b.Channel)
		}
		return a.Index - b.Index
	})
	return slices.Compact(refs)
}
