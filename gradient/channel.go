// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"strings"
)

// Channel is one of the color channels of a [Gradient].
type Channel int32

const (
	Red Channel = iota
	Green
	Blue
	Alpha

	// NumChannels is the number of channels in a [Gradient].
	NumChannels = 4
)

var channelNames = [NumChannels]string{"Red", "Green", "Blue", "Alpha"}

func (c Channel) String() string {
	if c < 0 || c >= NumChannels {
		return fmt.Sprintf("Channel(%d)", int32(c))
	}
	return channelNames[c]
}

// Char returns the single lowercase letter naming the channel (r, g, b or a).
func (c Channel) Char() byte {
	return "rgba"[c]
}

// Mask returns the [ChannelMask] containing only this channel.
func (c Channel) Mask() ChannelMask {
	return ChannelMask(1 << c)
}

// ChannelMask is a set of channels, used to restrict which
// channels an operation applies to.
type ChannelMask int32

const (
	None      ChannelMask = 0
	RedMask   ChannelMask = 1 << Red
	GreenMask ChannelMask = 1 << Green
	BlueMask  ChannelMask = 1 << Blue
	AlphaMask ChannelMask = 1 << Alpha
	RGB                   = RedMask | GreenMask | BlueMask
	All                   = RGB | AlphaMask
)

// Has returns whether the mask contains the given channel.
func (m ChannelMask) Has(c Channel) bool {
	return m&c.Mask() != 0
}

// Channels returns the channels contained in the mask, in order.
func (m ChannelMask) Channels() []Channel {
	var cs []Channel
	for c := range Channel(NumChannels) {
		if m.Has(c) {
			cs = append(cs, c)
		}
	}
	return cs
}

func (m ChannelMask) String() string {
	switch m {
	case None:
		return "None"
	case RGB:
		return "RGB"
	case All:
		return "All"
	}
	var names []string
	for _, c := range m.Channels() {
		names = append(names, c.String())
	}
	return strings.Join(names, "|")
}

// SetString sets the mask from the given string, which can be
// "none", "all", "rgb", channel letters such as "rga", or channel
// names and the above joined with "|", such as "red|alpha".
func (m *ChannelMask) SetString(s string) error {
	var res ChannelMask
	for _, part := range strings.Split(strings.ToLower(strings.TrimSpace(s)), "|") {
		part = strings.TrimSpace(part)
		switch part {
		case "none", "":
			continue
		case "all":
			res |= All
			continue
		case "rgb":
			res |= RGB
			continue
		}
		found := false
		for c := range Channel(NumChannels) {
			if strings.EqualFold(part, c.String()) {
				res |= c.Mask()
				found = true
			}
		}
		if found {
			continue
		}
		for _, r := range part {
			i := strings.IndexRune("rgba", r)
			if i < 0 {
				return fmt.Errorf("gradient.ChannelMask.SetString: invalid channel %q in %q", part, s)
			}
			res |= Channel(i).Mask()
		}
	}
	*m = res
	return nil
}

// TimeRange is the scale of the time axis a [Gradient] is displayed
// and evaluated with; times are divided by it before evaluating.
type TimeRange int32

const (
	// One is the normalized 0-1 time range.
	One TimeRange = 1

	// TwentyFour is the 0-24 time range, for example hours of a day.
	TwentyFour TimeRange = 24

	// TwentyFourHundred is the 0-2400 time range.
	TwentyFourHundred TimeRange = 2400
)

// TimeRanges are all of the supported time ranges.
var TimeRanges = []TimeRange{One, TwentyFour, TwentyFourHundred}

func (r TimeRange) String() string {
	return fmt.Sprintf("0-%d", int32(r))
}

// Scale returns the time range as a divisor, treating any
// non-positive time range as [One].
func (r TimeRange) Scale() float32 {
	if r <= 0 {
		return 1
	}
	return float32(r)
}

// SetString sets the time range from one of its names (0-1, 0-24, 0-2400),
// or the upper bound alone (1, 24, 2400).
func (r *TimeRange) SetString(s string) error {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0-")
	for _, tr := range TimeRanges {
		if s == fmt.Sprint(int32(tr)) {
			*r = tr
			return nil
		}
	}
	return fmt.Errorf("gradient.TimeRange.SetString: invalid time range %q", s)
}
