// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

// Evaluate returns the color of the simplified gradient at the given
// normalized time, blending linearly between the keys on either side and
// padding with the first and last keys outside of them. Without color keys
// the color is white, and without alpha keys it is opaque.
func (s *Simple) Evaluate(time float32) Color {
	res := White
	if n := len(s.ColorKeys); n > 0 {
		place := 0 // first key at or after time
		for place != n && time > s.ColorKeys[place].Time {
			place++
		}
		switch place {
		case 0:
			res = s.ColorKeys[0].Color
		case n:
			res = s.ColorKeys[n-1].Color
		default:
			k1, k2 := s.ColorKeys[place-1], s.ColorKeys[place]
			f := blendFactor(time, k1.Time, k2.Time)
			res.R = lerp(k1.Color.R, k2.Color.R, f)
			res.G = lerp(k1.Color.G, k2.Color.G, f)
			res.B = lerp(k1.Color.B, k2.Color.B, f)
		}
	}
	res.A = 1
	if n := len(s.AlphaKeys); n > 0 {
		place := 0
		for place != n && time > s.AlphaKeys[place].Time {
			place++
		}
		switch place {
		case 0:
			res.A = s.AlphaKeys[0].Alpha
		case n:
			res.A = s.AlphaKeys[n-1].Alpha
		default:
			k1, k2 := s.AlphaKeys[place-1], s.AlphaKeys[place]
			res.A = lerp(k1.Alpha, k2.Alpha, blendFactor(time, k1.Time, k2.Time))
		}
	}
	return res
}

// blendFactor returns where time lies between t1 and t2, as a 0-1 fraction.
func blendFactor(time, t1, t2 float32) float32 {
	if t2 <= t1 {
		return 1
	}
	return (time - t1) / (t2 - t1)
}

func lerp(start, stop, amount float32) float32 {
	return start + (stop-start)*amount
}
