// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/ramp/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleGradient_Simple() {
	g := NewFromKeys(curve.Key(0, 0), curve.Key(1, 1))
	s := g.Simple(DefaultMaxKeyCount)
	fmt.Println(s)
	fmt.Println(len(s.AlphaKeys))
	// Output:
	// linear-gradient(#000000 0%, #ffffff 100%)
	// 2
}

func ExampleParseSimple() {
	s, err := ParseSimple("linear-gradient(#e66465, #9198e5 40%, #fff)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	fmt.Println(FromSimple(s).At(0.4).NRGBA())
	// Output:
	// linear-gradient(#e66465 0%, #9198e5 40%, #ffffff 100%)
	// {145 152 229 255}
}

func assertColor(t *testing.T, want, have Color, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.R, have.R, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.G, have.G, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.B, have.B, 1e-5, msgAndArgs...)
	assert.InDelta(t, want.A, have.A, 1e-5, msgAndArgs...)
}

// colorGradient returns a gradient with color keys at the given times,
// each with distinct channel values, and an opaque alpha channel.
func colorGradient(times ...float32) *Gradient {
	g := New()
	g.Clear(RGB)
	for i, tm := range times {
		v := float32(i+1) / float32(len(times)+1)
		g.AddKey(curve.Key(tm, v), RedMask)
		g.AddKey(curve.Key(tm, 1-v), GreenMask)
		g.AddKey(curve.Key(tm, v/2), BlueMask)
	}
	return g
}

func TestDefault(t *testing.T) {
	g := New()
	for _, tm := range []float32{-1, 0, 0.5, 1, 2} {
		assert.Equal(t, White, g.At(tm), "time %g", tm)
	}
	for c := range Channel(NumChannels) {
		assert.True(t, g.Curve(c).Equal(curve.Default()), "channel %v", c)
	}
	assert.True(t, NewFromKeys().Equal(g))
}

func TestNewFromKeys(t *testing.T) {
	g := NewFromKeys(curve.Key(1, 1), curve.Key(0, 0))
	for c := range Channel(NumChannels) {
		assert.Equal(t, []float32{0, 1}, g.Curve(c).Times())
	}
	assertColor(t, Color{0.5, 0.5, 0.5, 0.5}, g.At(0.5))
}

func TestMaskIsolation(t *testing.T) {
	g := New()
	g.Clear(RedMask)
	g.AddKeys([]curve.Keyframe{curve.Key(0, 0.2), curve.Key(1, 0.8)}, RedMask)
	assert.Equal(t, []float32{0, 1}, g.Curve(Red).Times())
	assert.Equal(t, float32(0.2), g.Curve(Red).Key(0).Value)
	for _, c := range []Channel{Green, Blue, Alpha} {
		assert.True(t, g.Curve(c).Equal(curve.Default()), "channel %v", c)
	}

	g.AddKey(curve.Key(0.5, 0), GreenMask|BlueMask)
	assert.Equal(t, 2, g.Curve(Red).Len())
	assert.Equal(t, 3, g.Curve(Green).Len())
	assert.Equal(t, 3, g.Curve(Blue).Len())
	assert.Equal(t, 2, g.Curve(Alpha).Len())
}

func TestEvaluate(t *testing.T) {
	g := New()
	g.SetCurve(curve.New(curve.Key(0, 0), curve.Key(1, 1)), RedMask)

	assert.Equal(t, float32(0.25), g.Evaluate(0.25, RedMask, One).R)
	assertColor(t, Color{0.25, 0, 0, 1}, g.Evaluate(0.25, RedMask, One))
	assertColor(t, Color{0.25, 1, 1, 1}, g.Evaluate(0.25, All, One))
	assertColor(t, Color{0.5, 0, 0, 1}, g.Evaluate(12, RedMask, TwentyFour))
	assertColor(t, Color{0.75, 0, 0, 1}, g.Evaluate(1800, RedMask, TwentyFourHundred))
	assertColor(t, Color{0, 0, 0, 1}, g.Evaluate(0.5, None, One))
}

func TestEvaluateAlphaOnly(t *testing.T) {
	g := New()
	g.SetCurve(curve.New(curve.Key(0, 0), curve.Key(1, 1)), AlphaMask)
	assertColor(t, Color{0.25, 0.25, 0.25, 1}, g.Evaluate(0.25, AlphaMask, One))
	assertColor(t, Color{1, 1, 1, 0.25}, g.Evaluate(0.25, All, One))
	// alpha along with other channels is not gray
	assertColor(t, Color{1, 0, 0, 0.25}, g.Evaluate(0.25, RedMask|AlphaMask, One))
}

func TestClear(t *testing.T) {
	g := New()
	g.Clear(All)
	for c := range Channel(NumChannels) {
		assert.Equal(t, 0, g.Curve(c).Len())
	}
	assert.Equal(t, Color{}, g.At(0.5))
}

func TestSetCurve(t *testing.T) {
	g := New()
	cv := curve.New(curve.Key(0, 0), curve.Key(1, 0.5))
	g.SetCurve(cv, RedMask|GreenMask)
	assert.True(t, g.Curve(Red).Equal(cv))
	assert.True(t, g.Curve(Green).Equal(cv))
	assert.NotSame(t, g.Curve(Red), g.Curve(Green))

	// the gradient has its own copy
	cv.AddKey(curve.Key(0.5, 1))
	assert.Equal(t, 2, g.Curve(Red).Len())

	g.SetCurve(nil, RedMask)
	assert.True(t, g.Curve(Red).Equal(curve.Default()))
	assert.True(t, g.Curve(Green).Equal(curve.New(curve.Key(0, 0), curve.Key(1, 0.5))))
}

func TestSetCurves(t *testing.T) {
	cv := curve.New(curve.Key(0.2, 0.3))
	g := NewFromCurves(cv, nil, curve.New())
	assert.True(t, g.Curve(Red).Equal(cv))
	assert.True(t, g.Curve(Green).Equal(curve.Default()))
	assert.True(t, g.Curve(Blue).Equal(curve.Default()))
	assert.True(t, g.Curve(Alpha).Equal(curve.Default()))

	cs := g.Curves()
	require.Len(t, cs, NumChannels)
	cs[Red].Clear()
	assert.Equal(t, 1, g.Curve(Red).Len())
}

func TestClone(t *testing.T) {
	g := colorGradient(0, 0.5, 1)
	cp := g.Clone()
	assert.True(t, cp.Equal(g))
	cp.AddKey(curve.Key(0.25, 0), All)
	assert.False(t, cp.Equal(g))
	assert.Equal(t, 3, g.Curve(Red).Len())
}

func TestPixels(t *testing.T) {
	px := New().Pixels(4, 1, All)
	require.Len(t, px, 4)
	for i, p := range px {
		assert.Equal(t, White, p, "pixel %d", i)
	}

	g := New()
	g.SetCurve(curve.New(curve.Key(0, 0), curve.Key(1, 1)), RedMask)
	px = g.Pixels(4, 2, RedMask)
	require.Len(t, px, 8)
	for x := range 4 {
		want := Color{float32(x) / 4, 0, 0, 1}
		assertColor(t, want, px[x], "x %d", x)
		assert.Equal(t, px[x], px[x+4], "x %d", x)
	}

	assert.Nil(t, g.Pixels(0, 4, All))
	assert.Nil(t, g.Pixels(4, -1, All))
}

func TestMerged(t *testing.T) {
	g := New()
	g.SetCurve(curve.New(curve.Key(0, 1), curve.Key(0.5, 0.5), curve.Key(1, 0)), RedMask)
	g.SetCurve(curve.New(curve.Key(0, 0.2), curve.Key(0.5, 0.4)), GreenMask)
	g.SetCurve(curve.New(curve.Key(0, 0.3), curve.Key(1, 0.6)), BlueMask)

	m := g.Merged()
	require.Equal(t, 1, m.ColorKeyCount())
	assert.Equal(t, 2, m.AlphaKeyCount())
	assert.Equal(t, MergedKeyframe{0, 1, 0}, m.Keys[Red][0])
	assert.Equal(t, MergedKeyframe{0, 0.2, 0}, m.Keys[Green][0])
	assert.Equal(t, MergedKeyframe{0, 0.3, 0}, m.Keys[Blue][0])

	// the gradient itself is untouched
	assert.Equal(t, 3, g.Curve(Red).Len())
	assert.Equal(t, 2, g.Curve(Green).Len())
	assert.Equal(t, 2, g.Curve(Blue).Len())
}

func TestMergedIndex(t *testing.T) {
	g := colorGradient(0, 1)
	g.AddKey(curve.Key(0.2, 0.5), RedMask)
	g.AddKey(curve.Key(0.6, 0.5), AlphaMask)

	m := g.Merged()
	require.Equal(t, 2, m.ColorKeyCount())
	assert.Equal(t, 0, m.Keys[Red][0].Index)
	assert.Equal(t, 2, m.Keys[Red][1].Index)
	assert.Equal(t, 1, m.Keys[Green][1].Index)
	require.Equal(t, 3, m.AlphaKeyCount())
	assert.Equal(t, float32(0.6), m.Keys[Alpha][1].Time)
	assert.Equal(t, 1, m.Keys[Alpha][1].Index)
}

func TestMergedNoColorKeys(t *testing.T) {
	g := NewFromCurves(
		curve.New(curve.Key(0, 0)),
		curve.New(curve.Key(1, 0)),
		curve.New(curve.Key(0.5, 0)),
	)
	s := g.Simple(DefaultMaxKeyCount)
	assert.Empty(t, s.ColorKeys)
	assert.Len(t, s.AlphaKeys, 2)

	back := FromSimple(s)
	assert.Equal(t, White, back.At(0.3))
}

func TestRoundTrip(t *testing.T) {
	g := colorGradient(0, 0.3, 0.7, 1)
	g.SetCurve(curve.New(curve.Key(0, 1), curve.Key(0.4, 0.2), curve.Key(1, 0.5)), AlphaMask)

	s := g.Simple(DefaultMaxKeyCount)
	require.Len(t, s.ColorKeys, 4)
	require.Len(t, s.AlphaKeys, 3)
	assert.Equal(t, float32(0.3), s.ColorKeys[1].Time)
	assert.Equal(t, float32(1), s.ColorKeys[1].Color.A)

	back := FromSimple(s)
	assert.True(t, back.Equal(g), "have %v want %v", back.Curves(), g.Curves())
	for _, tm := range []float32{0, 0.1, 0.5, 0.9, 1} {
		assertColor(t, g.At(tm), s.Evaluate(tm), "time %g", tm)
	}
}

func TestTruncation(t *testing.T) {
	times := make([]float32, 10)
	for i := range times {
		times[i] = float32(i) / 9
	}
	g := colorGradient(times...)
	g.Clear(AlphaMask)
	for _, tm := range times {
		g.AddKey(curve.Key(tm, 1-tm), AlphaMask)
	}

	m := g.Merged()
	assert.Equal(t, 10, m.ColorKeyCount())
	assert.Equal(t, 10, m.AlphaKeyCount())

	s := g.Simple(8)
	require.Len(t, s.ColorKeys, 8)
	require.Len(t, s.AlphaKeys, 8)
	for i := range 8 {
		assert.Equal(t, times[i], s.ColorKeys[i].Time)
		assert.Equal(t, times[i], s.AlphaKeys[i].Time)
	}

	assert.Len(t, g.Simple(0).ColorKeys, 10)
	assert.Len(t, g.Simple(-1).AlphaKeys, 10)
}

func TestSimpleEvaluate(t *testing.T) {
	var empty Simple
	assert.Equal(t, White, empty.Evaluate(0.5))

	s := (&Simple{}).
		AddColorKey(Color{0, 0, 0, 1}, 0.2).
		AddColorKey(Color{1, 1, 1, 1}, 0.6).
		AddAlphaKey(1, 0).
		AddAlphaKey(0, 1)
	assertColor(t, Color{0, 0, 0, 1}, s.Evaluate(0))
	assertColor(t, Color{0.5, 0.5, 0.5, 0.6}, s.Evaluate(0.4))
	assertColor(t, Color{1, 1, 1, 0.2}, s.Evaluate(0.8))
}

func TestSimpleString(t *testing.T) {
	s := (&Simple{}).
		AddColorKey(Color{0, 0, 0, 1}, 0).
		AddColorKey(Color{1, 0, 0, 1}, 0.5).
		AddColorKey(Color{1, 1, 1, 1}, 1)
	assert.Equal(t, "linear-gradient(#000000 0%, #ff0000 50%, #ffffff 100%)", s.String())
}

func TestParseSimple(t *testing.T) {
	s, err := ParseSimple("linear-gradient(#000, #ff000080 50%, white);")
	require.NoError(t, err)
	require.Len(t, s.ColorKeys, 3)
	assert.Equal(t, []float32{0, 0.5, 1}, []float32{s.ColorKeys[0].Time, s.ColorKeys[1].Time, s.ColorKeys[2].Time})
	assertColor(t, Color{1, 0, 0, 1}, s.ColorKeys[1].Color)
	require.Len(t, s.AlphaKeys, 3)
	assert.InDelta(t, 128.0/255, s.AlphaKeys[1].Alpha, 1e-6)
	assert.Equal(t, float32(1), s.AlphaKeys[2].Alpha)

	s, err = ParseSimple("#f00, #0f0, #00f, #ffffff 100%")
	require.NoError(t, err)
	require.Len(t, s.ColorKeys, 4)
	assert.Empty(t, s.AlphaKeys)
	for i, want := range []float32{0, 1.0 / 3, 2.0 / 3, 1} {
		assert.InDelta(t, want, s.ColorKeys[i].Time, 1e-6, "stop %d", i)
	}

	s, err = ParseSimple("#e66465 0.2, #9198e5 40%")
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), s.ColorKeys[0].Time)
	assert.InDelta(t, 0.4, s.ColorKeys[1].Time, 1e-6)
}

func TestParseSimpleRoundTrip(t *testing.T) {
	s := (&Simple{}).
		AddColorKey(Color{0, 0, 0, 1}, 0).
		AddColorKey(Color{1, 0, 0, 1}, 0.25).
		AddColorKey(Color{1, 1, 1, 1}, 1)
	p, err := ParseSimple(s.String())
	require.NoError(t, err)
	require.Len(t, p.ColorKeys, 3)
	for i, ck := range p.ColorKeys {
		assertColor(t, s.ColorKeys[i].Color, ck.Color, "key %d", i)
		assert.InDelta(t, s.ColorKeys[i].Time, ck.Time, 1e-6, "key %d", i)
	}
}

func TestParseSimpleErrors(t *testing.T) {
	for _, str := range []string{
		"",
		"linear-gradient(#fff",
		"linear-gradient()",
		"#ggg",
		"#ff",
		"notacolor",
		"#fff abc",
	} {
		_, err := ParseSimple(str)
		assert.Error(t, err, "%q", str)
	}
}

func TestColor(t *testing.T) {
	var _ color.Color = Color{}
	r, g, b, a := White.RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})

	half := Color{1, 0, 0, 0.5}
	r, g, b, a = half.RGBA()
	assert.Equal(t, []uint32{0x8000, 0, 0, 0x8000}, []uint32{r, g, b, a})
	assert.Equal(t, color.NRGBA{255, 0, 0, 128}, half.NRGBA())
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, Color{2, -1, 0, 1}.NRGBA())

	c := White
	c.SetChannel(Green, 0.5)
	assert.Equal(t, float32(0.5), c.Channel(Green))
	assert.Equal(t, float32(1), c.Channel(Alpha))
}

func TestChannelMask(t *testing.T) {
	assert.Equal(t, "All", All.String())
	assert.Equal(t, "RGB", RGB.String())
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Red|Alpha", (RedMask | AlphaMask).String())
	assert.Equal(t, []Channel{Green, Alpha}, (GreenMask | AlphaMask).Channels())
	assert.Equal(t, byte('b'), Blue.Char())

	tests := map[string]ChannelMask{
		"all":       All,
		"RGB":       RGB,
		"none":      None,
		"rga":       RedMask | GreenMask | AlphaMask,
		"red|alpha": RedMask | AlphaMask,
		"Blue":      BlueMask,
		"rgb|a":     All,
	}
	for str, want := range tests {
		var m ChannelMask
		require.NoError(t, m.SetString(str), str)
		assert.Equal(t, want, m, str)
	}
	var m ChannelMask
	assert.Error(t, m.SetString("rx"))
}

func TestTimeRange(t *testing.T) {
	assert.Equal(t, "0-2400", TwentyFourHundred.String())
	assert.Equal(t, float32(24), TwentyFour.Scale())
	assert.Equal(t, float32(1), TimeRange(0).Scale())

	var r TimeRange
	require.NoError(t, r.SetString("0-24"))
	assert.Equal(t, TwentyFour, r)
	require.NoError(t, r.SetString("2400"))
	assert.Equal(t, TwentyFourHundred, r)
	assert.Error(t, r.SetString("0-7"))
}

func BenchmarkPixels(b *testing.B) {
	g := colorGradient(0, 0.2, 0.4, 0.6, 0.8, 1)
	for range b.N {
		g.Pixels(256, 1, All)
	}
}

func BenchmarkSimple(b *testing.B) {
	g := colorGradient(0, 0.2, 0.4, 0.6, 0.8, 1)
	for range b.N {
		g.Simple(DefaultMaxKeyCount)
	}
}
