// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(NewHandler(&b, slog.LevelInfo, termenv.Ascii))
	l.Debug("hidden")
	l.Info("sampled", "width", 4)
	l.Warn("capped", "keys", 10)

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "time=")
	assert.Contains(t, out, "level=INFO msg=sampled width=4")
	assert.Contains(t, out, "level=WARN msg=capped keys=10")
}

func TestColorLevel(t *testing.T) {
	assert.Equal(t, "ERROR", ColorLevel(slog.LevelError, termenv.Ascii))
	assert.Equal(t, "INFO+2", ColorLevel(slog.LevelInfo+2, termenv.TrueColor))
	assert.Contains(t, ColorLevel(slog.LevelWarn, termenv.TrueColor), "WARN")
	assert.NotEqual(t, "WARN", ColorLevel(slog.LevelWarn, termenv.TrueColor))
}

func TestDefaultLogger(t *testing.T) {
	old, oldLevel := slog.Default(), UserLevel
	defer func() {
		slog.SetDefault(old)
		UserLevel = oldLevel
	}()

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
