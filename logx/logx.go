// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up structured logging with [log/slog] for
// command line tools, with the level chosen by the user through
// verbosity flags and colored in terminals that support it.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags with [LevelFromFlags]. The default
// is [slog.LevelWarn], or [slog.LevelDebug] with the debug build tag
// and [slog.LevelError] with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// levelColors are the colors of the level names.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#9e9e9e",
	slog.LevelInfo:  "#4caf50",
	slog.LevelWarn:  "#ff9800",
	slog.LevelError: "#f44336",
}

// NewHandler returns a text handler that writes records at or above the
// given level to the given writer, without times, and with the level
// colored using the given terminal color profile.
func NewHandler(w io.Writer, level slog.Leveler, profile termenv.Profile) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				l, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				return slog.String(slog.LevelKey, ColorLevel(l, profile))
			}
			return a
		},
	})
}

// ColorLevel returns the name of the given level,
// colored using the given terminal color profile.
func ColorLevel(l slog.Level, profile termenv.Profile) string {
	c, ok := levelColors[l]
	if !ok {
		return l.String()
	}
	return profile.String(l.String()).Foreground(profile.Color(c)).Bold().String()
}

// SetDefaultLogger sets the default [slog] logger to write to
// [os.Stderr] at [UserLevel], colored if stderr is a terminal.
func SetDefaultLogger() {
	out := termenv.NewOutput(os.Stderr)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel, out.EnvColorProfile())))
}
