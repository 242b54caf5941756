// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/ramp/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/tdewolff/argp"
)

func (cmd *Watch) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	logx.UserLevel = logx.LevelFromFlags(false, cmd.Verbose, cmd.Quiet)
	logx.SetDefaultLogger()
	fn, err := expand(cmd.Input)
	if err != nil {
		return fail(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watch(ctx, fn, cmd.Max, cmd.Width, os.Stdout); err != nil {
		return fail(err)
	}
	return nil
}

// watch prints the given gradient file, and prints it again whenever it
// is written, until the context is done. The directory is watched rather
// than the file, so that editors that replace the file are also seen.
func watch(ctx context.Context, filename string, maxKeyCount, width int, w io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}

	show := func() {
		g, _, err := open(filename)
		if err != nil {
			slog.Error("error reading gradient", "file", filename, "err", err)
			return
		}
		printInfo(w, g, maxKeyCount, width, profile)
	}
	show()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			slog.Info("file event", "name", event.Name, "op", event.Op)
			if filepath.Clean(event.Name) != filepath.Clean(filename) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				show()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("gradient file watcher error: " + err.Error())
		}
	}
}
