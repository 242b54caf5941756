// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ramp inspects, samples and converts gradient files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/ramp/gradient"
	"cogentcore.org/ramp/gradient/gradfile"
	"cogentcore.org/ramp/logx"
	"github.com/muesli/termenv"
	"github.com/tdewolff/argp"
)

type Info struct {
	Max   int    `short:"m" default:"8" desc:"Maximum number of color and alpha keys"`
	Width int    `short:"w" default:"48" desc:"Width of the color bar"`
	Input string `index:"0" desc:"Gradient file (json, toml or yaml)"`
}

type Sample struct {
	Width int    `short:"w" default:"48" desc:"Number of samples"`
	Mask  string `short:"c" default:"all" desc:"Channels to sample, such as rgb, a or red|alpha"`
	Range string `short:"r" default:"0-1" desc:"Time range of the time option: 0-1, 0-24 or 0-2400"`
	Time  string `short:"t" desc:"Sample only at this time"`
	Hex   bool   `short:"x" desc:"Print hex values instead of a color bar"`
	Input string `index:"0" desc:"Gradient file"`
}

type Convert struct {
	Input  string `index:"0" desc:"Input gradient file"`
	Output string `index:"1" desc:"Output gradient file, with the format given by its extension"`
}

type Simplify struct {
	Max    int    `short:"m" default:"8" desc:"Maximum number of color and alpha keys"`
	Output string `short:"o" desc:"Save the simplified gradient to this file"`
	Input  string `index:"0" desc:"Gradient file"`
}

type Parse struct {
	Width    int    `short:"w" default:"48" desc:"Width of the color bar"`
	Output   string `short:"o" desc:"Save the gradient to this file"`
	Gradient string `index:"0" desc:"CSS linear-gradient or list of color stops"`
}

type Watch struct {
	Max     int    `short:"m" default:"8" desc:"Maximum number of color and alpha keys"`
	Width   int    `short:"w" default:"48" desc:"Width of the color bar"`
	Verbose bool   `short:"v" desc:"Log every file event"`
	Quiet   bool   `short:"q" desc:"Only log errors"`
	Input   string `index:"0" desc:"Gradient file"`
}

// profile is the color profile of the terminal.
var profile = termenv.EnvColorProfile()

func main() {
	logx.SetDefaultLogger()
	root := argp.NewCmd(&Info{}, "Color ramp toolkit: inspect, sample and convert gradient files")
	root.AddCmd(&Sample{}, "sample", "Sample a gradient")
	root.AddCmd(&Convert{}, "convert", "Convert a gradient file to another format")
	root.AddCmd(&Simplify{}, "simplify", "Print the simplified form of a gradient")
	root.AddCmd(&Parse{}, "parse", "Build a gradient from a CSS linear-gradient")
	root.AddCmd(&Watch{}, "watch", "Print a gradient file again whenever it changes")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	g, f, err := open(cmd.Input)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("File: %s (%s)\n", cmd.Input, f)
	printInfo(os.Stdout, g, cmd.Max, cmd.Width, profile)
	return nil
}

func (cmd *Sample) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	var mask gradient.ChannelMask
	if err := mask.SetString(cmd.Mask); err != nil {
		return fail(err)
	}
	var tr gradient.TimeRange
	if err := tr.SetString(cmd.Range); err != nil {
		return fail(err)
	}
	g, _, err := open(cmd.Input)
	if err != nil {
		return fail(err)
	}
	if cmd.Time != "" {
		t, err := parseTime(cmd.Time)
		if err != nil {
			return fail(err)
		}
		c := g.Evaluate(t, mask, tr)
		fmt.Printf("%s %s\n", hexColor(c), c)
		return nil
	}
	if cmd.Hex {
		for i, c := range g.Pixels(cmd.Width, 1, mask) {
			fmt.Printf("%g\t%s\n", float32(i)/float32(cmd.Width), hexColor(c))
		}
		return nil
	}
	fmt.Println(colorBar(g.Pixels(cmd.Width, 1, mask), profile))
	return nil
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" || cmd.Output == "" {
		return argp.ShowUsage
	}
	g, _, err := open(cmd.Input)
	if err != nil {
		return fail(err)
	}
	if err := save(g, cmd.Output); err != nil {
		return fail(err)
	}
	slog.Info("converted", "input", cmd.Input, "output", cmd.Output)
	return nil
}

func (cmd *Simplify) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	g, _, err := open(cmd.Input)
	if err != nil {
		return fail(err)
	}
	warnCapped(g, cmd.Max)
	s := g.Simple(cmd.Max)
	fmt.Println(s)
	if cmd.Output != "" {
		if err := save(gradient.FromSimple(s), cmd.Output); err != nil {
			return fail(err)
		}
	}
	return nil
}

func (cmd *Parse) Run() error {
	if cmd.Gradient == "" {
		return argp.ShowUsage
	}
	s, err := gradient.ParseSimple(cmd.Gradient)
	if err != nil {
		return fail(err)
	}
	g := gradient.FromSimple(s)
	fmt.Println(colorBar(g.Pixels(cmd.Width, 1, gradient.All), profile))
	if cmd.Output != "" {
		if err := save(g, cmd.Output); err != nil {
			return fail(err)
		}
	}
	return nil
}

// fail logs the given error and returns it, for argp
// to exit with a non-zero status.
func fail(err error) error {
	slog.Error(err.Error())
	return err
}

func open(filename string) (*gradient.Gradient, gradfile.Formats, error) {
	fn, err := expand(filename)
	if err != nil {
		return nil, gradfile.None, err
	}
	return gradfile.Open(fn)
}

func save(g *gradient.Gradient, filename string) error {
	fn, err := expand(filename)
	if err != nil {
		return err
	}
	return gradfile.Save(g, fn)
}
