// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradfile reads and writes gradients as JSON, TOML or YAML
// documents holding the keys of the four channel curves.
package gradfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/ramp/curve"
	"cogentcore.org/ramp/gradient"
	"github.com/Masterminds/semver/v3"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Version is the document version written by this package.
const Version = "1.0.0"

// VersionConstraint is the range of document versions that can be read.
const VersionConstraint = "^1"

// Formats are the supported document encoding formats.
type Formats int32

// The supported document encoding formats.
const (
	None Formats = iota
	JSON
	TOML
	YAML
)

func (f Formats) String() string {
	switch f {
	case JSON:
		return "json"
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return "none"
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Document is the persisted form of a gradient.
type Document struct {
	Version string  `json:"version" toml:"version" yaml:"version"`
	Curves  []Curve `json:"curves" toml:"curves" yaml:"curves"`
}

// Curve is the persisted form of one channel curve.
type Curve struct {
	Keys []Key `json:"keys" toml:"keys" yaml:"keys"`
}

// Key is the persisted form of one curve key.
type Key struct {
	Time        float32 `json:"time" toml:"time" yaml:"time"`
	Value       float32 `json:"value" toml:"value" yaml:"value"`
	InTangent   float32 `json:"inTangent" toml:"inTangent" yaml:"inTangent"`
	OutTangent  float32 `json:"outTangent" toml:"outTangent" yaml:"outTangent"`
	TangentMode int32   `json:"tangentMode" toml:"tangentMode" yaml:"tangentMode"`
}

// NewDocument returns the document for the given gradient.
func NewDocument(g *gradient.Gradient) (*Document, error) {
	d := &Document{Version: Version, Curves: make([]Curve, gradient.NumChannels)}
	for c := range gradient.Channel(gradient.NumChannels) {
		keys := []Key{}
		if err := copier.Copy(&keys, g.Curve(c).Keys()); err != nil {
			return nil, fmt.Errorf("gradfile: channel %v: %w", c, err)
		}
		d.Curves[c] = Curve{Keys: keys}
	}
	return d, nil
}

// Gradient returns the gradient described by the document, after checking
// that its version can be read. A missing version is read as [Version].
// Missing or empty curves get the default curve, and the keys of every
// curve are sorted with their tangents recomputed.
func (d *Document) Gradient() (*gradient.Gradient, error) {
	if err := CheckVersion(d.Version); err != nil {
		return nil, err
	}
	cs := make([]*curve.Curve, len(d.Curves))
	for c, dc := range d.Curves {
		keys := []curve.Keyframe{}
		if err := copier.Copy(&keys, dc.Keys); err != nil {
			return nil, fmt.Errorf("gradfile: curve %d: %w", c, err)
		}
		cs[c] = curve.New(keys...)
	}
	return gradient.NewFromCurves(cs...), nil
}

// CheckVersion returns an error if a document with the given version
// cannot be read.
func CheckVersion(version string) error {
	if version == "" {
		version = Version
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("gradfile: invalid version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(VersionConstraint)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("gradfile: unsupported version %s, need %s", v, VersionConstraint)
	}
	return nil
}

// Open opens a gradient from the given filename,
// with the format inferred from the filename.
func Open(filename string) (*gradient.Gradient, Formats, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, None, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, f, err
	}
	defer file.Close()
	g, err := Read(file, f)
	if err != nil {
		return nil, f, fmt.Errorf("gradfile.Open %q: %w", filename, err)
	}
	return g, f, nil
}

// Read reads a gradient from the given reader in the given format.
func Read(r io.Reader, f Formats) (*gradient.Gradient, error) {
	d := &Document{}
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(d)
	case TOML:
		err = toml.NewDecoder(r).Decode(d)
	case YAML:
		err = yaml.NewDecoder(r).Decode(d)
	default:
		return nil, fmt.Errorf("gradfile.Read: format %q not valid", f)
	}
	if err != nil {
		return nil, err
	}
	return d.Gradient()
}

// Save saves the gradient to the given filename,
// with the format inferred from the filename.
func Save(g *gradient.Gradient, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(g, file, f)
}

// Write writes the gradient to the given writer in the given format.
func Write(g *gradient.Gradient, w io.Writer, f Formats) error {
	d, err := NewDocument(g)
	if err != nil {
		return err
	}
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(d)
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("gradfile.Write: format %q not valid", f)
	}
}
