// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package batch loads lists of function evaluations from TOML or YAML files and runs them.
package batch

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/internal/render"
)

// Format is the format of a batch file.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat picks the format by the file extension. Unknown extensions mean TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// File is a list of evaluation steps with output settings.
type File struct {
	Settings Settings `toml:"settings" yaml:"settings"`
	Steps    []Step   `toml:"steps" yaml:"steps"`
}

// Settings control how the results are printed.
type Settings struct {
	// Format is one of plain, fixed, decimal.
	Format string `toml:"format" yaml:"format"`
	// Precision is the number of fraction digits, nil if not set.
	Precision *int `toml:"precision" yaml:"precision"`
}

// Step is a single function evaluation.
type Step struct {
	Name string   `toml:"name" yaml:"name"`
	Func string   `toml:"func" yaml:"func"`
	Args []string `toml:"args" yaml:"args"`
	// Expect is an optional literal the result is compared to.
	Expect string `toml:"expect" yaml:"expect"`
	// Tolerance is the maximum absolute difference between the result and Expect.
	// Zero requires an exact match.
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
}

// Title returns the name of the step, or a function call representation if the name is empty.
func (s Step) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Func + "(" + strings.Join(s.Args, ", ") + ")"
}

// Load reads and validates a batch file.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading batch file")
	}
	f, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return f, nil
}

// Parse decodes and validates a batch file. Unknown keys are rejected.
func Parse(content []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), &f)
		if err != nil {
			return nil, errors.Wrap(err, "TOML parse error")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "YAML parse error")
		}
	default:
		return nil, errors.Errorf("unsupported format: %s", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks, that all the functions are known, and are given the right number of arguments.
func (f *File) Validate() error {
	if _, err := render.ParseMode(f.Settings.Format); err != nil {
		return errors.Wrap(err, "settings")
	}
	if p := f.Settings.Precision; p != nil && *p < 0 {
		return errors.Errorf("settings: negative precision %d", *p)
	}
	if len(f.Steps) == 0 {
		return errors.New("no steps")
	}
	for i, step := range f.Steps {
		arity := numtower.Arity(step.Func)
		if arity < 0 {
			return errors.Errorf("step %d: unknown function %q", i+1, step.Func)
		}
		if len(step.Args) != arity {
			return errors.Errorf("step %d: %s expects %d argument(s), got %d", i+1, step.Func, arity, len(step.Args))
		}
		if step.Tolerance < 0 {
			return errors.Errorf("step %d: negative tolerance", i+1)
		}
	}
	return nil
}

// Options returns rendering options for the file's settings.
func (f *File) Options() render.Options {
	mode, _ := render.ParseMode(f.Settings.Format)
	opts := render.Options{Mode: mode, Precision: -1}
	if f.Settings.Precision != nil {
		opts.Precision = *f.Settings.Precision
	}
	return opts
}
