// Copyright 2020 Aleksandr Demakin. All rights reserved.

package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/internal/render"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
)

const tomlBatch = `
[settings]
format = "decimal"
precision = 4

[[steps]]
name = "third"
func = "div"
args = ["1", "3"]
expect = "2/6"

[[steps]]
func = "sqrt"
args = ["2"]
expect = "1.41421356"
tolerance = 1e-8

[[steps]]
func = "log"
args = ["-1"]
`

const yamlBatch = `
settings:
  format: plain
steps:
  - func: add
    args: ["2", "3"]
    expect: "5"
  - name: wrong
    func: hypot
    args: ["3", "4"]
    expect: "6"
    tolerance: 0.5
`

func TestDetectFormat(t *testing.T) {
	a := assert.New(t)
	a.Equal(FormatTOML, DetectFormat("a.toml"))
	a.Equal(FormatYAML, DetectFormat("a.yaml"))
	a.Equal(FormatYAML, DetectFormat("dir/A.YML"))
	a.Equal(FormatTOML, DetectFormat("batch"))
	a.Equal("toml", FormatTOML.String())
	a.Equal("yaml", FormatYAML.String())
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	f, err := Parse([]byte(tomlBatch), FormatTOML)
	if a.NoError(err) {
		a.Equal("decimal", f.Settings.Format)
		if a.NotNil(f.Settings.Precision) {
			a.Equal(4, *f.Settings.Precision)
		}
		a.Len(f.Steps, 3)
		a.Equal(Step{Name: "third", Func: "div", Args: []string{"1", "3"}, Expect: "2/6"}, f.Steps[0])
		a.Equal(1e-8, f.Steps[1].Tolerance)
		a.Equal("third", f.Steps[0].Title())
		a.Equal("sqrt(2)", f.Steps[1].Title())
		a.Equal(render.Options{Mode: render.ModeDecimal, Precision: 4}, f.Options())
	}
	f, err = Parse([]byte(yamlBatch), FormatYAML)
	if a.NoError(err) {
		a.Equal("plain", f.Settings.Format)
		a.Nil(f.Settings.Precision)
		a.Len(f.Steps, 2)
		a.Equal("hypot", f.Steps[1].Func)
		a.Equal(0.5, f.Steps[1].Tolerance)
		a.Equal(render.Options{Mode: render.ModePlain, Precision: -1}, f.Options())
	}
}

func TestZeroPrecision(t *testing.T) {
	a := assert.New(t)
	content := "[settings]\nformat = \"decimal\"\nprecision = 0\n[[steps]]\nfunc = \"sqrt\"\nargs = [\"2\"]\n"
	f, err := Parse([]byte(content), FormatTOML)
	if a.NoError(err) {
		opts := f.Options()
		a.Equal(render.Options{Mode: render.ModeDecimal, Precision: 0}, opts)
		results := Run(f)
		if a.Len(results, 1) && a.NoError(results[0].Err) {
			a.Equal("1", render.Number(results[0].Value, opts))
		}
	}
	f, err = Parse([]byte("settings:\n  precision: 0\nsteps:\n  - func: sqrt\n    args: [\"2\"]\n"), FormatYAML)
	if a.NoError(err) {
		a.Equal(render.Options{Mode: render.ModePlain, Precision: 0}, f.Options())
	}
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		content string
		format  Format
		err     string
	}{
		{"[[steps]]\nfunc = \"sin\"\nargs = [\"1\"]\ncolor = \"red\"\n", FormatTOML, `unknown key "steps.color"`},
		{"steps:\n  - func: sin\n    args: [\"1\"]\n    color: red\n", FormatYAML, "YAML parse error"},
		{"[[steps]\n", FormatTOML, "TOML parse error"},
		{"", FormatTOML, "no steps"},
		{"[[steps]]\nfunc = \"frobnicate\"\n", FormatTOML, `step 1: unknown function "frobnicate"`},
		{"[[steps]]\nfunc = \"sin\"\nargs = [\"1\", \"2\"]\n", FormatTOML, "step 1: sin expects 1 argument(s), got 2"},
		{"[[steps]]\nfunc = \"sin\"\nargs = [\"1\"]\ntolerance = -1.0\n", FormatTOML, "step 1: negative tolerance"},
		{"[settings]\nformat = \"roman\"\n[[steps]]\nfunc = \"sin\"\nargs = [\"1\"]\n", FormatTOML, "settings: unknown format"},
		{"[settings]\nprecision = -2\n[[steps]]\nfunc = \"sin\"\nargs = [\"1\"]\n", FormatTOML, "settings: negative precision -2"},
		{"steps: []", Format(5), "unsupported format: unknown"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Parse([]byte(test.content), test.format)
			if a.Error(err) {
				a.Contains(err.Error(), test.err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "batch.toml")
	yamlPath := filepath.Join(dir, "batch.yml")
	a.NoError(os.WriteFile(tomlPath, []byte(tomlBatch), 0o600))
	a.NoError(os.WriteFile(yamlPath, []byte(yamlBatch), 0o600))

	f, err := Load(tomlPath)
	if a.NoError(err) {
		a.Len(f.Steps, 3)
	}
	f, err = Load(yamlPath)
	if a.NoError(err) {
		a.Len(f.Steps, 2)
	}
	_, err = Load(filepath.Join(dir, "missing.toml"))
	if a.Error(err) {
		a.True(errors.Is(err, os.ErrNotExist))
	}
	// yaml content in a toml file.
	badPath := filepath.Join(dir, "bad.toml")
	a.NoError(os.WriteFile(badPath, []byte(yamlBatch), 0o600))
	_, err = Load(badPath)
	if a.Error(err) {
		a.Contains(err.Error(), "loading "+badPath)
	}
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	f, err := Parse([]byte(tomlBatch), FormatTOML)
	if !a.NoError(err) {
		return
	}
	results := Run(f)
	if !a.Len(results, 3) {
		return
	}

	a.NoError(results[0].Err)
	a.Equal(rational.MustNew(1, 3), results[0].Value)
	a.True(results[0].Checked)
	a.True(results[0].Passed)
	a.False(results[0].Failed())

	a.NoError(results[1].Err)
	a.True(results[1].Passed)

	a.Nil(results[2].Value)
	a.False(results[2].Checked)
	a.True(results[2].Failed())
	if a.Error(results[2].Err) {
		a.True(errors.Is(results[2].Err, numtower.ErrDomain))
		a.Contains(results[2].Err.Error(), "step 3")
	}

	f, err = Parse([]byte(yamlBatch), FormatYAML)
	if !a.NoError(err) {
		return
	}
	results = Run(f)
	if a.Len(results, 2) {
		a.Equal(natural.MustNew(5), results[0].Value)
		a.True(results[0].Passed)
		a.True(results[1].Checked)
		a.False(results[1].Passed)
		a.True(results[1].Failed())
	}
}

func TestRunBadLiterals(t *testing.T) {
	a := assert.New(t)
	results := Run(&File{Steps: []Step{
		{Func: "sin", Args: []string{"1x"}},
		{Func: "sin", Args: []string{"0"}, Expect: "zero"},
	}})
	if a.Len(results, 2) {
		if a.Error(results[0].Err) {
			a.Contains(results[0].Err.Error(), `step 1: argument "1x": parsing failed: unexpected symbol 'x' at pos 2`)
		}
		if a.Error(results[1].Err) {
			a.Contains(results[1].Err.Error(), "expected value")
		}
		a.True(results[1].Failed())
	}
}
