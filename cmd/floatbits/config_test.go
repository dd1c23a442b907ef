// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/floatbits"
)

func TestReadPresets(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		data    string
		presets []floatbits.Preset
		err     string
	}{
		{"", []floatbits.Preset{}, ""},
		{
			"[[preset]]\nname = \"fp8-e4m3\"\nexp = 4\nman = 3\n\n[[preset]]\nname = \"fp8-e5m2\"\nexp = 5\nman = 2\n",
			[]floatbits.Preset{{Name: "fp8-e4m3", Format: floatbits.MustFormat(4, 3)}, {Name: "fp8-e5m2", Format: floatbits.MustFormat(5, 2)}},
			"",
		},
		{"[[preset]]\nname = \"tiny\"\nexp = 1\nman = 3\n", nil, `preset "tiny": format out of range: exponent bits 1 not in [2, 15]`},
		{"[[preset]]\nexp = 4\nman = 3\n", nil, "preset #1 has no name"},
		{"[[preset]]\nname = \"x\"\nbias = 4\n", nil, "strict mode"},
		{"[[preset]\n", nil, "toml"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			presets, err := readPresets(strings.NewReader(test.data))
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.presets, presets)
				}
			} else if a.Error(err) {
				a.Contains(err.Error(), test.err)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	a := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")
	a.NoError(os.WriteFile(path, []byte("[[preset]]\nname = \"fp8-e4m3\"\nexp = 4\nman = 3\n"), 0644))

	r, err := newRegistry(path)
	if !a.NoError(err) {
		return
	}
	a.Equal([]string{"binary16", "bfloat16", "binary32", "binary64", "binary128", "fp8-e4m3"}, r.names())
	f, ok := r.lookup("FP8-E4M3")
	a.True(ok)
	a.Equal(floatbits.MustFormat(4, 3), f)
	_, ok = r.lookup("fp8")
	a.False(ok)

	dup := filepath.Join(dir, "dup.toml")
	a.NoError(os.WriteFile(dup, []byte("[[preset]]\nname = \"Binary32\"\nexp = 8\nman = 23\n"), 0644))
	_, err = newRegistry(dup)
	if a.Error(err) {
		a.Contains(err.Error(), `duplicate preset "binary32"`)
	}

	_, err = newRegistry(filepath.Join(dir, "missing.toml"))
	a.True(errors.Is(err, os.ErrNotExist))
}

func TestResolve(t *testing.T) {
	a := assert.New(t)
	r, err := newRegistry("")
	if !a.NoError(err) {
		return
	}
	tests := []struct {
		name     string
		exp, man int
		f        floatbits.Format
		err      string
	}{
		{"binary32", 0, 0, floatbits.Binary32, ""},
		{"BINARY64", 0, 0, floatbits.Binary64, ""},
		{"binary32", 5, 0, floatbits.MustFormat(5, 23), ""},
		{"binary32", 0, 10, floatbits.MustFormat(8, 10), ""},
		{"binary16", 3, 4, floatbits.MustFormat(3, 4), ""},
		{"binary32", 16, 0, floatbits.Format{}, "format out of range: exponent bits 16 not in [2, 15]"},
		{"binary256", 0, 0, floatbits.Format{}, `unknown preset "binary256", known presets: binary16, bfloat16, binary32, binary64, binary128`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := r.resolve(test.name, test.exp, test.man)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.f, f)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}
