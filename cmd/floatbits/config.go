// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"

	"github.com/avdva/floatbits"
)

// presetsFile is the layout of a -presets file:
//
//	[[preset]]
//	name = "fp8-e4m3"
//	exp = 4
//	man = 3
type presetsFile struct {
	Preset []struct {
		Name string `toml:"name"`
		Exp  int    `toml:"exp"`
		Man  int    `toml:"man"`
	} `toml:"preset"`
}

// registry holds the built-in presets followed by the ones loaded from a file.
type registry struct {
	presets []floatbits.Preset
}

func newRegistry(path string) (*registry, error) {
	r := &registry{presets: floatbits.Presets()}
	if len(path) == 0 {
		return r, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	defer file.Close()
	loaded, err := readPresets(file)
	if err != nil {
		return nil, fmt.Errorf("loading presets from %s: %w", path, err)
	}
	r.presets = append(r.presets, loaded...)
	if dups := lo.FindDuplicatesBy(r.presets, func(p floatbits.Preset) string {
		return strings.ToLower(p.Name)
	}); len(dups) > 0 {
		return nil, fmt.Errorf("loading presets from %s: duplicate preset %q", path, dups[0].Name)
	}
	return r, nil
}

func readPresets(r io.Reader) ([]floatbits.Preset, error) {
	var file presetsFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, err
	}
	result := make([]floatbits.Preset, 0, len(file.Preset))
	for i, p := range file.Preset {
		if len(strings.TrimSpace(p.Name)) == 0 {
			return nil, fmt.Errorf("preset #%d has no name", i+1)
		}
		f, err := floatbits.NewFormat(p.Exp, p.Man)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		result = append(result, floatbits.Preset{Name: p.Name, Format: f})
	}
	return result, nil
}

func (r *registry) lookup(name string) (floatbits.Format, bool) {
	p, ok := lo.Find(r.presets, func(p floatbits.Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
	return p.Format, ok
}

func (r *registry) names() []string {
	return lo.Map(r.presets, func(p floatbits.Preset, _ int) string {
		return p.Name
	})
}

// resolve returns the named preset with its field widths replaced by non-zero exp and man.
func (r *registry) resolve(name string, exp, man int) (floatbits.Format, error) {
	f, ok := r.lookup(name)
	if !ok {
		return floatbits.Format{}, fmt.Errorf("unknown preset %q, known presets: %s", name, strings.Join(r.names(), ", "))
	}
	if exp != 0 {
		f.ExpBits = exp
	}
	if man != 0 {
		f.MantBits = man
	}
	return floatbits.NewFormat(f.ExpBits, f.MantBits)
}
