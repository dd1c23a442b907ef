// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatbits

import "strings"

// Preset is a named format.
type Preset struct {
	Name string `json:"name" toml:"name" cbor:"name"`
	Format
}

var (
	// Binary16 is IEEE-754 half precision.
	Binary16 = Format{ExpBits: 5, MantBits: 10}
	// BFloat16 is the brain floating-point format.
	BFloat16 = Format{ExpBits: 8, MantBits: 7}
	// Binary32 is IEEE-754 single precision.
	Binary32 = Format{ExpBits: 8, MantBits: 23}
	// Binary64 is IEEE-754 double precision.
	Binary64 = Format{ExpBits: 11, MantBits: 52}
	// Binary128 is IEEE-754 quadruple precision.
	Binary128 = Format{ExpBits: 15, MantBits: 112}
)

// Presets returns well-known formats, from the narrowest to the widest.
func Presets() []Preset {
	return []Preset{
		{"binary16", Binary16},
		{"bfloat16", BFloat16},
		{"binary32", Binary32},
		{"binary64", Binary64},
		{"binary128", Binary128},
	}
}

// PresetByName returns a well-known format by its name, case-insensitive.
func PresetByName(name string) (Format, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p.Format, true
		}
	}
	return Format{}, false
}
