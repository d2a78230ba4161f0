// Package config loads tool settings from an optional TOML file. Values
// not present in the file keep their defaults; command-line flags override
// both.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"gotransect/internal/geom"
)

// File holds the on-disk configuration.
//
//	spacing = 2.0      # centerline resampling interval
//	length = 40.0      # total transect length
//	resolution = 1.0   # sample spacing along each transect
//
//	[meander]          # demo centerline shape
//	reach = 200.0
//	amplitude = 20.0
//	wavelength = 50.0
//	step = 1.0
type File struct {
	Spacing    float64 `toml:"spacing"`
	Length     float64 `toml:"length"`
	Resolution float64 `toml:"resolution"`
	Meander    Meander `toml:"meander"`
}

// Meander describes the synthetic demo centerline. Zero values fall back
// to geom.Meander's proportional defaults.
type Meander struct {
	Reach      float64 `toml:"reach"`
	Amplitude  float64 `toml:"amplitude"`
	Wavelength float64 `toml:"wavelength"`
	Step       float64 `toml:"step"`
}

// Default returns the built-in settings used when no file is given.
func Default() File {
	return File{
		Spacing:    2,
		Length:     40,
		Resolution: 1,
		Meander:    Meander{Reach: 200, Amplitude: 20, Wavelength: 50, Step: 1},
	}
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (File, error) {
	f := Default()
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Validate applies the same parameter rules as the geometry library so
// bad settings fail at startup rather than mid-session.
func (f File) Validate() error {
	if f.Spacing <= 0 {
		return fmt.Errorf("spacing %v: %w", f.Spacing, geom.ErrInvalidParameter)
	}
	if f.Length <= 0 {
		return fmt.Errorf("length %v: %w", f.Length, geom.ErrInvalidParameter)
	}
	if f.Resolution <= 0 {
		return fmt.Errorf("resolution %v: %w", f.Resolution, geom.ErrInvalidParameter)
	}
	return nil
}
