package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is the parsed notal.toml. Every section is optional; CLI flags
// override whatever the manifest sets.
type Manifest struct {
	Project struct {
		Name  string `toml:"name"`
		Entry string `toml:"entry"`
	} `toml:"project"`

	Diagnostics struct {
		Max    int  `toml:"max"`
		Werror bool `toml:"werror"`
	} `toml:"diagnostics"`

	Output struct {
		Color string `toml:"color"` // auto | always | never
	} `toml:"output"`
}

// LoadManifest parses a notal.toml file.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return m, nil
}

// LoadNearestManifest finds and parses the closest notal.toml above
// startDir. ok is false when no manifest exists, which is not an error.
func LoadNearestManifest(startDir string) (Manifest, bool, error) {
	path, ok, err := FindNotalToml(startDir)
	if err != nil || !ok {
		return Manifest{}, false, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return Manifest{}, false, err
	}
	return m, true, nil
}
