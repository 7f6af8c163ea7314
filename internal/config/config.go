// Package config loads archetype-table overrides from YAML, so a host
// engine can re-balance monster stats without recompiling.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/hellspawn-ai/internal/fixed"
	"github.com/Garsondee/hellspawn-ai/internal/mobj"
)

// ArchetypeOverride carries the subset of an Archetype's fields a config
// file may re-balance. A nil pointer means "leave this field at its
// built-in default"; map-unit fields are given as plain integers and
// converted to fixed-point on Apply.
type ArchetypeOverride struct {
	Radius  *int `yaml:"radius"`
	Height  *int `yaml:"height"`
	Speed   *int `yaml:"speed"`
	Mass    *int `yaml:"mass"`
	SpawnHP *int `yaml:"spawn_hp"`
}

// Table is the top-level shape of an archetype override file: a map from
// archetype name (mobj.Kind.String()) to the fields being overridden.
type Table struct {
	Archetypes map[string]ArchetypeOverride `yaml:"archetypes"`
}

// Load reads and parses an archetype override file. An empty path is a
// no-op, returning an empty Table rather than an error, so callers can
// unconditionally Load+Apply whether or not a host supplied a path.
func Load(path string) (*Table, error) {
	if path == "" {
		return &Table{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading archetype overrides: %w", err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: parsing archetype overrides: %w", err)
	}
	return &t, nil
}

// Apply merges t's overrides into mobj.Archetypes in place. An override
// naming a kind that doesn't exist is reported but otherwise skipped, so
// one typo in a host's config file doesn't take down the whole table.
func Apply(t *Table) error {
	var unknown []string

	for name, ov := range t.Archetypes {
		kind, ok := mobj.KindByName(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}

		arch := mobj.Archetypes[kind]
		if ov.Radius != nil {
			arch.Radius = fixed.FromInt(*ov.Radius)
		}
		if ov.Height != nil {
			arch.Height = fixed.FromInt(*ov.Height)
		}
		if ov.Speed != nil {
			arch.Speed = fixed.FromInt(*ov.Speed)
		}
		if ov.Mass != nil {
			arch.Mass = *ov.Mass
		}
		if ov.SpawnHP != nil {
			arch.SpawnHP = *ov.SpawnHP
		}
		mobj.Archetypes[kind] = arch
	}

	if len(unknown) > 0 {
		return fmt.Errorf("config: unknown archetype name(s): %v", unknown)
	}
	return nil
}

// LoadAndApply is the common startup path: read path (if non-empty) and
// merge it into mobj.Archetypes.
func LoadAndApply(path string) error {
	t, err := Load(path)
	if err != nil {
		return err
	}
	return Apply(t)
}
