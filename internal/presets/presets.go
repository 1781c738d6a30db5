// Package presets maps palette names to controller colors. A built-in set
// mirrors the official Joy-Con and Pro Controller color options; users can
// add or override entries from a YAML file.
package presets

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"jccolor/pkg/joycon"
)

// Set is a named collection of palettes.
type Set map[string]joycon.Colors

type entry struct {
	Body      string `yaml:"body"`
	Buttons   string `yaml:"buttons"`
	LeftGrip  string `yaml:"leftGrip"`
	RightGrip string `yaml:"rightGrip"`
}

// Default returns the built-in palettes, keyed by the official color names.
// Grip entries default to gray like retail Pro Controllers.
func Default() Set {
	return Set{
		"gray":        mustPalette("#828282", "#0f0f0f", "#0f0f0f", "#0f0f0f"),
		"neon-red":    mustPalette("#ff3c28", "#1e0a0a", "#1e0a0a", "#1e0a0a"),
		"neon-blue":   mustPalette("#0ab9e6", "#001e1e", "#001e1e", "#001e1e"),
		"neon-yellow": mustPalette("#e6ff00", "#142800", "#142800", "#142800"),
		"neon-green":  mustPalette("#1edc00", "#002800", "#002800", "#002800"),
		"neon-pink":   mustPalette("#ff3278", "#28001e", "#28001e", "#28001e"),
		"pro-black":   mustPalette("#323232", "#0f0f0f", "#828282", "#828282"),
	}
}

func mustPalette(body, buttons, leftGrip, rightGrip string) joycon.Colors {
	c, err := parseEntry(entry{Body: body, Buttons: buttons, LeftGrip: leftGrip, RightGrip: rightGrip})
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFile reads user palettes from a YAML file. Entries without grip
// colors inherit the body color for both grips.
func LoadFile(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries map[string]entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing presets %s: %w", path, err)
	}
	out := make(Set, len(entries))
	for name, e := range entries {
		c, err := parseEntry(e)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

func parseEntry(e entry) (joycon.Colors, error) {
	var c joycon.Colors
	var err error
	if c.Body, err = joycon.ParseColor(e.Body); err != nil {
		return joycon.Colors{}, err
	}
	if c.Buttons, err = joycon.ParseColor(e.Buttons); err != nil {
		return joycon.Colors{}, err
	}
	c.LeftGrip, c.RightGrip = c.Body, c.Body
	if e.LeftGrip != "" {
		if c.LeftGrip, err = joycon.ParseColor(e.LeftGrip); err != nil {
			return joycon.Colors{}, err
		}
	}
	if e.RightGrip != "" {
		if c.RightGrip, err = joycon.ParseColor(e.RightGrip); err != nil {
			return joycon.Colors{}, err
		}
	}
	return c, nil
}

// Merge overlays other on top of s and returns s.
func (s Set) Merge(other Set) Set {
	for name, c := range other {
		s[name] = c
	}
	return s
}

// Names returns the preset names in sorted order, for help output.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
