package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"jccolor/internal/presets"
	"jccolor/pkg/joycon"
)

type Set struct {
	Target `embed:""`

	Preset    string `help:"Palette preset name (see --presets for custom ones)." short:"p"`
	Presets   string `help:"Extra presets YAML file, merged over the built-ins." env:"JCCOLOR_PRESETS" type:"path"`
	Body      string `help:"Body color as hex, e.g. '#1edc00'."`
	Buttons   string `help:"Button color as hex."`
	LeftGrip  string `help:"Left grip color as hex (Pro Controller only)."`
	RightGrip string `help:"Right grip color as hex (Pro Controller only)."`
}

// Run is called by Kong when the set command is executed.
func (c *Set) Run(logger *slog.Logger) error {
	palette, err := c.resolvePalette()
	if err != nil {
		return err
	}

	return c.withSession(logger, func(s *joycon.Session) error {
		if err := s.SetColors(palette); err != nil {
			return err
		}
		logger.Info("colors written", "body", palette.Body.Hex(), "buttons", palette.Buttons.Hex())

		if s.Type().HasGripColors() {
			need, err := s.GripColorsNeedEnable()
			if err != nil {
				return err
			}
			if need {
				if err := s.EnableGripColors(); err != nil {
					return err
				}
				logger.Info("grip colors activated")
			}
		}

		fmt.Println("colors updated; re-pair or reconnect the controller to see them on the console")
		return nil
	})
}

// resolvePalette builds the palette from the preset (if any) with explicit
// color flags layered on top.
func (c *Set) resolvePalette() (joycon.Colors, error) {
	var palette joycon.Colors

	if c.Preset != "" {
		set := presets.Default()
		if c.Presets != "" {
			extra, err := presets.LoadFile(c.Presets)
			if err != nil {
				return joycon.Colors{}, err
			}
			set.Merge(extra)
		}
		p, ok := set[c.Preset]
		if !ok {
			return joycon.Colors{}, fmt.Errorf("unknown preset %q, have: %s", c.Preset, strings.Join(set.Names(), ", "))
		}
		palette = p
	} else {
		if c.Body == "" || c.Buttons == "" {
			return joycon.Colors{}, fmt.Errorf("either --preset or both --body and --buttons are required")
		}
	}

	var err error
	if c.Body != "" {
		if palette.Body, err = joycon.ParseColor(c.Body); err != nil {
			return joycon.Colors{}, err
		}
		if c.Preset == "" {
			// Without a preset the grips follow the body unless given.
			palette.LeftGrip, palette.RightGrip = palette.Body, palette.Body
		}
	}
	if c.Buttons != "" {
		if palette.Buttons, err = joycon.ParseColor(c.Buttons); err != nil {
			return joycon.Colors{}, err
		}
	}
	if c.LeftGrip != "" {
		if palette.LeftGrip, err = joycon.ParseColor(c.LeftGrip); err != nil {
			return joycon.Colors{}, err
		}
	}
	if c.RightGrip != "" {
		if palette.RightGrip, err = joycon.ParseColor(c.RightGrip); err != nil {
			return joycon.Colors{}, err
		}
	}
	return palette, nil
}
