// Package cmd holds the kong subcommands of the jccolor CLI.
package cmd

import (
	"fmt"
	"log/slog"

	"jccolor/pkg/joycon"
)

// Target selects which enumerated controller a command operates on.
type Target struct {
	Index  int    `help:"Controller index as printed by 'list'." short:"i" default:"0"`
	Serial string `help:"Select the controller by serial number instead of index." short:"s"`
}

// open enumerates controllers, picks the targeted one and opens a session.
// The caller owns the returned session.
func (t Target) open(transport joycon.Transport, logger *slog.Logger) (*joycon.Session, error) {
	list, err := joycon.ListControllers(transport)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no wireless controllers found (wired units cannot be configured)")
	}

	var desc joycon.Descriptor
	switch {
	case t.Serial != "":
		found := false
		for _, d := range list {
			if d.Serial == t.Serial {
				desc, found = d, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no controller with serial %q", t.Serial)
		}
	default:
		if t.Index < 0 || t.Index >= len(list) {
			return nil, fmt.Errorf("controller index %d out of range, have %d", t.Index, len(list))
		}
		desc = list[t.Index]
	}

	logger.Debug("opening controller", "type", desc.Type.String(), "serial", desc.Serial, "path", desc.Path)
	return joycon.Open(transport, desc, logger)
}

// withSession runs fn against the targeted controller with hidapi set up and
// torn down around it.
func (t Target) withSession(logger *slog.Logger, fn func(*joycon.Session) error) error {
	if err := joycon.Init(); err != nil {
		return err
	}
	defer func() { _ = joycon.Exit() }()

	s, err := t.open(joycon.HIDTransport{}, logger)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}
