package cmd

import (
	"fmt"
	"log/slog"

	"jccolor/pkg/joycon"
)

type Get struct {
	Target `embed:""`
}

// Run is called by Kong when the get command is executed.
func (g *Get) Run(logger *slog.Logger) error {
	return g.withSession(logger, func(s *joycon.Session) error {
		c, err := s.Colors()
		if err != nil {
			return err
		}
		fmt.Printf("body:      %s\n", c.Body.Hex())
		fmt.Printf("buttons:   %s\n", c.Buttons.Hex())
		if s.Type().HasGripColors() {
			fmt.Printf("leftGrip:  %s\n", c.LeftGrip.Hex())
			fmt.Printf("rightGrip: %s\n", c.RightGrip.Hex())
		}
		return nil
	})
}
