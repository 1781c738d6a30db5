package cmd

import (
	"fmt"
	"log/slog"

	"jccolor/pkg/joycon"
)

type Info struct {
	Target `embed:""`
}

// Run is called by Kong when the info command is executed.
func (i *Info) Run(logger *slog.Logger) error {
	return i.withSession(logger, func(s *joycon.Session) error {
		fw, err := s.DeviceInfo()
		if err != nil {
			return err
		}
		serial, err := s.Serial()
		if err != nil {
			return err
		}
		fmt.Printf("type:     %s\n", s.Type())
		fmt.Printf("serial:   %s\n", serial)
		fmt.Printf("firmware: %s\n", fw.Version())
		fmt.Printf("mac:      %s\n", fw.MACString())
		return nil
	})
}
