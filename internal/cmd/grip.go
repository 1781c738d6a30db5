package cmd

import (
	"fmt"
	"log/slog"

	"jccolor/pkg/joycon"
)

type Grip struct {
	Status GripStatus `cmd:"" help:"Show whether stored grip colors still need activation."`
	Enable GripEnable `cmd:"" help:"Activate the grip colors stored in flash."`
}

type GripStatus struct {
	Target `embed:""`
}

func (g *GripStatus) Run(logger *slog.Logger) error {
	return g.withSession(logger, func(s *joycon.Session) error {
		if !s.Type().HasGripColors() {
			fmt.Printf("%s has no grip colors\n", s.Type())
			return nil
		}
		need, err := s.GripColorsNeedEnable()
		if err != nil {
			return err
		}
		if need {
			fmt.Println("grip colors stored but inactive; run 'jccolor grip enable'")
		} else {
			fmt.Println("grip colors active")
		}
		return nil
	})
}

type GripEnable struct {
	Target `embed:""`
}

func (g *GripEnable) Run(logger *slog.Logger) error {
	return g.withSession(logger, func(s *joycon.Session) error {
		if !s.Type().HasGripColors() {
			return fmt.Errorf("%s has no grip colors", s.Type())
		}
		if err := s.EnableGripColors(); err != nil {
			return err
		}
		logger.Info("grip colors activated")
		return nil
	})
}
