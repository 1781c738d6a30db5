package cmd

import (
	"fmt"
	"log/slog"

	"jccolor/pkg/joycon"
)

type List struct{}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	if err := joycon.Init(); err != nil {
		return err
	}
	defer func() { _ = joycon.Exit() }()

	list, err := joycon.ListControllers(joycon.HIDTransport{})
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("no wireless controllers found")
		return nil
	}
	for i, d := range list {
		fmt.Printf("%d: %-14s serial=%s path=%s\n", i, d.Type, d.Serial, d.Path)
	}
	return nil
}
