// Package config defines the CLI structure and configuration for jccolor.
package config

import (
	"jccolor/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"JCCOLOR_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"JCCOLOR_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Config file path." env:"JCCOLOR_CONFIG" type:"path"`

	List cmd.List `cmd:"" help:"List paired Switch controllers."`
	Get  cmd.Get  `cmd:"" help:"Read the color scheme stored in a controller."`
	Set  cmd.Set  `cmd:"" help:"Write a color scheme to a controller."`
	Grip cmd.Grip `cmd:"" help:"Inspect or activate Pro Controller grip colors."`
	Info cmd.Info `cmd:"" help:"Show controller serial, firmware and MAC."`
}
