package main

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = ""
	Commit  = ""
)

var descriptionTemplate = `Read and write the color scheme stored in Nintendo Switch controllers.
  Version: %s (%s)
`

func Description() string {
	return fmt.Sprintf(descriptionTemplate, Version, Commit)
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		if Version == "" {
			Version = info.Main.Version
			if Version == "" || Version == "(devel)" {
				Version = "dev"
			}
		}
		if Commit == "" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					Commit = s.Value
					if len(Commit) > 12 {
						Commit = Commit[:12]
					}
					break
				}
			}
			if Commit == "" {
				Commit = "unknown"
			}
		}
	}
}
