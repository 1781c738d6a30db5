// Package configpaths resolves where jccolor looks for its config files.
package configpaths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the per-user config directory for jccolor.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "jccolor"), nil
}

// ConfigCandidatePaths returns the config file candidates per format, in
// loading priority order. A user-supplied path is tried first for every
// format; missing files are skipped by the kong loaders.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(dir string) {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "config.toml"))
	}

	if userPath != "" {
		jsonPaths = append(jsonPaths, userPath)
		yamlPaths = append(yamlPaths, userPath)
		tomlPaths = append(tomlPaths, userPath)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		add(dir)
	}
	add(".")
	return jsonPaths, yamlPaths, tomlPaths
}
