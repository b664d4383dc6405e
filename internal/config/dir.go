package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	envConfigDir = "HURLHTML_CONFIG_DIR"
	appDirName   = "hurlhtml"
)

// Dir is $HURLHTML_CONFIG_DIR when set, otherwise hurlhtml under the user
// config directory. Falls back to a dot directory in the working directory
// when neither is available.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(envConfigDir)); dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		return filepath.Join(base, appDirName)
	}
	return "." + appDirName
}

// ThemesDir is where user themes are looked up by default.
func ThemesDir() string {
	return filepath.Join(Dir(), "themes")
}
