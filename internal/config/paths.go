package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvPropertiesPath is the environment variable for an explicit properties file
	EnvPropertiesPath = "APPINFO_PROPERTIES"
	// PropertiesFileName is the working directory file name
	PropertiesFileName = "appinfo.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "appinfo"
)

// FindPropertiesPath searches for a properties file in priority order:
// 1. $APPINFO_PROPERTIES (explicit path)
// 2. ./appinfo.yaml (working directory)
// 3. $XDG_CONFIG_HOME/appinfo/properties.yaml
// 4. ~/.config/appinfo/properties.yaml
// 5. /etc/appinfo/properties.yaml
//
// Returns empty string if no file is found
func FindPropertiesPath() string {
	// 1. Explicit environment variable
	if path := os.Getenv(EnvPropertiesPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	// 2. Working directory
	if fileExists(PropertiesFileName) {
		if abs, err := filepath.Abs(PropertiesFileName); err == nil {
			return abs
		}
		return PropertiesFileName
	}

	// 3. XDG config home
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "properties.yaml")
		if fileExists(path) {
			return path
		}
	}

	// 4. Default XDG location (~/.config)
	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "properties.yaml")
		if fileExists(path) {
			return path
		}
	}

	// 5. System-wide
	systemPath := filepath.Join("/etc", ConfigDirName, "properties.yaml")
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
