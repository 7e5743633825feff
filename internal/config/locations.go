package config

import (
	"os"
	"path/filepath"
)

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "whirl")
	}
	return filepath.Join(home, ".config", "whirl")
}

func ConfigFilePath() string {
	if p := os.Getenv("WHIRL_CONFIG"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), "whirl.toml")
		if _, err := os.Stat(adjacent); err == nil {
			return adjacent
		}
	}
	return filepath.Join(ConfigDir(), "whirl.toml")
}

func LogFilePath() string {
	return filepath.Join(ConfigDir(), "whirl.log")
}
