package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureUserConfig seeds the data dir on first run: the shipped default
// config is copied to <dataDir>/config.yml so local edits survive
// upgrades, and the raw-cache subdirectory is created alongside it. The
// copy is written via rename so a crash mid-seed never leaves a
// half-written config behind.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	if err := os.MkdirAll(filepath.Join(dataDir, "raw"), 0o755); err != nil {
		return "", fmt.Errorf("seed data dir: %w", err)
	}

	userPath := filepath.Join(dataDir, "config.yml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	def, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", fmt.Errorf("read default config: %w", err)
	}
	tmp := userPath + ".tmp"
	if err := os.WriteFile(tmp, def, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, userPath); err != nil {
		return "", err
	}
	return userPath, nil
}
