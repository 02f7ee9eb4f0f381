// Package config loads application settings from viper and expands paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultStoragePath is where the ledger database lives unless configured.
const DefaultStoragePath = "$HOME/.local/share/kesi/kesi.db"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
