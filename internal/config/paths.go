// ABOUTME: Standard filesystem paths for pi-text configuration
// ABOUTME: Resolves ~/.pi-text/ for global and .pi-text/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	dirName    = ".pi-text"
	configName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.pi-text/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configName)
}
