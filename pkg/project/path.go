// Package project reads project-level files that shape the generated output.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// maxUpwardSearchLevels limits how far up the directory tree FindRoot looks
const maxUpwardSearchLevels = 10

// ValidatePath validates and cleans a project path
// Returns the cleaned absolute path or an error
func ValidatePath(projectPath string) (string, error) {
	projectPath = filepath.Clean(projectPath)

	info, err := os.Stat(projectPath)
	if err != nil {
		return "", fmt.Errorf("cannot access path '%s': %w", projectPath, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", projectPath)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return projectPath, nil
	}

	return absPath, nil
}

// FindRoot searches upward from start for a directory holding package.json.
// start itself is returned when no manifest is found.
func FindRoot(start string) string {
	dir := start
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return start
}

// IsGitRepository checks if the given path is a Git repository
func IsGitRepository(projectPath string) bool {
	info, err := os.Stat(filepath.Join(projectPath, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
