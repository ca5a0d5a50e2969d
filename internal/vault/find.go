package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Marker is the directory Obsidian keeps at the root of every vault.
const Marker = ".obsidian"

// Find locates the vault root by walking up from startDir to the nearest
// directory holding Marker. It returns "" when there is none.
func Find(startDir string) (string, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(current, Marker)); err == nil && info.IsDir() {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// FindOrDefault is like Find but falls back to startDir itself.
func FindOrDefault(startDir string) (string, error) {
	root, err := Find(startDir)
	if err != nil {
		return "", err
	}
	if root != "" {
		return root, nil
	}
	return filepath.Abs(startDir)
}
