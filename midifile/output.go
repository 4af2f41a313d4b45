package midifile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultOutputDir resolves the directory generated files are saved to.
// The Desktop is tried first, then the OneDrive-managed Desktop; when
// neither exists the plain Desktop directory is created.
func DefaultOutputDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	desktop := filepath.Join(home, "Desktop")
	if dirExists(desktop) {
		return desktop, nil
	}

	onedrive := filepath.Join(home, "OneDrive", "Desktop")
	if dirExists(onedrive) {
		return onedrive, nil
	}

	if err := os.MkdirAll(desktop, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return desktop, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SafeFileName strips every character that is not alphanumeric, space,
// dash, underscore or dot
func SafeFileName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// TimestampName returns a timestamp-based default filename
func TimestampName() string {
	return fmt.Sprintf("bassline_%s.mid", time.Now().Format("20060102_150405"))
}
