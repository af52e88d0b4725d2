package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxPathLength = 4096

// FilePathValidator normalizes the file paths the client writes to: the
// log file and the config file. It expands a leading tilde, makes the
// path absolute and rejects bytes that have no business in a path. It
// never restricts the location; both paths are the user's choice.
type FilePathValidator struct{}

func NewFilePathValidator() *FilePathValidator {
	return &FilePathValidator{}
}

// ValidateAndExpand normalizes path: tilde expansion, absolutization and
// cleaning. It rejects empty paths, overlong paths and paths carrying
// null bytes or control characters.
func (v *FilePathValidator) ValidateAndExpand(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if len(path) > maxPathLength {
		return "", fmt.Errorf("path too long (max %d characters)", maxPathLength)
	}
	if err := validateCharacters(path); err != nil {
		return "", err
	}

	if strings.HasPrefix(path, "~") {
		if !strings.HasPrefix(path, "~/") {
			return "", fmt.Errorf("invalid tilde usage in path: %q", path)
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("cannot make path absolute: %w", err)
		}
		path = abs
	}

	return filepath.Clean(path), nil
}

// EnsureParentDir normalizes path and creates its parent directory, so a
// sink can open the file without caring whether the directory exists.
func (v *FilePathValidator) EnsureParentDir(path string) (string, error) {
	validated, err := v.ValidateAndExpand(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(validated), 0o755); err != nil {
		return "", fmt.Errorf("creating parent directory: %w", err)
	}
	return validated, nil
}

func validateCharacters(path string) error {
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null bytes")
	}
	for _, r := range path {
		if r < 32 && r != '\t' {
			return fmt.Errorf("path contains control characters")
		}
	}
	return nil
}

// PathHandler resolves the well-known file locations of the client,
// falling back to the defaults when the user supplied nothing.
type PathHandler struct {
	validator *FilePathValidator
}

func NewPathHandler() *PathHandler {
	return &PathHandler{validator: NewFilePathValidator()}
}

// LogPath returns a validated log file path, defaulting to
// ~/.podcasts-tui/podcasts-tui.log.
func (ph *PathHandler) LogPath(userPath string) (string, error) {
	if userPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		userPath = filepath.Join(home, ".podcasts-tui", "podcasts-tui.log")
	}
	return ph.validator.ValidateAndExpand(userPath)
}

// ConfigPath returns a validated config file path, defaulting to
// ~/.config/podcasts-tui/config.toml.
func (ph *PathHandler) ConfigPath(userPath string) (string, error) {
	if userPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		userPath = filepath.Join(home, ".config", "podcasts-tui", "config.toml")
	}
	return ph.validator.ValidateAndExpand(userPath)
}
