package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/kalendarz/internal/logger"
)

// Storage handles persistence of yearly calendar files
type Storage struct {
	dataDir string
}

// SaveResult describes a completed write
type SaveResult struct {
	Path       string
	CreatedDir bool // the output directory did not exist before
}

// New creates a new Storage instance rooted at dataDir. A leading "~/" is
// expanded to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.TrimSpace(dataDir) == "" {
		return nil, errors.New("output directory is empty")
	}

	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the output directory
func (s *Storage) Dir() string {
	return s.dataDir
}

// Path returns the file path for year
func (s *Storage) Path(year string) string {
	return filepath.Join(s.dataDir, year+".json")
}

// Save writes data as the calendar for year, creating the directory first
// if needed. An existing file is replaced.
func (s *Storage) Save(year string, data []byte) (SaveResult, error) {
	result := SaveResult{Path: s.Path(year)}

	info, err := os.Stat(s.dataDir)
	switch {
	case err == nil && !info.IsDir():
		return result, fmt.Errorf("output path %s is not a directory", s.dataDir)
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(s.dataDir, 0755); err != nil {
			return result, fmt.Errorf("creating output directory: %w", err)
		}
		result.CreatedDir = true
		logger.Info("created output directory", logger.Fields{"dir": s.dataDir})
	case err != nil:
		return result, fmt.Errorf("checking output directory: %w", err)
	}

	if err := os.WriteFile(result.Path, data, 0644); err != nil {
		return result, fmt.Errorf("writing calendar: %w", err)
	}

	logger.Info("calendar saved", logger.Fields{
		"path":  result.Path,
		"bytes": len(data),
	})

	return result, nil
}
