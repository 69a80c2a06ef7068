package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/casgit/internal/constants"
)

// InitRepository creates the .casgit skeleton the object store expects.
// On partial failure everything created so far is removed again.
func InitRepository(path string) error {
	// Resolves and adds OS specific separator
	casgitDir := filepath.Join(path, constants.Casgit)

	if err := checkRepositoryDoesNotExist(casgitDir); err != nil {
		return err
	}

	// Cleanup runs unless every directory and file below was created
	var initSuccess bool
	defer func() {
		if !initSuccess {
			cleanupRepository(casgitDir)
		}
	}()

	directories := []string{
		casgitDir,
		filepath.Join(casgitDir, constants.Objects),
		filepath.Join(casgitDir, constants.Refs),
		filepath.Join(casgitDir, constants.Refs, constants.Heads),
		filepath.Join(casgitDir, constants.Refs, constants.Tags),
	}

	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	// HEAD points at the default branch
	headFile := filepath.Join(casgitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create %s file: %w", constants.Head, err)
	}

	initSuccess = true
	return nil
}

// FindRepoRoot locates the directory holding .casgit by walking up from start.
func FindRepoRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		casgitPath := filepath.Join(dir, constants.Casgit)
		if info, err := os.Stat(casgitPath); err == nil && info.IsDir() {
			return dir, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s directory not found", constants.Casgit)
		}
		dir = parent
	}
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return fmt.Errorf("repository already exists at %s", path)
}

// Removes the entire .casgit directory if it exists
func cleanupRepository(casgitDir string) {
	if _, err := os.Stat(casgitDir); err == nil {
		slog.Debug("Cleaning up partial repository initialization",
			"path", casgitDir)

		if err := os.RemoveAll(casgitDir); err != nil {
			slog.Warn("Failed to cleanup repository directory",
				"path", casgitDir,
				"error", err)
		} else {
			slog.Debug("Successfully cleaned up repository directory",
				"path", casgitDir)
		}
	}
}
