package fsutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/utils/safe"
)

// DefaultDirMode is the permission of directories created by repository workflows
const DefaultDirMode os.FileMode = 0o755

// JoinPath joins path segments with the platform separator. Empty segments
// contribute nothing. An empty sequence is an error.
func JoinPath(elem ...string) (string, error) {
	if len(elem) == 0 {
		return "", goerr.Wrap(types.ErrInvalidArgument, "at least one path segment is required")
	}
	return filepath.Join(elem...), nil
}

// Exists returns true if path exists, regardless of its type
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns true if path exists and is a directory
func IsDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

// MkdirRecursive creates path and any missing parents with the given mode.
// It succeeds if the full path already exists as a directory. A component
// occupied by a non-directory fails; parents created before the failure
// are kept.
func MkdirRecursive(path string, mode os.FileMode) error {
	if path == "" {
		return goerr.Wrap(types.ErrInvalidArgument, "directory path is required")
	}

	if err := os.MkdirAll(path, mode); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return goerr.Wrap(types.ErrPathBlocked, "path component is not a directory", goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}

	return nil
}

// IsEmptyDir returns true if path is a directory with no entries
func IsEmptyDir(path string) bool {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		return false
	}
	defer safe.Close(fd)

	if _, err := fd.Readdirnames(1); !errors.Is(err, io.EOF) {
		return false
	}
	return true
}

// RemoveTree deletes path and everything under it. Deletion is best effort:
// entries that cannot be removed are skipped and reported in the returned
// error after the rest of the tree has been processed.
func RemoveTree(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read directory", goerr.V("path", path))
	}

	var failed []string
	for _, entry := range entries {
		sub := filepath.Join(path, entry.Name())

		var rmErr error
		if entry.IsDir() {
			rmErr = RemoveTree(sub)
		} else {
			rmErr = os.Remove(sub)
		}
		if rmErr != nil {
			failed = append(failed, sub)
		}
	}

	if err := os.Remove(path); err != nil {
		return goerr.Wrap(err, "failed to remove directory", goerr.V("path", path), goerr.V("failed", failed))
	}
	if len(failed) > 0 {
		return goerr.New("failed to remove some entries", goerr.V("path", path), goerr.V("failed", failed))
	}

	return nil
}
