package model

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/utils/fsutil"
)

// Repository represents a version controlled working tree. GitDir is the
// metadata directory directly under Worktree and is always derived from it.
// Config stays nil until a configuration file has been loaded.
type Repository struct {
	Worktree string
	GitDir   string
	Config   *Config
}

// NewRepository builds a Repository for the given worktree path. The
// metadata directory path is derived here; no filesystem access happens.
func NewRepository(worktree string) (*Repository, error) {
	if worktree == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "worktree path is required")
	}

	gitDir, err := fsutil.JoinPath(worktree, types.MetadataDirName)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Worktree: worktree,
		GitDir:   gitDir,
	}, nil
}

// Path resolves elem under the metadata directory. With no elements it
// returns the metadata directory itself.
func (x *Repository) Path(elem ...string) string {
	return filepath.Join(append([]string{x.GitDir}, elem...)...)
}

// Dir resolves elem under the metadata directory and requires it to be a
// directory. A missing directory is created only when create is true.
func (x *Repository) Dir(create bool, elem ...string) (string, error) {
	path := x.Path(elem...)

	if fsutil.Exists(path) {
		if !fsutil.IsDir(path) {
			return "", goerr.Wrap(types.ErrPathBlocked, "path is not a directory", goerr.V("path", path))
		}
		return path, nil
	}

	if !create {
		return "", goerr.Wrap(os.ErrNotExist, "directory does not exist", goerr.V("path", path))
	}
	if err := fsutil.MkdirRecursive(path, fsutil.DefaultDirMode); err != nil {
		return "", err
	}

	return path, nil
}

// File resolves a file path under the metadata directory. Only the parent
// directory is resolved through Dir with createParent; the file itself is
// never created nor checked.
func (x *Repository) File(createParent bool, elem ...string) (string, error) {
	if len(elem) == 0 {
		return x.Dir(createParent)
	}

	if _, err := x.Dir(createParent, elem[:len(elem)-1]...); err != nil {
		return "", err
	}

	return x.Path(elem...), nil
}
