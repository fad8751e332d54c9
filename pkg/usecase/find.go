package usecase

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/model"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/utils/fsutil"
)

// FindRepository walks up the parent chain from start until it reaches a
// directory that contains a metadata directory, and opens it with full
// validation. The walk is lexical and stops at the filesystem root.
func (x *UseCase) FindRepository(ctx context.Context, start string) (*model.Repository, error) {
	if start == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "start path is required")
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve start path", goerr.V("path", start))
	}

	for {
		if fsutil.IsDir(filepath.Join(dir, types.MetadataDirName)) {
			return x.OpenRepository(ctx, dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, goerr.Wrap(types.ErrRepositoryNotFound, "no repository found", goerr.V("start", start))
		}
		dir = parent
	}
}
