package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/model"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/utils/fsutil"
	"github.com/m-mizutani/minigit/pkg/utils/logging"
)

// InitRepository creates a new repository at worktree: the worktree
// directory itself if missing, the metadata directory skeleton, and the
// initial description, HEAD and config files. Partial state left behind by
// a failed run is kept as is; rerunning resumes the creation.
func (x *UseCase) InitRepository(ctx context.Context, worktree string) (*model.Repository, error) {
	repo, err := x.OpenRepository(ctx, worktree, WithoutValidation())
	if err != nil {
		return nil, err
	}

	if fsutil.Exists(repo.Worktree) {
		if !fsutil.IsDir(repo.Worktree) {
			return nil, goerr.Wrap(types.ErrPathBlocked, "worktree path is not a directory", goerr.V("path", repo.Worktree))
		}
		if fsutil.Exists(repo.GitDir) && !fsutil.IsEmptyDir(repo.GitDir) {
			return nil, goerr.Wrap(types.ErrNotEmpty, "metadata directory is not empty", goerr.V("path", repo.GitDir))
		}
	} else if err := fsutil.MkdirRecursive(repo.Worktree, fsutil.DefaultDirMode); err != nil {
		return nil, err
	}

	skeleton := [][]string{
		{types.BranchesDir},
		{types.ObjectsDir},
		{types.RefsDir, types.TagsDir},
		{types.RefsDir, types.HeadsDir},
	}
	for _, elem := range skeleton {
		if _, err := repo.Dir(true, elem...); err != nil {
			return nil, err
		}
	}

	files := []struct {
		elem    []string
		content string
	}{
		{[]string{types.DescriptionFile}, types.DefaultDescription},
		{[]string{types.HeadFile}, fmt.Sprintf("ref: refs/heads/%s\n", x.defaultBranch)},
		{[]string{types.ConfigFile}, model.DefaultConfig().Render()},
	}
	for _, f := range files {
		path, err := repo.File(false, f.elem...)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return nil, goerr.Wrap(err, "failed to write file", goerr.V("path", path))
		}
	}

	logging.From(ctx).Info("initialized repository", "worktree", repo.Worktree, "gitdir", repo.GitDir)

	return repo, nil
}
