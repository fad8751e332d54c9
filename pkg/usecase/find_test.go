package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/usecase"
)

func TestFindRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("finds repository from nested directory", func(t *testing.T) {
		worktree := filepath.Join(t.TempDir(), "repo")
		uc := usecase.New()
		gt.R1(uc.InitRepository(ctx, worktree)).NoError(t)

		nested := filepath.Join(worktree, "src", "deep")
		gt.NoError(t, os.MkdirAll(nested, 0755))

		repo := gt.R1(uc.FindRepository(ctx, nested)).NoError(t)
		gt.V(t, repo.Worktree).Equal(worktree)
		gt.V(t, repo.Config.FormatVersion).Equal(types.FormatVersion(0))
	})

	t.Run("finds repository from its own root", func(t *testing.T) {
		worktree := filepath.Join(t.TempDir(), "repo")
		uc := usecase.New()
		gt.R1(uc.InitRepository(ctx, worktree)).NoError(t)

		repo := gt.R1(uc.FindRepository(ctx, worktree)).NoError(t)
		gt.V(t, repo.Worktree).Equal(worktree)
	})

	t.Run("fails when no repository in ancestry", func(t *testing.T) {
		_, err := usecase.New().FindRepository(ctx, t.TempDir())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
	})

	t.Run("empty start fails", func(t *testing.T) {
		_, err := usecase.New().FindRepository(ctx, "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidArgument))
	})

	t.Run("found repository is validated", func(t *testing.T) {
		worktree := filepath.Join(t.TempDir(), "repo")
		uc := usecase.New()
		gt.R1(uc.InitRepository(ctx, worktree)).NoError(t)

		configPath := filepath.Join(worktree, ".git", "config")
		gt.NoError(t, os.WriteFile(configPath, []byte("[core]\nrepositoryformatversion = 1\n"), 0644))

		nested := filepath.Join(worktree, "src")
		gt.NoError(t, os.Mkdir(nested, 0755))

		_, err := uc.FindRepository(ctx, nested)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUnsupportedFormatVersion))
	})
}
