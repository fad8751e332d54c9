package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/domain/model"
	"github.com/m-mizutani/minigit/pkg/domain/types"
	"github.com/m-mizutani/minigit/pkg/utils/fsutil"
	"github.com/m-mizutani/minigit/pkg/utils/logging"
)

type openConfig struct {
	skipValidation bool
}

// OpenOption controls how OpenRepository checks the repository layout
type OpenOption func(*openConfig)

// WithoutValidation skips the metadata directory and configuration checks.
// Loading still fails if a configuration file exists but cannot be parsed.
func WithoutValidation() OpenOption {
	return func(x *openConfig) {
		x.skipValidation = true
	}
}

// OpenRepository builds a Repository for the worktree and, unless disabled
// by WithoutValidation, verifies that the metadata directory exists and
// carries a supported configuration file.
func (x *UseCase) OpenRepository(ctx context.Context, worktree string, options ...OpenOption) (*model.Repository, error) {
	var cfg openConfig
	for _, opt := range options {
		opt(&cfg)
	}

	repo, err := model.NewRepository(worktree)
	if err != nil {
		return nil, err
	}

	if !cfg.skipValidation && !fsutil.IsDir(repo.GitDir) {
		return nil, goerr.Wrap(types.ErrNotRepository, "metadata directory is missing", goerr.V("path", repo.GitDir))
	}

	configPath := repo.Path(types.ConfigFile)
	if fsutil.Exists(configPath) {
		conf, err := model.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		repo.Config = conf
	} else if !cfg.skipValidation {
		return nil, goerr.Wrap(types.ErrConfigMissing, "configuration file is missing", goerr.V("path", configPath))
	}

	if !cfg.skipValidation {
		if err := repo.Config.Validate(); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Debug("opened repository", "worktree", repo.Worktree, "gitdir", repo.GitDir)

	return repo, nil
}
