package usecase

import (
	"github.com/m-mizutani/minigit/pkg/domain/types"
)

type UseCase struct {
	defaultBranch types.BranchName
}

type Option func(*UseCase)

func New(options ...Option) *UseCase {
	uc := &UseCase{
		defaultBranch: types.DefaultBranch,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

// WithDefaultBranch sets the branch name a fresh HEAD points to
func WithDefaultBranch(branch types.BranchName) Option {
	return func(x *UseCase) {
		x.defaultBranch = branch
	}
}
