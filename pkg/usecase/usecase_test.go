package usecase_test

import (
	"testing"

	"github.com/m-mizutani/minigit/pkg/usecase"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with default options", func(t *testing.T) {
		// This test verifies that the usecase can be created with options
		// The actual behavior is tested in individual method tests
		uc := usecase.New()

		// Test that methods are accessible (compile-time check)
		// Actual behavior tests should be in specific test functions
		_ = uc.OpenRepository
		_ = uc.InitRepository
		_ = uc.FindRepository
	})
}
