package errutil

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/minigit/pkg/utils/logging"
)

func HandleError(ctx context.Context, msg string, err error) {
	attrs := []any{"error", err}
	if goErr := goerr.Unwrap(err); goErr != nil {
		for k, v := range goErr.Values() {
			attrs = append(attrs, k, v)
		}
	}

	logging.From(ctx).Error(msg, attrs...)
}
