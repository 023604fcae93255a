// Package should runs cleanup whose failure is worth logging but not
// returning.
package should

import (
	"context"
	"io"
	"os"

	"github.com/amp-labs/amp-containers/logger"
)

// Close closes closer and logs msg if that fails.
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}

// Remove deletes path and logs msg if that fails.
func Remove(ctx context.Context, path string, msg string) {
	if err := os.Remove(path); err != nil {
		logger.Get(ctx).Error(msg, "error", err, "path", path)
	}
}
