package images

import (
	"context"
	"errors"
)

// ErrNotConfigured reports that no image storage bucket is configured.
var ErrNotConfigured = errors.New("image storage is not configured")

// Disabled is the Uploader used when no bucket is configured. Every upload
// fails with ErrNotConfigured.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, userID string, imageData []byte) (string, error) {
	return "", ErrNotConfigured
}
