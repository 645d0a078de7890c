// Package images stores profile pictures in the platform's S3-compatible
// blob storage and hands back a retrievable URL.
package images

import "context"

type Uploader interface {
	// Upload stores imageData as the profile picture for userID and returns
	// the URL the image can be fetched from.
	Upload(ctx context.Context, userID string, imageData []byte) (string, error)
}
