package images

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	imageContentType = "image/jpeg"
	urlExpiry        = 15 * time.Minute
)

// Seams for tests: the AWS SDK is swapped out behind these function vars.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Config holds the S3 settings for profile image storage.
type Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

type S3Uploader struct {
	config Config
}

func NewS3Uploader(config Config) *S3Uploader {
	return &S3Uploader{config: config}
}

// StorageKey returns the deterministic per-user object key.
func StorageKey(userID string) string {
	return fmt.Sprintf("profile_images/%s.jpg", userID)
}

func (u *S3Uploader) getClient() (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(u.config.Region)}
	if u.config.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.config.AccessKey,
			u.config.SecretKey,
			"",
		)))
	}

	cfg, err := loadDefaultAWSConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.config.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.config.BaseEndpoint)
		}
	}), nil
}

// Upload puts the image at profile_images/{userID}.jpg with an image/jpeg
// content type and returns a presigned GET URL for it.
func (u *S3Uploader) Upload(ctx context.Context, userID string, imageData []byte) (string, error) {
	client, err := u.getClient()
	if err != nil {
		return "", err
	}

	bucket := u.config.Bucket
	key := StorageKey(userID)
	contentType := imageContentType

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(imageData),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload profile image: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(urlExpiry))
	if err != nil {
		return "", fmt.Errorf("presign profile image url: %w", err)
	}

	return req.URL, nil
}
