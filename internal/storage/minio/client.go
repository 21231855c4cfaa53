// Package minio stores uploaded portfolio assets (project images, the
// owner's profile image and resume) in an S3-compatible bucket.
package minio

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioAPI is the subset of the MinIO client used here; tests swap in a
// fake without a real server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Options configure the storage client connection.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Client uploads assets and returns their public URLs.
type Client struct {
	api     minioAPI
	bucket  string
	baseURL string
}

// NewClient connects to the object store and ensures the bucket exists.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	scheme := "http"
	if opts.UseSSL {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)

	return NewClientWithAPI(ctx, mc, opts.Bucket, baseURL)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(ctx context.Context, api minioAPI, bucket, baseURL string) (*Client, error) {
	c := &Client{
		api:     api,
		bucket:  bucket,
		baseURL: baseURL,
	}

	if err := c.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket exists: %w", err)
	}

	return c, nil
}

func (c *Client) ensureBucketExists(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}

	if !exists {
		if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	return nil
}

// Upload stores an asset under a random key (preserving the original file
// extension) and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	key := uuid.NewString() + path.Ext(filename)

	_, err := c.api.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}

	return c.baseURL + "/" + key, nil
}

// Remove deletes an asset by key.
func (c *Client) Remove(ctx context.Context, key string) error {
	if err := c.api.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}
