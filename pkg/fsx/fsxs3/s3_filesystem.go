package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/udistrital/unidoc_api/pkg/fsx"
	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// S3FileSystem implements fsx.FileSystem on an S3 bucket
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates an S3-backed file system rooted at the given prefix
func NewS3FileSystem(client *s3.Client, bucket, prefix string) fsx.FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (f *S3FileSystem) objectKey(key string) string {
	if f.prefix == "" {
		return key
	}
	return f.prefix + "/" + key
}

// Upload stores the file and returns its bucket URL
func (f *S3FileSystem) Upload(ctx context.Context, key string, data []byte, contentType string) (kernel.BucketURL, error) {
	objectKey := f.objectKey(key)

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}

	return kernel.BucketURL(fmt.Sprintf("s3://%s/%s", f.bucket, objectKey)), nil
}

// Download retrieves the stored file
func (f *S3FileSystem) Download(ctx context.Context, key string) ([]byte, error) {
	objectKey := f.objectKey(key)

	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", objectKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", objectKey, err)
	}

	return data, nil
}

// Delete removes the stored file
func (f *S3FileSystem) Delete(ctx context.Context, key string) error {
	objectKey := f.objectKey(key)

	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", objectKey, err)
	}

	return nil
}

// Exists checks whether a file is stored under the key
func (f *S3FileSystem) Exists(ctx context.Context, key string) (bool, error) {
	objectKey := f.objectKey(key)

	_, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head %s: %w", objectKey, err)
	}

	return true, nil
}
