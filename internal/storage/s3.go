package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"kartikay_signage/internal/config"
)

// putObjectAPI is the slice of the S3 client the uploader needs; tests stub
// it out.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stores uploaded files in an S3 bucket and hands back the public
// URL the catalog persists.
type Uploader struct {
	client putObjectAPI
	bucket string
	region string
}

// NewUploader builds an S3-backed uploader from static credentials in the
// injected config.
func NewUploader(ctx context.Context, cfg config.S3) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

// Put stores body under key and returns the public object URL.
func (u *Uploader) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return PublicURL(u.bucket, u.region, key), nil
}

// PublicURL is the bucket's virtual-hosted URL format.
func PublicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// ObjectKey builds a collision-free key for an uploaded file:
// <prefix>/<unix-millis>-<uuid>-<filename>.
func ObjectKey(prefix, filename string) string {
	name := filepath.Base(filename)
	name = strings.ReplaceAll(name, " ", "-")
	return fmt.Sprintf("%s/%d-%s-%s", prefix, time.Now().UnixMilli(), uuid.New().String(), name)
}
