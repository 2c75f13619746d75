// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// photoKeyPrefix is the folder every diary photo is stored under.
const photoKeyPrefix = "diary-photos/"

// s3API is the subset of *s3.Client the image store needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

type s3ImageStore struct {
	client    s3API
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewS3ImageStore connects to an S3-compatible object store. When
// cfg.Endpoint is set (MinIO, R2 and the like) path-style addressing is used.
func NewS3ImageStore(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStore, error) {
	if cfg.Bucket == "" || cfg.PublicURL == "" {
		return nil, ErrMissingImageConfig
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ImageStore(client, cfg.Bucket, cfg.PublicURL, log), nil
}

func newS3ImageStore(client s3API, bucket, publicURL string, log *logger.Logger) *s3ImageStore {
	return &s3ImageStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log,
	}
}

func (s *s3ImageStore) Upload(ctx context.Context, upload models.Upload) (string, error) {
	key := photoKeyPrefix + uuid.NewString() + photoExtension(upload)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        upload.Body,
		ContentType: aws.String(upload.ContentType),
	}
	if upload.Size > 0 {
		input.ContentLength = aws.Int64(upload.Size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Err(err).Str("func", "*s3ImageStore.Upload").Str("key", key).Msg("put object failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *s3ImageStore) Delete(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*s3ImageStore.Delete").Str("key", key).Msg("delete object failed")
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func (s *s3ImageStore) keyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || !strings.HasPrefix(key, photoKeyPrefix) || key == photoKeyPrefix {
		return "", fmt.Errorf("%w: %s", ErrForeignImageURL, url)
	}
	return key, nil
}

func photoExtension(upload models.Upload) string {
	if ext := strings.ToLower(path.Ext(upload.Filename)); ext != "" {
		return ext
	}

	switch upload.ContentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	}
	return ""
}
