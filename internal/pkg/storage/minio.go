package storage

import (
	"NovaAff/internal/api/config"
	"NovaAff/internal/pkg/logger"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type MinIOStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIOStore 初始化 MinIO 客户端，桶不存在时自动创建
func NewMinIOStore(ctx context.Context, cfg config.MinIOConfig) (*MinIOStore, error) {
	endpoint, useSSL := cfg.InternalEndpoint, cfg.InternalUseSSL
	if endpoint == "" {
		endpoint, useSSL = cfg.ExternalEndpoint, cfg.ExternalUseSSL
	}
	if endpoint == "" {
		return nil, errors.New("minio endpoint is not configured")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    useSSL,
		Transport: logger.NewStorageTransport(nil),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.MainBucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to minio server")
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.MainBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "failed to create bucket %s", cfg.MainBucket)
		}
		log.Info("MinIO bucket created", "bucket", cfg.MainBucket)
	}

	publicEndpoint, publicSSL := cfg.ExternalEndpoint, cfg.ExternalUseSSL
	if publicEndpoint == "" {
		publicEndpoint, publicSSL = endpoint, useSSL
	}
	protocol := "http"
	if publicSSL {
		protocol = "https"
	}

	return &MinIOStore{
		client:     client,
		bucket:     cfg.MainBucket,
		publicBase: fmt.Sprintf("%s://%s/%s", protocol, strings.TrimRight(publicEndpoint, "/"), cfg.MainBucket),
	}, nil
}

func (s *MinIOStore) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload object %s", key)
	}
	return nil
}

func (s *MinIOStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}
	return nil
}

func (s *MinIOStore) URL(key string) string {
	return s.publicBase + "/" + strings.TrimLeft(key, "/")
}
