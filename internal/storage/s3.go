package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"vacation-tracker/internal/config"
)

// SnapshotUploader - внешнее объектное хранилище для снимков резервных копий
type SnapshotUploader interface {
	Upload(ctx context.Context, key string, data []byte) error
}

// S3Uploader выгружает снимки в S3-совместимое хранилище (AWS S3 или MinIO)
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader создает клиент объектного хранилища по конфигурации
func NewS3Uploader(ctx context.Context, cfg config.S3Config) (*S3Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region), // обязательный параметр
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"", // токен не нужен
		)))
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации клиента S3: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true // MinIO работает только с path-style адресацией
		}
	})

	return &S3Uploader{client: client, bucket: cfg.Bucket}, nil
}

// Upload записывает снимок под указанным ключом
func (u *S3Uploader) Upload(ctx context.Context, key string, data []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("ошибка выгрузки снимка '%s' в бакет '%s': %w", key, u.bucket, err)
	}
	return nil
}
