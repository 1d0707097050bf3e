package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore uploads images to the media host and returns their public URL.
type ImageStore interface {
	UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error)
	UploadDataURI(ctx context.Context, dataURI string) (string, error)
}

// S3ImageStore uploads to a single S3 bucket. The AWS config is loaded once
// at startup and the uploader reused for the process lifetime.
type S3ImageStore struct {
	uploader *manager.Uploader
	bucket   string
}

func NewS3ImageStore(ctx context.Context) (*S3ImageStore, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3ImageStore{
		uploader: manager.NewUploader(client),
		bucket:   os.Getenv("S3_BUCKET"),
	}, nil
}

func (s *S3ImageStore) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file %s: %w", file.Filename, err)
	}
	defer f.Close()

	key := uuid.NewString() + "-" + file.Filename
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading file %s: %w", file.Filename, err)
	}

	return result.Location, nil
}

// UploadDataURI accepts a base64 data URI (the profile picture arrives this
// way) and stores the decoded bytes.
func (s *S3ImageStore) UploadDataURI(ctx context.Context, dataURI string) (string, error) {
	header, payload, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasPrefix(header, "data:") {
		return "", fmt.Errorf("invalid data URI")
	}
	contentType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid data URI payload: %w", err)
	}

	key := uuid.NewString()
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading image: %w", err)
	}

	return result.Location, nil
}
