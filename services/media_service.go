package services

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MediaService issues presigned URLs for profile photo upload and read.
type MediaService struct {
	Client *s3.Client
	Bucket string
}

// NewMediaService builds the S3-backed media service.
func NewMediaService(cfg aws.Config, bucket string) *MediaService {
	return &MediaService{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
	}
}

// GenerateUploadURL generates a presigned URL for uploading a profile photo
func (ms *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ms.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presigned, err := presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return presigned.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored photo
func (ms *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ms.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ms.Client)
	presigned, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return presigned.URL, nil
}
