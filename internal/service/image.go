package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/recipefinder/backend/config"
)

// ImageService stores recipe photos in S3
type ImageService struct {
	s3Config *config.S3Config
}

// Ensure ImageService implements IImageService
var _ IImageService = (*ImageService)(nil)

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipePhoto uploads a photo for the given recipe and returns its
// public URL. The object key is unique per upload so replacing a photo never
// serves a stale cached object.
func (s *ImageService) UploadRecipePhoto(ctx context.Context, recipeID uuid.UUID, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("recipe-photos/%s/%s", recipeID, uuid.New())

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Uploaded recipe photo: %s", publicURL)

	return publicURL, nil
}
