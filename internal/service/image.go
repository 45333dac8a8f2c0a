package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/culinarycode/backend/config"
	"github.com/culinarycode/backend/internal/llm"
)

// ImageService turns a recipe prompt into a publicly reachable image URL:
// DALL-E generates the picture, S3 hosts it. Implements llm.ImageGenerator.
type ImageService struct {
	dalle    *llm.DalleClient
	s3Config *config.S3Config
	logger   *zap.Logger
}

// NewImageService creates a new ImageService instance.
func NewImageService(dalle *llm.DalleClient, s3Config *config.S3Config, logger *zap.Logger) *ImageService {
	return &ImageService{
		dalle:    dalle,
		s3Config: s3Config,
		logger:   logger.Named("images"),
	}
}

// GenerateRecipeImage generates an image for the prompt and uploads it to
// S3. An empty URI with nil error means image generation is not configured.
func (s *ImageService) GenerateRecipeImage(ctx context.Context, prompt string) (string, error) {
	imageData, err := s.dalle.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}
	if imageData == nil {
		return "", nil
	}

	fileName := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())
	return s.UploadImageToS3(ctx, imageData, fileName)
}

// UploadImageToS3 uploads image data to S3 and returns the public URL.
func (s *ImageService) UploadImageToS3(ctx context.Context, imageData []byte, fileName string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	s.logger.Info("image uploaded", zap.String("url", publicURL))

	return publicURL, nil
}
