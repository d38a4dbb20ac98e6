package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/client"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
)

// allowedUploadContentTypes limits presigned uploads to images
var allowedUploadContentTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// UploadService hands out presigned upload URLs; the client PUTs the
// file straight to the bucket
type UploadService interface {
	GeneratePresignedUpload(ctx context.Context, userID uuid.UUID, req *dto.PresignedUploadRequest) (*dto.PresignedUploadResponse, error)
}

// uploadServiceImpl is the implementation of UploadService
type uploadServiceImpl struct {
	s3Client client.S3ClientInterface
	logger   *zap.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(s3Client client.S3ClientInterface, logger *zap.Logger) UploadService {
	return &uploadServiceImpl{
		s3Client: s3Client,
		logger:   logger,
	}
}

// GeneratePresignedUpload validates the request and returns a
// short-lived upload URL plus the final file URL
func (s *uploadServiceImpl) GeneratePresignedUpload(ctx context.Context, userID uuid.UUID, req *dto.PresignedUploadRequest) (*dto.PresignedUploadResponse, error) {
	if !allowedUploadContentTypes[strings.ToLower(req.ContentType)] {
		return nil, response.NewValidationError("Content type must be an image")
	}

	uploadURL, fileKey, err := s.s3Client.GeneratePresignedURL(ctx, req.Kind, userID.String(), req.FileName, req.ContentType)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate upload URL", err.Error())
	}

	return &dto.PresignedUploadResponse{
		UploadURL: uploadURL,
		FileURL:   s.s3Client.GetFileURL(fileKey),
	}, nil
}
