package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// ProfileService defines the interface for profile updates
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error)
}

// profileServiceImpl is the implementation of ProfileService
type profileServiceImpl struct {
	userRepo    repository.UserRepository
	tokenIssuer TokenIssuer
	logger      *zap.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(userRepo repository.UserRepository, tokenIssuer TokenIssuer, logger *zap.Logger) ProfileService {
	return &profileServiceImpl{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// UpdateProfile writes the caller's name and image. Name is required
// and validated before any write. Image distinguishes absent (keep)
// from explicit null (clear). The write goes through a raw column
// update, bypassing model hooks, and a fresh session token carrying
// the updated claims is returned with the profile.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewValidationError("Name must not be empty")
	}

	columns := map[string]interface{}{
		"name": name,
	}
	if req.Image.Set {
		if req.Image.Value != nil && strings.TrimSpace(*req.Image.Value) == "" {
			return nil, response.NewValidationError("Image must be a URL or null")
		}
		columns["image"] = req.Image.Value
	}

	if err := s.userRepo.UpdateProfileColumns(ctx, userID, columns); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update profile", err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load profile", err.Error())
	}

	signed, err := s.tokenIssuer.IssueToken(user)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue session token", err.Error())
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  toUserResponse(user),
	}, nil
}
