package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"linkboard-api/internal/config"
	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleUserInfo is the subset of the userinfo payload we consume
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// AuthService defines the interface for login and session logic
type AuthService interface {
	GoogleLoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error)
	CheckAdmin(ctx context.Context, userID uuid.UUID, email string) (*dto.AdminCheckResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	oauthConfig      *oauth2.Config
	userRepo         repository.UserRepository
	folderCollabRepo repository.FolderCollaborationRepository
	boardCollabRepo  repository.BoardCollaborationRepository
	tokenIssuer      TokenIssuer
	adminEmail       string
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(oauthCfg config.OAuthConfig, adminCfg config.AdminConfig, userRepo repository.UserRepository, folderCollabRepo repository.FolderCollaborationRepository, boardCollabRepo repository.BoardCollaborationRepository, tokenIssuer TokenIssuer, m *metrics.Metrics, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		oauthConfig: &oauth2.Config{
			ClientID:     oauthCfg.ClientID,
			ClientSecret: oauthCfg.ClientSecret,
			RedirectURL:  oauthCfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo:         userRepo,
		folderCollabRepo: folderCollabRepo,
		boardCollabRepo:  boardCollabRepo,
		tokenIssuer:      tokenIssuer,
		adminEmail:       adminCfg.Email,
		metrics:          m,
		logger:           logger,
	}
}

// GoogleLoginURL builds the provider consent URL
func (s *authServiceImpl) GoogleLoginURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// HandleGoogleCallback exchanges the authorization code, fetches the
// provider profile, upserts the local user row and issues a session token.
func (s *authServiceImpl) HandleGoogleCallback(ctx context.Context, code string) (*dto.AuthResponse, error) {
	start := time.Now()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if s.metrics != nil {
		status := http.StatusOK
		if err != nil {
			status = http.StatusBadGateway
		}
		s.metrics.RecordExternalCall("google_oauth", http.MethodPost, status, time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Failed to exchange authorization code", err.Error())
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user profile from provider", err.Error())
	}
	if info.Email == "" {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Provider returned no email", "")
	}

	user, err := s.upsertUser(ctx, info)
	if err != nil {
		return nil, err
	}

	s.linkInvitations(ctx, user)

	signed, err := s.tokenIssuer.IssueToken(user)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue session token", err.Error())
	}

	return &dto.AuthResponse{
		Token: signed,
		User:  toUserResponse(user),
	}, nil
}

// CheckAdmin compares the session email against the configured admin
// address. Exact, case-sensitive; there is no role table.
func (s *authServiceImpl) CheckAdmin(ctx context.Context, userID uuid.UUID, email string) (*dto.AdminCheckResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	return &dto.AdminCheckResponse{
		IsAdmin: s.adminEmail != "" && email == s.adminEmail,
		User:    toUserResponse(user),
	}, nil
}

func (s *authServiceImpl) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)

	start := time.Now()
	resp, err := client.Get(googleUserInfoURL)
	if s.metrics != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		s.metrics.RecordExternalCall("google_userinfo", http.MethodGet, status, time.Since(start), err)
	}
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &info, nil
}

// upsertUser finds the user by provider id, falling back to email for
// accounts created before the provider id was recorded, and creates a
// fresh row otherwise. The admin user type is derived from config at
// creation time.
func (s *authServiceImpl) upsertUser(ctx context.Context, info *googleUserInfo) (*domain.User, error) {
	user, err := s.userRepo.FindByProvider(ctx, "google", info.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	if user == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.FindByEmail(ctx, info.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = nil
		}
	}

	if user == nil {
		userType := domain.UserTypeUser
		if s.adminEmail != "" && info.Email == s.adminEmail {
			userType = domain.UserTypeAdmin
		}

		user = &domain.User{
			Email:      normalizeEmail(info.Email),
			Name:       info.Name,
			Provider:   "google",
			ProviderID: info.ID,
			UserType:   userType,
		}
		if info.Picture != "" {
			user.Image = &info.Picture
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
		}
		return user, nil
	}

	// Refresh provider-managed fields on every login
	user.Provider = "google"
	user.ProviderID = info.ID
	if info.Picture != "" && user.Image == nil {
		user.Image = &info.Picture
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}
	return user, nil
}

// linkInvitations attaches the freshly signed-in user to invitations
// sent to their email before they had an account. Best effort; a
// failure only delays linking until the invitee responds.
func (s *authServiceImpl) linkInvitations(ctx context.Context, user *domain.User) {
	pending, err := s.folderCollabRepo.FindPendingForUser(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Warn("Failed to load pending folder invitations for linking", zap.Error(err))
	} else {
		for _, collab := range pending {
			if collab.UserID != nil {
				continue
			}
			collab.UserID = &user.ID
			if err := s.folderCollabRepo.Update(ctx, collab); err != nil {
				s.logger.Warn("Failed to link folder invitation",
					zap.String("collaboration_id", collab.ID.String()),
					zap.Error(err))
			}
		}
	}

	boardCollabs, err := s.boardCollabRepo.FindNonDeclinedByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Warn("Failed to load board invitations for linking", zap.Error(err))
		return
	}
	for _, collab := range boardCollabs {
		if collab.UserID != nil {
			continue
		}
		collab.UserID = &user.ID
		collab.Name = user.Name
		collab.Image = user.Image
		if err := s.boardCollabRepo.Update(ctx, collab); err != nil {
			s.logger.Warn("Failed to link board invitation",
				zap.String("collaboration_id", collab.ID.String()),
				zap.Error(err))
		}
	}
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Image:     user.Image,
		UserType:  user.UserType,
		CreatedAt: user.CreatedAt,
	}
}
