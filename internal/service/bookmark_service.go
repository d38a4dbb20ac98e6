package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// BookmarkService defines the interface for bookmark business logic
type BookmarkService interface {
	CreateBookmark(ctx context.Context, folderID uuid.UUID, req *dto.CreateBookmarkRequest, userID uuid.UUID) (*dto.BookmarkResponse, error)
	UpdateBookmark(ctx context.Context, bookmarkID uuid.UUID, req *dto.UpdateBookmarkRequest, userID uuid.UUID) (*dto.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, bookmarkID, userID uuid.UUID) error
	ReorderBookmarks(ctx context.Context, folderID uuid.UUID, req *dto.ReorderBookmarksRequest, userID uuid.UUID) error
}

// bookmarkServiceImpl is the implementation of BookmarkService
type bookmarkServiceImpl struct {
	bookmarkRepo repository.BookmarkRepository
	folderRepo   repository.FolderRepository
	collabRepo   repository.FolderCollaborationRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewBookmarkService creates a new instance of BookmarkService
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, folderRepo repository.FolderRepository, collabRepo repository.FolderCollaborationRepository, m *metrics.Metrics, logger *zap.Logger) BookmarkService {
	return &bookmarkServiceImpl{
		bookmarkRepo: bookmarkRepo,
		folderRepo:   folderRepo,
		collabRepo:   collabRepo,
		metrics:      m,
		logger:       logger,
	}
}

// validateBookmarkURL accepts only absolute http/https URLs
func validateBookmarkURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return response.NewValidationError("Invalid bookmark URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return response.NewValidationError("Bookmark URL must be absolute http or https")
	}
	if parsed.Host == "" {
		return response.NewValidationError("Bookmark URL must include a host")
	}
	return nil
}

// defaultFavicon derives a favicon URL from the bookmark's host
func defaultFavicon(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host + "/favicon.ico"
}

// CreateBookmark adds a bookmark at the end of the folder's ordering
func (s *bookmarkServiceImpl) CreateBookmark(ctx context.Context, folderID uuid.UUID, req *dto.CreateBookmarkRequest, userID uuid.UUID) (*dto.BookmarkResponse, error) {
	folder, err := s.loadEditableFolder(ctx, folderID, userID)
	if err != nil {
		return nil, err
	}

	if err := validateBookmarkURL(req.URL); err != nil {
		return nil, err
	}

	favicon := req.Favicon
	if favicon == "" {
		favicon = defaultFavicon(req.URL)
	}

	count, err := s.bookmarkRepo.CountByFolderID(ctx, folder.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to determine bookmark position", err.Error())
	}

	bookmark := &domain.Bookmark{
		FolderID:    folder.ID,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Favicon:     favicon,
		Position:    int(count),
	}

	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create bookmark", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBookmarkCreated()
	}

	return toBookmarkResponse(bookmark), nil
}

// UpdateBookmark applies the non-nil fields of the request
func (s *bookmarkServiceImpl) UpdateBookmark(ctx context.Context, bookmarkID uuid.UUID, req *dto.UpdateBookmarkRequest, userID uuid.UUID) (*dto.BookmarkResponse, error) {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Bookmark not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load bookmark", err.Error())
	}

	if _, err := s.loadEditableFolder(ctx, bookmark.FolderID, userID); err != nil {
		return nil, err
	}

	if req.URL != nil {
		if err := validateBookmarkURL(*req.URL); err != nil {
			return nil, err
		}
		bookmark.URL = *req.URL
		if req.Favicon == nil && bookmark.Favicon == "" {
			bookmark.Favicon = defaultFavicon(*req.URL)
		}
	}
	if req.Title != nil {
		bookmark.Title = *req.Title
	}
	if req.Description != nil {
		bookmark.Description = *req.Description
	}
	if req.Favicon != nil {
		bookmark.Favicon = *req.Favicon
	}

	if err := s.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update bookmark", err.Error())
	}

	return toBookmarkResponse(bookmark), nil
}

// DeleteBookmark removes a bookmark
func (s *bookmarkServiceImpl) DeleteBookmark(ctx context.Context, bookmarkID, userID uuid.UUID) error {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Bookmark not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load bookmark", err.Error())
	}

	if _, err := s.loadEditableFolder(ctx, bookmark.FolderID, userID); err != nil {
		return err
	}

	if err := s.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete bookmark", err.Error())
	}

	return nil
}

// ReorderBookmarks rewrites folder positions to match the given order.
// The id list must cover the folder's bookmarks exactly.
func (s *bookmarkServiceImpl) ReorderBookmarks(ctx context.Context, folderID uuid.UUID, req *dto.ReorderBookmarksRequest, userID uuid.UUID) error {
	folder, err := s.loadEditableFolder(ctx, folderID, userID)
	if err != nil {
		return err
	}

	count, err := s.bookmarkRepo.CountByFolderID(ctx, folder.ID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to count bookmarks", err.Error())
	}
	if int(count) != len(req.BookmarkIDs) {
		return response.NewValidationError("Reorder must include every bookmark in the folder")
	}

	if err := s.bookmarkRepo.UpdatePositions(ctx, folder.ID, req.BookmarkIDs); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to reorder bookmarks", err.Error())
	}

	return nil
}

// loadEditableFolder loads the folder and requires an editing role
func (s *bookmarkServiceImpl) loadEditableFolder(ctx context.Context, folderID, userID uuid.UUID) (*domain.Folder, error) {
	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	role, ok, err := resolveFolderRole(ctx, s.collabRepo, folder, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve folder access", err.Error())
	}
	if !ok || !role.CanEdit() {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have permission to edit this folder", "")
	}

	return folder, nil
}

func toBookmarkResponse(bookmark *domain.Bookmark) *dto.BookmarkResponse {
	return &dto.BookmarkResponse{
		ID:          bookmark.ID,
		FolderID:    bookmark.FolderID,
		Title:       bookmark.Title,
		URL:         bookmark.URL,
		Description: bookmark.Description,
		Favicon:     bookmark.Favicon,
		Position:    bookmark.Position,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
}
