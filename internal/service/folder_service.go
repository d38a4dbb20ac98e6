package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// publicFolderCacheTTL matches the s-maxage edge directive
const publicFolderCacheTTL = 60 * time.Second

// FolderService defines the interface for folder business logic
type FolderService interface {
	CreateFolder(ctx context.Context, req *dto.CreateFolderRequest, userID uuid.UUID) (*dto.FolderResponse, error)
	GetFolders(ctx context.Context, userID uuid.UUID, email string) ([]*dto.FolderResponse, error)
	GetFolder(ctx context.Context, folderID, userID uuid.UUID) (*dto.FolderDetailResponse, error)
	UpdateFolder(ctx context.Context, folderID, userID uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error)
	DeleteFolder(ctx context.Context, folderID, userID uuid.UUID) error
	GetPublicFolder(ctx context.Context, folderID uuid.UUID) (*dto.PublicFolderResponse, error)
}

// folderServiceImpl is the implementation of FolderService
type folderServiceImpl struct {
	folderRepo   repository.FolderRepository
	bookmarkRepo repository.BookmarkRepository
	collabRepo   repository.FolderCollaborationRepository
	cache        *redis.Client
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewFolderService creates a new instance of FolderService
func NewFolderService(folderRepo repository.FolderRepository, bookmarkRepo repository.BookmarkRepository, collabRepo repository.FolderCollaborationRepository, cache *redis.Client, m *metrics.Metrics, logger *zap.Logger) FolderService {
	return &folderServiceImpl{
		folderRepo:   folderRepo,
		bookmarkRepo: bookmarkRepo,
		collabRepo:   collabRepo,
		cache:        cache,
		metrics:      m,
		logger:       logger,
	}
}

// CreateFolder creates a folder after checking the (owner, name) pair
// is free. The duplicate check runs before the insert so the caller
// gets a conflict instead of a constraint violation.
func (s *folderServiceImpl) CreateFolder(ctx context.Context, req *dto.CreateFolderRequest, userID uuid.UUID) (*dto.FolderResponse, error) {
	existing, err := s.folderRepo.FindByOwnerAndName(ctx, userID, req.Name)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check folder name", err.Error())
	}
	if existing != nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A folder with this name already exists", "")
	}

	folder := &domain.Folder{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create folder", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementFolderCreated()
	}

	return toFolderResponse(folder), nil
}

// GetFolders lists the user's own folders plus folders shared with them
// through an accepted collaboration.
func (s *folderServiceImpl) GetFolders(ctx context.Context, userID uuid.UUID, email string) ([]*dto.FolderResponse, error) {
	own, err := s.folderRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list folders", err.Error())
	}

	responses := make([]*dto.FolderResponse, 0, len(own))
	seen := make(map[uuid.UUID]bool, len(own))
	for _, folder := range own {
		responses = append(responses, toFolderResponse(folder))
		seen[folder.ID] = true
	}

	collabs, err := s.collabRepo.FindAcceptedForUser(ctx, userID, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list shared folders", err.Error())
	}

	sharedIDs := make([]uuid.UUID, 0, len(collabs))
	for _, collab := range collabs {
		if !seen[collab.FolderID] {
			sharedIDs = append(sharedIDs, collab.FolderID)
		}
	}

	if len(sharedIDs) > 0 {
		shared, err := s.folderRepo.FindByIDs(ctx, sharedIDs)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load shared folders", err.Error())
		}
		for _, folder := range shared {
			responses = append(responses, toFolderResponse(folder))
		}
	}

	return responses, nil
}

// GetFolder returns a folder with its ordered bookmarks. The caller
// needs any effective role on the folder.
func (s *folderServiceImpl) GetFolder(ctx context.Context, folderID, userID uuid.UUID) (*dto.FolderDetailResponse, error) {
	folder, err := s.folderRepo.FindByIDWithBookmarks(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	_, ok, err := resolveFolderRole(ctx, s.collabRepo, folder, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve folder access", err.Error())
	}
	if !ok {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this folder", "")
	}

	return toFolderDetailResponse(folder), nil
}

// UpdateFolder applies the non-nil fields of the request. A rename is
// checked against the (owner, name) unique pair first.
func (s *folderServiceImpl) UpdateFolder(ctx context.Context, folderID, userID uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
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

	if req.Name != nil && *req.Name != folder.Name {
		existing, err := s.folderRepo.FindByOwnerAndName(ctx, folder.OwnerID, *req.Name)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check folder name", err.Error())
		}
		if existing != nil {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A folder with this name already exists", "")
		}
		folder.Name = *req.Name
	}
	if req.Description != nil {
		folder.Description = *req.Description
	}
	if req.Color != nil {
		folder.Color = *req.Color
	}

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update folder", err.Error())
	}

	s.invalidatePublicCache(ctx, folderID)

	return toFolderResponse(folder), nil
}

// DeleteFolder deletes a folder and cascades its bookmarks and
// collaborations. Only the owner may delete.
func (s *folderServiceImpl) DeleteFolder(ctx context.Context, folderID, userID uuid.UUID) error {
	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	if folder.OwnerID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the owner can delete a folder", "")
	}

	if err := s.folderRepo.Delete(ctx, folderID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete folder", err.Error())
	}

	s.invalidatePublicCache(ctx, folderID)

	return nil
}

// GetPublicFolder serves the unauthenticated share projection. Reads go
// through a short redis cache sized to the edge s-maxage window.
func (s *folderServiceImpl) GetPublicFolder(ctx context.Context, folderID uuid.UUID) (*dto.PublicFolderResponse, error) {
	cacheKey := publicFolderCacheKey(folderID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.PublicFolderResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	folder, err := s.folderRepo.FindByIDWithBookmarks(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	resp := toPublicFolderResponse(folder)

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, publicFolderCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache public folder",
					zap.String("folder_id", folderID.String()),
					zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *folderServiceImpl) invalidatePublicCache(ctx context.Context, folderID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, publicFolderCacheKey(folderID)).Err(); err != nil {
		s.logger.Warn("Failed to invalidate public folder cache",
			zap.String("folder_id", folderID.String()),
			zap.Error(err))
	}
}

func publicFolderCacheKey(folderID uuid.UUID) string {
	return "public:folder:" + folderID.String()
}

func toFolderResponse(folder *domain.Folder) *dto.FolderResponse {
	return &dto.FolderResponse{
		ID:          folder.ID,
		OwnerID:     folder.OwnerID,
		Name:        folder.Name,
		Description: folder.Description,
		Color:       folder.Color,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}
}

func toFolderDetailResponse(folder *domain.Folder) *dto.FolderDetailResponse {
	bookmarks := make([]dto.BookmarkResponse, 0, len(folder.Bookmarks))
	for i := range folder.Bookmarks {
		bookmarks = append(bookmarks, *toBookmarkResponse(&folder.Bookmarks[i]))
	}
	return &dto.FolderDetailResponse{
		FolderResponse: *toFolderResponse(folder),
		Bookmarks:      bookmarks,
	}
}

func toPublicFolderResponse(folder *domain.Folder) *dto.PublicFolderResponse {
	bookmarks := make([]dto.BookmarkResponse, 0, len(folder.Bookmarks))
	for i := range folder.Bookmarks {
		bookmarks = append(bookmarks, *toBookmarkResponse(&folder.Bookmarks[i]))
	}
	return &dto.PublicFolderResponse{
		ID:          folder.ID,
		Name:        folder.Name,
		Description: folder.Description,
		Color:       folder.Color,
		Bookmarks:   bookmarks,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}
}
