package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// defaultTimelineLimit caps a listing when the caller gives no limit
const defaultTimelineLimit = 100

// TimelineBroadcaster pushes new timeline entries to connected board
// feeds. The websocket hub implements it.
type TimelineBroadcaster interface {
	BroadcastTimelineEntry(boardID uuid.UUID, entry *dto.TimelineEntryResponse)
}

// TimelineService defines the interface for board timeline logic
type TimelineService interface {
	AddComment(ctx context.Context, boardID uuid.UUID, req *dto.CreateTimelineEntryRequest, userID uuid.UUID) (*dto.TimelineEntryResponse, error)
	GetTimeline(ctx context.Context, boardID, userID uuid.UUID, limit int) ([]*dto.TimelineEntryResponse, error)
	CanAccessBoard(ctx context.Context, boardID, userID uuid.UUID) (bool, error)
}

// timelineServiceImpl is the implementation of TimelineService
type timelineServiceImpl struct {
	timelineRepo repository.TimelineRepository
	boardRepo    repository.BoardRepository
	collabRepo   repository.BoardCollaborationRepository
	userRepo     repository.UserRepository
	broadcaster  TimelineBroadcaster
	logger       *zap.Logger
}

// NewTimelineService creates a new instance of TimelineService
func NewTimelineService(timelineRepo repository.TimelineRepository, boardRepo repository.BoardRepository, collabRepo repository.BoardCollaborationRepository, userRepo repository.UserRepository, broadcaster TimelineBroadcaster, logger *zap.Logger) TimelineService {
	return &timelineServiceImpl{
		timelineRepo: timelineRepo,
		boardRepo:    boardRepo,
		collabRepo:   collabRepo,
		userRepo:     userRepo,
		broadcaster:  broadcaster,
		logger:       logger,
	}
}

// AddComment appends a comment entry to the board timeline. The author
// snapshot is taken at write time and never updated afterwards.
func (s *timelineServiceImpl) AddComment(ctx context.Context, boardID uuid.UUID, req *dto.CreateTimelineEntryRequest, userID uuid.UUID) (*dto.TimelineEntryResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	role, ok, err := resolveBoardRole(ctx, s.collabRepo, board, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve board access", err.Error())
	}
	if !ok {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this board", "")
	}

	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load author", err.Error())
	}

	var images datatypes.JSON
	if len(req.Images) > 0 {
		data, err := json.Marshal(req.Images)
		if err != nil {
			return nil, response.NewValidationError("Invalid image list")
		}
		images = datatypes.JSON(data)
	}

	entry := &domain.BoardTimelineEntry{
		BoardID:     board.ID,
		AuthorID:    author.ID,
		AuthorEmail: author.Email,
		AuthorName:  author.Name,
		AuthorImage: author.Image,
		AuthorRole:  role,
		Content:     req.Content,
		Action:      domain.TimelineActionCommented,
		Images:      images,
	}

	if err := s.timelineRepo.Create(ctx, entry); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to append timeline entry", err.Error())
	}

	resp := toTimelineEntryResponse(entry)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastTimelineEntry(board.ID, resp)
	}

	return resp, nil
}

// GetTimeline lists the board's entries newest first
func (s *timelineServiceImpl) GetTimeline(ctx context.Context, boardID, userID uuid.UUID, limit int) ([]*dto.TimelineEntryResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	_, ok, err := resolveBoardRole(ctx, s.collabRepo, board, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve board access", err.Error())
	}
	if !ok {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this board", "")
	}

	if limit <= 0 {
		limit = defaultTimelineLimit
	}

	entries, err := s.timelineRepo.FindByBoardID(ctx, boardID, limit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list timeline", err.Error())
	}

	responses := make([]*dto.TimelineEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimelineEntryResponse(entry))
	}
	return responses, nil
}

// CanAccessBoard reports whether the user holds any effective role on
// the board. The websocket feed uses it to gate subscriptions.
func (s *timelineServiceImpl) CanAccessBoard(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	_, ok, err := resolveBoardRole(ctx, s.collabRepo, board, userID)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func toTimelineEntryResponse(entry *domain.BoardTimelineEntry) *dto.TimelineEntryResponse {
	var images []string
	if len(entry.Images) > 0 {
		if err := json.Unmarshal(entry.Images, &images); err != nil {
			images = nil
		}
	}
	return &dto.TimelineEntryResponse{
		ID:              entry.ID,
		BoardID:         entry.BoardID,
		AuthorID:        entry.AuthorID,
		AuthorEmail:     entry.AuthorEmail,
		AuthorName:      entry.AuthorName,
		AuthorImage:     entry.AuthorImage,
		AuthorRole:      entry.AuthorRole,
		Content:         entry.Content,
		Action:          entry.Action,
		PreviousContent: entry.PreviousContent,
		Images:          images,
		CreatedAt:       entry.CreatedAt,
	}
}
