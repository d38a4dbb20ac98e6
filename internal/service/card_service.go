package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// CardService defines the interface for board card business logic
type CardService interface {
	CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest, userID uuid.UUID) (*dto.CardResponse, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, req *dto.UpdateCardRequest, userID uuid.UUID) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, cardID, userID uuid.UUID) error
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	cardRepo     repository.CardRepository
	boardRepo    repository.BoardRepository
	collabRepo   repository.BoardCollaborationRepository
	timelineRepo repository.TimelineRepository
	userRepo     repository.UserRepository
	broadcaster  TimelineBroadcaster
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(cardRepo repository.CardRepository, boardRepo repository.BoardRepository, collabRepo repository.BoardCollaborationRepository, timelineRepo repository.TimelineRepository, userRepo repository.UserRepository, broadcaster TimelineBroadcaster, m *metrics.Metrics, logger *zap.Logger) CardService {
	return &cardServiceImpl{
		cardRepo:     cardRepo,
		boardRepo:    boardRepo,
		collabRepo:   collabRepo,
		timelineRepo: timelineRepo,
		userRepo:     userRepo,
		broadcaster:  broadcaster,
		metrics:      m,
		logger:       logger,
	}
}

// CreateCard adds a card to a board and bumps the board's cached card
// count. The two writes are not transactional; a crash in between
// leaves the count stale until the next adjustment.
func (s *cardServiceImpl) CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest, userID uuid.UUID) (*dto.CardResponse, error) {
	board, role, err := s.loadEditableBoard(ctx, boardID, userID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.CardStatusTodo
	}
	if !status.Valid() {
		return nil, response.NewValidationError("Invalid card status")
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.CardPriorityMedium
	}
	if !priority.Valid() {
		return nil, response.NewValidationError("Invalid card priority")
	}

	card := &domain.BoardCard{
		BoardID:        board.ID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		LinkedFolderID: req.LinkedFolderID,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create card", err.Error())
	}

	if err := s.boardRepo.AdjustCardCount(ctx, board.ID, 1); err != nil {
		s.logger.Warn("Failed to adjust board card count",
			zap.String("board_id", board.ID.String()),
			zap.Error(err))
	}

	s.appendCardEntry(ctx, board.ID, userID, role, domain.TimelineActionCreated,
		"Added card \""+card.Title+"\"", nil)

	return toCardResponse(card), nil
}

// UpdateCard applies the non-nil fields of the request. A status change
// is recorded on the board timeline with the prior status preserved.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, cardID uuid.UUID, req *dto.UpdateCardRequest, userID uuid.UUID) (*dto.CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load card", err.Error())
	}

	board, role, err := s.loadEditableBoard(ctx, card.BoardID, userID)
	if err != nil {
		return nil, err
	}

	var previousStatus *string
	if req.Status != nil && *req.Status != card.Status {
		if !req.Status.Valid() {
			return nil, response.NewValidationError("Invalid card status")
		}
		prior := string(card.Status)
		previousStatus = &prior
		card.Status = *req.Status
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, response.NewValidationError("Invalid card priority")
		}
		card.Priority = *req.Priority
	}
	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.LinkedFolderID != nil {
		card.LinkedFolderID = req.LinkedFolderID
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	if previousStatus != nil {
		s.appendCardEntry(ctx, board.ID, userID, role, domain.TimelineActionUpdated,
			"Moved card \""+card.Title+"\" to "+string(card.Status), previousStatus)
	}

	return toCardResponse(card), nil
}

// DeleteCard removes a card and decrements the board's cached card count
func (s *cardServiceImpl) DeleteCard(ctx context.Context, cardID, userID uuid.UUID) error {
	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load card", err.Error())
	}

	board, _, err := s.loadEditableBoard(ctx, card.BoardID, userID)
	if err != nil {
		return err
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete card", err.Error())
	}

	if err := s.boardRepo.AdjustCardCount(ctx, board.ID, -1); err != nil {
		s.logger.Warn("Failed to adjust board card count",
			zap.String("board_id", board.ID.String()),
			zap.Error(err))
	}

	return nil
}

// loadEditableBoard loads the board and requires an editing role
func (s *cardServiceImpl) loadEditableBoard(ctx context.Context, boardID, userID uuid.UUID) (*domain.Board, domain.CollaborationRole, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	role, ok, err := resolveBoardRole(ctx, s.collabRepo, board, userID)
	if err != nil {
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to resolve board access", err.Error())
	}
	if !ok || !role.CanEdit() {
		return nil, "", response.NewAppError(response.ErrCodeForbidden, "You do not have permission to edit this board", "")
	}

	return board, role, nil
}

// appendCardEntry writes a card activity record to the board timeline
// and broadcasts it. Failures are logged, never surfaced: the card
// write already succeeded.
func (s *cardServiceImpl) appendCardEntry(ctx context.Context, boardID, userID uuid.UUID, role domain.CollaborationRole, action domain.TimelineAction, content string, previous *string) {
	author, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to load timeline author",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	entry := &domain.BoardTimelineEntry{
		BoardID:         boardID,
		AuthorID:        author.ID,
		AuthorEmail:     author.Email,
		AuthorName:      author.Name,
		AuthorImage:     author.Image,
		AuthorRole:      role,
		Content:         content,
		Action:          action,
		PreviousContent: previous,
	}

	if err := s.timelineRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("Failed to append timeline entry",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
		return
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastTimelineEntry(boardID, toTimelineEntryResponse(entry))
	}
}

func toCardResponse(card *domain.BoardCard) *dto.CardResponse {
	return &dto.CardResponse{
		ID:             card.ID,
		BoardID:        card.BoardID,
		Title:          card.Title,
		Description:    card.Description,
		Status:         card.Status,
		Priority:       card.Priority,
		LinkedFolderID: card.LinkedFolderID,
		CreatedAt:      card.CreatedAt,
		UpdatedAt:      card.UpdatedAt,
	}
}
