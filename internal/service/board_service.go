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

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, req *dto.CreateBoardRequest, userID uuid.UUID) (*dto.BoardResponse, error)
	GetBoards(ctx context.Context, userID uuid.UUID, email string) ([]*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID, userID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, boardID, userID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo  repository.BoardRepository
	folderRepo repository.FolderRepository
	collabRepo repository.BoardCollaborationRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(boardRepo repository.BoardRepository, folderRepo repository.FolderRepository, collabRepo repository.BoardCollaborationRepository, m *metrics.Metrics, logger *zap.Logger) BoardService {
	return &boardServiceImpl{
		boardRepo:  boardRepo,
		folderRepo: folderRepo,
		collabRepo: collabRepo,
		metrics:    m,
		logger:     logger,
	}
}

// CreateBoard creates a board. A linked folder, when given, must exist.
func (s *boardServiceImpl) CreateBoard(ctx context.Context, req *dto.CreateBoardRequest, userID uuid.UUID) (*dto.BoardResponse, error) {
	if req.LinkedFolderID != nil {
		if err := s.checkLinkedFolder(ctx, *req.LinkedFolderID); err != nil {
			return nil, err
		}
	}

	board := &domain.Board{
		OwnerID:        userID,
		Name:           req.Name,
		Description:    req.Description,
		Content:        req.Content,
		Color:          req.Color,
		LinkedFolderID: req.LinkedFolderID,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	return toBoardResponse(board), nil
}

// GetBoards lists the user's own boards plus boards shared with them
// through an accepted collaboration.
func (s *boardServiceImpl) GetBoards(ctx context.Context, userID uuid.UUID, email string) ([]*dto.BoardResponse, error) {
	own, err := s.boardRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(own))
	seen := make(map[uuid.UUID]bool, len(own))
	for _, board := range own {
		responses = append(responses, toBoardResponse(board))
		seen[board.ID] = true
	}

	collabs, err := s.collabRepo.FindAcceptedForUser(ctx, userID, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list shared boards", err.Error())
	}

	sharedIDs := make([]uuid.UUID, 0, len(collabs))
	for _, collab := range collabs {
		if !seen[collab.BoardID] {
			sharedIDs = append(sharedIDs, collab.BoardID)
		}
	}

	if len(sharedIDs) > 0 {
		shared, err := s.boardRepo.FindByIDs(ctx, sharedIDs)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load shared boards", err.Error())
		}
		for _, board := range shared {
			responses = append(responses, toBoardResponse(board))
		}
	}

	return responses, nil
}

// GetBoard returns a board with its cards. The caller needs any
// effective role on the board.
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID, userID uuid.UUID) (*dto.BoardDetailResponse, error) {
	board, err := s.boardRepo.FindByIDWithCards(ctx, boardID)
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

	return toBoardDetailResponse(board), nil
}

// UpdateBoard applies the non-nil fields of the request
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, boardID, userID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
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
	if !ok || !role.CanEdit() {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have permission to edit this board", "")
	}

	if req.LinkedFolderID != nil {
		if err := s.checkLinkedFolder(ctx, *req.LinkedFolderID); err != nil {
			return nil, err
		}
		board.LinkedFolderID = req.LinkedFolderID
	}
	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.Content != nil {
		board.Content = *req.Content
	}
	if req.Color != nil {
		board.Color = *req.Color
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	return toBoardResponse(board), nil
}

// DeleteBoard deletes a board and cascades its cards, collaborations
// and timeline. Only the owner may delete.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	if board.OwnerID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the owner can delete a board", "")
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	return nil
}

func (s *boardServiceImpl) checkLinkedFolder(ctx context.Context, folderID uuid.UUID) error {
	if _, err := s.folderRepo.FindByID(ctx, folderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Linked folder not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check linked folder", err.Error())
	}
	return nil
}

func toBoardResponse(board *domain.Board) *dto.BoardResponse {
	return &dto.BoardResponse{
		ID:             board.ID,
		OwnerID:        board.OwnerID,
		Name:           board.Name,
		Description:    board.Description,
		Content:        board.Content,
		Color:          board.Color,
		LinkedFolderID: board.LinkedFolderID,
		CardCount:      board.CardCount,
		CreatedAt:      board.CreatedAt,
		UpdatedAt:      board.UpdatedAt,
	}
}

func toBoardDetailResponse(board *domain.Board) *dto.BoardDetailResponse {
	cards := make([]dto.CardResponse, 0, len(board.Cards))
	for i := range board.Cards {
		cards = append(cards, *toCardResponse(&board.Cards[i]))
	}
	return &dto.BoardDetailResponse{
		BoardResponse: *toBoardResponse(board),
		Cards:         cards,
	}
}
