package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/dto"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// InvitationService aggregates a user's open invitations across
// resource types
type InvitationService interface {
	GetPendingFolderInvitations(ctx context.Context, userID uuid.UUID, email string) (*dto.PendingInvitationsResponse, error)
	GetPendingBoardInvitations(ctx context.Context, email string) (*dto.PendingBoardInvitationsResponse, error)
}

// invitationServiceImpl is the implementation of InvitationService
type invitationServiceImpl struct {
	folderCollabRepo repository.FolderCollaborationRepository
	boardCollabRepo  repository.BoardCollaborationRepository
	boardRepo        repository.BoardRepository
	logger           *zap.Logger
}

// NewInvitationService creates a new instance of InvitationService
func NewInvitationService(folderCollabRepo repository.FolderCollaborationRepository, boardCollabRepo repository.BoardCollaborationRepository, boardRepo repository.BoardRepository, logger *zap.Logger) InvitationService {
	return &invitationServiceImpl{
		folderCollabRepo: folderCollabRepo,
		boardCollabRepo:  boardCollabRepo,
		boardRepo:        boardRepo,
		logger:           logger,
	}
}

// GetPendingFolderInvitations returns the user's pending folder
// invitations, matched by user id or by the lowercased invite email.
func (s *invitationServiceImpl) GetPendingFolderInvitations(ctx context.Context, userID uuid.UUID, email string) (*dto.PendingInvitationsResponse, error) {
	collabs, err := s.folderCollabRepo.FindPendingForUser(ctx, userID, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list pending invitations", err.Error())
	}

	invitations := make([]dto.FolderCollaborationResponse, 0, len(collabs))
	for _, collab := range collabs {
		invitations = append(invitations, *toFolderCollabResponseBare(collab))
	}

	return &dto.PendingInvitationsResponse{Invitations: invitations}, nil
}

// GetPendingBoardInvitations returns the user's non-declined board
// invitations matched by exact lowercased email, each joined with its
// owning board. A collaboration whose board row is gone is returned
// without board details rather than failing the whole listing.
func (s *invitationServiceImpl) GetPendingBoardInvitations(ctx context.Context, email string) (*dto.PendingBoardInvitationsResponse, error) {
	collabs, err := s.boardCollabRepo.FindNonDeclinedByEmail(ctx, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list board invitations", err.Error())
	}

	boardIDs := make([]uuid.UUID, 0, len(collabs))
	for _, collab := range collabs {
		boardIDs = append(boardIDs, collab.BoardID)
	}

	boardsByID := make(map[uuid.UUID]*dto.BoardResponse, len(boardIDs))
	if len(boardIDs) > 0 {
		boards, err := s.boardRepo.FindByIDs(ctx, boardIDs)
		if err != nil {
			s.logger.Warn("Failed to load boards for invitation listing", zap.Error(err))
		} else {
			for _, board := range boards {
				boardsByID[board.ID] = toBoardResponse(board)
			}
		}
	}

	invitations := make([]dto.BoardCollaborationResponse, 0, len(collabs))
	for _, collab := range collabs {
		resp := toBoardCollabResponseBare(collab)
		resp.Board = boardsByID[collab.BoardID]
		invitations = append(invitations, *resp)
	}

	return &dto.PendingBoardInvitationsResponse{Invitations: invitations}, nil
}
