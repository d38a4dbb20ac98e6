package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/metrics"
	"linkboard-api/internal/repository"
	"linkboard-api/internal/response"
)

// CollaborationService defines the interface for invitation business logic
type CollaborationService interface {
	InviteToFolder(ctx context.Context, folderID uuid.UUID, req *dto.InviteRequest, inviterID uuid.UUID) (*dto.FolderCollaborationResponse, error)
	InviteToBoard(ctx context.Context, boardID uuid.UUID, req *dto.InviteRequest, inviterID uuid.UUID) (*dto.BoardCollaborationResponse, error)
	RespondToFolderInvitation(ctx context.Context, collabID uuid.UUID, accept bool, userID uuid.UUID, email string) (*dto.FolderCollaborationResponse, error)
	RespondToBoardInvitation(ctx context.Context, collabID uuid.UUID, accept bool, userID uuid.UUID, email string) (*dto.BoardCollaborationResponse, error)
	ListFolderCollaborations(ctx context.Context, folderID, userID uuid.UUID) ([]*dto.FolderCollaborationResponse, error)
	ListBoardCollaborations(ctx context.Context, boardID, userID uuid.UUID) ([]*dto.BoardCollaborationResponse, error)
	RemoveFolderCollaboration(ctx context.Context, collabID, userID uuid.UUID) error
	RemoveBoardCollaboration(ctx context.Context, collabID, userID uuid.UUID) error
}

// collaborationServiceImpl is the implementation of CollaborationService
type collaborationServiceImpl struct {
	folderCollabRepo repository.FolderCollaborationRepository
	boardCollabRepo  repository.BoardCollaborationRepository
	folderRepo       repository.FolderRepository
	boardRepo        repository.BoardRepository
	userRepo         repository.UserRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewCollaborationService creates a new instance of CollaborationService
func NewCollaborationService(folderCollabRepo repository.FolderCollaborationRepository, boardCollabRepo repository.BoardCollaborationRepository, folderRepo repository.FolderRepository, boardRepo repository.BoardRepository, userRepo repository.UserRepository, m *metrics.Metrics, logger *zap.Logger) CollaborationService {
	return &collaborationServiceImpl{
		folderCollabRepo: folderCollabRepo,
		boardCollabRepo:  boardCollabRepo,
		folderRepo:       folderRepo,
		boardRepo:        boardRepo,
		userRepo:         userRepo,
		metrics:          m,
		logger:           logger,
	}
}

// InviteToFolder invites an email to a folder. At most one record per
// (folder, email) ever exists: a live record gets its role updated in
// place, a declined record is replaced by a fresh pending one.
func (s *collaborationServiceImpl) InviteToFolder(ctx context.Context, folderID uuid.UUID, req *dto.InviteRequest, inviterID uuid.UUID) (*dto.FolderCollaborationResponse, error) {
	if !req.Role.Valid() || req.Role == domain.CollaborationRoleOwner {
		return nil, response.NewValidationError("Role must be editor or viewer")
	}

	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	role, ok, err := resolveFolderRole(ctx, s.folderCollabRepo, folder, inviterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve folder access", err.Error())
	}
	if !ok || !role.CanEdit() {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have permission to invite to this folder", "")
	}

	inviter, err := s.userRepo.FindByID(ctx, inviterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load inviter", err.Error())
	}

	email := normalizeEmail(req.Email)
	if email == inviter.Email {
		return nil, response.NewValidationError("You cannot invite yourself")
	}

	existing, err := s.folderCollabRepo.FindByFolderAndEmail(ctx, folderID, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing invitation", err.Error())
	}

	if existing != nil {
		switch existing.Status {
		case domain.CollaborationDeclined:
			// A declined record is terminal; replace it so the new
			// invitation starts pending again.
			if err := s.folderCollabRepo.Delete(ctx, existing.ID); err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace declined invitation", err.Error())
			}
		default:
			existing.Role = req.Role
			existing.InviterID = inviter.ID
			existing.InviterName = inviter.Name
			if err := s.folderCollabRepo.Update(ctx, existing); err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invitation", err.Error())
			}
			return s.toFolderCollabResponse(ctx, existing), nil
		}
	}

	collab := &domain.FolderCollaboration{
		FolderID:    folderID,
		Email:       email,
		Role:        req.Role,
		InviterID:   inviter.ID,
		InviterName: inviter.Name,
		Status:      domain.CollaborationPending,
	}

	// Link immediately when the invitee already has an account
	if invitee, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		collab.UserID = &invitee.ID
	}

	if err := s.folderCollabRepo.Create(ctx, collab); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create invitation", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementInvitationSent("folder")
	}

	return s.toFolderCollabResponse(ctx, collab), nil
}

// InviteToBoard invites an email to a board with the same upsert
// semantics as folder invitations.
func (s *collaborationServiceImpl) InviteToBoard(ctx context.Context, boardID uuid.UUID, req *dto.InviteRequest, inviterID uuid.UUID) (*dto.BoardCollaborationResponse, error) {
	if !req.Role.Valid() || req.Role == domain.CollaborationRoleOwner {
		return nil, response.NewValidationError("Role must be editor or viewer")
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	role, ok, err := resolveBoardRole(ctx, s.boardCollabRepo, board, inviterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve board access", err.Error())
	}
	if !ok || !role.CanEdit() {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have permission to invite to this board", "")
	}

	inviter, err := s.userRepo.FindByID(ctx, inviterID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load inviter", err.Error())
	}

	email := normalizeEmail(req.Email)
	if email == inviter.Email {
		return nil, response.NewValidationError("You cannot invite yourself")
	}

	existing, err := s.boardCollabRepo.FindByBoardAndEmail(ctx, boardID, email)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing invitation", err.Error())
	}

	if existing != nil {
		switch existing.Status {
		case domain.CollaborationDeclined:
			if err := s.boardCollabRepo.Delete(ctx, existing.ID); err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace declined invitation", err.Error())
			}
		default:
			existing.Role = req.Role
			existing.InviterID = inviter.ID
			if err := s.boardCollabRepo.Update(ctx, existing); err != nil {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invitation", err.Error())
			}
			return s.toBoardCollabResponse(ctx, existing), nil
		}
	}

	collab := &domain.BoardCollaboration{
		BoardID:   boardID,
		Email:     email,
		Role:      req.Role,
		InviterID: inviter.ID,
		Status:    domain.CollaborationPending,
		InvitedAt: time.Now(),
	}

	if invitee, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		collab.UserID = &invitee.ID
		collab.Name = invitee.Name
		collab.Image = invitee.Image
	}

	if err := s.boardCollabRepo.Create(ctx, collab); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create invitation", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementInvitationSent("board")
	}

	return s.toBoardCollabResponse(ctx, collab), nil
}

// RespondToFolderInvitation records the invitee's accept or decline.
// Only a pending record may transition, and only the invitee may respond.
func (s *collaborationServiceImpl) RespondToFolderInvitation(ctx context.Context, collabID uuid.UUID, accept bool, userID uuid.UUID, email string) (*dto.FolderCollaborationResponse, error) {
	collab, err := s.folderCollabRepo.FindByID(ctx, collabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Invitation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load invitation", err.Error())
	}

	if !s.isFolderInvitee(collab, userID, email) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the invitee can respond to an invitation", "")
	}

	target := domain.CollaborationDeclined
	if accept {
		target = domain.CollaborationAccepted
	}
	if !collab.Status.CanTransitionTo(target) {
		return nil, response.NewAppError(response.ErrCodeConflict, "Invitation has already been responded to", "")
	}

	collab.Status = target
	if collab.UserID == nil {
		collab.UserID = &userID
	}

	if err := s.folderCollabRepo.Update(ctx, collab); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invitation", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementInvitationResponded("folder", string(target))
	}

	return s.toFolderCollabResponse(ctx, collab), nil
}

// RespondToBoardInvitation records the invitee's accept or decline,
// stamping responded_at and snapshotting the invitee's profile.
func (s *collaborationServiceImpl) RespondToBoardInvitation(ctx context.Context, collabID uuid.UUID, accept bool, userID uuid.UUID, email string) (*dto.BoardCollaborationResponse, error) {
	collab, err := s.boardCollabRepo.FindByID(ctx, collabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Invitation not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load invitation", err.Error())
	}

	if !s.isBoardInvitee(collab, userID, email) {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Only the invitee can respond to an invitation", "")
	}

	target := domain.CollaborationDeclined
	if accept {
		target = domain.CollaborationAccepted
	}
	if !collab.Status.CanTransitionTo(target) {
		return nil, response.NewAppError(response.ErrCodeConflict, "Invitation has already been responded to", "")
	}

	now := time.Now()
	collab.Status = target
	collab.RespondedAt = &now
	if collab.UserID == nil {
		collab.UserID = &userID
	}
	if user, err := s.userRepo.FindByID(ctx, userID); err == nil {
		collab.Name = user.Name
		collab.Image = user.Image
	}

	if err := s.boardCollabRepo.Update(ctx, collab); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update invitation", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementInvitationResponded("board", string(target))
	}

	return s.toBoardCollabResponse(ctx, collab), nil
}

// ListFolderCollaborations lists the invitation records on a folder
func (s *collaborationServiceImpl) ListFolderCollaborations(ctx context.Context, folderID, userID uuid.UUID) ([]*dto.FolderCollaborationResponse, error) {
	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}

	if _, ok, err := resolveFolderRole(ctx, s.folderCollabRepo, folder, userID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve folder access", err.Error())
	} else if !ok {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this folder", "")
	}

	collabs, err := s.folderCollabRepo.FindByFolderID(ctx, folderID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list collaborations", err.Error())
	}

	responses := make([]*dto.FolderCollaborationResponse, 0, len(collabs))
	for _, collab := range collabs {
		responses = append(responses, toFolderCollabResponseBare(collab))
	}
	return responses, nil
}

// ListBoardCollaborations lists the invitation records on a board
func (s *collaborationServiceImpl) ListBoardCollaborations(ctx context.Context, boardID, userID uuid.UUID) ([]*dto.BoardCollaborationResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	if _, ok, err := resolveBoardRole(ctx, s.boardCollabRepo, board, userID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve board access", err.Error())
	} else if !ok {
		return nil, response.NewAppError(response.ErrCodeForbidden, "You do not have access to this board", "")
	}

	collabs, err := s.boardCollabRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list collaborations", err.Error())
	}

	responses := make([]*dto.BoardCollaborationResponse, 0, len(collabs))
	for _, collab := range collabs {
		responses = append(responses, toBoardCollabResponseBare(collab))
	}
	return responses, nil
}

// RemoveFolderCollaboration removes an invitation record. Only the
// folder owner may remove.
func (s *collaborationServiceImpl) RemoveFolderCollaboration(ctx context.Context, collabID, userID uuid.UUID) error {
	collab, err := s.folderCollabRepo.FindByID(ctx, collabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Collaboration not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load collaboration", err.Error())
	}

	folder, err := s.folderRepo.FindByID(ctx, collab.FolderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Folder not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load folder", err.Error())
	}
	if folder.OwnerID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the owner can remove a collaborator", "")
	}

	if err := s.folderCollabRepo.Delete(ctx, collabID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove collaboration", err.Error())
	}
	return nil
}

// RemoveBoardCollaboration removes an invitation record. Only the
// board owner may remove.
func (s *collaborationServiceImpl) RemoveBoardCollaboration(ctx context.Context, collabID, userID uuid.UUID) error {
	collab, err := s.boardCollabRepo.FindByID(ctx, collabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Collaboration not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load collaboration", err.Error())
	}

	board, err := s.boardRepo.FindByID(ctx, collab.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	if board.OwnerID != userID {
		return response.NewAppError(response.ErrCodeForbidden, "Only the owner can remove a collaborator", "")
	}

	if err := s.boardCollabRepo.Delete(ctx, collabID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove collaboration", err.Error())
	}
	return nil
}

func (s *collaborationServiceImpl) isFolderInvitee(collab *domain.FolderCollaboration, userID uuid.UUID, email string) bool {
	if collab.UserID != nil && *collab.UserID == userID {
		return true
	}
	return collab.Email == normalizeEmail(email)
}

func (s *collaborationServiceImpl) isBoardInvitee(collab *domain.BoardCollaboration, userID uuid.UUID, email string) bool {
	if collab.UserID != nil && *collab.UserID == userID {
		return true
	}
	return collab.Email == normalizeEmail(email)
}

// toFolderCollabResponse joins the owning folder's details when the
// folder still exists; a dangling record is returned bare.
func (s *collaborationServiceImpl) toFolderCollabResponse(ctx context.Context, collab *domain.FolderCollaboration) *dto.FolderCollaborationResponse {
	resp := toFolderCollabResponseBare(collab)
	if folder, err := s.folderRepo.FindByID(ctx, collab.FolderID); err == nil {
		resp.Folder = toFolderResponse(folder)
	}
	return resp
}

func (s *collaborationServiceImpl) toBoardCollabResponse(ctx context.Context, collab *domain.BoardCollaboration) *dto.BoardCollaborationResponse {
	resp := toBoardCollabResponseBare(collab)
	if board, err := s.boardRepo.FindByID(ctx, collab.BoardID); err == nil {
		resp.Board = toBoardResponse(board)
	}
	return resp
}

func toFolderCollabResponseBare(collab *domain.FolderCollaboration) *dto.FolderCollaborationResponse {
	return &dto.FolderCollaborationResponse{
		ID:          collab.ID,
		FolderID:    collab.FolderID,
		UserID:      collab.UserID,
		Email:       collab.Email,
		Role:        collab.Role,
		InviterID:   collab.InviterID,
		InviterName: collab.InviterName,
		Status:      collab.Status,
		CreatedAt:   collab.CreatedAt,
	}
}

func toBoardCollabResponseBare(collab *domain.BoardCollaboration) *dto.BoardCollaborationResponse {
	return &dto.BoardCollaborationResponse{
		ID:          collab.ID,
		BoardID:     collab.BoardID,
		UserID:      collab.UserID,
		Email:       collab.Email,
		Name:        collab.Name,
		Image:       collab.Image,
		Role:        collab.Role,
		InviterID:   collab.InviterID,
		Status:      collab.Status,
		InvitedAt:   collab.InvitedAt,
		RespondedAt: collab.RespondedAt,
	}
}
