package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/repository"
)

// resolveFolderRole returns the effective role the user has on a folder:
// owner for the owner, the accepted collaboration role when one exists,
// nothing otherwise.
func resolveFolderRole(ctx context.Context, collabRepo repository.FolderCollaborationRepository, folder *domain.Folder, userID uuid.UUID) (domain.CollaborationRole, bool, error) {
	if folder.OwnerID == userID {
		return domain.CollaborationRoleOwner, true, nil
	}
	collab, err := collabRepo.FindAcceptedByFolderAndUser(ctx, folder.ID, userID)
	if err != nil {
		return "", false, err
	}
	if collab == nil {
		return "", false, nil
	}
	return collab.Role, true, nil
}

// resolveBoardRole returns the effective role the user has on a board
func resolveBoardRole(ctx context.Context, collabRepo repository.BoardCollaborationRepository, board *domain.Board, userID uuid.UUID) (domain.CollaborationRole, bool, error) {
	if board.OwnerID == userID {
		return domain.CollaborationRoleOwner, true, nil
	}
	collab, err := collabRepo.FindAcceptedByBoardAndUser(ctx, board.ID, userID)
	if err != nil {
		return "", false, err
	}
	if collab == nil {
		return "", false, nil
	}
	return collab.Role, true, nil
}

// normalizeEmail lowercases and trims an invitee email. Collaboration
// records always store the normalized form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
