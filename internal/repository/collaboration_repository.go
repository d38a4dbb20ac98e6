package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// FolderCollaborationRepository defines the interface for folder
// invitation data access
type FolderCollaborationRepository interface {
	Create(ctx context.Context, collab *domain.FolderCollaboration) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FolderCollaboration, error)
	FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.FolderCollaboration, error)
	FindByFolderAndEmail(ctx context.Context, folderID uuid.UUID, email string) (*domain.FolderCollaboration, error)
	FindAcceptedByFolderAndUser(ctx context.Context, folderID, userID uuid.UUID) (*domain.FolderCollaboration, error)
	FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error)
	FindPendingForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error)
	FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.FolderCollaboration, error)
	Update(ctx context.Context, collab *domain.FolderCollaboration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderCollaborationRepositoryImpl struct {
	db *gorm.DB
}

// NewFolderCollaborationRepository creates a new instance of
// FolderCollaborationRepository
func NewFolderCollaborationRepository(db *gorm.DB) FolderCollaborationRepository {
	return &folderCollaborationRepositoryImpl{db: db}
}

func (r *folderCollaborationRepositoryImpl) Create(ctx context.Context, collab *domain.FolderCollaboration) error {
	collab.Email = strings.ToLower(collab.Email)
	return r.db.WithContext(ctx).Create(collab).Error
}

func (r *folderCollaborationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.FolderCollaboration, error) {
	var collab domain.FolderCollaboration
	if err := r.db.WithContext(ctx).First(&collab, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

func (r *folderCollaborationRepositoryImpl) FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.FolderCollaboration, error) {
	var collabs []*domain.FolderCollaboration
	if err := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("created_at ASC").
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

// FindByFolderAndEmail looks up the single record for the unique
// (folder, email) pair. Returns nil, nil when no record exists.
func (r *folderCollaborationRepositoryImpl) FindByFolderAndEmail(ctx context.Context, folderID uuid.UUID, email string) (*domain.FolderCollaboration, error) {
	var collab domain.FolderCollaboration
	err := r.db.WithContext(ctx).
		Where("folder_id = ? AND email = ?", folderID, strings.ToLower(email)).
		First(&collab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// FindAcceptedByFolderAndUser returns the accepted record granting the
// user a role on the folder. Returns nil, nil when none exists.
func (r *folderCollaborationRepositoryImpl) FindAcceptedByFolderAndUser(ctx context.Context, folderID, userID uuid.UUID) (*domain.FolderCollaboration, error) {
	var collab domain.FolderCollaboration
	err := r.db.WithContext(ctx).
		Where("folder_id = ? AND user_id = ? AND status = ?", folderID, userID, domain.CollaborationAccepted).
		First(&collab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// FindAcceptedForUser returns the accepted records granting the user a
// role on any folder, matched by user id or lowercased email.
func (r *folderCollaborationRepositoryImpl) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	var collabs []*domain.FolderCollaboration
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (user_id = ? OR email = ?)", domain.CollaborationAccepted, userID, strings.ToLower(email)).
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

// FindPendingForUser matches pending invitations by user id or by the
// lowercased email used at invite time (the invitee may not have had an
// account yet).
func (r *folderCollaborationRepositoryImpl) FindPendingForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	var collabs []*domain.FolderCollaboration
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (user_id = ? OR email = ?)", domain.CollaborationPending, userID, strings.ToLower(email)).
		Order("created_at DESC").
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

func (r *folderCollaborationRepositoryImpl) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.FolderCollaboration, error) {
	var collabs []*domain.FolderCollaboration
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", domain.CollaborationPending, cutoff).
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

func (r *folderCollaborationRepositoryImpl) Update(ctx context.Context, collab *domain.FolderCollaboration) error {
	return r.db.WithContext(ctx).Save(collab).Error
}

func (r *folderCollaborationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.FolderCollaboration{}, "id = ?", id).Error
}

// BoardCollaborationRepository defines the interface for board
// invitation data access
type BoardCollaborationRepository interface {
	Create(ctx context.Context, collab *domain.BoardCollaboration) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCollaboration, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCollaboration, error)
	FindByBoardAndEmail(ctx context.Context, boardID uuid.UUID, email string) (*domain.BoardCollaboration, error)
	FindAcceptedByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardCollaboration, error)
	FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.BoardCollaboration, error)
	FindNonDeclinedByEmail(ctx context.Context, email string) ([]*domain.BoardCollaboration, error)
	FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.BoardCollaboration, error)
	Update(ctx context.Context, collab *domain.BoardCollaboration) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type boardCollaborationRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardCollaborationRepository creates a new instance of
// BoardCollaborationRepository
func NewBoardCollaborationRepository(db *gorm.DB) BoardCollaborationRepository {
	return &boardCollaborationRepositoryImpl{db: db}
}

func (r *boardCollaborationRepositoryImpl) Create(ctx context.Context, collab *domain.BoardCollaboration) error {
	collab.Email = strings.ToLower(collab.Email)
	return r.db.WithContext(ctx).Create(collab).Error
}

func (r *boardCollaborationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCollaboration, error) {
	var collab domain.BoardCollaboration
	if err := r.db.WithContext(ctx).First(&collab, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

func (r *boardCollaborationRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCollaboration, error) {
	var collabs []*domain.BoardCollaboration
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("invited_at ASC").
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

// FindByBoardAndEmail looks up the single record for the unique
// (board, email) pair. Returns nil, nil when no record exists.
func (r *boardCollaborationRepositoryImpl) FindByBoardAndEmail(ctx context.Context, boardID uuid.UUID, email string) (*domain.BoardCollaboration, error) {
	var collab domain.BoardCollaboration
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND email = ?", boardID, strings.ToLower(email)).
		First(&collab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// FindAcceptedByBoardAndUser returns the accepted record granting the
// user a role on the board. Returns nil, nil when none exists.
func (r *boardCollaborationRepositoryImpl) FindAcceptedByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardCollaboration, error) {
	var collab domain.BoardCollaboration
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ? AND status = ?", boardID, userID, domain.CollaborationAccepted).
		First(&collab).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &collab, nil
}

// FindAcceptedForUser returns the accepted records granting the user a
// role on any board, matched by user id or lowercased email.
func (r *boardCollaborationRepositoryImpl) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.BoardCollaboration, error) {
	var collabs []*domain.BoardCollaboration
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (user_id = ? OR email = ?)", domain.CollaborationAccepted, userID, strings.ToLower(email)).
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

// FindNonDeclinedByEmail matches board invitations by exact lowercased
// email, excluding declined ones.
func (r *boardCollaborationRepositoryImpl) FindNonDeclinedByEmail(ctx context.Context, email string) ([]*domain.BoardCollaboration, error) {
	var collabs []*domain.BoardCollaboration
	if err := r.db.WithContext(ctx).
		Where("email = ? AND status <> ?", strings.ToLower(email), domain.CollaborationDeclined).
		Order("invited_at DESC").
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

func (r *boardCollaborationRepositoryImpl) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.BoardCollaboration, error) {
	var collabs []*domain.BoardCollaboration
	if err := r.db.WithContext(ctx).
		Where("status = ? AND invited_at < ?", domain.CollaborationPending, cutoff).
		Find(&collabs).Error; err != nil {
		return nil, err
	}
	return collabs, nil
}

func (r *boardCollaborationRepositoryImpl) Update(ctx context.Context, collab *domain.BoardCollaboration) error {
	return r.db.WithContext(ctx).Save(collab).Error
}

func (r *boardCollaborationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.BoardCollaboration{}, "id = ?", id).Error
}
