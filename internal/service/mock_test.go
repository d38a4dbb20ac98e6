package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
)

// MockFolderRepository is a mock implementation of FolderRepository
type MockFolderRepository struct {
	CreateFunc                func(ctx context.Context, folder *domain.Folder) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	FindByIDWithBookmarksFunc func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	FindByOwnerFunc           func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error)
	FindByOwnerAndNameFunc    func(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error)
	FindByIDsFunc             func(ctx context.Context, ids []uuid.UUID) ([]*domain.Folder, error)
	UpdateFunc                func(ctx context.Context, folder *domain.Folder) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *domain.Folder) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, folder)
	}
	return nil
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFolderRepository) FindByIDWithBookmarks(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	if m.FindByIDWithBookmarksFunc != nil {
		return m.FindByIDWithBookmarksFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFolderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Folder, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockFolderRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Folder, error) {
	if m.FindByOwnerAndNameFunc != nil {
		return m.FindByOwnerAndNameFunc(ctx, ownerID, name)
	}
	return nil, nil
}

func (m *MockFolderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Folder, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockFolderRepository) Update(ctx context.Context, folder *domain.Folder) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, folder)
	}
	return nil
}

func (m *MockFolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBookmarkRepository is a mock implementation of BookmarkRepository
type MockBookmarkRepository struct {
	CreateFunc          func(ctx context.Context, bookmark *domain.Bookmark) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error)
	FindByFolderIDFunc  func(ctx context.Context, folderID uuid.UUID) ([]*domain.Bookmark, error)
	CountByFolderIDFunc func(ctx context.Context, folderID uuid.UUID) (int64, error)
	UpdateFunc          func(ctx context.Context, bookmark *domain.Bookmark) error
	UpdatePositionsFunc func(ctx context.Context, folderID uuid.UUID, orderedIDs []uuid.UUID) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, bookmark)
	}
	return nil
}

func (m *MockBookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Bookmark, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookmarkRepository) FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.Bookmark, error) {
	if m.FindByFolderIDFunc != nil {
		return m.FindByFolderIDFunc(ctx, folderID)
	}
	return nil, nil
}

func (m *MockBookmarkRepository) CountByFolderID(ctx context.Context, folderID uuid.UUID) (int64, error) {
	if m.CountByFolderIDFunc != nil {
		return m.CountByFolderIDFunc(ctx, folderID)
	}
	return 0, nil
}

func (m *MockBookmarkRepository) Update(ctx context.Context, bookmark *domain.Bookmark) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, bookmark)
	}
	return nil
}

func (m *MockBookmarkRepository) UpdatePositions(ctx context.Context, folderID uuid.UUID, orderedIDs []uuid.UUID) error {
	if m.UpdatePositionsFunc != nil {
		return m.UpdatePositionsFunc(ctx, folderID, orderedIDs)
	}
	return nil
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc            func(ctx context.Context, board *domain.Board) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithCardsFunc func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByOwnerFunc       func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)
	FindByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.Board, error)
	UpdateFunc            func(ctx context.Context, board *domain.Board) error
	AdjustCardCountFunc   func(ctx context.Context, id uuid.UUID, delta int) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDWithCards(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDWithCardsFunc != nil {
		return m.FindByIDWithCardsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Board, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) AdjustCardCount(ctx context.Context, id uuid.UUID, delta int) error {
	if m.AdjustCardCountFunc != nil {
		return m.AdjustCardCountFunc(ctx, id, delta)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCardRepository is a mock implementation of CardRepository
type MockCardRepository struct {
	CreateFunc        func(ctx context.Context, card *domain.BoardCard) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error)
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCard, error)
	UpdateFunc        func(ctx context.Context, card *domain.BoardCard) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCardRepository) Create(ctx context.Context, card *domain.BoardCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCardRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCard, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockCardRepository) Update(ctx context.Context, card *domain.BoardCard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, card)
	}
	return nil
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTimelineRepository is a mock implementation of TimelineRepository
type MockTimelineRepository struct {
	CreateFunc        func(ctx context.Context, entry *domain.BoardTimelineEntry) error
	FindByBoardIDFunc func(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.BoardTimelineEntry, error)
}

func (m *MockTimelineRepository) Create(ctx context.Context, entry *domain.BoardTimelineEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return nil
}

func (m *MockTimelineRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.BoardTimelineEntry, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID, limit)
	}
	return nil, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc               func(ctx context.Context, user *domain.User) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc          func(ctx context.Context, email string) (*domain.User, error)
	FindByProviderFunc       func(ctx context.Context, provider, providerID string) (*domain.User, error)
	UpdateFunc               func(ctx context.Context, user *domain.User) error
	UpdateProfileColumnsFunc func(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByProvider(ctx context.Context, provider, providerID string) (*domain.User, error) {
	if m.FindByProviderFunc != nil {
		return m.FindByProviderFunc(ctx, provider, providerID)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateProfileColumns(ctx context.Context, id uuid.UUID, columns map[string]interface{}) error {
	if m.UpdateProfileColumnsFunc != nil {
		return m.UpdateProfileColumnsFunc(ctx, id, columns)
	}
	return nil
}

// MockFolderCollaborationRepository is a mock implementation of FolderCollaborationRepository
type MockFolderCollaborationRepository struct {
	CreateFunc                      func(ctx context.Context, collab *domain.FolderCollaboration) error
	FindByIDFunc                    func(ctx context.Context, id uuid.UUID) (*domain.FolderCollaboration, error)
	FindByFolderIDFunc              func(ctx context.Context, folderID uuid.UUID) ([]*domain.FolderCollaboration, error)
	FindByFolderAndEmailFunc        func(ctx context.Context, folderID uuid.UUID, email string) (*domain.FolderCollaboration, error)
	FindAcceptedByFolderAndUserFunc func(ctx context.Context, folderID, userID uuid.UUID) (*domain.FolderCollaboration, error)
	FindAcceptedForUserFunc         func(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error)
	FindPendingForUserFunc          func(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error)
	FindPendingOlderThanFunc        func(ctx context.Context, cutoff time.Time) ([]*domain.FolderCollaboration, error)
	UpdateFunc                      func(ctx context.Context, collab *domain.FolderCollaboration) error
	DeleteFunc                      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFolderCollaborationRepository) Create(ctx context.Context, collab *domain.FolderCollaboration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, collab)
	}
	return nil
}

func (m *MockFolderCollaborationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FolderCollaboration, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.FolderCollaboration, error) {
	if m.FindByFolderIDFunc != nil {
		return m.FindByFolderIDFunc(ctx, folderID)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindByFolderAndEmail(ctx context.Context, folderID uuid.UUID, email string) (*domain.FolderCollaboration, error) {
	if m.FindByFolderAndEmailFunc != nil {
		return m.FindByFolderAndEmailFunc(ctx, folderID, email)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindAcceptedByFolderAndUser(ctx context.Context, folderID, userID uuid.UUID) (*domain.FolderCollaboration, error) {
	if m.FindAcceptedByFolderAndUserFunc != nil {
		return m.FindAcceptedByFolderAndUserFunc(ctx, folderID, userID)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	if m.FindAcceptedForUserFunc != nil {
		return m.FindAcceptedForUserFunc(ctx, userID, email)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindPendingForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	if m.FindPendingForUserFunc != nil {
		return m.FindPendingForUserFunc(ctx, userID, email)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.FolderCollaboration, error) {
	if m.FindPendingOlderThanFunc != nil {
		return m.FindPendingOlderThanFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *MockFolderCollaborationRepository) Update(ctx context.Context, collab *domain.FolderCollaboration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, collab)
	}
	return nil
}

func (m *MockFolderCollaborationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBoardCollaborationRepository is a mock implementation of BoardCollaborationRepository
type MockBoardCollaborationRepository struct {
	CreateFunc                     func(ctx context.Context, collab *domain.BoardCollaboration) error
	FindByIDFunc                   func(ctx context.Context, id uuid.UUID) (*domain.BoardCollaboration, error)
	FindByBoardIDFunc              func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCollaboration, error)
	FindByBoardAndEmailFunc        func(ctx context.Context, boardID uuid.UUID, email string) (*domain.BoardCollaboration, error)
	FindAcceptedByBoardAndUserFunc func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardCollaboration, error)
	FindAcceptedForUserFunc        func(ctx context.Context, userID uuid.UUID, email string) ([]*domain.BoardCollaboration, error)
	FindNonDeclinedByEmailFunc     func(ctx context.Context, email string) ([]*domain.BoardCollaboration, error)
	FindPendingOlderThanFunc       func(ctx context.Context, cutoff time.Time) ([]*domain.BoardCollaboration, error)
	UpdateFunc                     func(ctx context.Context, collab *domain.BoardCollaboration) error
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardCollaborationRepository) Create(ctx context.Context, collab *domain.BoardCollaboration) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, collab)
	}
	return nil
}

func (m *MockBoardCollaborationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCollaboration, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCollaboration, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindByBoardAndEmail(ctx context.Context, boardID uuid.UUID, email string) (*domain.BoardCollaboration, error) {
	if m.FindByBoardAndEmailFunc != nil {
		return m.FindByBoardAndEmailFunc(ctx, boardID, email)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindAcceptedByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardCollaboration, error) {
	if m.FindAcceptedByBoardAndUserFunc != nil {
		return m.FindAcceptedByBoardAndUserFunc(ctx, boardID, userID)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.BoardCollaboration, error) {
	if m.FindAcceptedForUserFunc != nil {
		return m.FindAcceptedForUserFunc(ctx, userID, email)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindNonDeclinedByEmail(ctx context.Context, email string) ([]*domain.BoardCollaboration, error) {
	if m.FindNonDeclinedByEmailFunc != nil {
		return m.FindNonDeclinedByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.BoardCollaboration, error) {
	if m.FindPendingOlderThanFunc != nil {
		return m.FindPendingOlderThanFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *MockBoardCollaborationRepository) Update(ctx context.Context, collab *domain.BoardCollaboration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, collab)
	}
	return nil
}

func (m *MockBoardCollaborationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBroadcaster is a mock implementation of TimelineBroadcaster
type MockBroadcaster struct {
	BroadcastTimelineEntryFunc func(boardID uuid.UUID, entry *dto.TimelineEntryResponse)
	Entries                    []*dto.TimelineEntryResponse
}

func (m *MockBroadcaster) BroadcastTimelineEntry(boardID uuid.UUID, entry *dto.TimelineEntryResponse) {
	m.Entries = append(m.Entries, entry)
	if m.BroadcastTimelineEntryFunc != nil {
		m.BroadcastTimelineEntryFunc(boardID, entry)
	}
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	IssueTokenFunc func(user *domain.User) (string, error)
}

func (m *MockTokenIssuer) IssueToken(user *domain.User) (string, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(user)
	}
	return "test-token", nil
}
