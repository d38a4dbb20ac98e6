package job

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"linkboard-api/internal/domain"
)

type stubFolderCollabRepo struct {
	pending []*domain.FolderCollaboration
	updated []*domain.FolderCollaboration
}

func (s *stubFolderCollabRepo) Create(ctx context.Context, collab *domain.FolderCollaboration) error {
	return nil
}

func (s *stubFolderCollabRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindByFolderID(ctx context.Context, folderID uuid.UUID) ([]*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindByFolderAndEmail(ctx context.Context, folderID uuid.UUID, email string) (*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindAcceptedByFolderAndUser(ctx context.Context, folderID, userID uuid.UUID) (*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindPendingForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.FolderCollaboration, error) {
	return nil, nil
}

func (s *stubFolderCollabRepo) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.FolderCollaboration, error) {
	return s.pending, nil
}

func (s *stubFolderCollabRepo) Update(ctx context.Context, collab *domain.FolderCollaboration) error {
	s.updated = append(s.updated, collab)
	return nil
}

func (s *stubFolderCollabRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type stubBoardCollabRepo struct {
	pending []*domain.BoardCollaboration
	updated []*domain.BoardCollaboration
}

func (s *stubBoardCollabRepo) Create(ctx context.Context, collab *domain.BoardCollaboration) error {
	return nil
}

func (s *stubBoardCollabRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindByBoardAndEmail(ctx context.Context, boardID uuid.UUID, email string) (*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindAcceptedByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindAcceptedForUser(ctx context.Context, userID uuid.UUID, email string) ([]*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindNonDeclinedByEmail(ctx context.Context, email string) ([]*domain.BoardCollaboration, error) {
	return nil, nil
}

func (s *stubBoardCollabRepo) FindPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.BoardCollaboration, error) {
	return s.pending, nil
}

func (s *stubBoardCollabRepo) Update(ctx context.Context, collab *domain.BoardCollaboration) error {
	s.updated = append(s.updated, collab)
	return nil
}

func (s *stubBoardCollabRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestCleanupJob_DeclinesExpiredInvitations(t *testing.T) {
	folderRepo := &stubFolderCollabRepo{
		pending: []*domain.FolderCollaboration{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.CollaborationPending},
			// Already accepted rows can be returned by a stale query;
			// they must never be flipped back
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.CollaborationAccepted},
		},
	}
	boardRepo := &stubBoardCollabRepo{
		pending: []*domain.BoardCollaboration{
			{BaseModel: domain.BaseModel{ID: uuid.New()}, Status: domain.CollaborationPending},
		},
	}

	job := NewCleanupJob(folderRepo, boardRepo, 30*24*time.Hour, zap.NewNop())
	job.Run()

	if len(folderRepo.updated) != 1 {
		t.Fatalf("expected 1 folder invitation declined, got %d", len(folderRepo.updated))
	}
	if folderRepo.updated[0].Status != domain.CollaborationDeclined {
		t.Errorf("expected status %s, got %s", domain.CollaborationDeclined, folderRepo.updated[0].Status)
	}

	if len(boardRepo.updated) != 1 {
		t.Fatalf("expected 1 board invitation declined, got %d", len(boardRepo.updated))
	}
	if boardRepo.updated[0].Status != domain.CollaborationDeclined {
		t.Errorf("expected status %s, got %s", domain.CollaborationDeclined, boardRepo.updated[0].Status)
	}
	if boardRepo.updated[0].RespondedAt == nil {
		t.Error("expected RespondedAt stamped on the declined board invitation")
	}
}

func TestCleanupJob_NothingToDecline(t *testing.T) {
	folderRepo := &stubFolderCollabRepo{}
	boardRepo := &stubBoardCollabRepo{}

	job := NewCleanupJob(folderRepo, boardRepo, 30*24*time.Hour, zap.NewNop())
	job.Run()

	if len(folderRepo.updated) != 0 || len(boardRepo.updated) != 0 {
		t.Errorf("expected no updates, got %d folder and %d board",
			len(folderRepo.updated), len(boardRepo.updated))
	}
}

func TestCleanupJob_Schedule(t *testing.T) {
	job := NewCleanupJob(&stubFolderCollabRepo{}, &stubBoardCollabRepo{}, time.Hour, zap.NewNop())

	c, err := job.Schedule()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Stop()

	if len(c.Entries()) != 1 {
		t.Errorf("expected 1 scheduled entry, got %d", len(c.Entries()))
	}
}
