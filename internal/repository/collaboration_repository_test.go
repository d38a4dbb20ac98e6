package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

func setupCollaborationTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create tables by hand for SQLite compatibility
	db.Exec(`CREATE TABLE folder_collaborations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		folder_id TEXT NOT NULL,
		user_id TEXT,
		email TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'viewer',
		inviter_id TEXT NOT NULL,
		inviter_name TEXT,
		status TEXT NOT NULL DEFAULT 'pending'
	)`)
	db.Exec(`CREATE TABLE board_collaborations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		board_id TEXT NOT NULL,
		user_id TEXT,
		email TEXT NOT NULL,
		name TEXT,
		image TEXT,
		role TEXT NOT NULL DEFAULT 'viewer',
		inviter_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		invited_at DATETIME NOT NULL,
		responded_at DATETIME
	)`)

	return db
}

func TestFolderCollaborationRepository_CreateLowercasesEmail(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewFolderCollaborationRepository(db)
	ctx := context.Background()

	folderID := uuid.New()
	collab := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  folderID,
		Email:     "Invitee@Example.COM",
		Role:      domain.CollaborationRoleEditor,
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
	}
	if err := repo.Create(ctx, collab); err != nil {
		t.Fatalf("failed to create collaboration: %v", err)
	}

	// The mixed-case form must resolve to the same stored record
	found, err := repo.FindByFolderAndEmail(ctx, folderID, "INVITEE@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil {
		t.Fatal("expected record for normalized email")
	}
	if found.Email != "invitee@example.com" {
		t.Errorf("expected stored email lowercased, got %q", found.Email)
	}
}

func TestFolderCollaborationRepository_FindByFolderAndEmail_Missing(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewFolderCollaborationRepository(db)

	found, err := repo.FindByFolderAndEmail(context.Background(), uuid.New(), "nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for a missing record, got %+v", found)
	}
}

func TestFolderCollaborationRepository_FindAcceptedForUser(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewFolderCollaborationRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	email := "member@example.com"

	// Accepted and linked by user id
	linked := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  uuid.New(),
		UserID:    &userID,
		Email:     "old-address@example.com",
		Role:      domain.CollaborationRoleEditor,
		InviterID: uuid.New(),
		Status:    domain.CollaborationAccepted,
	}
	// Accepted but only matched by email
	byEmail := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  uuid.New(),
		Email:     email,
		Role:      domain.CollaborationRoleViewer,
		InviterID: uuid.New(),
		Status:    domain.CollaborationAccepted,
	}
	// Still pending: granted nothing yet
	pending := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  uuid.New(),
		Email:     email,
		Role:      domain.CollaborationRoleViewer,
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
	}
	for _, c := range []*domain.FolderCollaboration{linked, byEmail, pending} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create collaboration: %v", err)
		}
	}

	found, err := repo.FindAcceptedForUser(ctx, userID, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 accepted records, got %d", len(found))
	}
	for _, c := range found {
		if c.Status != domain.CollaborationAccepted {
			t.Errorf("expected only accepted records, got %s", c.Status)
		}
	}
}

func TestFolderCollaborationRepository_FindPendingOlderThan(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewFolderCollaborationRepository(db)
	ctx := context.Background()

	stale := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  uuid.New(),
		Email:     "stale@example.com",
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
	}
	fresh := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  uuid.New(),
		Email:     "fresh@example.com",
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
	}
	for _, c := range []*domain.FolderCollaboration{stale, fresh} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create collaboration: %v", err)
		}
	}

	// Age the stale invitation past the cutoff
	staleTime := time.Now().Add(-40 * 24 * time.Hour)
	db.Model(&domain.FolderCollaboration{}).
		Where("id = ?", stale.ID).
		Update("created_at", staleTime)

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	found, err := repo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 expired invitation, got %d", len(found))
	}
	if found[0].ID != stale.ID {
		t.Errorf("expected the stale invitation, got %s", found[0].ID)
	}
}

func TestBoardCollaborationRepository_FindNonDeclinedByEmail(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewBoardCollaborationRepository(db)
	ctx := context.Background()

	email := "invitee@example.com"
	now := time.Now()

	pending := &domain.BoardCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		BoardID:   uuid.New(),
		Email:     email,
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
		InvitedAt: now,
	}
	accepted := &domain.BoardCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		BoardID:   uuid.New(),
		Email:     email,
		InviterID: uuid.New(),
		Status:    domain.CollaborationAccepted,
		InvitedAt: now.Add(-time.Hour),
	}
	declined := &domain.BoardCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		BoardID:   uuid.New(),
		Email:     email,
		InviterID: uuid.New(),
		Status:    domain.CollaborationDeclined,
		InvitedAt: now.Add(-2 * time.Hour),
	}
	for _, c := range []*domain.BoardCollaboration{pending, accepted, declined} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create collaboration: %v", err)
		}
	}

	found, err := repo.FindNonDeclinedByEmail(ctx, "INVITEE@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 non-declined invitations, got %d", len(found))
	}
	for _, c := range found {
		if c.Status == domain.CollaborationDeclined {
			t.Error("expected declined invitations excluded")
		}
	}
	// Newest invitation first
	if found[0].ID != pending.ID {
		t.Errorf("expected newest invitation first, got %s", found[0].ID)
	}
}

func TestBoardCollaborationRepository_FindPendingOlderThan(t *testing.T) {
	db := setupCollaborationTestDB(t)
	repo := NewBoardCollaborationRepository(db)
	ctx := context.Background()

	stale := &domain.BoardCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		BoardID:   uuid.New(),
		Email:     "stale@example.com",
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
		InvitedAt: time.Now().Add(-40 * 24 * time.Hour),
	}
	fresh := &domain.BoardCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		BoardID:   uuid.New(),
		Email:     "fresh@example.com",
		InviterID: uuid.New(),
		Status:    domain.CollaborationPending,
		InvitedAt: time.Now(),
	}
	for _, c := range []*domain.BoardCollaboration{stale, fresh} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create collaboration: %v", err)
		}
	}

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	found, err := repo.FindPendingOlderThan(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 expired invitation, got %d", len(found))
	}
	if found[0].ID != stale.ID {
		t.Errorf("expected the stale invitation, got %s", found[0].ID)
	}
}
