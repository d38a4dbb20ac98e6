package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

func setupFolderTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create tables by hand for SQLite compatibility
	db.Exec(`CREATE TABLE folders (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		color TEXT
	)`)
	db.Exec(`CREATE TABLE bookmarks (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		folder_id TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT,
		favicon TEXT,
		position INTEGER NOT NULL DEFAULT 0
	)`)
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

	return db
}

func TestFolderRepository_FindByOwnerAndName(t *testing.T) {
	db := setupFolderTestDB(t)
	repo := NewFolderRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	folder := &domain.Folder{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		OwnerID:   ownerID,
		Name:      "Reading list",
	}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	found, err := repo.FindByOwnerAndName(ctx, ownerID, "Reading list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found == nil || found.ID != folder.ID {
		t.Errorf("expected to find folder %s, got %+v", folder.ID, found)
	}

	// Missing name returns nil without an error
	missing, err := repo.FindByOwnerAndName(ctx, ownerID, "Does not exist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for a missing name, got %+v", missing)
	}

	// Same name under another owner is a different folder
	other, err := repo.FindByOwnerAndName(ctx, uuid.New(), "Reading list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != nil {
		t.Errorf("expected nil for another owner, got %+v", other)
	}
}

func TestFolderRepository_FindByIDWithBookmarks_PositionOrder(t *testing.T) {
	db := setupFolderTestDB(t)
	repo := NewFolderRepository(db)
	ctx := context.Background()

	folder := &domain.Folder{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		OwnerID:   uuid.New(),
		Name:      "Ordered",
	}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	for i, title := range []string{"third", "first", "second"} {
		positions := []int{2, 0, 1}
		bookmark := &domain.Bookmark{
			BaseModel: domain.BaseModel{ID: uuid.New()},
			FolderID:  folder.ID,
			Title:     title,
			URL:       "https://example.com/" + title,
			Position:  positions[i],
		}
		if err := db.Create(bookmark).Error; err != nil {
			t.Fatalf("failed to create bookmark: %v", err)
		}
	}

	found, err := repo.FindByIDWithBookmarks(ctx, folder.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found.Bookmarks) != 3 {
		t.Fatalf("expected 3 bookmarks, got %d", len(found.Bookmarks))
	}
	want := []string{"first", "second", "third"}
	for i, bookmark := range found.Bookmarks {
		if bookmark.Title != want[i] {
			t.Errorf("expected bookmark %d to be %q, got %q", i, want[i], bookmark.Title)
		}
	}
}

func TestFolderRepository_Delete_CascadesDependents(t *testing.T) {
	db := setupFolderTestDB(t)
	repo := NewFolderRepository(db)
	ctx := context.Background()

	folder := &domain.Folder{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		OwnerID:   uuid.New(),
		Name:      "Doomed",
	}
	if err := repo.Create(ctx, folder); err != nil {
		t.Fatalf("failed to create folder: %v", err)
	}

	bookmark := &domain.Bookmark{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  folder.ID,
		Title:     "Link",
		URL:       "https://example.com",
	}
	if err := db.Create(bookmark).Error; err != nil {
		t.Fatalf("failed to create bookmark: %v", err)
	}

	collab := &domain.FolderCollaboration{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		FolderID:  folder.ID,
		Email:     "invitee@example.com",
		Role:      domain.CollaborationRoleViewer,
		InviterID: folder.OwnerID,
		Status:    domain.CollaborationPending,
	}
	if err := db.Create(collab).Error; err != nil {
		t.Fatalf("failed to create collaboration: %v", err)
	}

	if err := repo.Delete(ctx, folder.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, folder.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected folder gone, got %v", err)
	}

	var bookmarkCount, collabCount int64
	db.Model(&domain.Bookmark{}).Where("folder_id = ?", folder.ID).Count(&bookmarkCount)
	db.Model(&domain.FolderCollaboration{}).Where("folder_id = ?", folder.ID).Count(&collabCount)
	if bookmarkCount != 0 {
		t.Errorf("expected bookmarks cascaded, %d left", bookmarkCount)
	}
	if collabCount != 0 {
		t.Errorf("expected collaborations cascaded, %d left", collabCount)
	}
}

func TestFolderRepository_FindByIDs(t *testing.T) {
	db := setupFolderTestDB(t)
	repo := NewFolderRepository(db)
	ctx := context.Background()

	first := &domain.Folder{BaseModel: domain.BaseModel{ID: uuid.New()}, OwnerID: uuid.New(), Name: "First"}
	second := &domain.Folder{BaseModel: domain.BaseModel{ID: uuid.New()}, OwnerID: uuid.New(), Name: "Second"}
	for _, f := range []*domain.Folder{first, second} {
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("failed to create folder: %v", err)
		}
	}

	found, err := repo.FindByIDs(ctx, []uuid.UUID{first.ID, second.ID, uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 folders, got %d", len(found))
	}

	empty, err := repo.FindByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty result for empty id list, got %d", len(empty))
	}
}
