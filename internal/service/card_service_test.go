package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
	"linkboard-api/internal/dto"
	"linkboard-api/internal/response"
)

func TestCardService_CreateCard_DefaultsAndTimeline(t *testing.T) {
	ownerID := uuid.New()
	boardID := uuid.New()

	var createdCard *domain.BoardCard
	var countDelta int
	var timelineEntry *domain.BoardTimelineEntry

	cardRepo := &MockCardRepository{
		CreateFunc: func(ctx context.Context, card *domain.BoardCard) error {
			card.ID = uuid.New()
			createdCard = card
			return nil
		},
	}
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: ownerID}, nil
		},
		AdjustCardCountFunc: func(ctx context.Context, id uuid.UUID, delta int) error {
			countDelta = delta
			return nil
		},
	}
	timelineRepo := &MockTimelineRepository{
		CreateFunc: func(ctx context.Context, entry *domain.BoardTimelineEntry) error {
			timelineEntry = entry
			return nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Email: "owner@example.com", Name: "Owner"}, nil
		},
	}
	broadcaster := &MockBroadcaster{}

	svc := NewCardService(cardRepo, boardRepo, &MockBoardCollaborationRepository{}, timelineRepo, userRepo, broadcaster, nil, zap.NewNop())

	resp, err := svc.CreateCard(context.Background(), boardID, &dto.CreateCardRequest{Title: "Ship release notes"}, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != domain.CardStatusTodo {
		t.Errorf("expected default status %s, got %s", domain.CardStatusTodo, resp.Status)
	}
	if resp.Priority != domain.CardPriorityMedium {
		t.Errorf("expected default priority %s, got %s", domain.CardPriorityMedium, resp.Priority)
	}
	if createdCard == nil || createdCard.BoardID != boardID {
		t.Fatalf("expected card persisted against board %s", boardID)
	}
	if countDelta != 1 {
		t.Errorf("expected card count adjusted by +1, got %d", countDelta)
	}
	if timelineEntry == nil {
		t.Fatal("expected a timeline entry for the new card")
	}
	if timelineEntry.Action != domain.TimelineActionCreated {
		t.Errorf("expected action %s, got %s", domain.TimelineActionCreated, timelineEntry.Action)
	}
	if timelineEntry.AuthorRole != domain.CollaborationRoleOwner {
		t.Errorf("expected author role %s, got %s", domain.CollaborationRoleOwner, timelineEntry.AuthorRole)
	}
	if len(broadcaster.Entries) != 1 {
		t.Fatalf("expected 1 broadcast entry, got %d", len(broadcaster.Entries))
	}
	if !strings.Contains(broadcaster.Entries[0].Content, "Ship release notes") {
		t.Errorf("expected broadcast content to mention the card title, got %q", broadcaster.Entries[0].Content)
	}
}

func TestCardService_CreateCard_ViewerForbidden(t *testing.T) {
	boardID := uuid.New()
	viewerID := uuid.New()

	created := false
	cardRepo := &MockCardRepository{
		CreateFunc: func(ctx context.Context, card *domain.BoardCard) error {
			created = true
			return nil
		},
	}
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: uuid.New()}, nil
		},
	}
	collabRepo := &MockBoardCollaborationRepository{
		FindAcceptedByBoardAndUserFunc: func(ctx context.Context, bID, uID uuid.UUID) (*domain.BoardCollaboration, error) {
			return &domain.BoardCollaboration{
				BoardID: bID,
				Role:    domain.CollaborationRoleViewer,
				Status:  domain.CollaborationAccepted,
			}, nil
		},
	}

	svc := NewCardService(cardRepo, boardRepo, collabRepo, &MockTimelineRepository{}, &MockUserRepository{}, nil, nil, zap.NewNop())

	_, err := svc.CreateCard(context.Background(), boardID, &dto.CreateCardRequest{Title: "Not allowed"}, viewerID)

	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != response.ErrCodeForbidden {
		t.Errorf("expected code %s, got %s", response.ErrCodeForbidden, appErr.Code)
	}
	if created {
		t.Error("expected no card to be created for a viewer")
	}
}

func TestCardService_CreateCard_InvalidStatus(t *testing.T) {
	ownerID := uuid.New()
	boardID := uuid.New()

	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: ownerID}, nil
		},
	}
	svc := NewCardService(&MockCardRepository{}, boardRepo, &MockBoardCollaborationRepository{}, &MockTimelineRepository{}, &MockUserRepository{}, nil, nil, zap.NewNop())

	req := &dto.CreateCardRequest{Title: "Bad status", Status: domain.CardStatus("archived")}
	_, err := svc.CreateCard(context.Background(), boardID, req, ownerID)

	appErr, ok := err.(*response.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != response.ErrCodeValidation {
		t.Errorf("expected code %s, got %s", response.ErrCodeValidation, appErr.Code)
	}
}

func TestCardService_UpdateCard_StatusChangeRecordsTimeline(t *testing.T) {
	ownerID := uuid.New()
	boardID := uuid.New()
	cardID := uuid.New()

	var timelineEntry *domain.BoardTimelineEntry
	cardRepo := &MockCardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
			return &domain.BoardCard{
				BaseModel: domain.BaseModel{ID: cardID},
				BoardID:   boardID,
				Title:     "Ship it",
				Status:    domain.CardStatusTodo,
				Priority:  domain.CardPriorityMedium,
			}, nil
		},
	}
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: ownerID}, nil
		},
	}
	timelineRepo := &MockTimelineRepository{
		CreateFunc: func(ctx context.Context, entry *domain.BoardTimelineEntry) error {
			timelineEntry = entry
			return nil
		},
	}
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{BaseModel: domain.BaseModel{ID: id}, Email: "owner@example.com", Name: "Owner"}, nil
		},
	}

	svc := NewCardService(cardRepo, boardRepo, &MockBoardCollaborationRepository{}, timelineRepo, userRepo, nil, nil, zap.NewNop())

	inProgress := domain.CardStatusInProgress
	resp, err := svc.UpdateCard(context.Background(), cardID, &dto.UpdateCardRequest{Status: &inProgress}, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != domain.CardStatusInProgress {
		t.Errorf("expected status %s, got %s", domain.CardStatusInProgress, resp.Status)
	}
	if timelineEntry == nil {
		t.Fatal("expected a timeline entry for the status change")
	}
	if timelineEntry.PreviousContent == nil || *timelineEntry.PreviousContent != string(domain.CardStatusTodo) {
		t.Errorf("expected previous status %q preserved, got %v", domain.CardStatusTodo, timelineEntry.PreviousContent)
	}
}

func TestCardService_UpdateCard_NoTimelineWithoutStatusChange(t *testing.T) {
	ownerID := uuid.New()
	boardID := uuid.New()
	cardID := uuid.New()

	timelineWritten := false
	cardRepo := &MockCardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
			return &domain.BoardCard{
				BaseModel: domain.BaseModel{ID: cardID},
				BoardID:   boardID,
				Title:     "Old title",
				Status:    domain.CardStatusTodo,
				Priority:  domain.CardPriorityMedium,
			}, nil
		},
	}
	boardRepo := &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: ownerID}, nil
		},
	}
	timelineRepo := &MockTimelineRepository{
		CreateFunc: func(ctx context.Context, entry *domain.BoardTimelineEntry) error {
			timelineWritten = true
			return nil
		},
	}

	svc := NewCardService(cardRepo, boardRepo, &MockBoardCollaborationRepository{}, timelineRepo, &MockUserRepository{}, nil, nil, zap.NewNop())

	newTitle := "New title"
	resp, err := svc.UpdateCard(context.Background(), cardID, &dto.UpdateCardRequest{Title: &newTitle}, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Title != newTitle {
		t.Errorf("expected title %q, got %q", newTitle, resp.Title)
	}
	if timelineWritten {
		t.Error("expected no timeline entry for a title-only update")
	}
}

func TestCardService_DeleteCard(t *testing.T) {
	ownerID := uuid.New()
	boardID := uuid.New()
	cardID := uuid.New()

	tests := []struct {
		name         string
		findCard     func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error)
		adjustErr    error
		expectErr    string
		expectDelete bool
	}{
		{
			name: "owner deletes and count is decremented",
			findCard: func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
				return &domain.BoardCard{BaseModel: domain.BaseModel{ID: cardID}, BoardID: boardID}, nil
			},
			expectDelete: true,
		},
		{
			name: "count adjustment failure does not fail the delete",
			findCard: func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
				return &domain.BoardCard{BaseModel: domain.BaseModel{ID: cardID}, BoardID: boardID}, nil
			},
			adjustErr:    errors.New("connection reset"),
			expectDelete: true,
		},
		{
			name: "missing card",
			findCard: func(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
				return nil, gorm.ErrRecordNotFound
			},
			expectErr: response.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			var countDelta int

			cardRepo := &MockCardRepository{
				FindByIDFunc: tt.findCard,
				DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
					deleted = true
					return nil
				},
			}
			boardRepo := &MockBoardRepository{
				FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
					return &domain.Board{BaseModel: domain.BaseModel{ID: boardID}, OwnerID: ownerID}, nil
				},
				AdjustCardCountFunc: func(ctx context.Context, id uuid.UUID, delta int) error {
					countDelta = delta
					return tt.adjustErr
				},
			}

			svc := NewCardService(cardRepo, boardRepo, &MockBoardCollaborationRepository{}, &MockTimelineRepository{}, &MockUserRepository{}, nil, nil, zap.NewNop())

			err := svc.DeleteCard(context.Background(), cardID, ownerID)

			if tt.expectErr != "" {
				appErr, ok := err.(*response.AppError)
				if !ok {
					t.Fatalf("expected AppError, got %v", err)
				}
				if appErr.Code != tt.expectErr {
					t.Errorf("expected code %s, got %s", tt.expectErr, appErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if deleted != tt.expectDelete {
				t.Errorf("expected deleted=%v, got %v", tt.expectDelete, deleted)
			}
			if countDelta != -1 {
				t.Errorf("expected card count adjusted by -1, got %d", countDelta)
			}
		})
	}
}
