package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// TimelineRepository defines the interface for the append-only board
// activity log. There is no update or per-entry delete: entries are
// only written, listed, and removed with their board.
type TimelineRepository interface {
	Create(ctx context.Context, entry *domain.BoardTimelineEntry) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.BoardTimelineEntry, error)
}

// timelineRepositoryImpl is the GORM implementation of TimelineRepository
type timelineRepositoryImpl struct {
	db *gorm.DB
}

// NewTimelineRepository creates a new instance of TimelineRepository
func NewTimelineRepository(db *gorm.DB) TimelineRepository {
	return &timelineRepositoryImpl{db: db}
}

// Create appends a timeline entry
func (r *timelineRepositoryImpl) Create(ctx context.Context, entry *domain.BoardTimelineEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindByBoardID lists a board's entries, newest first. A limit of 0
// means no limit.
func (r *timelineRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID, limit int) ([]*domain.BoardTimelineEntry, error) {
	q := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []*domain.BoardTimelineEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
