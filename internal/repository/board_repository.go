package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithCards(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	AdjustCardCount(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by ID without its cards
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithCards finds a board with its cards, newest first
func (r *boardRepositoryImpl) FindByIDWithCards(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByOwner finds all boards owned by a user, newest first
func (r *boardRepositoryImpl) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindByIDs finds boards by their IDs
func (r *boardRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Board, error) {
	if len(ids) == 0 {
		return []*domain.Board{}, nil
	}
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves the full board row
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// AdjustCardCount moves the cached card counter by delta, clamped at zero
func (r *boardRepositoryImpl) AdjustCardCount(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&domain.Board{}).
		Where("id = ?", id).
		UpdateColumn("card_count", gorm.Expr("GREATEST(card_count + ?, 0)", delta)).Error
}

// Delete soft deletes a board and its dependents
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardCard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardCollaboration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardTimelineEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Board{}, "id = ?", id).Error
	})
}
