package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"linkboard-api/internal/domain"
)

// CardRepository defines the interface for board card data access
type CardRepository interface {
	Create(ctx context.Context, card *domain.BoardCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCard, error)
	Update(ctx context.Context, card *domain.BoardCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// cardRepositoryImpl is the GORM implementation of CardRepository
type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

// Create creates a new card
func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.BoardCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindByID finds a card by ID
func (r *cardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardCard, error) {
	var card domain.BoardCard
	if err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByBoardID finds a board's cards, newest first
func (r *cardRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardCard, error) {
	var cards []*domain.BoardCard
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Update saves the full card row
func (r *cardRepositoryImpl) Update(ctx context.Context, card *domain.BoardCard) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// Delete soft deletes a card by ID
func (r *cardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.BoardCard{}, "id = ?", id).Error
}
