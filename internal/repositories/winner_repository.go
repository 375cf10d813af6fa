package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
)

type WinnerRepository interface {
	ListWinners(ctx context.Context) ([]db_models.Winner, error)
	HasWinner(ctx context.Context, eventID uuid.UUID) (bool, error)

	// CreateWinner records the winner unless one already exists for
	// the event. Existing rows are never overwritten.
	CreateWinner(ctx context.Context, winner *db_models.Winner) (bool, error)
}

type winnerRepository struct {
	db *gorm.DB
}

func NewWinnerRepository(db *gorm.DB) WinnerRepository {
	return &winnerRepository{db: db}
}

func (r *winnerRepository) ListWinners(ctx context.Context) ([]db_models.Winner, error) {
	var winners []db_models.Winner
	if err := r.db.WithContext(ctx).Order("event_name").Find(&winners).Error; err != nil {
		return nil, err
	}
	return winners, nil
}

func (r *winnerRepository) HasWinner(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&db_models.Winner{}).
		Where("event_id = ?", eventID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *winnerRepository) CreateWinner(ctx context.Context, winner *db_models.Winner) (bool, error) {
	if err := r.db.WithContext(ctx).Create(winner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
