package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type HallRepository interface {
	ListHalls(ctx context.Context) ([]db_models.Hall, error)
	FindHallByID(ctx context.Context, id uuid.UUID) (*db_models.Hall, error)
	FindAccommodationByEmail(ctx context.Context, email string) (*db_models.Accommodation, error)
	ListAccommodationsByHall(ctx context.Context, hallID uuid.UUID) ([]db_models.Accommodation, error)

	// BookHall creates the accommodation and decrements the hall
	// vacancy as one atomic unit. Returns utils.ErrHallNotFound,
	// utils.ErrAlreadyBooked or utils.ErrNoVacancy.
	BookHall(ctx context.Context, hallID uuid.UUID, participantEmail, participantName string) (*db_models.Accommodation, error)
}

type hallRepository struct {
	db *gorm.DB
}

func NewHallRepository(db *gorm.DB) HallRepository {
	return &hallRepository{db: db}
}

func (r *hallRepository) ListHalls(ctx context.Context) ([]db_models.Hall, error) {
	var halls []db_models.Hall
	if err := r.db.WithContext(ctx).Order("name").Find(&halls).Error; err != nil {
		return nil, err
	}
	return halls, nil
}

func (r *hallRepository) FindHallByID(ctx context.Context, id uuid.UUID) (*db_models.Hall, error) {
	var hall db_models.Hall
	err := r.db.WithContext(ctx).First(&hall, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hall, nil
}

func (r *hallRepository) FindAccommodationByEmail(ctx context.Context, email string) (*db_models.Accommodation, error) {
	var booking db_models.Accommodation
	err := r.db.WithContext(ctx).First(&booking, "participant_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *hallRepository) ListAccommodationsByHall(ctx context.Context, hallID uuid.UUID) ([]db_models.Accommodation, error) {
	var bookings []db_models.Accommodation
	if err := r.db.WithContext(ctx).
		Where("hall_id = ?", hallID).
		Order("created_at").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *hallRepository) BookHall(ctx context.Context, hallID uuid.UUID, participantEmail, participantName string) (*db_models.Accommodation, error) {
	var booking *db_models.Accommodation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hall db_models.Hall
		if err := tx.First(&hall, "id = ?", hallID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrHallNotFound
			}
			return err
		}

		var existing db_models.Accommodation
		err := tx.First(&existing, "participant_email = ?", participantEmail).Error
		if err == nil {
			return utils.ErrAlreadyBooked
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Guarded decrement: two concurrent bookings for the last slot
		// cannot both match vacancy > 0, so exactly one sees a row
		// affected.
		res := tx.Model(&db_models.Hall{}).
			Where("id = ? AND vacancy > 0", hallID).
			Update("vacancy", gorm.Expr("vacancy - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrNoVacancy
		}

		booking = &db_models.Accommodation{
			ParticipantName:  participantName,
			ParticipantEmail: participantEmail,
			HallID:           hall.ID,
			HallName:         hall.Name,
			Price:            hall.Price,
			BookingDate:      time.Now().UTC().Truncate(24 * time.Hour),
		}
		if err := tx.Create(booking).Error; err != nil {
			// The unique index on participant_email catches a booking
			// raced in after the check above; rolling back restores
			// the vacancy we just took.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return utils.ErrAlreadyBooked
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}
