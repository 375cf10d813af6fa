package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindStudentByEmail(ctx context.Context, email string) (*db_models.Student, error)
	FindExternalByEmail(ctx context.Context, email string) (*db_models.ExternalParticipant, error)
	FindOrganiserByEmail(ctx context.Context, email string) (*db_models.Organiser, error)
	ListUsers(ctx context.Context) ([]db_models.User, error)

	CreateStudent(ctx context.Context, user *db_models.User, profile *db_models.Student) error
	CreateExternal(ctx context.Context, user *db_models.User, profile *db_models.ExternalParticipant) error
	CreateOrganiser(ctx context.Context, user *db_models.User, profile *db_models.Organiser) error

	// DeleteCascade removes the account and every dependent row in one
	// transaction, restoring hall vacancy when the target holds a
	// booking. Returns utils.ErrUserNotFound for an unknown email.
	DeleteCascade(ctx context.Context, email string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudentByEmail(ctx context.Context, email string) (*db_models.Student, error) {
	var student db_models.Student
	err := r.db.WithContext(ctx).First(&student, "user_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *userRepository) FindExternalByEmail(ctx context.Context, email string) (*db_models.ExternalParticipant, error) {
	var participant db_models.ExternalParticipant
	err := r.db.WithContext(ctx).First(&participant, "user_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *userRepository) FindOrganiserByEmail(ctx context.Context, email string) (*db_models.Organiser, error) {
	var organiser db_models.Organiser
	err := r.db.WithContext(ctx).First(&organiser, "user_email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &organiser, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := r.db.WithContext(ctx).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// createWithProfile inserts the account and its role profile as one
// atomic unit so a failure never leaves an orphan on either side.
func (r *userRepository) createWithProfile(ctx context.Context, user *db_models.User, profile interface{}) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(profile).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *userRepository) CreateStudent(ctx context.Context, user *db_models.User, profile *db_models.Student) error {
	return r.createWithProfile(ctx, user, profile)
}

func (r *userRepository) CreateExternal(ctx context.Context, user *db_models.User, profile *db_models.ExternalParticipant) error {
	return r.createWithProfile(ctx, user, profile)
}

func (r *userRepository) CreateOrganiser(ctx context.Context, user *db_models.User, profile *db_models.Organiser) error {
	return r.createWithProfile(ctx, user, profile)
}

func (r *userRepository) DeleteCascade(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user db_models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrUserNotFound
			}
			return err
		}

		if user.Role == db_models.RoleExternal {
			var booking db_models.Accommodation
			err := tx.First(&booking, "participant_email = ?", email).Error
			switch {
			case err == nil:
				// Give the slot back in the same atomic unit as the
				// deletion.
				if err := tx.Model(&db_models.Hall{}).
					Where("id = ?", booking.HallID).
					Update("vacancy", gorm.Expr("vacancy + 1")).Error; err != nil {
					return err
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		if err := tx.Where("user_email = ?", email).Delete(&db_models.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_email = ?", email).Delete(&db_models.Volunteer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organiser_email = ?", email).Delete(&db_models.EventOrganiser{}).Error; err != nil {
			return err
		}
		if err := tx.Where("participant_email = ?", email).Delete(&db_models.Accommodation{}).Error; err != nil {
			return err
		}
		switch user.Role {
		case db_models.RoleStudent:
			if err := tx.Where("user_email = ?", email).Delete(&db_models.Student{}).Error; err != nil {
				return err
			}
		case db_models.RoleExternal:
			if err := tx.Where("user_email = ?", email).Delete(&db_models.ExternalParticipant{}).Error; err != nil {
				return err
			}
		case db_models.RoleOrganizer:
			if err := tx.Where("user_email = ?", email).Delete(&db_models.Organiser{}).Error; err != nil {
				return err
			}
		case db_models.RoleAdmin:
			// no profile table
		}

		return tx.Delete(&user).Error
	})
}
