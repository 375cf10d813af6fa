package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
)

type EventRepository interface {
	ListEvents(ctx context.Context) ([]db_models.Event, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	FindEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Event, error)

	// CreateRegistration inserts the (event, account) edge. Returns
	// created=false when the edge already exists; never an error for a
	// duplicate.
	CreateRegistration(ctx context.Context, eventID uuid.UUID, userEmail string) (bool, error)
	ListRegistrationsByEmail(ctx context.Context, userEmail string) ([]db_models.EventRegistration, error)
	ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.EventRegistration, error)

	// FirstRegistrant returns the earliest registration for the event
	// by insertion order, or nil when nobody registered.
	FirstRegistrant(ctx context.Context, eventID uuid.UUID) (*db_models.EventRegistration, error)

	CreateVolunteer(ctx context.Context, eventID uuid.UUID, studentEmail, studentName string) (bool, error)
	ListVolunteersByEmail(ctx context.Context, studentEmail string) ([]db_models.Volunteer, error)
	ListVolunteersByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Volunteer, error)

	AssignOrganiser(ctx context.Context, eventID uuid.UUID, organiserEmail, organiserName string) (bool, error)
	ListOrganisersByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.EventOrganiser, error)
	ListAssignmentsByOrganiser(ctx context.Context, organiserEmail string) ([]db_models.EventOrganiser, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) ListEvents(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	if err := r.db.WithContext(ctx).Order("date").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindEventsByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []db_models.Event
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("date").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) CreateRegistration(ctx context.Context, eventID uuid.UUID, userEmail string) (bool, error) {
	var existing db_models.EventRegistration
	err := r.db.WithContext(ctx).
		First(&existing, "event_id = ? AND user_email = ?", eventID, userEmail).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	reg := db_models.EventRegistration{EventID: eventID, UserEmail: userEmail}
	if err := r.db.WithContext(ctx).Create(&reg).Error; err != nil {
		// Lost a race with an identical request; the unique index on
		// (event_id, user_email) makes that a duplicate, not a failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *eventRepository) ListRegistrationsByEmail(ctx context.Context, userEmail string) ([]db_models.EventRegistration, error) {
	var regs []db_models.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *eventRepository) ListRegistrationsByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.EventRegistration, error) {
	var regs []db_models.EventRegistration
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *eventRepository) FirstRegistrant(ctx context.Context, eventID uuid.UUID) (*db_models.EventRegistration, error) {
	var reg db_models.EventRegistration
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at, id").
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *eventRepository) CreateVolunteer(ctx context.Context, eventID uuid.UUID, studentEmail, studentName string) (bool, error) {
	var existing db_models.Volunteer
	err := r.db.WithContext(ctx).
		First(&existing, "event_id = ? AND student_email = ?", eventID, studentEmail).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	volunteer := db_models.Volunteer{EventID: eventID, StudentEmail: studentEmail, StudentName: studentName}
	if err := r.db.WithContext(ctx).Create(&volunteer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *eventRepository) ListVolunteersByEmail(ctx context.Context, studentEmail string) ([]db_models.Volunteer, error) {
	var volunteers []db_models.Volunteer
	if err := r.db.WithContext(ctx).
		Where("student_email = ?", studentEmail).
		Order("created_at").Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *eventRepository) ListVolunteersByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Volunteer, error) {
	var volunteers []db_models.Volunteer
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *eventRepository) AssignOrganiser(ctx context.Context, eventID uuid.UUID, organiserEmail, organiserName string) (bool, error) {
	var existing db_models.EventOrganiser
	err := r.db.WithContext(ctx).
		First(&existing, "event_id = ? AND organiser_email = ?", eventID, organiserEmail).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	assignment := db_models.EventOrganiser{EventID: eventID, OrganiserEmail: organiserEmail, OrganiserName: organiserName}
	if err := r.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *eventRepository) ListOrganisersByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.EventOrganiser, error) {
	var assignments []db_models.EventOrganiser
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *eventRepository) ListAssignmentsByOrganiser(ctx context.Context, organiserEmail string) ([]db_models.EventOrganiser, error) {
	var assignments []db_models.EventOrganiser
	if err := r.db.WithContext(ctx).
		Where("organiser_email = ?", organiserEmail).
		Order("created_at").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
