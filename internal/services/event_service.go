package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/internal/models/response_models"
	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type EventServiceInterface interface {
	ListEvents(ctx context.Context) ([]response_models.EventResponse, error)

	// RegisterForEvent is idempotent per (account, event): a repeat
	// call reports already=true and changes nothing.
	RegisterForEvent(ctx context.Context, userEmail string, eventID uuid.UUID) (already bool, err error)

	// VolunteerForEvent is the student-only counterpart; the display
	// name is resolved from the student profile.
	VolunteerForEvent(ctx context.Context, studentEmail string, eventID uuid.UUID) (already bool, err error)
}

type EventService struct {
	eventRepo   repositories.EventRepository
	userRepo    repositories.UserRepository
	mailService MailService
	logger      *zap.Logger
}

func NewEventService(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, mailService MailService, logger *zap.Logger) EventServiceInterface {
	return &EventService{
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		mailService: mailService,
		logger:      logger,
	}
}

func (e *EventService) ListEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := e.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toEventResponses(events), nil
}

func (e *EventService) RegisterForEvent(ctx context.Context, userEmail string, eventID uuid.UUID) (bool, error) {
	event, err := e.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if event == nil {
		return false, utils.ErrEventNotFound
	}

	created, err := e.eventRepo.CreateRegistration(ctx, eventID, userEmail)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if !created {
		return true, nil
	}

	e.mailService.Notify(userEmail, "Event Registration", "Registered for "+event.Name+".")
	return false, nil
}

func (e *EventService) VolunteerForEvent(ctx context.Context, studentEmail string, eventID uuid.UUID) (bool, error) {
	event, err := e.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if event == nil {
		return false, utils.ErrEventNotFound
	}

	student, err := e.userRepo.FindStudentByEmail(ctx, studentEmail)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if student == nil {
		return false, utils.ErrUserNotFound
	}

	created, err := e.eventRepo.CreateVolunteer(ctx, eventID, studentEmail, student.Name)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return !created, nil
}

func toEventResponse(event db_models.Event) response_models.EventResponse {
	return response_models.EventResponse{
		ID:          event.ID.String(),
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date.Format("2006-01-02"),
		Time:        event.Time,
		Location:    event.Location,
	}
}

func toEventResponses(events []db_models.Event) []response_models.EventResponse {
	out := make([]response_models.EventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, toEventResponse(event))
	}
	return out
}
