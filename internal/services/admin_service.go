package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/internal/models/response_models"
	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type AdminServiceInterface interface {
	// DeleteUser removes the account and all dependent rows; a hall
	// slot held by the target is released in the same atomic unit.
	DeleteUser(ctx context.Context, targetEmail string) error

	// ComputeWinners records the first registrant of each event as its
	// winner. Idempotent: existing winners are never touched. Returns
	// the full recorded winner set.
	ComputeWinners(ctx context.Context) ([]response_models.WinnerResponse, error)
	ListWinners(ctx context.Context) ([]response_models.WinnerResponse, error)

	EventDetails(ctx context.Context, eventID uuid.UUID) (*response_models.EventDetailsResponse, error)
	AssignOrganiser(ctx context.Context, eventID uuid.UUID, organiserEmail string) (already bool, err error)

	HallOccupancies(ctx context.Context) ([]response_models.HallOccupancyResponse, error)
	HallDetails(ctx context.Context, hallID uuid.UUID) (*response_models.HallOccupancyResponse, error)
}

type AdminService struct {
	userRepo   repositories.UserRepository
	eventRepo  repositories.EventRepository
	hallRepo   repositories.HallRepository
	winnerRepo repositories.WinnerRepository
	logger     *zap.Logger
}

func NewAdminService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	hallRepo repositories.HallRepository,
	winnerRepo repositories.WinnerRepository,
	logger *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		userRepo:   userRepo,
		eventRepo:  eventRepo,
		hallRepo:   hallRepo,
		winnerRepo: winnerRepo,
		logger:     logger,
	}
}

func (s *AdminService) DeleteUser(ctx context.Context, targetEmail string) error {
	err := s.userRepo.DeleteCascade(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return err
		}
		return utils.ErrDatabaseError
	}
	s.logger.Info("user deleted", zap.String("email", targetEmail))
	return nil
}

func (s *AdminService) ComputeWinners(ctx context.Context) ([]response_models.WinnerResponse, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	for _, event := range events {
		exists, err := s.winnerRepo.HasWinner(ctx, event.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if exists {
			continue
		}

		first, err := s.eventRepo.FirstRegistrant(ctx, event.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if first == nil {
			// Nobody registered, nobody wins.
			continue
		}

		name, err := s.resolveDisplayName(ctx, first.UserEmail)
		if err != nil {
			return nil, err
		}
		if name == "" {
			// registrant without a profile row; nothing to record
			continue
		}

		winner := &db_models.Winner{
			EventID:          event.ID,
			EventName:        event.Name,
			ParticipantName:  name,
			ParticipantEmail: first.UserEmail,
		}
		if _, err := s.winnerRepo.CreateWinner(ctx, winner); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.ListWinners(ctx)
}

func (s *AdminService) ListWinners(ctx context.Context) ([]response_models.WinnerResponse, error) {
	winners, err := s.winnerRepo.ListWinners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.WinnerResponse, 0, len(winners))
	for _, w := range winners {
		out = append(out, response_models.WinnerResponse{
			EventName:        w.EventName,
			ParticipantName:  w.ParticipantName,
			ParticipantEmail: w.ParticipantEmail,
		})
	}
	return out, nil
}

func (s *AdminService) EventDetails(ctx context.Context, eventID uuid.UUID) (*response_models.EventDetailsResponse, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	regs, err := s.eventRepo.ListRegistrationsByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	participants := make([]response_models.ParticipantResponse, 0, len(regs))
	for _, reg := range regs {
		name, err := s.resolveDisplayName(ctx, reg.UserEmail)
		if err != nil {
			return nil, err
		}
		participants = append(participants, response_models.ParticipantResponse{
			Email: reg.UserEmail,
			Name:  name,
		})
	}

	vols, err := s.eventRepo.ListVolunteersByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	volunteers := make([]response_models.ParticipantResponse, 0, len(vols))
	for _, v := range vols {
		volunteers = append(volunteers, response_models.ParticipantResponse{
			Email: v.StudentEmail,
			Name:  v.StudentName,
		})
	}

	assignments, err := s.eventRepo.ListOrganisersByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	organisers := make([]response_models.ParticipantResponse, 0, len(assignments))
	for _, o := range assignments {
		organisers = append(organisers, response_models.ParticipantResponse{
			Email: o.OrganiserEmail,
			Name:  o.OrganiserName,
		})
	}

	return &response_models.EventDetailsResponse{
		Event:        toEventResponse(*event),
		Participants: participants,
		Volunteers:   volunteers,
		Organisers:   organisers,
	}, nil
}

func (s *AdminService) AssignOrganiser(ctx context.Context, eventID uuid.UUID, organiserEmail string) (bool, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if event == nil {
		return false, utils.ErrEventNotFound
	}

	organiser, err := s.userRepo.FindOrganiserByEmail(ctx, organiserEmail)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	if organiser == nil {
		return false, utils.ErrUserNotFound
	}

	created, err := s.eventRepo.AssignOrganiser(ctx, eventID, organiserEmail, organiser.Name)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return !created, nil
}

func (s *AdminService) HallOccupancies(ctx context.Context) ([]response_models.HallOccupancyResponse, error) {
	halls, err := s.hallRepo.ListHalls(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.HallOccupancyResponse, 0, len(halls))
	for _, hall := range halls {
		occupancy, err := s.hallOccupancy(ctx, hall)
		if err != nil {
			return nil, err
		}
		out = append(out, *occupancy)
	}
	return out, nil
}

func (s *AdminService) HallDetails(ctx context.Context, hallID uuid.UUID) (*response_models.HallOccupancyResponse, error) {
	hall, err := s.hallRepo.FindHallByID(ctx, hallID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if hall == nil {
		return nil, utils.ErrHallNotFound
	}
	return s.hallOccupancy(ctx, *hall)
}

func (s *AdminService) hallOccupancy(ctx context.Context, hall db_models.Hall) (*response_models.HallOccupancyResponse, error) {
	bookings, err := s.hallRepo.ListAccommodationsByHall(ctx, hall.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	occupants := make([]response_models.ParticipantResponse, 0, len(bookings))
	for _, booking := range bookings {
		occupants = append(occupants, response_models.ParticipantResponse{
			Email: booking.ParticipantEmail,
			Name:  booking.ParticipantName,
		})
	}
	return &response_models.HallOccupancyResponse{
		Hall: response_models.HallResponse{
			ID:       hall.ID.String(),
			Name:     hall.Name,
			Location: hall.Location,
			Vacancy:  hall.Vacancy,
			Price:    hall.Price,
		},
		Occupants: occupants,
	}, nil
}

// resolveDisplayName resolves a registrant's display name, external
// profile first, then student.
func (s *AdminService) resolveDisplayName(ctx context.Context, email string) (string, error) {
	external, err := s.userRepo.FindExternalByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if external != nil {
		return external.Name, nil
	}

	student, err := s.userRepo.FindStudentByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if student != nil {
		return student.Name, nil
	}
	return "", nil
}
