package services

import (
	"context"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/internal/models/response_models"
	"github.com/Viveknaik1/CFMS/internal/repositories"
	"github.com/Viveknaik1/CFMS/pkg/utils"

	"github.com/google/uuid"
)

// DashboardService assembles the role-appropriate dashboard view.
type DashboardService interface {
	GetDashboard(ctx context.Context, email string, role db_models.Role) (*response_models.DashboardResponse, error)
}

type dashboardService struct {
	userRepo  repositories.UserRepository
	eventRepo repositories.EventRepository
	hallRepo  repositories.HallRepository
}

func NewDashboardService(userRepo repositories.UserRepository, eventRepo repositories.EventRepository, hallRepo repositories.HallRepository) DashboardService {
	return &dashboardService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		hallRepo:  hallRepo,
	}
}

func (d *dashboardService) GetDashboard(ctx context.Context, email string, role db_models.Role) (*response_models.DashboardResponse, error) {
	events, err := d.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.DashboardResponse{
		Role:   string(role),
		Events: toEventResponses(events),
	}

	switch role {
	case db_models.RoleStudent:
		regs, err := d.eventRepo.ListRegistrationsByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		ids := make([]uuid.UUID, 0, len(regs))
		for _, reg := range regs {
			ids = append(ids, reg.EventID)
		}
		registered, err := d.eventRepo.FindEventsByIDs(ctx, ids)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.RegisteredEvents = toEventResponses(registered)

		vols, err := d.eventRepo.ListVolunteersByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		ids = ids[:0]
		for _, v := range vols {
			ids = append(ids, v.EventID)
		}
		volunteering, err := d.eventRepo.FindEventsByIDs(ctx, ids)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.VolunteerEvents = toEventResponses(volunteering)

	case db_models.RoleExternal:
		regs, err := d.eventRepo.ListRegistrationsByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		ids := make([]uuid.UUID, 0, len(regs))
		for _, reg := range regs {
			ids = append(ids, reg.EventID)
		}
		registered, err := d.eventRepo.FindEventsByIDs(ctx, ids)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.RegisteredEvents = toEventResponses(registered)

		halls, err := d.hallRepo.ListHalls(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.Halls = toHallResponses(halls)

		booking, err := d.hallRepo.FindAccommodationByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if booking != nil {
			resp.Booking = toBookingResponse(booking)
		}

	case db_models.RoleOrganizer:
		assignments, err := d.eventRepo.ListAssignmentsByOrganiser(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		ids := make([]uuid.UUID, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.EventID)
		}
		assigned, err := d.eventRepo.FindEventsByIDs(ctx, ids)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.AssignedEvents = toEventResponses(assigned)

	case db_models.RoleAdmin:
		users, err := d.userRepo.ListUsers(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		summaries := make([]response_models.ParticipantResponse, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, response_models.ParticipantResponse{
				Email: u.Email,
				Name:  string(u.Role),
			})
		}
		resp.Users = summaries

		halls, err := d.hallRepo.ListHalls(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		resp.Halls = toHallResponses(halls)
	}

	return resp, nil
}
