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

type BookingServiceInterface interface {
	ListHalls(ctx context.Context) ([]response_models.HallResponse, error)

	// BookAccommodation books one hall slot for the external
	// participant: the accommodation row and the vacancy decrement
	// commit together or not at all.
	BookAccommodation(ctx context.Context, participantEmail string, hallID uuid.UUID) (*response_models.BookingResponse, error)

	// MyBooking returns the participant's current booking, or nil.
	MyBooking(ctx context.Context, participantEmail string) (*response_models.BookingResponse, error)
}

type BookingService struct {
	hallRepo    repositories.HallRepository
	userRepo    repositories.UserRepository
	mailService MailService
	logger      *zap.Logger
}

func NewBookingService(hallRepo repositories.HallRepository, userRepo repositories.UserRepository, mailService MailService, logger *zap.Logger) BookingServiceInterface {
	return &BookingService{
		hallRepo:    hallRepo,
		userRepo:    userRepo,
		mailService: mailService,
		logger:      logger,
	}
}

func (b *BookingService) ListHalls(ctx context.Context) ([]response_models.HallResponse, error) {
	halls, err := b.hallRepo.ListHalls(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toHallResponses(halls), nil
}

func (b *BookingService) BookAccommodation(ctx context.Context, participantEmail string, hallID uuid.UUID) (*response_models.BookingResponse, error) {
	participant, err := b.userRepo.FindExternalByEmail(ctx, participantEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrUserNotFound
	}

	booking, err := b.hallRepo.BookHall(ctx, hallID, participantEmail, participant.Name)
	if err != nil {
		if errors.Is(err, utils.ErrHallNotFound) ||
			errors.Is(err, utils.ErrAlreadyBooked) ||
			errors.Is(err, utils.ErrNoVacancy) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}

	b.mailService.Notify(participantEmail, "Accommodation Booked", "Hall: "+booking.HallName)
	return toBookingResponse(booking), nil
}

func (b *BookingService) MyBooking(ctx context.Context, participantEmail string) (*response_models.BookingResponse, error) {
	booking, err := b.hallRepo.FindAccommodationByEmail(ctx, participantEmail)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, nil
	}
	return toBookingResponse(booking), nil
}

func toBookingResponse(booking *db_models.Accommodation) *response_models.BookingResponse {
	return &response_models.BookingResponse{
		ID:              booking.ID.String(),
		ParticipantName: booking.ParticipantName,
		HallName:        booking.HallName,
		Price:           booking.Price,
		BookingDate:     booking.BookingDate.Format("2006-01-02"),
		Payment: response_models.PaymentStub{
			Status:    "confirmed",
			Reference: booking.ID.String(),
			Amount:    booking.Price,
		},
	}
}

func toHallResponses(halls []db_models.Hall) []response_models.HallResponse {
	out := make([]response_models.HallResponse, 0, len(halls))
	for _, hall := range halls {
		out = append(out, response_models.HallResponse{
			ID:       hall.ID.String(),
			Name:     hall.Name,
			Location: hall.Location,
			Vacancy:  hall.Vacancy,
			Price:    hall.Price,
		})
	}
	return out
}
