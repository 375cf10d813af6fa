package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Viveknaik1/CFMS/internal/models/request_models"
	"github.com/Viveknaik1/CFMS/internal/services"
	"github.com/Viveknaik1/CFMS/pkg/middleware"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

func (b *BookingController) ListHalls(c *gin.Context) {
	halls, err := b.bookingService.ListHalls(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, halls, "Halls fetched successfully")
}

func (b *BookingController) BookAccommodation(c *gin.Context) {
	var req request_models.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hall id")
		return
	}

	booking, err := b.bookingService.BookAccommodation(c.Request.Context(), email, hallID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Accommodation booked")
}

func (b *BookingController) MyBooking(c *gin.Context) {
	email, ok := middleware.SessionEmail(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing session")
		return
	}

	booking, err := b.bookingService.MyBooking(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if booking == nil {
		utils.RespondSuccess(c, nil, "No accommodation booked")
		return
	}
	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}
