package request_models

type EventRegistrationRequest struct {
	EventID string `json:"event_id" form:"event_id" binding:"required,uuid"`
}

type VolunteerRequest struct {
	EventID string `json:"event_id" form:"event_id" binding:"required,uuid"`
}

type BookingRequest struct {
	HallID string `json:"hall_id" form:"hall_id" binding:"required,uuid"`
}
