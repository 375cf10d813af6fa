package request_models

type DeleteUserRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type EventDetailsRequest struct {
	EventID string `json:"event_id" form:"event_id" binding:"required,uuid"`
}

type HallDetailsRequest struct {
	HallID string `json:"hall_id" form:"hall_id" binding:"required,uuid"`
}

type AssignOrganiserRequest struct {
	EventID        string `json:"event_id" form:"event_id" binding:"required,uuid"`
	OrganiserEmail string `json:"organiser_email" form:"organiser_email" binding:"required,email"`
}
