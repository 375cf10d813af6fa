package response_models

type EventResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location"`
}

type HallResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Vacancy  int    `json:"vacancy"`
	Price    int    `json:"price"`
}

// PaymentStub stands in for a real payment confirmation. No gateway is
// involved; the booking is confirmed as soon as it is persisted.
type PaymentStub struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int    `json:"amount"`
}

type BookingResponse struct {
	ID              string      `json:"id"`
	ParticipantName string      `json:"participant_name"`
	HallName        string      `json:"hall_name"`
	Price           int         `json:"price"`
	BookingDate     string      `json:"booking_date"`
	Payment         PaymentStub `json:"payment"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type WinnerResponse struct {
	EventName        string `json:"event"`
	ParticipantName  string `json:"participant_name"`
	ParticipantEmail string `json:"participant_email"`
}

type ParticipantResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type EventDetailsResponse struct {
	Event        EventResponse         `json:"event"`
	Participants []ParticipantResponse `json:"participants"`
	Volunteers   []ParticipantResponse `json:"volunteers"`
	Organisers   []ParticipantResponse `json:"organisers"`
}

type HallOccupancyResponse struct {
	Hall      HallResponse          `json:"hall"`
	Occupants []ParticipantResponse `json:"occupants"`
}

// DashboardResponse carries the role-appropriate view data. Only the
// fields relevant to the caller's role are populated.
type DashboardResponse struct {
	Role             string                `json:"role"`
	Events           []EventResponse       `json:"events,omitempty"`
	RegisteredEvents []EventResponse       `json:"registered_events,omitempty"`
	VolunteerEvents  []EventResponse       `json:"volunteer_events,omitempty"`
	AssignedEvents   []EventResponse       `json:"assigned_events,omitempty"`
	Halls            []HallResponse        `json:"halls,omitempty"`
	Booking          *BookingResponse      `json:"booking,omitempty"`
	Users            []ParticipantResponse `json:"users,omitempty"`
}
