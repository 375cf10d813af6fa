package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

// In-memory repository fakes implementing the repository interfaces.
// The hall fake honors the same atomicity contract as the real
// implementation: check, decrement and insert happen under one lock.

// ── Mock MailService ──

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type mockMailService struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *mockMailService) Notify(recipient, subject, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: recipient, Subject: subject, Body: body})
}

func (m *mockMailService) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users      map[string]*db_models.User
	students   map[string]*db_models.Student
	externals  map[string]*db_models.ExternalParticipant
	organisers map[string]*db_models.Organiser

	// cascade targets
	hallRepo  *mockHallRepo
	eventRepo *mockEventRepo
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:      make(map[string]*db_models.User),
		students:   make(map[string]*db_models.Student),
		externals:  make(map[string]*db_models.ExternalParticipant),
		organisers: make(map[string]*db_models.Organiser),
	}
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	return m.users[email], nil
}

func (m *mockUserRepo) FindStudentByEmail(_ context.Context, email string) (*db_models.Student, error) {
	return m.students[email], nil
}

func (m *mockUserRepo) FindExternalByEmail(_ context.Context, email string) (*db_models.ExternalParticipant, error) {
	return m.externals[email], nil
}

func (m *mockUserRepo) FindOrganiserByEmail(_ context.Context, email string) (*db_models.Organiser, error) {
	return m.organisers[email], nil
}

func (m *mockUserRepo) ListUsers(_ context.Context) ([]db_models.User, error) {
	var out []db_models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) CreateStudent(_ context.Context, user *db_models.User, profile *db_models.Student) error {
	if _, ok := m.users[user.Email]; ok {
		return utils.ErrEmailAlreadyExists
	}
	m.users[user.Email] = user
	m.students[user.Email] = profile
	return nil
}

func (m *mockUserRepo) CreateExternal(_ context.Context, user *db_models.User, profile *db_models.ExternalParticipant) error {
	if _, ok := m.users[user.Email]; ok {
		return utils.ErrEmailAlreadyExists
	}
	m.users[user.Email] = user
	m.externals[user.Email] = profile
	return nil
}

func (m *mockUserRepo) CreateOrganiser(_ context.Context, user *db_models.User, profile *db_models.Organiser) error {
	if _, ok := m.users[user.Email]; ok {
		return utils.ErrEmailAlreadyExists
	}
	m.users[user.Email] = user
	m.organisers[user.Email] = profile
	return nil
}

func (m *mockUserRepo) DeleteCascade(_ context.Context, email string) error {
	user, ok := m.users[email]
	if !ok {
		return utils.ErrUserNotFound
	}

	if user.Role == db_models.RoleExternal && m.hallRepo != nil {
		m.hallRepo.mu.Lock()
		if booking, ok := m.hallRepo.bookings[email]; ok {
			if hall, ok := m.hallRepo.halls[booking.HallID]; ok {
				hall.Vacancy++
			}
			delete(m.hallRepo.bookings, email)
		}
		m.hallRepo.mu.Unlock()
	}

	if m.eventRepo != nil {
		m.eventRepo.removeByEmail(email)
	}

	delete(m.students, email)
	delete(m.externals, email)
	delete(m.organisers, email)
	delete(m.users, email)
	return nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	events        []*db_models.Event
	registrations []*db_models.EventRegistration
	volunteers    []*db_models.Volunteer
	assignments   []*db_models.EventOrganiser
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{}
}

func (m *mockEventRepo) addEvent(name string) *db_models.Event {
	event := &db_models.Event{Name: name, Date: time.Now()}
	event.ID = uuid.New()
	m.events = append(m.events, event)
	return event
}

func (m *mockEventRepo) removeByEmail(email string) {
	var regs []*db_models.EventRegistration
	for _, r := range m.registrations {
		if r.UserEmail != email {
			regs = append(regs, r)
		}
	}
	m.registrations = regs

	var vols []*db_models.Volunteer
	for _, v := range m.volunteers {
		if v.StudentEmail != email {
			vols = append(vols, v)
		}
	}
	m.volunteers = vols

	var asgs []*db_models.EventOrganiser
	for _, a := range m.assignments {
		if a.OrganiserEmail != email {
			asgs = append(asgs, a)
		}
	}
	m.assignments = asgs
}

func (m *mockEventRepo) ListEvents(_ context.Context) ([]db_models.Event, error) {
	out := make([]db_models.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *mockEventRepo) FindEventByID(_ context.Context, id uuid.UUID) (*db_models.Event, error) {
	for _, e := range m.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockEventRepo) FindEventsByIDs(_ context.Context, ids []uuid.UUID) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range m.events {
		for _, id := range ids {
			if e.ID == id {
				out = append(out, *e)
			}
		}
	}
	return out, nil
}

func (m *mockEventRepo) CreateRegistration(_ context.Context, eventID uuid.UUID, userEmail string) (bool, error) {
	for _, r := range m.registrations {
		if r.EventID == eventID && r.UserEmail == userEmail {
			return false, nil
		}
	}
	reg := &db_models.EventRegistration{EventID: eventID, UserEmail: userEmail}
	reg.ID = uuid.New()
	reg.CreatedAt = time.Now().UnixNano()
	m.registrations = append(m.registrations, reg)
	return true, nil
}

func (m *mockEventRepo) ListRegistrationsByEmail(_ context.Context, userEmail string) ([]db_models.EventRegistration, error) {
	var out []db_models.EventRegistration
	for _, r := range m.registrations {
		if r.UserEmail == userEmail {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockEventRepo) ListRegistrationsByEvent(_ context.Context, eventID uuid.UUID) ([]db_models.EventRegistration, error) {
	var out []db_models.EventRegistration
	for _, r := range m.registrations {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockEventRepo) FirstRegistrant(_ context.Context, eventID uuid.UUID) (*db_models.EventRegistration, error) {
	// insertion order: the backing slice is append-only
	for _, r := range m.registrations {
		if r.EventID == eventID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockEventRepo) CreateVolunteer(_ context.Context, eventID uuid.UUID, studentEmail, studentName string) (bool, error) {
	for _, v := range m.volunteers {
		if v.EventID == eventID && v.StudentEmail == studentEmail {
			return false, nil
		}
	}
	volunteer := &db_models.Volunteer{EventID: eventID, StudentEmail: studentEmail, StudentName: studentName}
	volunteer.ID = uuid.New()
	m.volunteers = append(m.volunteers, volunteer)
	return true, nil
}

func (m *mockEventRepo) ListVolunteersByEmail(_ context.Context, studentEmail string) ([]db_models.Volunteer, error) {
	var out []db_models.Volunteer
	for _, v := range m.volunteers {
		if v.StudentEmail == studentEmail {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockEventRepo) ListVolunteersByEvent(_ context.Context, eventID uuid.UUID) ([]db_models.Volunteer, error) {
	var out []db_models.Volunteer
	for _, v := range m.volunteers {
		if v.EventID == eventID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockEventRepo) AssignOrganiser(_ context.Context, eventID uuid.UUID, organiserEmail, organiserName string) (bool, error) {
	for _, a := range m.assignments {
		if a.EventID == eventID && a.OrganiserEmail == organiserEmail {
			return false, nil
		}
	}
	assignment := &db_models.EventOrganiser{EventID: eventID, OrganiserEmail: organiserEmail, OrganiserName: organiserName}
	assignment.ID = uuid.New()
	m.assignments = append(m.assignments, assignment)
	return true, nil
}

func (m *mockEventRepo) ListOrganisersByEvent(_ context.Context, eventID uuid.UUID) ([]db_models.EventOrganiser, error) {
	var out []db_models.EventOrganiser
	for _, a := range m.assignments {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockEventRepo) ListAssignmentsByOrganiser(_ context.Context, organiserEmail string) ([]db_models.EventOrganiser, error) {
	var out []db_models.EventOrganiser
	for _, a := range m.assignments {
		if a.OrganiserEmail == organiserEmail {
			out = append(out, *a)
		}
	}
	return out, nil
}

// ── Mock HallRepository ──

type mockHallRepo struct {
	mu       sync.Mutex
	halls    map[uuid.UUID]*db_models.Hall
	bookings map[string]*db_models.Accommodation // by participant email
}

func newMockHallRepo() *mockHallRepo {
	return &mockHallRepo{
		halls:    make(map[uuid.UUID]*db_models.Hall),
		bookings: make(map[string]*db_models.Accommodation),
	}
}

func (m *mockHallRepo) addHall(name string, vacancy, price int) *db_models.Hall {
	hall := &db_models.Hall{Name: name, Vacancy: vacancy, Price: price}
	hall.ID = uuid.New()
	m.halls[hall.ID] = hall
	return hall
}

func (m *mockHallRepo) ListHalls(_ context.Context) ([]db_models.Hall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.Hall
	for _, h := range m.halls {
		out = append(out, *h)
	}
	return out, nil
}

func (m *mockHallRepo) FindHallByID(_ context.Context, id uuid.UUID) (*db_models.Hall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if h, ok := m.halls[id]; ok {
		clone := *h
		return &clone, nil
	}
	return nil, nil
}

func (m *mockHallRepo) FindAccommodationByEmail(_ context.Context, email string) (*db_models.Accommodation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[email]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func (m *mockHallRepo) ListAccommodationsByHall(_ context.Context, hallID uuid.UUID) ([]db_models.Accommodation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.Accommodation
	for _, b := range m.bookings {
		if b.HallID == hallID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockHallRepo) BookHall(_ context.Context, hallID uuid.UUID, participantEmail, participantName string) (*db_models.Accommodation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hall, ok := m.halls[hallID]
	if !ok {
		return nil, utils.ErrHallNotFound
	}
	if _, ok := m.bookings[participantEmail]; ok {
		return nil, utils.ErrAlreadyBooked
	}
	if hall.Vacancy <= 0 {
		return nil, utils.ErrNoVacancy
	}
	hall.Vacancy--

	booking := &db_models.Accommodation{
		ParticipantName:  participantName,
		ParticipantEmail: participantEmail,
		HallID:           hall.ID,
		HallName:         hall.Name,
		Price:            hall.Price,
		BookingDate:      time.Now(),
	}
	booking.ID = uuid.New()
	m.bookings[participantEmail] = booking
	clone := *booking
	return &clone, nil
}

// ── Mock WinnerRepository ──

type mockWinnerRepo struct {
	winners map[uuid.UUID]*db_models.Winner
}

func newMockWinnerRepo() *mockWinnerRepo {
	return &mockWinnerRepo{winners: make(map[uuid.UUID]*db_models.Winner)}
}

func (m *mockWinnerRepo) ListWinners(_ context.Context) ([]db_models.Winner, error) {
	var out []db_models.Winner
	for _, w := range m.winners {
		out = append(out, *w)
	}
	return out, nil
}

func (m *mockWinnerRepo) HasWinner(_ context.Context, eventID uuid.UUID) (bool, error) {
	_, ok := m.winners[eventID]
	return ok, nil
}

func (m *mockWinnerRepo) CreateWinner(_ context.Context, winner *db_models.Winner) (bool, error) {
	if _, ok := m.winners[winner.EventID]; ok {
		return false, nil
	}
	m.winners[winner.EventID] = winner
	return true, nil
}
