package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Viveknaik1/CFMS/internal/models/db_models"
	"github.com/Viveknaik1/CFMS/pkg/utils"
)

func newBookingFixture() (*mockUserRepo, *mockHallRepo, *mockMailService, BookingServiceInterface) {
	userRepo := newMockUserRepo()
	hallRepo := newMockHallRepo()
	mail := &mockMailService{}
	svc := NewBookingService(hallRepo, userRepo, mail, zap.NewNop())
	return userRepo, hallRepo, mail, svc
}

func addExternal(userRepo *mockUserRepo, email, name string) {
	user := &db_models.User{Email: email, Role: db_models.RoleExternal}
	userRepo.users[email] = user
	userRepo.externals[email] = &db_models.ExternalParticipant{
		UserEmail: email, Name: name, CollegeName: "IIT Bombay",
	}
}

func TestBookAccommodation(t *testing.T) {
	userRepo, hallRepo, mail, svc := newBookingFixture()
	hall := hallRepo.addHall("LBS HALL", 50, 200)
	addExternal(userRepo, "asha@iitb.ac.in", "Asha Rao")

	booking, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", hall.ID)
	if err != nil {
		t.Fatalf("BookAccommodation: %v", err)
	}
	if booking.HallName != "LBS HALL" || booking.Price != 200 {
		t.Errorf("booking = %+v, want LBS HALL at 200", booking)
	}
	if booking.Payment.Status != "confirmed" || booking.Payment.Amount != 200 {
		t.Errorf("payment = %+v", booking.Payment)
	}
	if got := hallRepo.halls[hall.ID].Vacancy; got != 49 {
		t.Errorf("vacancy = %d, want 49", got)
	}
	if mail.sentCount() != 1 {
		t.Errorf("sent %d mails, want 1", mail.sentCount())
	}
}

func TestBookAccommodationTwice(t *testing.T) {
	userRepo, hallRepo, _, svc := newBookingFixture()
	hall := hallRepo.addHall("LBS HALL", 50, 200)
	addExternal(userRepo, "asha@iitb.ac.in", "Asha Rao")

	if _, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", hall.ID); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	_, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", hall.ID)
	if !errors.Is(err, utils.ErrAlreadyBooked) {
		t.Fatalf("err = %v, want ErrAlreadyBooked", err)
	}
	// the failed attempt must not burn a slot
	if got := hallRepo.halls[hall.ID].Vacancy; got != 49 {
		t.Errorf("vacancy = %d, want 49", got)
	}
}

func TestBookAccommodationNoVacancy(t *testing.T) {
	userRepo, hallRepo, _, svc := newBookingFixture()
	hall := hallRepo.addHall("NEHRU HALL", 0, 150)
	addExternal(userRepo, "asha@iitb.ac.in", "Asha Rao")

	_, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", hall.ID)
	if !errors.Is(err, utils.ErrNoVacancy) {
		t.Fatalf("err = %v, want ErrNoVacancy", err)
	}
	if got := hallRepo.halls[hall.ID].Vacancy; got != 0 {
		t.Errorf("vacancy = %d, want 0", got)
	}
}

func TestBookAccommodationLastSlotRace(t *testing.T) {
	// Two participants race for a single remaining slot: exactly one
	// wins, vacancy ends at zero and never below.
	userRepo, hallRepo, _, svc := newBookingFixture()
	hall := hallRepo.addHall("NEHRU HALL", 1, 150)
	addExternal(userRepo, "a@iitb.ac.in", "A")
	addExternal(userRepo, "b@iitd.ac.in", "B")

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, email := range []string{"a@iitb.ac.in", "b@iitd.ac.in"} {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			_, results[i] = svc.BookAccommodation(context.Background(), email, hall.ID)
		}(i, email)
	}
	wg.Wait()

	var wins, full int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, utils.ErrNoVacancy):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || full != 1 {
		t.Errorf("wins = %d, full = %d, want 1 and 1", wins, full)
	}
	if got := hallRepo.halls[hall.ID].Vacancy; got != 0 {
		t.Errorf("vacancy = %d, want 0", got)
	}
}

func TestBookAccommodationUnknownHall(t *testing.T) {
	userRepo, _, _, svc := newBookingFixture()
	addExternal(userRepo, "asha@iitb.ac.in", "Asha Rao")

	_, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", uuid.New())
	if !errors.Is(err, utils.ErrHallNotFound) {
		t.Fatalf("err = %v, want ErrHallNotFound", err)
	}
}

func TestBookAccommodationWithoutProfile(t *testing.T) {
	_, hallRepo, _, svc := newBookingFixture()
	hall := hallRepo.addHall("LBS HALL", 50, 200)

	_, err := svc.BookAccommodation(context.Background(), "ghost@iitb.ac.in", hall.ID)
	if !errors.Is(err, utils.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestMyBooking(t *testing.T) {
	userRepo, hallRepo, _, svc := newBookingFixture()
	hall := hallRepo.addHall("LBS HALL", 50, 200)
	addExternal(userRepo, "asha@iitb.ac.in", "Asha Rao")

	got, err := svc.MyBooking(context.Background(), "asha@iitb.ac.in")
	if err != nil {
		t.Fatalf("MyBooking: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil before booking, got %+v", got)
	}

	if _, err := svc.BookAccommodation(context.Background(), "asha@iitb.ac.in", hall.ID); err != nil {
		t.Fatalf("BookAccommodation: %v", err)
	}
	got, err = svc.MyBooking(context.Background(), "asha@iitb.ac.in")
	if err != nil {
		t.Fatalf("MyBooking: %v", err)
	}
	if got == nil || got.HallName != "LBS HALL" {
		t.Errorf("booking = %+v, want LBS HALL", got)
	}
}

func TestListHalls(t *testing.T) {
	_, hallRepo, _, svc := newBookingFixture()
	hallRepo.addHall("LBS HALL", 50, 200)
	hallRepo.addHall("NEHRU HALL", 30, 150)

	halls, err := svc.ListHalls(context.Background())
	if err != nil {
		t.Fatalf("ListHalls: %v", err)
	}
	if len(halls) != 2 {
		t.Fatalf("halls = %d, want 2", len(halls))
	}
}
