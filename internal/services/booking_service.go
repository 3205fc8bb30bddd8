package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"freshfold/internal/domain"
	"freshfold/internal/repos"
	"freshfold/internal/validate"

	"github.com/google/uuid"
)

// ValidationError carries the single user-facing message for the first
// violated rule. Handlers surface Msg verbatim and nothing else.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// BookingInput is the raw form submission before validation.
type BookingInput struct {
	Weight     string
	Address    string
	PickupDate string
	Notes      string
}

type BookingService struct {
	Bookings *repos.BookingRepo
	Services *repos.ServiceRepo
	Profiles *repos.ProfileRepo
}

func NewBookingService(bookings *repos.BookingRepo, services *repos.ServiceRepo, profiles *repos.ProfileRepo) *BookingService {
	return &BookingService{Bookings: bookings, Services: services, Profiles: profiles}
}

// validateBooking applies the rules in order; the first failure wins and its
// message is the only one surfaced. On success the returned booking carries
// the trimmed address, parsed weight and blank notes dropped to empty.
func validateBooking(in BookingInput, svc domain.Service, now time.Time) (domain.Booking, error) {
	var b domain.Booking

	// ParseFloat accepts "NaN" and "Inf"; both must fail here, not reach
	// the price math.
	w, err := strconv.ParseFloat(strings.TrimSpace(in.Weight), 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return b, invalid("Weight must be a number")
	}
	if w < validate.MinWeightKg {
		return b, invalid("Minimum weight is %g kg", float64(validate.MinWeightKg))
	}
	if w > validate.MaxWeightKg {
		return b, invalid("Maximum weight is %g kg", float64(validate.MaxWeightKg))
	}

	addr, ok := validate.Address(in.Address)
	if !ok {
		if utf8.RuneCountInString(strings.TrimSpace(in.Address)) < validate.MinAddressLen {
			return b, invalid("Address must be at least %d characters", validate.MinAddressLen)
		}
		return b, invalid("Address must be at most %d characters", validate.MaxAddressLen)
	}

	if strings.TrimSpace(in.PickupDate) == "" {
		return b, invalid("Pickup date is required")
	}
	date, ok := validate.PickupDate(in.PickupDate, now)
	if !ok {
		return b, invalid("Pickup date must be tomorrow or later")
	}

	notes, ok := validate.Notes(in.Notes)
	if !ok {
		return b, invalid("Notes must be at most %d characters", validate.MaxNotesLen)
	}

	if w < svc.MinWeightKg {
		return b, invalid("Minimum weight for this service is %g kg", svc.MinWeightKg)
	}

	b.WeightKg = w
	b.PickupAddress = addr
	b.PickupDate = date
	b.Notes = notes
	return b, nil
}

// Create validates the form against the service's rules, snapshots the price
// at today's rate and persists the booking in 'pending'. Returns the booking
// id, or a *ValidationError the handler shows inline.
func (s *BookingService) Create(userID, serviceID string, in BookingInput, now time.Time) (string, error) {
	svc, err := s.Services.Get(serviceID)
	if err != nil {
		return "", err
	}
	if !svc.Active {
		return "", invalid("This service is currently unavailable")
	}

	b, err := validateBooking(in, svc, now)
	if err != nil {
		return "", err
	}

	b.ID = uuid.NewString()
	b.UserID = userID
	b.ServiceID = svc.ID
	b.TotalPrice = PriceTotal(b.WeightKg, svc.PricePerKg)

	if err := s.Bookings.Create(b); err != nil {
		return "", err
	}
	// Remember the address so the next form starts pre-filled.
	_ = s.Profiles.SaveAddress(userID, b.PickupAddress)
	return b.ID, nil
}

func (s *BookingService) ListForUser(userID string) ([]repos.CustomerBookingRow, error) {
	return s.Bookings.ListByUser(userID)
}

func (s *BookingService) ListAll(limit int) ([]repos.AdminBookingRow, error) {
	return s.Bookings.ListAll(limit)
}

// UpdateStatus drives the lifecycle: pending -> processing -> completed,
// with cancellation allowed from pending or processing. Terminal states
// reject every move with a typed error instead of silently overwriting.
func (s *BookingService) UpdateStatus(bookingID string, to domain.Status) error {
	b, err := s.Bookings.Get(bookingID)
	if err != nil {
		return err
	}
	next, err := b.Status.Transition(to)
	if err != nil {
		return err
	}
	return s.Bookings.UpdateStatus(bookingID, b.Status, next)
}
