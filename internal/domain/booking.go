package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrValidation marks booking input the user has to correct and resubmit.
// Nothing is sent to the mail relay when validation fails.
var ErrValidation = errors.New("invalid booking")

func invalid(msg string) error { return fmt.Errorf("%w: %s", ErrValidation, msg) }

// HotelReservation is the transient form data of one hotel booking intent.
// It is validated, forwarded to the mail relay and discarded; never stored.
type HotelReservation struct {
	Slug      string `json:"slug"`
	Lang      Lang   `json:"lang"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

// Validate checks the whole value before any relay call. Dates are ISO
// formatted, so lexical order coincides with chronological order; equal
// check-in and check-out dates are accepted.
func (r HotelReservation) Validate() error {
	if err := requireAll(map[string]string{
		"first name":     r.FirstName,
		"last name":      r.LastName,
		"phone":          r.Phone,
		"email":          r.Email,
		"check-in date":  r.CheckIn,
		"check-out date": r.CheckOut,
	}); err != nil {
		return err
	}
	if r.CheckOut < r.CheckIn {
		return invalid("check-out date must not be before check-in date")
	}
	return nil
}

// TourBooking is the transient form data of one tour booking intent.
type TourBooking struct {
	Slug         string `json:"slug"`
	Lang         Lang   `json:"lang"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	TourDateTime string `json:"tourDateTime"`
}

// Validate checks the whole value against the tour's available slots.
// The chosen slot must be one of availableDates verbatim.
func (b TourBooking) Validate(availableDates []string) error {
	if err := requireAll(map[string]string{
		"first name": b.FirstName,
		"last name":  b.LastName,
		"phone":      b.Phone,
		"email":      b.Email,
	}); err != nil {
		return err
	}
	if b.TourDateTime == "" {
		return invalid("no tour date & time selected")
	}
	if !slices.Contains(availableDates, b.TourDateTime) {
		return invalid("tour date & time is not an available slot")
	}
	return nil
}

func requireAll(fields map[string]string) error {
	// deterministic order for error messages
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if strings.TrimSpace(fields[name]) == "" {
			return invalid("missing " + name)
		}
	}
	return nil
}
