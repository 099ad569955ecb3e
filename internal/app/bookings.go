package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cyprus_travel/internal/domain"
)

// BookingService turns a validated booking request into one mail-relay send.
// Requests are never persisted or retried; a failed send surfaces to the
// caller with its field values untouched.
type BookingService struct {
	catalog       *CatalogService
	relay         domain.MailRelay
	hotelTemplate string
	tourTemplate  string
}

func NewBookingService(catalog *CatalogService, relay domain.MailRelay, hotelTemplate, tourTemplate string) *BookingService {
	return &BookingService{
		catalog:       catalog,
		relay:         relay,
		hotelTemplate: hotelTemplate,
		tourTemplate:  tourTemplate,
	}
}

// ReserveHotel validates the reservation, denormalizes the hotel's localized
// name and city into the template variables and fires the hotel template.
// Returns a booking reference for support correspondence; the reference is
// generated, not stored.
func (s *BookingService) ReserveHotel(ctx context.Context, req domain.HotelReservation) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	hotel, err := s.catalog.GetHotel(ctx, req.Slug, req.Lang)
	if err != nil {
		return "", err
	}

	params := map[string]any{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"phone":     req.Phone,
		"email":     req.Email,
		"checkIn":   req.CheckIn,
		"checkOut":  req.CheckOut,
		"hotelName": hotel.Name,
		"hotelCity": hotel.City,
	}
	if err := s.relay.Send(ctx, s.hotelTemplate, params); err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("hotel reservation send failed")
		return "", err
	}
	ref := uuid.NewString()
	log.Info().Str("slug", req.Slug).Str("ref", ref).Msg("hotel reservation sent")
	return ref, nil
}

// BookTour resolves the tour first (an empty slug picks the first catalog
// entry) because validation needs its available slots, then validates and
// fires the tour template.
func (s *BookingService) BookTour(ctx context.Context, req domain.TourBooking) (string, error) {
	tour, err := s.catalog.GetTour(ctx, req.Slug, req.Lang)
	if err != nil {
		return "", err
	}
	if err := req.Validate(tour.AvailableDates); err != nil {
		return "", err
	}

	params := map[string]any{
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"phone":        req.Phone,
		"email":        req.Email,
		"tourDateTime": req.TourDateTime,
		"tourName":     tour.Name,
		"tourCity":     tour.City,
		"tourPrice":    tour.Price,
	}
	if err := s.relay.Send(ctx, s.tourTemplate, params); err != nil {
		log.Error().Err(err).Str("slug", tour.Slug).Msg("tour booking send failed")
		return "", err
	}
	ref := uuid.NewString()
	log.Info().Str("slug", tour.Slug).Str("ref", ref).Msg("tour booking sent")
	return ref, nil
}
