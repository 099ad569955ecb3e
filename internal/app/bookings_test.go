package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyprus_travel/internal/app"
	"cyprus_travel/internal/domain"
)

type sentMail struct {
	templateID string
	params     map[string]any
}

type fakeRelay struct {
	sent []sentMail
	err  error
}

func (f *fakeRelay) Send(ctx context.Context, templateID string, params map[string]any) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{templateID: templateID, params: params})
	return nil
}

func bookingFixtures() *app.CatalogService {
	content := &fakeContent{
		hotels: []domain.Hotel{
			{Slug: "villa-x", City: "Limassol", Translations: trio("Villa X")},
		},
		tours: []domain.Tour{
			{
				Slug: "kyrenia-boat", City: "Kyrenia", Price: 45,
				AvailableDates: []string{"2024-07-01T10:00", "2024-07-02T10:00"},
				Translations:   trio("Boat Trip"),
			},
		},
	}
	return app.NewCatalogService(content, &fakeCache{}, 10*time.Minute)
}

func hotelRequest() domain.HotelReservation {
	return domain.HotelReservation{
		Slug: "villa-x", Lang: domain.LangEN,
		FirstName: "Anna", LastName: "Pavlou",
		Phone: "+357 99 123456", Email: "anna@example.com",
		CheckIn: "2024-07-01", CheckOut: "2024-07-05",
	}
}

func tourRequest() domain.TourBooking {
	return domain.TourBooking{
		Slug: "kyrenia-boat", Lang: domain.LangEN,
		FirstName: "Ivan", LastName: "Petrov",
		Phone: "+357 96 654321", Email: "ivan@example.com",
		TourDateTime: "2024-07-02T10:00",
	}
}

func TestReserveHotel_SendsDenormalizedFields(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	ref, err := s.ReserveHotel(context.Background(), hotelRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	require.Len(t, relay.sent, 1)
	sent := relay.sent[0]
	assert.Equal(t, "tpl-hotel", sent.templateID)
	assert.Equal(t, "Villa X", sent.params["hotelName"])
	assert.Equal(t, "Limassol", sent.params["hotelCity"])
	assert.Equal(t, "2024-07-01", sent.params["checkIn"])
	assert.Equal(t, "2024-07-05", sent.params["checkOut"])
}

func TestReserveHotel_ValidationAbortsBeforeSend(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	t.Run("date order", func(t *testing.T) {
		req := hotelRequest()
		req.CheckIn = "2024-07-05"
		req.CheckOut = "2024-07-01"
		_, err := s.ReserveHotel(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty field", func(t *testing.T) {
		req := hotelRequest()
		req.Email = ""
		_, err := s.ReserveHotel(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	assert.Empty(t, relay.sent, "relay must not be called on validation failure")
}

func TestReserveHotel_EqualDatesAccepted(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	req := hotelRequest()
	req.CheckIn = "2024-07-01"
	req.CheckOut = "2024-07-01"
	_, err := s.ReserveHotel(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, relay.sent, 1)
}

func TestReserveHotel_UnknownSlug(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	req := hotelRequest()
	req.Slug = "missing"
	_, err := s.ReserveHotel(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, relay.sent)
}

func TestReserveHotel_RelayFailureSurfaces(t *testing.T) {
	relayErr := errors.New("relay down")
	s := app.NewBookingService(bookingFixtures(), &fakeRelay{err: relayErr}, "tpl-hotel", "tpl-tour")

	_, err := s.ReserveHotel(context.Background(), hotelRequest())
	assert.ErrorIs(t, err, relayErr)
}

func TestBookTour_SendsChosenSlot(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	ref, err := s.BookTour(context.Background(), tourRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ref)

	require.Len(t, relay.sent, 1, "exactly one relay call")
	sent := relay.sent[0]
	assert.Equal(t, "tpl-tour", sent.templateID)
	assert.Equal(t, "2024-07-02T10:00", sent.params["tourDateTime"])
	assert.Equal(t, "Boat Trip", sent.params["tourName"])
	assert.Equal(t, "Kyrenia", sent.params["tourCity"])
	assert.Equal(t, 45.0, sent.params["tourPrice"])
}

func TestBookTour_RequiresAvailableSlot(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	t.Run("no slot selected", func(t *testing.T) {
		req := tourRequest()
		req.TourDateTime = ""
		_, err := s.BookTour(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("slot not in availableDates", func(t *testing.T) {
		req := tourRequest()
		req.TourDateTime = "2024-12-24T10:00"
		_, err := s.BookTour(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	assert.Empty(t, relay.sent)
}

func TestBookTour_EmptySlugBooksFirstTour(t *testing.T) {
	relay := &fakeRelay{}
	s := app.NewBookingService(bookingFixtures(), relay, "tpl-hotel", "tpl-tour")

	req := tourRequest()
	req.Slug = ""
	_, err := s.BookTour(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, relay.sent, 1)
	assert.Equal(t, "Boat Trip", relay.sent[0].params["tourName"])
}
