package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyprus_travel/internal/domain"
)

func validReservation() domain.HotelReservation {
	return domain.HotelReservation{
		Slug:      "villa-x",
		FirstName: "Anna",
		LastName:  "Pavlou",
		Phone:     "+357 99 123456",
		Email:     "anna@example.com",
		CheckIn:   "2024-07-01",
		CheckOut:  "2024-07-05",
	}
}

func TestHotelReservation_Validate(t *testing.T) {
	require.NoError(t, validReservation().Validate())

	t.Run("missing required field", func(t *testing.T) {
		r := validReservation()
		r.Phone = ""
		err := r.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("whitespace-only field", func(t *testing.T) {
		r := validReservation()
		r.FirstName = "   "
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		r := validReservation()
		r.CheckIn = "2024-07-05"
		r.CheckOut = "2024-07-01"
		assert.ErrorIs(t, r.Validate(), domain.ErrValidation)
	})

	t.Run("equal dates accepted", func(t *testing.T) {
		r := validReservation()
		r.CheckIn = "2024-07-01"
		r.CheckOut = "2024-07-01"
		assert.NoError(t, r.Validate())
	})
}

func validBooking() domain.TourBooking {
	return domain.TourBooking{
		Slug:         "kyrenia-boat",
		FirstName:    "Ivan",
		LastName:     "Petrov",
		Phone:        "+357 96 654321",
		Email:        "ivan@example.com",
		TourDateTime: "2024-07-02T10:00",
	}
}

func TestTourBooking_Validate(t *testing.T) {
	dates := []string{"2024-07-01T10:00", "2024-07-02T10:00"}

	require.NoError(t, validBooking().Validate(dates))

	t.Run("missing required field", func(t *testing.T) {
		b := validBooking()
		b.Email = ""
		assert.ErrorIs(t, b.Validate(dates), domain.ErrValidation)
	})

	t.Run("no slot selected", func(t *testing.T) {
		b := validBooking()
		b.TourDateTime = ""
		assert.ErrorIs(t, b.Validate(dates), domain.ErrValidation)
	})

	t.Run("fabricated slot", func(t *testing.T) {
		b := validBooking()
		b.TourDateTime = "2024-12-24T10:00"
		assert.ErrorIs(t, b.Validate(dates), domain.ErrValidation)
	})

	t.Run("empty availableDates yields no bookable slot", func(t *testing.T) {
		b := validBooking()
		assert.ErrorIs(t, b.Validate(nil), domain.ErrValidation)
	})
}

func TestHotelLocalize_FallsBackToEnglish(t *testing.T) {
	h := domain.Hotel{
		Slug: "villa-x",
		City: "Limassol",
		Translations: map[domain.Lang]domain.LocalizedText{
			domain.LangEN: {Name: "Villa X", Description: "D"},
		},
	}

	text, served := h.Localize(domain.LangRU)
	assert.Equal(t, "Villa X", text.Name)
	assert.Equal(t, domain.LangEN, served)

	text, served = h.Localize(domain.LangEN)
	assert.Equal(t, "Villa X", text.Name)
	assert.Equal(t, domain.LangEN, served)
}
