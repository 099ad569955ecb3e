// Package i18n holds the UI label table shared by the hotel and tour flows
// and the Accept-Language resolution for the tour flow.
package i18n

import (
	"golang.org/x/text/language"

	"cyprus_travel/internal/domain"
)

// Flow selects which page's label set a lookup reads.
type Flow string

const (
	FlowHotel Flow = "hotel"
	FlowTour  Flow = "tour"
)

var labels = map[Flow]map[domain.Lang]map[string]string{
	FlowHotel: {
		domain.LangEN: {
			"reserve":   "Reserve",
			"firstName": "First Name",
			"lastName":  "Last Name",
			"phone":     "Phone Number",
			"email":     "Email Address",
			"checkIn":   "Check-in Date",
			"checkOut":  "Check-out Date",
			"submit":    "Submit Reservation",
		},
		domain.LangGR: {
			"reserve":   "Κράτηση",
			"firstName": "Όνομα",
			"lastName":  "Επώνυμο",
			"phone":     "Αριθμός Τηλεφώνου",
			"email":     "Διεύθυνση Email",
			"checkIn":   "Ημερομηνία Άφιξης",
			"checkOut":  "Ημερομηνία Αναχώρησης",
			"submit":    "Υποβολή Κράτησης",
		},
		domain.LangRU: {
			"reserve":   "Забронировать",
			"firstName": "Имя",
			"lastName":  "Фамилия",
			"phone":     "Номер телефона",
			"email":     "Электронная почта",
			"checkIn":   "Дата заезда",
			"checkOut":  "Дата выезда",
			"submit":    "Отправить бронь",
		},
	},
	FlowTour: {
		domain.LangEN: {
			"bookNow":     "Book Now",
			"tourBooking": "Tour Booking",
			"firstName":   "First Name",
			"lastName":    "Last Name",
			"phone":       "Phone",
			"email":       "Email",
			"selectDate":  "Select Date & Time",
			"cancel":      "Cancel",
			"submit":      "Submit Booking",
			"price":       "Price",
		},
		domain.LangGR: {
			"bookNow":     "Κλείστε τώρα",
			"tourBooking": "Κράτηση Εκδρομής",
			"firstName":   "Όνομα",
			"lastName":    "Επώνυμο",
			"phone":       "Τηλέφωνο",
			"email":       "Email",
			"selectDate":  "Επιλέξτε Ημερομηνία & Ώρα",
			"cancel":      "Ακύρωση",
			"submit":      "Υποβολή Κράτησης",
			"price":       "Τιμή",
		},
		domain.LangRU: {
			"bookNow":     "Забронировать",
			"tourBooking": "Бронирование тура",
			"firstName":   "Имя",
			"lastName":    "Фамилия",
			"phone":       "Телефон",
			"email":       "Email",
			"selectDate":  "Выберите дату и время",
			"cancel":      "Отмена",
			"submit":      "Отправить бронирование",
			"price":       "Цена",
		},
	},
}

// Label returns one UI string, falling back to the English entry when the
// requested language (or key) is missing.
func Label(flow Flow, key string, lang domain.Lang) string {
	if v, ok := labels[flow][lang][key]; ok {
		return v
	}
	return labels[flow][domain.DefaultLang][key]
}

// Labels returns the full label set for a flow, with English filling in any
// key the requested language does not carry.
func Labels(flow Flow, lang domain.Lang) map[string]string {
	out := make(map[string]string, len(labels[flow][domain.DefaultLang]))
	for key, v := range labels[flow][domain.DefaultLang] {
		out[key] = v
	}
	if lang == domain.DefaultLang {
		return out
	}
	for key, v := range labels[flow][lang] {
		out[key] = v
	}
	return out
}

// Supported languages in matcher order; the first tag is the fallback.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Greek,
	language.Russian,
})

var byMatchIndex = [...]domain.Lang{domain.LangEN, domain.LangGR, domain.LangRU}

// FromAcceptLanguage maps a browser's reported locale onto a supported
// catalog language ("el-GR" resolves gr, "ru-RU" resolves ru, anything
// else English).
func FromAcceptLanguage(header string) domain.Lang {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLang
	}
	return byMatchIndex[idx]
}
