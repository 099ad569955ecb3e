package domain

import "errors"

// Lang is a supported catalog language. The content host keys every
// translated record by one of these three codes (note "gr", not ISO "el").
type Lang string

const (
	LangEN Lang = "en"
	LangGR Lang = "gr"
	LangRU Lang = "ru"
)

// DefaultLang is the fallback for unsupported or missing language codes.
const DefaultLang = LangEN

// ParseLang reports whether s is one of the supported codes.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangEN, LangGR, LangRU:
		return Lang(s), true
	}
	return "", false
}

var ErrNotFound = errors.New("catalog: not found")

type LocalizedText struct {
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Description      string `json:"description"`
}

// Hotel is one bookable catalog entry from hotels.json.
type Hotel struct {
	ID           int64                  `json:"id"`
	Slug         string                 `json:"slug"`
	City         string                 `json:"city"`
	Image        string                 `json:"image"`
	Translations map[Lang]LocalizedText `json:"translations"`
}

// Tour is one bookable catalog entry from tours.json. An empty
// AvailableDates slice is legal and simply yields no bookable slot.
type Tour struct {
	Slug           string                 `json:"slug"`
	City           string                 `json:"city"`
	Price          float64                `json:"price"`
	Image          string                 `json:"image"`
	AvailableDates []string               `json:"availableDates"`
	Translations   map[Lang]LocalizedText `json:"translations"`
}

// AboutSection is the per-language copy of the about page.
type AboutSection struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"paragraphs"`
	Founded    string   `json:"founded"`
	Mission    string   `json:"mission"`
}

// AboutDocument is about.json: one section per supported language.
type AboutDocument map[Lang]AboutSection

// Localize returns the hotel's text for lang and the language actually
// served; entries missing the requested language fall back to English.
func (h Hotel) Localize(lang Lang) (LocalizedText, Lang) {
	return localize(h.Translations, lang)
}

func (t Tour) Localize(lang Lang) (LocalizedText, Lang) {
	return localize(t.Translations, lang)
}

func localize(m map[Lang]LocalizedText, lang Lang) (LocalizedText, Lang) {
	if t, ok := m[lang]; ok {
		return t, lang
	}
	return m[DefaultLang], DefaultLang
}

// Read models

type HotelView struct {
	Slug             string `json:"slug"`
	City             string `json:"city"`
	Image            string `json:"image"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription,omitempty"`
	Description      string `json:"description"`
	Language         Lang   `json:"language"`
}

type TourView struct {
	Slug           string   `json:"slug"`
	City           string   `json:"city"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	AvailableDates []string `json:"availableDates"`
	Language       Lang     `json:"language"`
}
