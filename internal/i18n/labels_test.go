package i18n_test

import (
	"testing"

	"cyprus_travel/internal/domain"
	"cyprus_travel/internal/i18n"
)

func TestLabel(t *testing.T) {
	if got := i18n.Label(i18n.FlowHotel, "reserve", domain.LangGR); got != "Κράτηση" {
		t.Fatalf("gr reserve: %q", got)
	}
	if got := i18n.Label(i18n.FlowTour, "bookNow", domain.LangRU); got != "Забронировать" {
		t.Fatalf("ru bookNow: %q", got)
	}
	// unknown language falls back to English
	if got := i18n.Label(i18n.FlowHotel, "submit", domain.Lang("de")); got != "Submit Reservation" {
		t.Fatalf("fallback submit: %q", got)
	}
}

func TestLabels_FillsMissingKeysFromEnglish(t *testing.T) {
	en := i18n.Labels(i18n.FlowTour, domain.LangEN)
	ru := i18n.Labels(i18n.FlowTour, domain.LangRU)
	if len(en) != len(ru) {
		t.Fatalf("label sets differ in size: en=%d ru=%d", len(en), len(ru))
	}
	if ru["cancel"] != "Отмена" {
		t.Fatalf("ru cancel: %q", ru["cancel"])
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   domain.Lang
	}{
		{"ru-RU", domain.LangRU},
		{"ru-RU,ru;q=0.9,en-US;q=0.8", domain.LangRU},
		{"el-GR", domain.LangGR},
		{"el", domain.LangGR},
		{"en-GB", domain.LangEN},
		{"de-DE", domain.LangEN},
		{"", domain.LangEN},
		{"not a header", domain.LangEN},
	}
	for _, c := range cases {
		if got := i18n.FromAcceptLanguage(c.header); got != c.want {
			t.Errorf("FromAcceptLanguage(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}
