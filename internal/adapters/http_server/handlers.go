package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cyprus_travel/internal/app"
	"cyprus_travel/internal/domain"
	"cyprus_travel/internal/i18n"
)

type Handlers struct {
	Catalog *app.CatalogService
	Booking *app.BookingService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/about", h.getAbout)
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{slug}", h.getHotel)
	s.mux.Post("/v1/hotels/{slug}/reservations", h.reserveHotel)
	s.mux.Get("/v1/tours", h.getTour)
	s.mux.Post("/v1/tours/bookings", h.bookTour)
}

// hotelLang resolves the active language the hotel-flow way: explicit lang
// query parameter if supported, English otherwise.
func hotelLang(r *http.Request) domain.Lang {
	if l, ok := domain.ParseLang(r.URL.Query().Get("lang")); ok {
		return l
	}
	return domain.DefaultLang
}

// tourLang resolves the tour-flow way: explicit lang query parameter if
// supported, else the browser's reported locale.
func tourLang(r *http.Request) domain.Lang {
	if l, ok := domain.ParseLang(r.URL.Query().Get("lang")); ok {
		return l
	}
	return i18n.FromAcceptLanguage(r.Header.Get("Accept-Language"))
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCatalogJSON(w http.ResponseWriter, r *http.Request, lang domain.Lang, v any) {
	etag, body := calcETagAndBody(v)
	// If the client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(lang))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- catalog reads ----

func (h *Handlers) getAbout(w http.ResponseWriter, r *http.Request) {
	lang := hotelLang(r)
	sec, err := h.Catalog.GetAbout(r.Context(), lang)
	if err != nil {
		log.Error().Err(err).Msg("about fetch failed")
		writeProblem(w, http.StatusBadGateway, "Content Host Unavailable", "about content could not be loaded")
		return
	}
	writeCatalogJSON(w, r, lang, sec)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	lang := hotelLang(r)
	views, err := h.Catalog.ListHotels(r.Context(), lang)
	if err != nil {
		log.Error().Err(err).Msg("hotel list fetch failed")
		writeProblem(w, http.StatusBadGateway, "Content Host Unavailable", "hotel catalog could not be loaded")
		return
	}
	writeCatalogJSON(w, r, lang, views)
}

type hotelDetail struct {
	domain.HotelView
	Labels map[string]string `json:"labels"`
}

// getHotel renders the catalog-detail view. Fetch failures and lookup
// misses both end in not-found; only the log line tells them apart.
func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	lang := hotelLang(r)
	hv, err := h.Catalog.GetHotel(r.Context(), chi.URLParam(r, "slug"), lang)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error().Err(err).Msg("hotel fetch failed")
		}
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}
	writeCatalogJSON(w, r, hv.Language, hotelDetail{HotelView: hv, Labels: i18n.Labels(i18n.FlowHotel, lang)})
}

type tourDetail struct {
	domain.TourView
	Labels map[string]string `json:"labels"`
}

func (h *Handlers) getTour(w http.ResponseWriter, r *http.Request) {
	lang := tourLang(r)
	tv, err := h.Catalog.GetTour(r.Context(), r.URL.Query().Get("slug"), lang)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Error().Err(err).Msg("tour fetch failed")
		}
		writeProblem(w, http.StatusNotFound, "Not Found", "tour not found")
		return
	}
	writeCatalogJSON(w, r, tv.Language, tourDetail{TourView: tv, Labels: i18n.Labels(i18n.FlowTour, lang)})
}

// ---- booking submits ----

type bookingAccepted struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

func (h *Handlers) reserveHotel(w http.ResponseWriter, r *http.Request) {
	var req domain.HotelReservation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	req.Slug = chi.URLParam(r, "slug")
	req.Lang = hotelLang(r)

	ref, err := h.Booking.ReserveHotel(r.Context(), req)
	if err != nil {
		h.writeBookingError(w, err, "reservation")
		return
	}
	writeAccepted(w, ref)
}

func (h *Handlers) bookTour(w http.ResponseWriter, r *http.Request) {
	var req domain.TourBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be JSON")
		return
	}
	req.Lang = tourLang(r)

	ref, err := h.Booking.BookTour(r.Context(), req)
	if err != nil {
		h.writeBookingError(w, err, "booking")
		return
	}
	writeAccepted(w, ref)
}

// writeBookingError maps service errors onto the response taxonomy: bad
// input is the user's to fix, an unknown slug is a miss, anything else is a
// failed relay send the user may retry manually.
func (h *Handlers) writeBookingError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", what+" target not found")
	default:
		writeProblem(w, http.StatusBadGateway, "Send Failed", "failed to send "+what+", please try again")
	}
}

func writeAccepted(w http.ResponseWriter, ref string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(bookingAccepted{Reference: ref, Status: "sent"}); err != nil {
		log.Error().Err(err).Msg("failed to write booking response")
	}
}
