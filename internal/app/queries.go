package app

import (
	"context"
	"time"

	"cyprus_travel/internal/domain"
)

const (
	keyHotels = "catalog:hotels"
	keyTours  = "catalog:tours"
	keyAbout  = "catalog:about"
)

// CatalogService serves localized catalog reads: fetch the document
// (cache-aside), select the entry, resolve its translation.
type CatalogService struct {
	content  domain.ContentClient
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogService(c domain.ContentClient, cache domain.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{content: c, cache: cache, cacheTTL: ttl}
}

// GetAbout returns the about copy for lang. Unsupported languages are
// resolved to English by the caller; a document missing the section entirely
// also falls back to the English record.
func (s *CatalogService) GetAbout(ctx context.Context, lang domain.Lang) (domain.AboutSection, error) {
	doc, err := s.about(ctx)
	if err != nil {
		return domain.AboutSection{}, err
	}
	if sec, ok := doc[lang]; ok {
		return sec, nil
	}
	return doc[domain.DefaultLang], nil
}

// GetHotel selects the hotel whose slug matches. Slug uniqueness is assumed,
// not enforced: first match wins.
func (s *CatalogService) GetHotel(ctx context.Context, slug string, lang domain.Lang) (domain.HotelView, error) {
	hotels, err := s.hotels(ctx)
	if err != nil {
		return domain.HotelView{}, err
	}
	for _, h := range hotels {
		if h.Slug == slug {
			return hotelView(h, lang), nil
		}
	}
	return domain.HotelView{}, domain.ErrNotFound
}

func (s *CatalogService) ListHotels(ctx context.Context, lang domain.Lang) ([]domain.HotelView, error) {
	hotels, err := s.hotels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.HotelView, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, hotelView(h, lang))
	}
	return out, nil
}

// GetTour selects the tour whose slug matches; an empty slug selects the
// first catalog entry (the tour flow's default when no slug is given).
func (s *CatalogService) GetTour(ctx context.Context, slug string, lang domain.Lang) (domain.TourView, error) {
	t, err := s.findTour(ctx, slug)
	if err != nil {
		return domain.TourView{}, err
	}
	return tourView(t, lang), nil
}

func (s *CatalogService) findTour(ctx context.Context, slug string) (domain.Tour, error) {
	tours, err := s.tours(ctx)
	if err != nil {
		return domain.Tour{}, err
	}
	if slug == "" {
		if len(tours) == 0 {
			return domain.Tour{}, domain.ErrNotFound
		}
		return tours[0], nil
	}
	for _, t := range tours {
		if t.Slug == slug {
			return t, nil
		}
	}
	return domain.Tour{}, domain.ErrNotFound
}

// document fetches, cache-aside over the raw host documents

func (s *CatalogService) hotels(ctx context.Context) ([]domain.Hotel, error) {
	var hs []domain.Hotel
	if ok, _ := s.cache.Get(ctx, keyHotels, &hs); ok {
		return hs, nil
	}
	hs, err := s.content.GetHotels(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyHotels, hs, s.cacheTTL)
	return hs, nil
}

func (s *CatalogService) tours(ctx context.Context) ([]domain.Tour, error) {
	var ts []domain.Tour
	if ok, _ := s.cache.Get(ctx, keyTours, &ts); ok {
		return ts, nil
	}
	ts, err := s.content.GetTours(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyTours, ts, s.cacheTTL)
	return ts, nil
}

func (s *CatalogService) about(ctx context.Context) (domain.AboutDocument, error) {
	var doc domain.AboutDocument
	if ok, _ := s.cache.Get(ctx, keyAbout, &doc); ok {
		return doc, nil
	}
	doc, err := s.content.GetAbout(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, keyAbout, doc, s.cacheTTL)
	return doc, nil
}

func hotelView(h domain.Hotel, lang domain.Lang) domain.HotelView {
	text, served := h.Localize(lang)
	return domain.HotelView{
		Slug:             h.Slug,
		City:             h.City,
		Image:            h.Image,
		Name:             text.Name,
		ShortDescription: text.ShortDescription,
		Description:      text.Description,
		Language:         served,
	}
}

func tourView(t domain.Tour, lang domain.Lang) domain.TourView {
	text, served := t.Localize(lang)
	return domain.TourView{
		Slug:           t.Slug,
		City:           t.City,
		Price:          t.Price,
		Image:          t.Image,
		Name:           text.Name,
		Description:    text.Description,
		AvailableDates: t.AvailableDates,
		Language:       served,
	}
}
