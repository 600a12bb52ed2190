package service

import (
	"fmt"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/catalog"
	"yourscinema-backend/internal/model"
	"yourscinema-backend/internal/mood"
	"yourscinema-backend/internal/repository"
)

// MoodInfo describes one mood label for presentation.
type MoodInfo struct {
	Mood   mood.Mood `json:"mood"`
	Title  string    `json:"title"`
	Glyph  string    `json:"glyph"`
	Color  string    `json:"color"`
	Movies int       `json:"movies"`
}

type CatalogService interface {
	GetMovies(moodLabel string) ([]catalog.Item, error)
	GetMovie(id string) (catalog.Item, bool)
	GetMoods() []MoodInfo
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) CatalogService {
	return &catalogService{catalog: c}
}

// GetMovies lists the whole catalog, or only the movies tagged moodLabel
// when it is set.
func (s *catalogService) GetMovies(moodLabel string) ([]catalog.Item, error) {
	if moodLabel == "" {
		return s.catalog.Items(), nil
	}
	m, err := mood.Parse(moodLabel)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", assessment.ErrInvalidMood, moodLabel)
	}
	return s.catalog.FindByMood(m), nil
}

func (s *catalogService) GetMovie(id string) (catalog.Item, bool) {
	return s.catalog.Get(id)
}

func (s *catalogService) GetMoods() []MoodInfo {
	out := make([]MoodInfo, 0, len(mood.All))
	for _, m := range mood.All {
		out = append(out, MoodInfo{
			Mood:   m,
			Title:  m.Title(),
			Glyph:  m.Glyph(),
			Color:  m.Color(),
			Movies: len(s.catalog.FindByMood(m)),
		})
	}
	return out
}

// SeedMovies mirrors the catalog into the movies table.
func SeedMovies(repo repository.MovieRepository, c *catalog.Catalog) error {
	items := c.Items()
	movies := make([]model.Movie, 0, len(items))
	for i, item := range items {
		movies = append(movies, model.Movie{
			ID:          item.ID,
			Position:    i,
			Title:       item.Title,
			Genre:       item.Genre,
			MoodTag:     item.Mood.String(),
			Rating:      item.Rating,
			Description: item.Description,
			Glyph:       item.Glyph,
			Year:        item.Year,
		})
	}
	return repo.UpsertMovies(movies)
}

// LoadCatalog builds the catalog from the movies table, in seeded order.
// An empty table yields the built-in catalog.
func LoadCatalog(repo repository.MovieRepository) (*catalog.Catalog, error) {
	movies, err := repo.GetMovies()
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return catalog.Default(), nil
	}
	items := make([]catalog.Item, 0, len(movies))
	for _, m := range movies {
		items = append(items, catalog.Item{
			ID:          m.ID,
			Title:       m.Title,
			Genre:       m.Genre,
			Mood:        mood.Mood(m.MoodTag),
			Rating:      m.Rating,
			Description: m.Description,
			Glyph:       m.Glyph,
			Year:        m.Year,
		})
	}
	return catalog.New(items)
}
