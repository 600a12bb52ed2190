package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yourscinema-backend/internal/model"
)

type MovieRepository interface {
	UpsertMovies(movies []model.Movie) error
	GetMovies() ([]model.Movie, error)
}

type movieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

// UpsertMovies writes the catalog seed, replacing rows with the same id.
func (r *movieRepository) UpsertMovies(movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "title", "genre", "mood_tag", "rating", "description", "glyph", "year", "updated_at"}),
	}).Create(&movies).Error
	if err != nil {
		return fmt.Errorf("upsert movies: %w", err)
	}
	return nil
}

func (r *movieRepository) GetMovies() ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.Order("position asc").Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}
