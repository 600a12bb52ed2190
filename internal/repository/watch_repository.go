package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yourscinema-backend/internal/model"
)

type WatchRepository interface {
	SaveUserMovie(record *model.UserMovie) error
	GetUserMovies(userID string) ([]model.UserMovie, error)
}

type watchRepository struct {
	db *gorm.DB
}

func NewWatchRepository(db *gorm.DB) WatchRepository {
	return &watchRepository{db: db}
}

// SaveUserMovie inserts the interaction or updates the existing row for the
// same user and movie.
func (r *watchRepository) SaveUserMovie(record *model.UserMovie) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"movie_title", "watched", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("save user movie: %w", err)
	}
	return nil
}

func (r *watchRepository) GetUserMovies(userID string) ([]model.UserMovie, error) {
	var records []model.UserMovie
	if err := r.db.Where("user_id = ?", userID).Order("updated_at desc").Order("id desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list user movies: %w", err)
	}
	return records, nil
}
