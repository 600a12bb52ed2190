package model

import "time"

// MoodAssessment is one completed assessment's dominant mood.
type MoodAssessment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"not null;index"`
	SessionID  string    `json:"session_id" gorm:"not null;index"`
	Mood       string    `json:"mood" gorm:"not null"`
	OccurredAt time.Time `json:"occurred_at" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

// Movie mirrors a catalog item so reports and joins can reach it.
type Movie struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Position    int       `json:"position" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Genre       string    `json:"genre"`
	MoodTag     string    `json:"mood_tag" gorm:"not null;index"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	Glyph       string    `json:"glyph"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserMovie is a user's interaction with a movie.
type UserMovie struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_movie"`
	MovieID    string    `json:"movie_id" gorm:"not null;uniqueIndex:idx_user_movie"`
	MovieTitle string    `json:"movie_title"`
	UserRating int       `json:"user_rating"`
	Watched    bool      `json:"watched"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{&Movie{}, &MoodAssessment{}, &UserMovie{}}
}
