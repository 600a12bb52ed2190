package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"yourscinema-backend/internal/db/query"
	"yourscinema-backend/internal/model"
)

// MoodCount is one row of a per-mood aggregate.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int64  `json:"count" gorm:"column:total"`
}

// MoodFilter narrows a user's mood history. Zero fields are ignored.
type MoodFilter struct {
	UserID string
	Moods  []string
	Since  time.Time
	Until  time.Time
	Limit  int
}

type MoodRepository interface {
	CreateMoodAssessment(record *model.MoodAssessment) error
	GetMoodAssessmentsByUser(userID string, limit int) ([]model.MoodAssessment, error)
	FindMoodAssessments(filter MoodFilter) ([]model.MoodAssessment, error)
	CountMoodsByUser(userID string) ([]MoodCount, error)
}

type moodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) MoodRepository {
	return &moodRepository{db: db}
}

// CreateMoodAssessment stores OccurredAt in UTC. sqlite keeps times as text,
// so every row must share one offset for ordering and range filters to hold.
func (r *moodRepository) CreateMoodAssessment(record *model.MoodAssessment) error {
	record.OccurredAt = record.OccurredAt.UTC()
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("create mood assessment: %w", err)
	}
	return nil
}

// GetMoodAssessmentsByUser returns the newest records first. A limit of zero
// returns every record.
func (r *moodRepository) GetMoodAssessmentsByUser(userID string, limit int) ([]model.MoodAssessment, error) {
	return r.FindMoodAssessments(MoodFilter{UserID: userID, Limit: limit})
}

func (r *moodRepository) FindMoodAssessments(filter MoodFilter) ([]model.MoodAssessment, error) {
	fp := query.NewFilterPredicate().Equal("user_id", filter.UserID)
	if len(filter.Moods) > 0 {
		values := make([]interface{}, len(filter.Moods))
		for i, m := range filter.Moods {
			values[i] = m
		}
		fp.And().In("mood", values...)
	}
	if !filter.Since.IsZero() {
		fp.And().GreaterOrEqual("occurred_at", filter.Since.UTC())
	}
	if !filter.Until.IsZero() {
		fp.And().LessThan("occurred_at", filter.Until.UTC())
	}
	clause, args := fp.Build()

	var records []model.MoodAssessment
	q := r.db.Where(clause, args...).Order("occurred_at desc").Order("id desc")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list mood assessments: %w", err)
	}
	return records, nil
}

func (r *moodRepository) CountMoodsByUser(userID string) ([]MoodCount, error) {
	var counts []MoodCount
	err := r.db.Model(&model.MoodAssessment{}).
		Select("mood, COUNT(*) AS total").
		Where("user_id = ?", userID).
		Group("mood").
		Order("total desc").
		Order("mood asc").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count moods: %w", err)
	}
	return counts, nil
}
