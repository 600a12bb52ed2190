package service

import (
	"errors"
	"fmt"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/model"
	"yourscinema-backend/internal/mood"
	"yourscinema-backend/internal/repository"
)

var ErrInvalidRange = errors.New("until must be after since")

// MoodSummary aggregates a user's recorded moods.
type MoodSummary struct {
	Total    int64                  `json:"total"`
	Counts   []repository.MoodCount `json:"counts"`
	Favorite string                 `json:"favorite,omitempty"`
	LastMood string                 `json:"last_mood,omitempty"`
	Watched  int                    `json:"watched"`
}

type HistoryService interface {
	GetMoodHistory(userID string, limit int) ([]model.MoodAssessment, error)
	FindMoodHistory(filter repository.MoodFilter) ([]model.MoodAssessment, error)
	GetMoodSummary(userID string) (*MoodSummary, error)
	GetWatched(userID string) ([]model.UserMovie, error)
}

type historyService struct {
	moodRepo  repository.MoodRepository
	watchRepo repository.WatchRepository
}

func NewHistoryService(moodRepo repository.MoodRepository, watchRepo repository.WatchRepository) HistoryService {
	return &historyService{moodRepo: moodRepo, watchRepo: watchRepo}
}

func (s *historyService) GetMoodHistory(userID string, limit int) ([]model.MoodAssessment, error) {
	return s.moodRepo.GetMoodAssessmentsByUser(userID, limit)
}

func (s *historyService) FindMoodHistory(filter repository.MoodFilter) ([]model.MoodAssessment, error) {
	for _, m := range filter.Moods {
		if _, err := mood.Parse(m); err != nil {
			return nil, fmt.Errorf("%w: %q", assessment.ErrInvalidMood, m)
		}
	}
	if !filter.Since.IsZero() && !filter.Until.IsZero() && !filter.Until.After(filter.Since) {
		return nil, ErrInvalidRange
	}
	return s.moodRepo.FindMoodAssessments(filter)
}

func (s *historyService) GetMoodSummary(userID string) (*MoodSummary, error) {
	counts, err := s.moodRepo.CountMoodsByUser(userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.moodRepo.GetMoodAssessmentsByUser(userID, 1)
	if err != nil {
		return nil, err
	}
	watched, err := s.watchRepo.GetUserMovies(userID)
	if err != nil {
		return nil, err
	}

	summary := &MoodSummary{Counts: counts}
	if summary.Counts == nil {
		summary.Counts = []repository.MoodCount{}
	}
	for _, c := range counts {
		summary.Total += c.Count
	}
	// counts arrive ordered by count desc, then label
	if len(counts) > 0 {
		summary.Favorite = counts[0].Mood
	}
	if len(latest) > 0 {
		summary.LastMood = latest[0].Mood
	}
	for _, w := range watched {
		if w.Watched {
			summary.Watched++
		}
	}
	return summary, nil
}

func (s *historyService) GetWatched(userID string) ([]model.UserMovie, error) {
	return s.watchRepo.GetUserMovies(userID)
}
