package service

import (
	"go.uber.org/zap"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/metrics"
	"yourscinema-backend/internal/model"
	"yourscinema-backend/internal/repository"
	"yourscinema-backend/utilities"
)

// RecordedMood is the payload published on utilities.TopicMoodRecorded.
type RecordedMood struct {
	UserID    string
	SessionID string
	assessment.MoodRecorded
}

// RecordedWatch is the payload published on utilities.TopicWatchRecorded.
type RecordedWatch struct {
	UserID    string
	SessionID string
	assessment.WatchRecorded
}

// busSink forwards one session's engine notifications to the event bus.
type busSink struct {
	bus       *utilities.EventBus
	userID    string
	sessionID string
}

func newBusSink(bus *utilities.EventBus, userID, sessionID string) *busSink {
	return &busSink{bus: bus, userID: userID, sessionID: sessionID}
}

func (s *busSink) MoodRecorded(ev assessment.MoodRecorded) {
	s.bus.Publish(utilities.TopicMoodRecorded, RecordedMood{UserID: s.userID, SessionID: s.sessionID, MoodRecorded: ev})
}

func (s *busSink) WatchRecorded(ev assessment.WatchRecorded) {
	s.bus.Publish(utilities.TopicWatchRecorded, RecordedWatch{UserID: s.userID, SessionID: s.sessionID, WatchRecorded: ev})
}

// Recorder persists assessment notifications. Failures are logged and
// counted; nothing is reported back to the publisher.
type Recorder struct {
	moodRepo  repository.MoodRepository
	watchRepo repository.WatchRepository
	logger    *zap.Logger
}

func NewRecorder(moodRepo repository.MoodRepository, watchRepo repository.WatchRepository, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{moodRepo: moodRepo, watchRepo: watchRepo, logger: logger}
}

// InitRecorderEventListeners subscribes the recorder to both topics.
func (r *Recorder) InitRecorderEventListeners(bus *utilities.EventBus) {
	bus.Subscribe(utilities.TopicMoodRecorded, r.handleMood)
	bus.Subscribe(utilities.TopicWatchRecorded, r.handleWatch)
}

func (r *Recorder) handleMood(data interface{}) {
	ev, ok := data.(RecordedMood)
	if !ok {
		r.logger.Warn("unexpected mood_recorded payload", zap.Any("data", data))
		return
	}
	err := r.moodRepo.CreateMoodAssessment(&model.MoodAssessment{
		UserID:     ev.UserID,
		SessionID:  ev.SessionID,
		Mood:       ev.Mood.String(),
		OccurredAt: ev.OccurredAt.UTC(),
	})
	metrics.RecordEvent(utilities.TopicMoodRecorded, err)
	if err != nil {
		r.logger.Error("failed to record mood",
			zap.String("user_id", ev.UserID),
			zap.String("session_id", ev.SessionID),
			zap.Error(err))
		return
	}
	r.logger.Info("mood recorded",
		zap.String("user_id", ev.UserID),
		zap.String("session_id", ev.SessionID),
		zap.String("mood", ev.Mood.String()))
}

func (r *Recorder) handleWatch(data interface{}) {
	ev, ok := data.(RecordedWatch)
	if !ok {
		r.logger.Warn("unexpected watch_recorded payload", zap.Any("data", data))
		return
	}
	err := r.watchRepo.SaveUserMovie(&model.UserMovie{
		UserID:     ev.UserID,
		MovieID:    ev.ItemID,
		MovieTitle: ev.Title,
		Watched:    ev.Watched,
	})
	metrics.RecordEvent(utilities.TopicWatchRecorded, err)
	if err != nil {
		r.logger.Error("failed to record watched movie",
			zap.String("user_id", ev.UserID),
			zap.String("movie_id", ev.ItemID),
			zap.Error(err))
		return
	}
	r.logger.Info("watch recorded",
		zap.String("user_id", ev.UserID),
		zap.String("movie_id", ev.ItemID))
}
