package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/catalog"
	"yourscinema-backend/internal/metrics"
	"yourscinema-backend/utilities"
)

var ErrSessionNotFound = errors.New("assessment session not found")

// SessionView is what callers see of an assessment session.
type SessionView struct {
	SessionID string               `json:"session_id"`
	State     assessment.State     `json:"state"`
	Question  *assessment.Question `json:"question,omitempty"`
	Progress  assessment.Progress  `json:"progress"`
	MoodGlyph string               `json:"mood_glyph,omitempty"`
	MoodColor string               `json:"mood_color,omitempty"`
}

type AssessmentService interface {
	StartAssessment(userID string) (*SessionView, error)
	GetAssessment(userID, sessionID string) (*SessionView, error)
	SubmitAnswer(userID, sessionID, mood string) (*SessionView, error)
	RestartAssessment(userID, sessionID string) (*SessionView, error)
	MarkWatched(userID, sessionID, movieID string) (*assessment.WatchRecorded, error)
	EndAssessment(userID, sessionID string) error
	Questions() []assessment.Question
	EvictIdle(now time.Time) int
	ActiveSessions() int
}

type session struct {
	mu       sync.Mutex
	userID   string
	engine   *assessment.Engine
	lastSeen time.Time
}

type assessmentService struct {
	questions []assessment.Question
	catalog   *catalog.Catalog
	bus       *utilities.EventBus
	logger    *zap.Logger
	ttl       time.Duration
	limit     int
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// AssessmentOptions tunes the session registry.
type AssessmentOptions struct {
	// SessionTTL evicts sessions idle for longer; zero keeps them forever.
	SessionTTL          time.Duration
	RecommendationLimit int
	Clock               func() time.Time
}

// NewAssessmentService checks the question sequence against the catalog and
// returns a registry that gives every session its own engine.
func NewAssessmentService(questions []assessment.Question, c *catalog.Catalog, bus *utilities.EventBus, logger *zap.Logger, opts AssessmentOptions) (AssessmentService, error) {
	if c == nil || bus == nil {
		return nil, errors.New("assessment service: catalog and event bus are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	// build one engine up front so bad questions fail at startup
	probe, err := assessment.New(questions, c)
	if err != nil {
		return nil, err
	}
	if missing := c.Missing(assessment.Moods(questions)); len(missing) > 0 {
		logger.Warn("catalog has no movies for some answer moods", zap.Any("moods", missing))
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &assessmentService{
		questions: probe.Questions(),
		catalog:   c,
		bus:       bus,
		logger:    logger,
		ttl:       opts.SessionTTL,
		limit:     opts.RecommendationLimit,
		now:       now,
		sessions:  make(map[string]*session),
	}, nil
}

func (s *assessmentService) StartAssessment(userID string) (*SessionView, error) {
	sessionID := uuid.New().String()

	engine, err := assessment.New(s.questions, s.catalog,
		assessment.WithSink(newBusSink(s.bus, userID, sessionID)),
		assessment.WithClock(s.now),
		assessment.WithRecommendationLimit(s.limit),
	)
	if err != nil {
		return nil, err
	}
	if err := engine.Begin(); err != nil {
		return nil, err
	}

	sess := &session{userID: userID, engine: engine, lastSeen: s.now()}
	s.mu.Lock()
	s.sessions[sessionID] = sess
	active := len(s.sessions)
	s.mu.Unlock()

	metrics.RecordAssessmentStarted()
	metrics.SetActiveSessions(active)
	s.logger.Debug("assessment started", zap.String("user_id", userID), zap.String("session_id", sessionID))

	return view(sessionID, engine), nil
}

func (s *assessmentService) GetAssessment(userID, sessionID string) (*SessionView, error) {
	var out *SessionView
	err := s.withSession(userID, sessionID, func(sess *session) error {
		out = view(sessionID, sess.engine)
		return nil
	})
	return out, err
}

func (s *assessmentService) SubmitAnswer(userID, sessionID, mood string) (*SessionView, error) {
	var out *SessionView
	err := s.withSession(userID, sessionID, func(sess *session) error {
		st, err := sess.engine.SubmitAnswer(mood)
		if err != nil {
			metrics.RecordAnswerRejected(rejectReason(err))
			return err
		}
		if st.Status == assessment.StatusCompleted {
			metrics.RecordAssessmentCompleted(st.Mood.String())
			s.logger.Info("assessment completed",
				zap.String("user_id", userID),
				zap.String("session_id", sessionID),
				zap.String("mood", st.Mood.String()),
				zap.Int("recommendations", len(st.Recommendations)))
		}
		out = view(sessionID, sess.engine)
		return nil
	})
	return out, err
}

// RestartAssessment discards the session's answers and begins again.
func (s *assessmentService) RestartAssessment(userID, sessionID string) (*SessionView, error) {
	var out *SessionView
	err := s.withSession(userID, sessionID, func(sess *session) error {
		sess.engine.Restart()
		if err := sess.engine.Begin(); err != nil {
			return err
		}
		metrics.RecordAssessmentStarted()
		out = view(sessionID, sess.engine)
		return nil
	})
	return out, err
}

func (s *assessmentService) MarkWatched(userID, sessionID, movieID string) (*assessment.WatchRecorded, error) {
	var out *assessment.WatchRecorded
	err := s.withSession(userID, sessionID, func(sess *session) error {
		ev, err := sess.engine.MarkWatched(movieID)
		if err != nil {
			return err
		}
		out = &ev
		return nil
	})
	return out, err
}

func (s *assessmentService) EndAssessment(userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.userID != userID {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	metrics.SetActiveSessions(len(s.sessions))
	return nil
}

func (s *assessmentService) Questions() []assessment.Question {
	out := make([]assessment.Question, len(s.questions))
	for i, q := range s.questions {
		out[i] = q.Clone()
	}
	return out
}

// EvictIdle drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *assessmentService) EvictIdle(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen) > s.ttl
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.SetActiveSessions(len(s.sessions))
		s.logger.Debug("evicted idle assessment sessions", zap.Int("count", evicted))
	}
	return evicted
}

func (s *assessmentService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// withSession runs fn with the session locked. Sessions owned by another
// user, or idle past the TTL, are reported as not found.
func (s *assessmentService) withSession(userID, sessionID string, fn func(*session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || sess.userID != userID {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	now := s.now()
	if s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl {
		sess.mu.Unlock()
		s.drop(sessionID, sess)
		return ErrSessionNotFound
	}
	sess.lastSeen = now
	defer sess.mu.Unlock()
	return fn(sess)
}

func (s *assessmentService) drop(sessionID string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[sessionID] == sess {
		delete(s.sessions, sessionID)
		metrics.SetActiveSessions(len(s.sessions))
	}
}

func view(sessionID string, e *assessment.Engine) *SessionView {
	v := &SessionView{
		SessionID: sessionID,
		State:     e.CurrentState(),
		Progress:  e.Progress(),
	}
	if q, ok := e.CurrentQuestion(); ok {
		v.Question = &q
	}
	if e.Status() == assessment.StatusCompleted {
		v.MoodGlyph = v.State.Mood.Glyph()
		v.MoodColor = v.State.Mood.Color()
	}
	return v
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, assessment.ErrOutOfSequence):
		return "out_of_sequence"
	case errors.Is(err, assessment.ErrInvalidMood):
		return "invalid_mood"
	default:
		return "other"
	}
}
