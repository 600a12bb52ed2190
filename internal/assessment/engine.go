// Package assessment runs the mood questionnaire: it collects one mood label
// per question, resolves the dominant mood once every question is answered
// and selects the matching catalog items.
//
// An Engine is not safe for concurrent use. Each session owns its own Engine;
// the Catalog it reads from may be shared.
package assessment

import (
	"errors"
	"fmt"
	"time"

	"yourscinema-backend/internal/catalog"
	"yourscinema-backend/internal/mood"
)

var (
	ErrOutOfSequence  = errors.New("operation not valid in the current assessment state")
	ErrInvalidMood    = errors.New("mood label outside the known set")
	ErrNotRecommended = errors.New("item is not part of the current recommendations")
)

// Status names the engine's current state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// State is a snapshot of an Engine. Slices are copies.
type State struct {
	Status          Status         `json:"status"`
	QuestionIndex   int            `json:"question_index"`
	Answers         []mood.Mood    `json:"answers"`
	Mood            mood.Mood      `json:"mood,omitempty"`
	Tally           []mood.Count   `json:"tally,omitempty"`
	Recommendations []catalog.Item `json:"recommendations,omitempty"`
	CompletedAt     time.Time      `json:"completed_at,omitempty"`
}

// Progress reports how far along the questionnaire is.
type Progress struct {
	Current int     `json:"current"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

type Engine struct {
	questions []Question
	catalog   *catalog.Catalog
	sink      Sink
	now       func() time.Time
	limit     int

	status      Status
	answers     []mood.Mood
	dominant    mood.Mood
	tally       []mood.Count
	result      []catalog.Item
	completedAt time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSink sets the receiver of engine notifications.
func WithSink(s Sink) EngineOption {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithClock overrides time.Now for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRecommendationLimit caps the number of recommended items. Zero or a
// negative value means no cap.
func WithRecommendationLimit(n int) EngineOption {
	return func(e *Engine) {
		e.limit = n
	}
}

// New builds an Engine in the NotStarted state.
func New(questions []Question, c *catalog.Catalog, opts ...EngineOption) (*Engine, error) {
	if c == nil {
		return nil, errors.New("assessment: catalog is nil")
	}
	qs, err := normalizeQuestions(questions)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		questions: qs,
		catalog:   c,
		sink:      nopSink{},
		now:       time.Now,
		status:    StatusNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Begin moves a NotStarted engine to the first question.
func (e *Engine) Begin() error {
	if e.status != StatusNotStarted {
		return fmt.Errorf("%w: begin while %s", ErrOutOfSequence, e.status)
	}
	e.status = StatusInProgress
	e.answers = make([]mood.Mood, 0, len(e.questions))
	return nil
}

// SubmitAnswer records the answer to the current question. The final answer
// resolves the dominant mood and the recommendations.
func (e *Engine) SubmitAnswer(label string) (State, error) {
	if e.status != StatusInProgress {
		return e.CurrentState(), fmt.Errorf("%w: submit answer while %s", ErrOutOfSequence, e.status)
	}
	m, err := mood.Parse(label)
	if err != nil {
		return e.CurrentState(), fmt.Errorf("%w: %q", ErrInvalidMood, label)
	}

	e.answers = append(e.answers, m)
	if len(e.answers) < len(e.questions) {
		return e.CurrentState(), nil
	}

	tally := mood.NewTally(e.answers)
	dominant, err := tally.Dominant()
	if err != nil {
		// unreachable: the sequence has at least one question
		return e.CurrentState(), err
	}
	result := e.catalog.FindByMood(dominant)
	if e.limit > 0 && len(result) > e.limit {
		result = result[:e.limit]
	}

	e.status = StatusCompleted
	e.dominant = dominant
	e.tally = tally.Counts()
	e.result = result
	e.completedAt = e.now()

	e.sink.MoodRecorded(MoodRecorded{Mood: dominant, OccurredAt: e.completedAt})
	return e.CurrentState(), nil
}

// Restart discards every answer and result and returns to NotStarted.
func (e *Engine) Restart() {
	e.status = StatusNotStarted
	e.answers = nil
	e.dominant = ""
	e.tally = nil
	e.result = nil
	e.completedAt = time.Time{}
}

// MarkWatched records that a recommended item was watched.
func (e *Engine) MarkWatched(itemID string) (WatchRecorded, error) {
	if e.status != StatusCompleted {
		return WatchRecorded{}, fmt.Errorf("%w: mark watched while %s", ErrOutOfSequence, e.status)
	}
	for _, item := range e.result {
		if item.ID == itemID {
			ev := WatchRecorded{ItemID: item.ID, Title: item.Title, Watched: true}
			e.sink.WatchRecorded(ev)
			return ev, nil
		}
	}
	return WatchRecorded{}, fmt.Errorf("%w: %s", ErrNotRecommended, itemID)
}

// CurrentQuestion returns the question awaiting an answer. It reports false
// unless the engine is InProgress.
func (e *Engine) CurrentQuestion() (Question, bool) {
	if e.status != StatusInProgress {
		return Question{}, false
	}
	return e.questions[len(e.answers)].Clone(), true
}

// CurrentState returns a snapshot of the engine.
func (e *Engine) CurrentState() State {
	s := State{
		Status:  e.status,
		Answers: append([]mood.Mood{}, e.answers...),
	}
	switch e.status {
	case StatusInProgress:
		s.QuestionIndex = len(e.answers)
	case StatusCompleted:
		s.QuestionIndex = len(e.questions)
		s.Mood = e.dominant
		s.Tally = append([]mood.Count{}, e.tally...)
		s.Recommendations = append([]catalog.Item{}, e.result...)
		s.CompletedAt = e.completedAt
	}
	return s
}

// Progress reports the 1-based number of the current question.
func (e *Engine) Progress() Progress {
	p := Progress{Total: len(e.questions)}
	switch e.status {
	case StatusInProgress:
		p.Current = len(e.answers) + 1
	case StatusCompleted:
		p.Current = p.Total
	}
	p.Percent = float64(p.Current*100) / float64(p.Total)
	return p
}

// Status returns the engine's current state name.
func (e *Engine) Status() Status {
	return e.status
}

// Questions returns a copy of the question sequence.
func (e *Engine) Questions() []Question {
	out := make([]Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = q.Clone()
	}
	return out
}
