package assessment

import (
	"errors"
	"fmt"

	"yourscinema-backend/internal/mood"
)

var ErrInvalidQuestions = errors.New("invalid question sequence")

// Option is one selectable answer of a Question.
type Option struct {
	Text string    `json:"text"`
	Mood mood.Mood `json:"mood"`
}

// Question is a prompt at a fixed position of the sequence.
type Question struct {
	Index   int      `json:"index"`
	Prompt  string   `json:"question"`
	Options []Option `json:"options"`
}

// Clone returns a copy that shares no option storage with q.
func (q Question) Clone() Question {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	q.Options = opts
	return q
}

// Moods returns the distinct mood labels offered by questions, in order of
// first appearance.
func Moods(questions []Question) []mood.Mood {
	seen := make(map[mood.Mood]bool)
	var out []mood.Mood
	for _, q := range questions {
		for _, o := range q.Options {
			if !seen[o.Mood] {
				seen[o.Mood] = true
				out = append(out, o.Mood)
			}
		}
	}
	return out
}

// normalizeQuestions checks the sequence and returns a copy with each
// question's Index set to its position.
func normalizeQuestions(questions []Question) ([]Question, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidQuestions)
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		if q.Prompt == "" {
			return nil, fmt.Errorf("%w: question %d has no prompt", ErrInvalidQuestions, i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: question %d has no options", ErrInvalidQuestions, i)
		}
		for j, o := range q.Options {
			if !o.Mood.Valid() {
				return nil, fmt.Errorf("%w: question %d option %d has mood %q", ErrInvalidQuestions, i, j, o.Mood)
			}
		}
		q = q.Clone()
		q.Index = i
		out[i] = q
	}
	return out, nil
}

// DefaultQuestions is the five-question mood sequence.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt: "How was your day today?",
			Options: []Option{
				{Text: "Amazing!", Mood: mood.Happy},
				{Text: "Good", Mood: mood.Relaxed},
				{Text: "Okay", Mood: mood.Relaxed},
				{Text: "Rough", Mood: mood.Sad},
			},
		},
		{
			Prompt: "What sounds appealing right now?",
			Options: []Option{
				{Text: "Big adventure", Mood: mood.Excited},
				{Text: "Cozy night in", Mood: mood.Relaxed},
				{Text: "Something uplifting", Mood: mood.Happy},
				{Text: "Deep emotional story", Mood: mood.Sad},
			},
		},
		{
			Prompt: "Pick your ideal evening:",
			Options: []Option{
				{Text: "Laughing with friends", Mood: mood.Happy},
				{Text: "Quiet reflection", Mood: mood.Sad},
				{Text: "Heart-racing excitement", Mood: mood.Excited},
				{Text: "Peaceful relaxation", Mood: mood.Relaxed},
			},
		},
		{
			Prompt: "Your energy level right now?",
			Options: []Option{
				{Text: "Super high!", Mood: mood.Excited},
				{Text: "Content and calm", Mood: mood.Relaxed},
				{Text: "Cheerful", Mood: mood.Happy},
				{Text: "Low and thoughtful", Mood: mood.Sad},
			},
		},
		{
			Prompt: "What do you need most?",
			Options: []Option{
				{Text: "Fun and laughter", Mood: mood.Happy},
				{Text: "Adrenaline rush", Mood: mood.Excited},
				{Text: "Emotional release", Mood: mood.Sad},
				{Text: "Peace and quiet", Mood: mood.Relaxed},
			},
		},
	}
}
