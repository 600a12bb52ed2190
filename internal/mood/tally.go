package mood

import "errors"

var ErrEmptySequence = errors.New("cannot resolve a mood from an empty answer sequence")

// Count is a single entry of a Tally.
type Count struct {
	Mood  Mood `json:"mood"`
	Count int  `json:"count"`
}

// Tally counts mood occurrences and remembers the order in which each mood
// was first seen.
type Tally struct {
	counts map[Mood]int
	order  []Mood
	total  int
}

// NewTally folds answers into a Tally.
func NewTally(answers []Mood) *Tally {
	t := &Tally{counts: make(map[Mood]int, len(All))}
	for _, m := range answers {
		t.Add(m)
	}
	return t
}

// Add records one more occurrence of m.
func (t *Tally) Add(m Mood) {
	if _, seen := t.counts[m]; !seen {
		t.order = append(t.order, m)
	}
	t.counts[m]++
	t.total++
}

// Of returns the number of occurrences of m.
func (t *Tally) Of(m Mood) int {
	return t.counts[m]
}

// Total is the number of moods added; it always equals the sum of counts.
func (t *Tally) Total() int {
	return t.total
}

// Counts returns the entries in first-seen order.
func (t *Tally) Counts() []Count {
	out := make([]Count, 0, len(t.order))
	for _, m := range t.order {
		out = append(out, Count{Mood: m, Count: t.Of(m)})
	}
	return out
}

// Dominant returns the mood with the highest count. Ties go to the mood that
// appeared first in the answer sequence.
func (t *Tally) Dominant() (Mood, error) {
	if t.total == 0 {
		return "", ErrEmptySequence
	}
	var (
		best Mood
		top  int
	)
	for _, m := range t.order {
		// strict comparison keeps the earliest mood on equal counts
		if c := t.Of(m); c > top {
			best, top = m, c
		}
	}
	return best, nil
}

// Resolve returns the dominant mood of answers.
func Resolve(answers []Mood) (Mood, error) {
	return NewTally(answers).Dominant()
}
