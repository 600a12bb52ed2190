package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		answers []Mood
		want    Mood
	}{
		{
			name:    "unique maximum",
			answers: []Mood{Happy, Relaxed, Happy, Happy, Excited},
			want:    Happy,
		},
		{
			name:    "two-way tie goes to the first mood seen",
			answers: []Mood{Sad, Sad, Excited, Excited, Happy},
			want:    Sad,
		},
		{
			name:    "tie where the later-reached maximum was seen first",
			answers: []Mood{Excited, Sad, Sad, Excited, Happy},
			want:    Excited,
		},
		{
			name:    "all distinct picks the first answer",
			answers: []Mood{Relaxed, Sad, Happy, Excited},
			want:    Relaxed,
		},
		{
			name:    "single answer",
			answers: []Mood{Excited},
			want:    Excited,
		},
		{
			name:    "unanimous",
			answers: []Mood{Sad, Sad, Sad, Sad, Sad},
			want:    Sad,
		},
		{
			name:    "later mood overtakes an early lead",
			answers: []Mood{Happy, Relaxed, Relaxed, Happy, Relaxed},
			want:    Relaxed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	answers := []Mood{Sad, Excited, Excited, Sad, Relaxed}
	first, err := Resolve(answers)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		got, err := Resolve(answers)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
	assert.Equal(t, Sad, first)
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestTallyCounts(t *testing.T) {
	answers := []Mood{Happy, Relaxed, Happy, Happy, Excited}
	tally := NewTally(answers)

	assert.Equal(t, 3, tally.Of(Happy))
	assert.Equal(t, 1, tally.Of(Relaxed))
	assert.Equal(t, 1, tally.Of(Excited))
	assert.Equal(t, 0, tally.Of(Sad))
	assert.Equal(t, []Count{
		{Mood: Happy, Count: 3},
		{Mood: Relaxed, Count: 1},
		{Mood: Excited, Count: 1},
	}, tally.Counts())

	sum := 0
	for _, c := range tally.Counts() {
		sum += c.Count
	}
	assert.Equal(t, len(answers), sum)
	assert.Equal(t, len(answers), tally.Total())
}
