package catalog

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yourscinema-backend/internal/mood"
)

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestFindByMood(t *testing.T) {
	c := Default()

	tests := []struct {
		mood mood.Mood
		want []string
	}{
		{mood.Happy, []string{"1", "2", "3"}},
		{mood.Excited, []string{"4", "5", "6"}},
		{mood.Relaxed, []string{"7", "8", "9"}},
		{mood.Sad, []string{"10", "11", "12"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			got := c.FindByMood(tt.mood)
			assert.Equal(t, tt.want, ids(got))
			for _, item := range got {
				assert.Equal(t, tt.mood, item.Mood)
			}
		})
	}
}

func TestFindByMoodPreservesInsertionOrder(t *testing.T) {
	c, err := New([]Item{
		{ID: "b", Title: "B", Mood: mood.Sad, Rating: 9.9},
		{ID: "a", Title: "A", Mood: mood.Happy, Rating: 5},
		{ID: "c", Title: "C", Mood: mood.Sad, Rating: 1.0},
		{ID: "d", Title: "D", Mood: mood.Sad, Rating: 5.5},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "d"}, ids(c.FindByMood(mood.Sad)))
}

func TestFindByMoodNoMatch(t *testing.T) {
	c, err := New([]Item{{ID: "1", Title: "Only", Mood: mood.Happy}})
	require.NoError(t, err)

	got := c.FindByMood(mood.Sad)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	empty, err := New(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.FindByMood(mood.Happy))
}

func TestFindByMoodDoesNotExposeInternals(t *testing.T) {
	c := Default()
	got := c.FindByMood(mood.Happy)
	got[0].Title = "changed"

	again := c.FindByMood(mood.Happy)
	assert.Equal(t, "The Grand Budapest Hotel", again[0].Title)
}

func TestNewRejectsBadItems(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		err   error
	}{
		{
			name:  "duplicate id",
			items: []Item{{ID: "1", Mood: mood.Happy}, {ID: "1", Mood: mood.Sad}},
			err:   ErrDuplicateID,
		},
		{
			name:  "missing id",
			items: []Item{{Mood: mood.Happy}},
			err:   ErrInvalidItem,
		},
		{
			name:  "unknown mood",
			items: []Item{{ID: "1", Mood: "angry"}},
			err:   ErrInvalidItem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Panics(t, func() { MustNew([]Item{{ID: "x", Mood: "bored"}}) })
}

func TestGetAndMissing(t *testing.T) {
	c, err := New([]Item{
		{ID: "1", Title: "One", Mood: mood.Happy},
		{ID: "2", Title: "Two", Mood: mood.Excited},
	})
	require.NoError(t, err)

	item, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Two", item.Title)

	_, ok = c.Get("3")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []mood.Mood{mood.Relaxed, mood.Sad}, c.Missing(mood.All))
	assert.Empty(t, Default().Missing(mood.All))
}

func TestConcurrentReaders(t *testing.T) {
	c := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range mood.All {
				assert.Len(t, c.FindByMood(m), 3)
			}
		}()
	}
	wg.Wait()
}
