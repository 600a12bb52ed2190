// Package mood defines the closed set of mood labels and the dominant-mood
// resolution over a sequence of answers.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one label from the closed mood set.
type Mood string

const (
	Happy   Mood = "happy"
	Excited Mood = "excited"
	Relaxed Mood = "relaxed"
	Sad     Mood = "sad"
)

var ErrUnknown = errors.New("unknown mood label")

// All lists every mood label in display order.
var All = []Mood{Happy, Excited, Relaxed, Sad}

var glyphs = map[Mood]string{
	Happy:   "😊",
	Excited: "🚀",
	Relaxed: "😌",
	Sad:     "🤗",
}

var colors = map[Mood]string{
	Happy:   "#FFD700",
	Excited: "#FF4500",
	Relaxed: "#87CEEB",
	Sad:     "#9370DB",
}

const (
	fallbackGlyph = "🎬"
	fallbackColor = "#6B46C1"
)

// Parse returns the Mood for label. Labels are matched exactly; no
// normalisation is applied so malformed input is reported, not clamped.
func Parse(label string) (Mood, error) {
	m := Mood(label)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknown, label)
	}
	return m, nil
}

// Valid reports whether m belongs to the closed set.
func (m Mood) Valid() bool {
	switch m {
	case Happy, Excited, Relaxed, Sad:
		return true
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

// Glyph returns the display emoji for m.
func (m Mood) Glyph() string {
	if g, ok := glyphs[m]; ok {
		return g
	}
	return fallbackGlyph
}

// Color returns the accent colour used when presenting m.
func (m Mood) Color() string {
	if c, ok := colors[m]; ok {
		return c
	}
	return fallbackColor
}

// Title returns m with its first letter upper-cased.
func (m Mood) Title() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}
