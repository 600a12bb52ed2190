package catalog

import "yourscinema-backend/internal/mood"

// DefaultItems is the reference movie catalog, three titles per mood.
func DefaultItems() []Item {
	return []Item{
		{ID: "1", Title: "The Grand Budapest Hotel", Genre: "Comedy", Mood: mood.Happy, Rating: 8.1, Year: 2014, Glyph: "🏨",
			Description: "A quirky, colorful adventure about friendship and fancy hotels."},
		{ID: "2", Title: "Paddington", Genre: "Family", Mood: mood.Happy, Rating: 8.2, Year: 2014, Glyph: "🐻",
			Description: "A charming bear brings joy to everyone he meets in London."},
		{ID: "3", Title: "La La Land", Genre: "Musical", Mood: mood.Happy, Rating: 8.0, Year: 2016, Glyph: "🎹",
			Description: "A magical musical about dreams, love, and following your heart."},

		{ID: "4", Title: "Mad Max: Fury Road", Genre: "Action", Mood: mood.Excited, Rating: 8.1, Year: 2015, Glyph: "🔥",
			Description: "Non-stop action in a post-apocalyptic wasteland chase."},
		{ID: "5", Title: "Inception", Genre: "Thriller", Mood: mood.Excited, Rating: 8.8, Year: 2010, Glyph: "🌀",
			Description: "Mind-bending heist through layers of dreams."},
		{ID: "6", Title: "Spider-Man: Into the Spider-Verse", Genre: "Animation", Mood: mood.Excited, Rating: 8.4, Year: 2018, Glyph: "🕷️",
			Description: "Stunning animation meets superhero adventure."},

		{ID: "7", Title: "Before Sunset", Genre: "Romance", Mood: mood.Relaxed, Rating: 8.1, Year: 2004, Glyph: "🌅",
			Description: "Two people reconnect while walking through Paris."},
		{ID: "8", Title: "Chef", Genre: "Drama", Mood: mood.Relaxed, Rating: 7.3, Year: 2014, Glyph: "🍳",
			Description: "A chef rediscovers his passion through a food truck journey."},
		{ID: "9", Title: "The Princess Bride", Genre: "Adventure", Mood: mood.Relaxed, Rating: 8.1, Year: 1987, Glyph: "👑",
			Description: "A classic fairy tale with humor, adventure, and true love."},

		{ID: "10", Title: "Inside Out", Genre: "Animation", Mood: mood.Sad, Rating: 8.1, Year: 2015, Glyph: "🧠",
			Description: "Understanding emotions through a young girl's mind."},
		{ID: "11", Title: "The Pursuit of Happyness", Genre: "Drama", Mood: mood.Sad, Rating: 8.0, Year: 2006, Glyph: "💼",
			Description: "A father's inspiring journey from struggle to success."},
		{ID: "12", Title: "Good Will Hunting", Genre: "Drama", Mood: mood.Sad, Rating: 8.3, Year: 1997, Glyph: "📚",
			Description: "A brilliant young man discovers his true potential."},
	}
}

// Default returns a Catalog built from DefaultItems.
func Default() *Catalog {
	return MustNew(DefaultItems())
}
