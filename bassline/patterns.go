package bassline

import "sort"

// rhythmPatterns maps each genre to its 16-step hit patterns.
// A 1 marks a candidate note position, subject to the note density gate.
var rhythmPatterns = map[string][][]int{
	"Funk": {
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 1, 0},
		{1, 0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1, 0, 0},
	},
	"Darksynth": {
		{1, 0, 0, 1, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 0},
		{1, 0, 1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 1, 0},
	},
	"Pop": {
		{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		{1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0},
	},
	"Trap": {
		{1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0},
		{1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0},
	},
}

// noteDurations are the available note lengths in beats
var noteDurations = []float64{0.25, 0.5, 0.75, 1.0, 1.5, 2.0}

// AvailableGenres returns all genre names, sorted
func AvailableGenres() []string {
	genres := make([]string, 0, len(rhythmPatterns))
	for genre := range rhythmPatterns {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres
}

// HasGenre reports whether the genre name is known
func HasGenre(genre string) bool {
	_, ok := rhythmPatterns[genre]
	return ok
}
