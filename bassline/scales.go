package bassline

import (
	"fmt"
	"sort"
	"strings"
)

// Scales provides musical scale and root note lookups.
// Scale intervals are semitone offsets from the root; root notes map
// to MIDI keys in the second octave (C2 = 36), the natural bass range.
type Scales struct {
	scales    map[string][]int
	rootNotes map[string]int
}

// NewScales creates the scale catalog with all supported scale types
func NewScales() *Scales {
	return &Scales{
		scales: map[string][]int{
			// Standard scales
			"major":            {0, 2, 4, 5, 7, 9, 11},
			"minor":            {0, 2, 3, 5, 7, 8, 10},
			"pentatonic_major": {0, 2, 4, 7, 9},
			"pentatonic_minor": {0, 3, 5, 7, 10},
			"blues":            {0, 3, 5, 6, 7, 10},

			// Church modes
			"dorian":     {0, 2, 3, 5, 7, 9, 10},
			"phrygian":   {0, 1, 3, 5, 7, 8, 10},
			"lydian":     {0, 2, 4, 6, 7, 9, 11},
			"mixolydian": {0, 2, 4, 5, 7, 9, 10},
			"locrian":    {0, 1, 3, 5, 6, 8, 10},

			// Modified minor scales
			"harmonic_minor":  {0, 2, 3, 5, 7, 8, 11},
			"melodic_minor":   {0, 2, 3, 5, 7, 9, 11},
			"hungarian_minor": {0, 2, 3, 6, 7, 8, 11},

			// World music scales
			"hirajoshi": {0, 2, 3, 7, 8},
			"persian":   {0, 1, 4, 5, 6, 8, 11},
			"byzantine": {0, 1, 4, 5, 7, 8, 11},
			"egyptian":  {0, 2, 5, 7, 10},

			// Synthetic scales
			"whole_tone": {0, 2, 4, 6, 8, 10},
			"diminished": {0, 2, 3, 5, 6, 8, 9, 11},
			"prometheus": {0, 2, 4, 6, 9, 10},
			"enigmatic":  {0, 1, 4, 6, 8, 10, 11},
		},
		rootNotes: map[string]int{
			"C": 36, "C#": 37, "Db": 37,
			"D": 38, "D#": 39, "Eb": 39,
			"E": 40, "F": 41, "F#": 42,
			"Gb": 42, "G": 43, "G#": 44,
			"Ab": 44, "A": 45, "A#": 46,
			"Bb": 46, "B": 47,
		},
	}
}

// GenerateScale returns the MIDI keys of a scale spanning the given number
// of octaves, lowest octave first. Invalid root notes or scale types return
// an error that names the accepted values.
func (s *Scales) GenerateScale(rootNote, scaleType string, octaves int) ([]int, error) {
	rootKey, ok := s.rootNotes[rootNote]
	if !ok {
		return nil, fmt.Errorf("invalid root note %q, choose from: %s",
			rootNote, strings.Join(s.AvailableRootNotes(), ", "))
	}
	intervals, ok := s.scales[scaleType]
	if !ok {
		return nil, fmt.Errorf("invalid scale type %q, choose from: %s",
			scaleType, strings.Join(s.AvailableScales(), ", "))
	}
	if octaves < 1 {
		octaves = 1
	}

	notes := make([]int, 0, octaves*len(intervals))
	for octave := 0; octave < octaves; octave++ {
		for _, interval := range intervals {
			notes = append(notes, rootKey+interval+octave*12)
		}
	}
	return notes, nil
}

// HasRootNote reports whether the root note name is known
func (s *Scales) HasRootNote(rootNote string) bool {
	_, ok := s.rootNotes[rootNote]
	return ok
}

// HasScale reports whether the scale type is known
func (s *Scales) HasScale(scaleType string) bool {
	_, ok := s.scales[scaleType]
	return ok
}

// RootKey returns the MIDI key for a root note name
func (s *Scales) RootKey(rootNote string) (int, bool) {
	key, ok := s.rootNotes[rootNote]
	return key, ok
}

// AvailableScales returns all scale type names, sorted
func (s *Scales) AvailableScales() []string {
	names := make([]string, 0, len(s.scales))
	for name := range s.scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableRootNotes returns all root note names, sorted
func (s *Scales) AvailableRootNotes() []string {
	names := make([]string, 0, len(s.rootNotes))
	for name := range s.rootNotes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName converts a scale identifier like "pentatonic_minor" into a
// human readable form ("Pentatonic Minor") for menus and reports
func DisplayName(scaleType string) string {
	words := strings.Split(scaleType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
