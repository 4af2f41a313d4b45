package bassline

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrEmptyBassline = errors.New("bassline contains no notes")
	ErrUnknownGenre  = errors.New("unknown genre")
	ErrTempoRange    = errors.New("tempo must be between 40 and 240 BPM")
	ErrBarsRange     = errors.New("number of bars must be between 1 and 16")
	ErrDensityRange  = errors.New("note density must be between 0.0 and 1.0")
)

// Tempo and length bounds accepted by Params.Validate
const (
	MinTempo = 40
	MaxTempo = 240
	MinBars  = 1
	MaxBars  = 16

	// StepsPerBar is the rhythm pattern resolution: sixteen 16th-note steps
	StepsPerBar = 16
)

// Note is a single bassline note.
// Position is measured in 16th-note steps from the start of the phrase,
// Duration in beats (quarter notes).
type Note struct {
	Key      int     // MIDI note number
	Position int     // 16th-note step index
	Duration float64 // beats
	Velocity int     // 0-127
}

// Bassline is an ordered sequence of generated notes
type Bassline []Note

// Params holds all musical parameters for one generation run
type Params struct {
	RootNote    string
	ScaleType   string
	Genre       string
	Tempo       int
	Bars        int
	NoteDensity float64
}

// Validate checks that all parameters are within the accepted ranges.
// Root note, scale type and genre membership are checked separately by
// the Scales and Generator lookups so the error can name valid choices.
func (p Params) Validate() error {
	if p.Tempo < MinTempo || p.Tempo > MaxTempo {
		return ErrTempoRange
	}
	if p.Bars < MinBars || p.Bars > MaxBars {
		return ErrBarsRange
	}
	if p.NoteDensity < 0.0 || p.NoteDensity > 1.0 {
		return ErrDensityRange
	}
	return nil
}

// FileName builds the descriptive output filename used by the CLI and GUI:
// {genre}_bassline_{root}_{scale}_{tempo}bpm.mid
func (p Params) FileName() string {
	return fmt.Sprintf("%s_bassline_%s_%s_%dbpm.mid",
		strings.ToLower(p.Genre), p.RootNote, p.ScaleType, p.Tempo)
}
