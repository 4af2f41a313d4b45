package bassline

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator produces basslines from musical parameters.
// Notes are chosen from the lower half of the generated scale so the
// result stays in a believable bass register.
type Generator struct {
	scales *Scales
	rng    *rand.Rand
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed creates a generator with a fixed seed.
// Used by tests and by the CLI -seed flag for reproducible output.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{
		scales: NewScales(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Scales exposes the generator's scale catalog
func (g *Generator) Scales() *Scales {
	return g.scales
}

// Generate creates a bassline for the given parameters.
// Each bar uses a randomly chosen rhythm pattern for the genre; every
// pattern hit becomes a note with probability NoteDensity. A bassline is
// never empty: if density filtering removes everything, one whole note
// on a low scale tone is emitted at position 0.
func (g *Generator) Generate(params Params) (Bassline, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	scaleNotes, err := g.scales.GenerateScale(params.RootNote, params.ScaleType, 2)
	if err != nil {
		return nil, err
	}

	patterns, ok := rhythmPatterns[params.Genre]
	if !ok {
		return nil, fmt.Errorf("%w %q, choose from: %v", ErrUnknownGenre, params.Genre, AvailableGenres())
	}

	lowerHalf := scaleNotes[:len(scaleNotes)/2]
	if len(lowerHalf) == 0 {
		lowerHalf = scaleNotes
	}

	var line Bassline
	for bar := 0; bar < params.Bars; bar++ {
		pattern := patterns[g.rng.Intn(len(patterns))]

		for step, hit := range pattern {
			if hit == 0 || g.rng.Float64() > params.NoteDensity {
				continue
			}
			line = append(line, Note{
				Key:      lowerHalf[g.rng.Intn(len(lowerHalf))],
				Position: bar*StepsPerBar + step,
				Duration: noteDurations[g.rng.Intn(len(noteDurations))],
				Velocity: 100,
			})
		}
	}

	if len(line) == 0 {
		line = append(line, Note{
			Key:      lowerHalf[g.rng.Intn(len(lowerHalf))],
			Position: 0,
			Duration: 1.0,
			Velocity: 100,
		})
	}

	return line, nil
}
