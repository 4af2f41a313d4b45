package bassline

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Dice roll constraints: a fixed 8-bar phrase, a musically practical
// tempo range and enough density to guarantee meaningful content.
const (
	diceBars       = 8
	diceMinTempo   = 60
	diceMaxTempo   = 180
	diceMinDensity = 0.3
)

// DiceRoller generates randomized but musically coherent parameters
type DiceRoller struct {
	scales *Scales
	rng    *rand.Rand
}

// NewDiceRoller creates a dice roller seeded from the current time
func NewDiceRoller() *DiceRoller {
	return NewDiceRollerWithSeed(time.Now().UnixNano())
}

// NewDiceRollerWithSeed creates a dice roller with a fixed seed
func NewDiceRollerWithSeed(seed int64) *DiceRoller {
	return &DiceRoller{
		scales: NewScales(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a random parameter set within the dice constraints
func (d *DiceRoller) Roll() Params {
	roots := d.scales.AvailableRootNotes()
	scales := d.scales.AvailableScales()
	genres := AvailableGenres()

	density := diceMinDensity + d.rng.Float64()*(1.0-diceMinDensity)

	return Params{
		RootNote:    roots[d.rng.Intn(len(roots))],
		ScaleType:   scales[d.rng.Intn(len(scales))],
		Genre:       genres[d.rng.Intn(len(genres))],
		Tempo:       diceMinTempo + d.rng.Intn(diceMaxTempo-diceMinTempo+1),
		Bars:        diceBars,
		NoteDensity: math.Round(density*100) / 100,
	}
}

// FormatParams renders a rolled parameter set for the terminal
func FormatParams(p Params) string {
	var sb strings.Builder
	sb.WriteString("\n🎲 Dice Roll Parameters 🎲\n")
	sb.WriteString(strings.Repeat("-", 30) + "\n")
	sb.WriteString(fmt.Sprintf("Root Note:     %s\n", p.RootNote))
	sb.WriteString(fmt.Sprintf("Scale Type:    %s\n", DisplayName(p.ScaleType)))
	sb.WriteString(fmt.Sprintf("Genre:         %s\n", p.Genre))
	sb.WriteString(fmt.Sprintf("Tempo:         %d BPM\n", p.Tempo))
	sb.WriteString(fmt.Sprintf("Bars:          %d (Fixed)\n", p.Bars))
	sb.WriteString(fmt.Sprintf("Note Density:  %.2f\n", p.NoteDensity))
	sb.WriteString(strings.Repeat("-", 30) + "\n")
	return sb.String()
}

// InteractiveRoll rolls parameters and asks for confirmation on w, reading
// the answer from r. Y accepts, N cancels (ok=false), R rolls again.
func (d *DiceRoller) InteractiveRoll(r io.Reader, w io.Writer) (params Params, ok bool) {
	reader := bufio.NewReader(r)

	for {
		params = d.Roll()
		fmt.Fprint(w, FormatParams(params))
		fmt.Fprint(w, "\nAccept these parameters? (Y/N/R) [Yes/No/Re-roll]: ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return Params{}, false
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return params, true
		case "n":
			return Params{}, false
		case "r":
			continue
		default:
			fmt.Fprintln(w, "Invalid input. Please enter Y, N, or R.")
		}
	}
}
