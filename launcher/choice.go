// Package launcher implements the front door of the bassline generator
// suite: it reports environment diagnostics, verifies the setup, and
// dispatches to the GUI or command-line program chosen from a menu.
package launcher

import "strings"

// Choice is a parsed menu selection. Raw user input is converted into
// this closed set once, so dispatch can switch exhaustively instead of
// comparing strings.
type Choice int

const (
	// ChoiceInvalid marks input outside the accepted menu values
	ChoiceInvalid Choice = iota
	// ChoiceGUI launches the graphical program
	ChoiceGUI
	// ChoiceCLI launches the command-line program
	ChoiceCLI
	// ChoiceExit terminates the launcher immediately
	ChoiceExit
)

// ParseChoice converts raw menu input into a Choice
func ParseChoice(input string) Choice {
	switch strings.TrimSpace(input) {
	case "1":
		return ChoiceGUI
	case "2":
		return ChoiceCLI
	case "3":
		return ChoiceExit
	default:
		return ChoiceInvalid
	}
}

// String returns a human readable name for the choice
func (c Choice) String() string {
	switch c {
	case ChoiceGUI:
		return "GUI"
	case ChoiceCLI:
		return "CLI"
	case ChoiceExit:
		return "Exit"
	default:
		return "Invalid"
	}
}
