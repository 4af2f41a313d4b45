// Package main provides GUI launcher
package main

import (
	"fmt"
)

// LaunchGUI launches the GUI application (requires Fyne to be installed)
func LaunchGUI() {
	// The GUI is a separate binary built from cmd/gui
	fmt.Println("To launch the GUI version, build the GUI from cmd/gui:")
	fmt.Println("  go build -o bassline-gui ./cmd/gui")
	fmt.Println("Then run: ./bassline-gui")
}
