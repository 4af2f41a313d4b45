package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Launcher sequences the startup steps and the single menu decision:
// report diagnostics, verify the setup, prompt, dispatch. Child program
// failures are never intercepted; their output and exit status surface
// directly to the terminal.
type Launcher struct {
	cfg    *Config
	stdin  io.Reader
	stdout io.Writer

	// runProgram starts a child program and blocks until it exits,
	// returning its exit code. Overridable for tests.
	runProgram func(path string) (int, error)
}

// New creates a launcher wired to the real terminal and process table
func New(cfg *Config) *Launcher {
	return &Launcher{
		cfg:        cfg,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		runProgram: runChild,
	}
}

// runChild executes a program with inherited stdio and propagates its
// exit code. The launcher adds nothing on top: no retries, no output
// capture, no interpretation of the result.
func runChild(path string) (int, error) {
	cmd := exec.Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, err
}

// Run executes the launcher sequence and returns the process exit code:
// the chosen program's exit code, or 0 for the exit path and for
// invalid input.
func (l *Launcher) Run() int {
	fmt.Fprintln(l.stdout, "Bassline Generator Launcher")
	fmt.Fprintln(l.stdout, "===========================")
	fmt.Fprintln(l.stdout)

	// Diagnostics always run before the menu and never gate it
	PrintDiagnostics(l.stdout)
	fmt.Fprintln(l.stdout)

	// Setup verification is observational: the report is printed and
	// the menu proceeds regardless of the outcome
	verifier := NewSetupVerifier(l.cfg)
	verifier.CheckAll()
	fmt.Fprint(l.stdout, verifier.FormatReport())
	if !verifier.AllRequiredOK() {
		log.Warn("setup verification reported problems")
	}
	fmt.Fprintln(l.stdout)

	fmt.Fprintln(l.stdout, "Available Options:")
	fmt.Fprintln(l.stdout, "1. Launch GUI")
	fmt.Fprintln(l.stdout, "2. Launch Command-Line Version")
	fmt.Fprintln(l.stdout, "3. Exit")
	fmt.Fprintln(l.stdout)
	fmt.Fprint(l.stdout, "Enter choice (1-3): ")

	reader := bufio.NewReader(l.stdin)
	input, _ := reader.ReadString('\n')

	code := 0
	switch choice := ParseChoice(input); choice {
	case ChoiceGUI:
		log.Debugf("launching GUI program: %s", l.cfg.GUIPath)
		fmt.Fprintln(l.stdout, "\nLaunching GUI...")
		code = l.launch(l.cfg.GUIPath)
	case ChoiceCLI:
		log.Debugf("launching CLI program: %s", l.cfg.CLIPath)
		fmt.Fprintln(l.stdout, "\nLaunching Command-Line Version...")
		code = l.launch(l.cfg.CLIPath)
	case ChoiceExit:
		// Immediate termination, no pause
		return 0
	case ChoiceInvalid:
		fmt.Fprintln(l.stdout, "\nInvalid choice")
	}

	l.pause(reader)
	return code
}

// launch runs a child program and reports start failures without
// interpreting them further
func (l *Launcher) launch(path string) int {
	code, err := l.runProgram(path)
	if err != nil {
		fmt.Fprintf(l.stdout, "Failed to start %s: %v\n", path, err)
	}
	return code
}

// pause waits for user acknowledgment before the terminal window closes
func (l *Launcher) pause(reader *bufio.Reader) {
	fmt.Fprint(l.stdout, "\nPress Enter to exit...")
	_, _ = reader.ReadString('\n')
}
