package launcher

import (
	"bytes"
	"strings"
	"testing"
)

// testLauncher builds a launcher with a recording runProgram stub
func testLauncher(t *testing.T, input string) (*Launcher, *bytes.Buffer, *[]string) {
	t.Helper()

	var out bytes.Buffer
	var launched []string

	cfg := &Config{
		GUIPath:   "./bassline-gui",
		CLIPath:   "./bassline-cli",
		OutputDir: t.TempDir(),
		LogLevel:  "error",
	}

	l := &Launcher{
		cfg:    cfg,
		stdin:  strings.NewReader(input),
		stdout: &out,
		runProgram: func(path string) (int, error) {
			launched = append(launched, path)
			return 0, nil
		},
	}
	return l, &out, &launched
}

// TestRunChoiceGUI tests that input 1 launches only the GUI program
func TestRunChoiceGUI(t *testing.T) {
	l, out, launched := testLauncher(t, "1\n\n")

	code := l.Run()
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(*launched) != 1 || (*launched)[0] != "./bassline-gui" {
		t.Errorf("launched = %v, want only the GUI program", *launched)
	}
	if !strings.Contains(out.String(), "Press Enter to exit...") {
		t.Error("expected pause after the GUI program exits")
	}
}

// TestRunChoiceCLI tests that input 2 launches only the CLI program
func TestRunChoiceCLI(t *testing.T) {
	l, _, launched := testLauncher(t, "2\n\n")

	l.Run()
	if len(*launched) != 1 || (*launched)[0] != "./bassline-cli" {
		t.Errorf("launched = %v, want only the CLI program", *launched)
	}
}

// TestRunChoiceExit tests that input 3 terminates immediately without pausing
func TestRunChoiceExit(t *testing.T) {
	l, out, launched := testLauncher(t, "3\n")

	code := l.Run()
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(*launched) != 0 {
		t.Errorf("launched = %v, want nothing on the exit path", *launched)
	}
	if strings.Contains(out.String(), "Press Enter to exit...") {
		t.Error("exit path must not pause")
	}
}

// TestRunInvalidChoice tests that unknown input launches nothing and pauses
func TestRunInvalidChoice(t *testing.T) {
	l, out, launched := testLauncher(t, "x\n\n")

	code := l.Run()
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(*launched) != 0 {
		t.Errorf("launched = %v, want nothing for invalid input", *launched)
	}
	if !strings.Contains(out.String(), "Invalid choice") {
		t.Error("expected invalid choice message")
	}
	if !strings.Contains(out.String(), "Press Enter to exit...") {
		t.Error("invalid input still pauses before terminating")
	}
}

// TestRunExitCodePropagation tests that the child's exit code becomes ours
func TestRunExitCodePropagation(t *testing.T) {
	l, _, _ := testLauncher(t, "2\n\n")
	l.runProgram = func(path string) (int, error) { return 42, nil }

	if code := l.Run(); code != 42 {
		t.Errorf("exit code = %d, want 42 from the child", code)
	}
}

// TestRunOrdering tests that diagnostics and verification precede the menu
func TestRunOrdering(t *testing.T) {
	l, out, _ := testLauncher(t, "3\n")

	l.Run()
	text := out.String()

	diag := strings.Index(text, "Go Version:")
	verify := strings.Index(text, "Setup Verification:")
	prompt := strings.Index(text, "Enter choice (1-3): ")

	if diag == -1 || verify == -1 || prompt == -1 {
		t.Fatalf("missing sections in output:\n%s", text)
	}
	if !(diag < verify && verify < prompt) {
		t.Errorf("expected diagnostics (%d) before verification (%d) before prompt (%d)", diag, verify, prompt)
	}
}

// TestRunVerificationDoesNotGate tests that failed checks still show the menu
func TestRunVerificationDoesNotGate(t *testing.T) {
	l, out, launched := testLauncher(t, "1\n\n")
	// Point both programs at paths that cannot exist so verification fails
	l.cfg.GUIPath = "/nonexistent/bassline-gui"
	l.cfg.CLIPath = "/nonexistent/bassline-cli"

	l.Run()
	if !strings.Contains(out.String(), "Enter choice (1-3): ") {
		t.Error("menu must be shown even when verification fails")
	}
	if len(*launched) != 1 {
		t.Errorf("chosen program should still be attempted, launched = %v", *launched)
	}
}
