package launcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCheckProgramFound tests detection of an existing program binary
func TestCheckProgramFound(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "bassline-cli")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	v := NewSetupVerifier(&Config{GUIPath: bin, CLIPath: bin, OutputDir: dir})
	results := v.CheckAll()

	if !results["cli"].OK {
		t.Errorf("cli check failed: %s", results["cli"].Detail)
	}
	if !results["output"].OK {
		t.Errorf("output check failed: %s", results["output"].Detail)
	}
}

// TestCheckProgramMissing tests the failure statuses for bad paths
func TestCheckProgramMissing(t *testing.T) {
	dir := t.TempDir()
	v := NewSetupVerifier(&Config{
		GUIPath:   filepath.Join(dir, "no-such-gui"),
		CLIPath:   dir, // a directory is not a program
		OutputDir: dir,
	})
	results := v.CheckAll()

	if results["gui"].OK {
		t.Error("gui check passed for a missing file")
	}
	if !strings.Contains(results["gui"].Detail, "not found") {
		t.Errorf("gui detail = %q, want not found", results["gui"].Detail)
	}
	if results["cli"].OK {
		t.Error("cli check passed for a directory")
	}
	if v.AllRequiredOK() {
		t.Error("AllRequiredOK() = true with failing required checks")
	}
}

// TestFormatReport tests the report contains status markers and hints
func TestFormatReport(t *testing.T) {
	dir := t.TempDir()
	v := NewSetupVerifier(&Config{
		GUIPath:   filepath.Join(dir, "missing"),
		CLIPath:   filepath.Join(dir, "missing"),
		OutputDir: dir,
	})
	v.CheckAll()
	report := v.FormatReport()

	if !strings.Contains(report, "Setup Verification:") {
		t.Error("report missing header")
	}
	if !strings.Contains(report, "❌ GUI program") {
		t.Error("report missing failed GUI check")
	}
	if !strings.Contains(report, "💡") {
		t.Error("report missing install hint for failed check")
	}
	if !strings.Contains(report, "✅ Output directory") {
		t.Error("report missing passing output check")
	}
}

// TestPrintDiagnostics tests the diagnostic sections are emitted
func TestPrintDiagnostics(t *testing.T) {
	var out bytes.Buffer
	PrintDiagnostics(&out)

	for _, want := range []string{"Go Version:", "Launcher Executable:", "Build Dependencies:", "Current Working Directory:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("diagnostics missing %q", want)
		}
	}
}
