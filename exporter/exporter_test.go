package exporter

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexmullins/zip"
)

func writeTestMIDI(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	// Minimal header bytes are enough for bundling
	if err := os.WriteFile(path, []byte("MThd\x00\x00\x00\x06"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

// TestExport tests plain ZIP bundling
func TestExport(t *testing.T) {
	dir := t.TempDir()
	a := writeTestMIDI(t, dir, "a.mid")
	b := writeTestMIDI(t, dir, "b.mid")

	out := filepath.Join(t.TempDir(), "bundle.zip")
	e := &Exporter{OutputPath: out}

	result, err := e.Export([]string{a, b})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if result.FilesAdded != 2 {
		t.Errorf("FilesAdded = %d, want 2", result.FilesAdded)
	}
	if result.Encrypted {
		t.Error("result should not be marked encrypted without a password")
	}

	reader, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(reader.File))
	}
	names := map[string]bool{}
	for _, f := range reader.File {
		names[f.Name] = true
	}
	if !names["a.mid"] || !names["b.mid"] {
		t.Errorf("unexpected entry names: %v", names)
	}
}

// TestExportEncrypted tests password-protected bundling round trip
func TestExportEncrypted(t *testing.T) {
	dir := t.TempDir()
	a := writeTestMIDI(t, dir, "take1.mid")

	out := filepath.Join(t.TempDir(), "secure.zip")
	e := &Exporter{OutputPath: out, Password: "s3cret"}

	result, err := e.Export([]string{a})
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if !result.Encrypted {
		t.Error("result should be marked encrypted")
	}

	reader, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 1 {
		t.Fatalf("archive has %d entries, want 1", len(reader.File))
	}

	entry := reader.File[0]
	if !entry.IsEncrypted() {
		t.Fatal("entry should be encrypted")
	}
	entry.SetPassword("s3cret")

	rc, err := entry.Open()
	if err != nil {
		t.Fatalf("opening encrypted entry: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading encrypted entry: %v", err)
	}
	if string(data[:4]) != "MThd" {
		t.Error("decrypted content does not match original")
	}
}

// TestExportValidation tests input validation
func TestExportValidation(t *testing.T) {
	e := &Exporter{OutputPath: filepath.Join(t.TempDir(), "out.zip")}

	if _, err := e.Export(nil); err != ErrNoFiles {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
	if _, err := e.Export([]string{"/no/such/file.mid"}); err == nil {
		t.Error("expected error for missing file")
	}

	e2 := &Exporter{}
	if _, err := e2.Export([]string{"x.mid"}); err != ErrInvalidOutput {
		t.Errorf("expected ErrInvalidOutput, got %v", err)
	}
}

// TestCollectMIDIFiles tests directory listing
func TestCollectMIDIFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestMIDI(t, dir, "b.mid")
	writeTestMIDI(t, dir, "a.mid")
	writeTestMIDI(t, dir, "loud.MID")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := CollectMIDIFiles(dir)
	if err != nil {
		t.Fatalf("CollectMIDIFiles error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 MIDI files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.mid" {
		t.Errorf("files should be sorted, first is %q", files[0])
	}
}
