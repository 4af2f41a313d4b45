package midifile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kacebover/bassline-generator/bassline"
)

func testLine() bassline.Bassline {
	return bassline.Bassline{
		{Key: 36, Position: 0, Duration: 1.0, Velocity: 100},
		{Key: 38, Position: 4, Duration: 0.5, Velocity: 100},
		{Key: 40, Position: 8, Duration: 0.25, Velocity: 100},
		{Key: 36, Position: 12, Duration: 2.0, Velocity: 100},
	}
}

// TestBuild tests in-memory SMF rendering
func TestBuild(t *testing.T) {
	s, err := Build(testLine(), DefaultWriteOptions())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo error: %v", err)
	}

	data := buf.Bytes()
	if len(data) < 14 {
		t.Fatalf("SMF output too short: %d bytes", len(data))
	}
	if string(data[:4]) != "MThd" {
		t.Errorf("output does not start with MThd header, got %q", data[:4])
	}
	if !bytes.Contains(data, []byte("MTrk")) {
		t.Error("output contains no track chunk")
	}
	if !bytes.Contains(data, []byte("Bassline")) {
		t.Error("track name not embedded in output")
	}
}

// TestBuildEmpty tests that an empty bassline is refused
func TestBuildEmpty(t *testing.T) {
	if _, err := Build(nil, DefaultWriteOptions()); err != ErrEmptyBassline {
		t.Errorf("expected ErrEmptyBassline, got %v", err)
	}
}

// TestBuildBadTempo tests tempo validation
func TestBuildBadTempo(t *testing.T) {
	opts := DefaultWriteOptions()
	opts.Tempo = 0
	if _, err := Build(testLine(), opts); err != ErrTempoInvalid {
		t.Errorf("expected ErrTempoInvalid, got %v", err)
	}
}

// TestWrite tests writing a MIDI file to disk
func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.mid")

	if err := Write(testLine(), path, DefaultWriteOptions()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("output file is empty")
	}
	if string(data[:4]) != "MThd" {
		t.Errorf("file does not start with MThd header")
	}
}

// TestSave tests save with explicit directory and filename sanitization
func TestSave(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(testLine(), dir, "funk_bassline_F#_blues_140bpm.mid", DefaultWriteOptions())
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// '#' must be stripped from the name
	want := filepath.Join(dir, "funk_bassline_F_blues_140bpm.mid")
	if path != want {
		t.Errorf("Save path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

// TestSaveEmpty tests that save refuses an empty bassline before touching disk
func TestSaveEmpty(t *testing.T) {
	if _, err := Save(nil, t.TempDir(), "x.mid", DefaultWriteOptions()); err != ErrEmptyBassline {
		t.Errorf("expected ErrEmptyBassline, got %v", err)
	}
}

// TestSafeFileName tests filename sanitization
func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain.mid", "plain.mid"},
		{"with space.mid", "with space.mid"},
		{"F#_sharp.mid", "F_sharp.mid"},
		{"bad/../path.mid", "bad..path.mid"},
		{"quotes\"and<angle>.mid", "quotesandangle.mid"},
	}

	for _, test := range tests {
		if got := SafeFileName(test.in); got != test.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

// TestTimestampName tests the default filename shape
func TestTimestampName(t *testing.T) {
	name := TimestampName()
	if filepath.Ext(name) != ".mid" {
		t.Errorf("timestamp name %q should end in .mid", name)
	}
	if len(name) != len("bassline_20060102_150405.mid") {
		t.Errorf("unexpected timestamp name shape: %q", name)
	}
}
