package midifile

import (
	"os"
	"strings"
	"testing"
)

// TestAvailableInstruments tests the instrument catalog
func TestAvailableInstruments(t *testing.T) {
	instruments := AvailableInstruments()
	if len(instruments) != 8 {
		t.Errorf("expected 8 bass instruments, got %d", len(instruments))
	}

	program, ok := InstrumentProgram(DefaultInstrument)
	if !ok {
		t.Fatalf("default instrument %q not in catalog", DefaultInstrument)
	}
	if program != 38 {
		t.Errorf("Synth Bass 1 should be program 38, got %d", program)
	}

	// All GM bass programs are 32-39
	for _, name := range instruments {
		p, _ := InstrumentProgram(name)
		if p < 32 || p > 39 {
			t.Errorf("instrument %q has program %d outside the GM bass range", name, p)
		}
	}
}

// TestSetInstrument tests instrument selection and validation
func TestSetInstrument(t *testing.T) {
	p, err := NewPreview()
	if err != nil {
		t.Fatalf("NewPreview error: %v", err)
	}
	defer p.Cleanup()

	if p.Instrument() != DefaultInstrument {
		t.Errorf("initial instrument = %q, want %q", p.Instrument(), DefaultInstrument)
	}

	if err := p.SetInstrument("Fretless Bass"); err != nil {
		t.Errorf("SetInstrument(Fretless Bass) error: %v", err)
	}
	if p.Instrument() != "Fretless Bass" {
		t.Errorf("instrument not updated, got %q", p.Instrument())
	}

	err = p.SetInstrument("Kazoo")
	if err == nil {
		t.Fatal("expected error for unknown instrument")
	}
	if !strings.Contains(err.Error(), "choose from") {
		t.Errorf("error should name valid choices: %v", err)
	}
}

// TestCreatePreview tests preview file creation and cleanup
func TestCreatePreview(t *testing.T) {
	p, err := NewPreview()
	if err != nil {
		t.Fatalf("NewPreview error: %v", err)
	}

	path, err := p.CreatePreview(testLine(), 120)
	if err != nil {
		t.Fatalf("CreatePreview error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading preview file: %v", err)
	}
	if string(data[:4]) != "MThd" {
		t.Error("preview file is not a MIDI file")
	}

	p.Cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("cleanup should remove preview files")
	}
}

// TestCreatePreviewEmpty tests the empty bassline guard
func TestCreatePreviewEmpty(t *testing.T) {
	p, err := NewPreview()
	if err != nil {
		t.Fatalf("NewPreview error: %v", err)
	}
	defer p.Cleanup()

	if _, err := p.CreatePreview(nil, 120); err != ErrEmptyBassline {
		t.Errorf("expected ErrEmptyBassline, got %v", err)
	}
}

// TestPlayMissingFile tests that playback refuses a missing path
func TestPlayMissingFile(t *testing.T) {
	p, err := NewPreview()
	if err != nil {
		t.Fatalf("NewPreview error: %v", err)
	}
	defer p.Cleanup()

	if err := p.Play("/nonexistent/preview.mid"); err == nil {
		t.Error("expected error for missing preview file")
	}
	if p.IsPlaying() {
		t.Error("nothing should be playing after a failed Play")
	}
}
