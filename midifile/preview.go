package midifile

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kacebover/bassline-generator/bassline"
)

// Preview errors
var (
	ErrNoPlayer          = errors.New("no MIDI player available")
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrPreviewNotFound   = errors.New("preview file not found")
)

// bassInstruments maps General MIDI bass instrument names to program numbers
var bassInstruments = map[string]int{
	"Acoustic Bass":          32,
	"Electric Bass (finger)": 33,
	"Electric Bass (pick)":   34,
	"Fretless Bass":          35,
	"Slap Bass 1":            36,
	"Slap Bass 2":            37,
	"Synth Bass 1":           38,
	"Synth Bass 2":           39,
}

// DefaultInstrument is the preview instrument used until one is selected
const DefaultInstrument = "Synth Bass 1"

// AvailableInstruments returns all bass instrument names, sorted
func AvailableInstruments() []string {
	names := make([]string, 0, len(bassInstruments))
	for name := range bassInstruments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstrumentProgram returns the GM program number for an instrument name
func InstrumentProgram(name string) (int, bool) {
	program, ok := bassInstruments[name]
	return program, ok
}

// Preview manages temporary MIDI files and playback through an external
// synthesizer. Playback prefers fluidsynth, then timidity, then the
// platform opener as a last resort.
type Preview struct {
	mu         sync.Mutex
	tempDir    string
	instrument string
	player     *exec.Cmd
	playing    atomic.Bool
}

// NewPreview creates a preview system with its own temp directory
func NewPreview() (*Preview, error) {
	tempDir, err := os.MkdirTemp("", "midi_preview_")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preview system: %w", err)
	}

	log.Debugf("initialized preview system, temp dir: %s", tempDir)

	return &Preview{
		tempDir:    tempDir,
		instrument: DefaultInstrument,
	}, nil
}

// SetInstrument selects the bass instrument for subsequent previews
func (p *Preview) SetInstrument(name string) error {
	if _, ok := bassInstruments[name]; !ok {
		return fmt.Errorf("%w %q, choose from: %s",
			ErrUnknownInstrument, name, strings.Join(AvailableInstruments(), ", "))
	}

	p.mu.Lock()
	p.instrument = name
	p.mu.Unlock()

	log.Debugf("preview instrument set to %s", name)
	return nil
}

// Instrument returns the currently selected instrument name
func (p *Preview) Instrument() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.instrument
}

// CreatePreview renders the bassline into a temporary MIDI file with the
// selected instrument's program change and returns the file path
func (p *Preview) CreatePreview(line bassline.Bassline, tempo int) (string, error) {
	if len(line) == 0 {
		return "", ErrEmptyBassline
	}

	p.mu.Lock()
	instrument := p.instrument
	p.mu.Unlock()

	opts := WriteOptions{
		Tempo:     tempo,
		Program:   bassInstruments[instrument],
		TrackName: "Bassline Preview",
	}

	path := filepath.Join(p.tempDir, fmt.Sprintf("preview_%d.mid", time.Now().UnixNano()))
	if err := Write(line, path, opts); err != nil {
		log.Errorf("failed to create preview: %v", err)
		return "", fmt.Errorf("failed to create MIDI preview: %w", err)
	}

	log.Debugf("created preview MIDI file: %s", path)
	return path, nil
}

// PlayerCommand resolves the external player used for playback.
// Returns the command and its leading arguments.
func PlayerCommand() (string, []string, error) {
	if path, err := exec.LookPath("fluidsynth"); err == nil {
		return path, []string{"-i", "-q"}, nil
	}
	if path, err := exec.LookPath("timidity"); err == nil {
		return path, nil, nil
	}

	// Fall back to the platform opener; playback then depends on the
	// user's default MIDI application
	switch runtime.GOOS {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "cmd", []string{"/c", "start", ""}, nil
	default:
		if path, err := exec.LookPath("xdg-open"); err == nil {
			return path, nil, nil
		}
	}
	return "", nil, ErrNoPlayer
}

// Play starts playback of a preview file, stopping any current playback first
func (p *Preview) Play(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrPreviewNotFound, path)
	}

	p.Stop()

	player, args, err := PlayerCommand()
	if err != nil {
		return err
	}

	cmd := exec.Command(player, append(args, path)...)
	if err := cmd.Start(); err != nil {
		log.Errorf("playback failed: %v", err)
		return fmt.Errorf("failed to play MIDI preview: %w", err)
	}

	p.mu.Lock()
	p.player = cmd
	p.mu.Unlock()
	p.playing.Store(true)

	// Reap the player so IsPlaying can observe its exit
	go func() {
		_ = cmd.Wait()
		p.playing.Store(false)
	}()

	log.Debugf("started playback: %s", path)
	return nil
}

// Stop terminates the current playback, if any
func (p *Preview) Stop() {
	p.mu.Lock()
	cmd := p.player
	p.player = nil
	p.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}
	if err := cmd.Process.Kill(); err != nil {
		log.Warnf("error stopping playback: %v", err)
		return
	}
	log.Debug("stopped playback")
}

// IsPlaying reports whether a preview player process is still running
func (p *Preview) IsPlaying() bool {
	return p.playing.Load()
}

// Cleanup stops playback and removes all temporary preview files
func (p *Preview) Cleanup() {
	log.Debug("starting preview cleanup")
	p.Stop()

	if p.tempDir == "" {
		return
	}
	if err := os.RemoveAll(p.tempDir); err != nil {
		log.Errorf("cleanup error: %v", err)
		return
	}
	log.Debug("removed preview temp directory")
}
