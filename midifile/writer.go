// Package midifile renders generated basslines to standard MIDI files
// and manages preview playback through an external synthesizer.
package midifile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/kacebover/bassline-generator/bassline"
)

// Common errors
var (
	ErrEmptyBassline = errors.New("cannot create MIDI file with empty bassline")
	ErrTempoInvalid  = errors.New("tempo must be positive")
)

const (
	// ticksPerQuarter is the SMF metric resolution
	ticksPerQuarter = 480

	// trackName labels the single bassline track
	trackName = "Bassline"

	// midiChannel is the channel all notes are written to
	midiChannel = 0
)

// WriteOptions controls how a bassline is rendered to SMF
type WriteOptions struct {
	// Tempo in BPM (required, > 0)
	Tempo int

	// Program is the General MIDI program number for an initial program
	// change event. Negative means no program change is written.
	Program int

	// TrackName overrides the default track name when non-empty
	TrackName string
}

// DefaultWriteOptions returns options matching the plain file export:
// 120 BPM, no program change
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Tempo:   120,
		Program: -1,
	}
}

// midiEvent is a note boundary at an absolute tick
type midiEvent struct {
	tick  uint32
	on    bool
	key   uint8
	vel   uint8
	order int // insertion order, stabilizes the sort
}

// Build renders a bassline into an in-memory SMF
func Build(line bassline.Bassline, opts WriteOptions) (*smf.SMF, error) {
	if len(line) == 0 {
		return nil, ErrEmptyBassline
	}
	if opts.Tempo <= 0 {
		return nil, ErrTempoInvalid
	}

	name := opts.TrackName
	if name == "" {
		name = trackName
	}

	events := make([]midiEvent, 0, len(line)*2)
	for i, note := range line {
		// Positions are 16th steps, so a quarter note spans 4 steps
		startTick := uint32(note.Position) * (ticksPerQuarter / 4)
		durTicks := uint32(note.Duration * ticksPerQuarter)
		if durTicks == 0 {
			durTicks = 1
		}

		events = append(events,
			midiEvent{tick: startTick, on: true, key: uint8(note.Key), vel: uint8(note.Velocity), order: i * 2},
			midiEvent{tick: startTick + durTicks, on: false, key: uint8(note.Key), order: i*2 + 1},
		)
	}

	// Note-offs sort before note-ons at the same tick so retriggered
	// keys are released before they restart
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		if events[i].on != events[j].on {
			return !events[i].on
		}
		return events[i].order < events[j].order
	})

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(name))
	track.Add(0, smf.MetaTempo(float64(opts.Tempo)))
	if opts.Program >= 0 {
		track.Add(0, midi.ProgramChange(midiChannel, uint8(opts.Program)))
	}

	var lastTick uint32
	for _, ev := range events {
		delta := ev.tick - lastTick
		lastTick = ev.tick
		if ev.on {
			track.Add(delta, midi.NoteOn(midiChannel, ev.key, ev.vel))
		} else {
			track.Add(delta, midi.NoteOff(midiChannel, ev.key))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to assemble MIDI track: %w", err)
	}
	return s, nil
}

// Write renders the bassline and writes it to the given path
func Write(line bassline.Bassline, path string, opts WriteOptions) error {
	s, err := Build(line, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create MIDI file: %w", err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write MIDI file: %w", err)
	}
	return nil
}

// Save writes the bassline into dir (resolving the default output
// directory when dir is empty) under a sanitized filename and returns
// the full path of the created file.
func Save(line bassline.Bassline, dir, filename string, opts WriteOptions) (string, error) {
	if len(line) == 0 {
		return "", ErrEmptyBassline
	}

	if dir == "" {
		var err error
		dir, err = DefaultOutputDir()
		if err != nil {
			return "", err
		}
	}

	if filename == "" {
		filename = TimestampName()
	}
	path := filepath.Join(dir, SafeFileName(filename))

	if err := Write(line, path, opts); err != nil {
		return "", err
	}
	return path, nil
}
