// Package exporter bundles generated MIDI files into ZIP archives,
// optionally protected with AES-256 encryption.
package exporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexmullins/zip"
)

// Common errors
var (
	ErrNoFiles       = errors.New("no MIDI files provided for export")
	ErrFileNotFound  = errors.New("file not found")
	ErrInvalidOutput = errors.New("invalid output path")
)

// Result summarizes a completed export
type Result struct {
	OutputPath  string
	FilesAdded  int
	TotalSize   int64
	ArchiveSize int64
	Encrypted   bool
}

// Exporter writes ZIP bundles of generated basslines
type Exporter struct {
	// OutputPath is the full path of the archive to create (required)
	OutputPath string

	// Password enables AES-256 encryption of every entry when non-empty
	Password string
}

// CollectMIDIFiles returns all .mid files directly inside dir, sorted
func CollectMIDIFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mid") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Export bundles the given files into the configured archive
func (e *Exporter) Export(files []string) (*Result, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if e.OutputPath == "" {
		return nil, ErrInvalidOutput
	}

	var totalSize int64
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory, expected a MIDI file", path)
		}
		totalSize += info.Size()
	}

	if err := os.MkdirAll(filepath.Dir(e.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	zipFile, err := os.Create(e.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	for _, path := range files {
		if err := e.addEntry(zipWriter, path); err != nil {
			zipWriter.Close()
			zipFile.Close()
			os.Remove(e.OutputPath)
			return nil, err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	info, err := os.Stat(e.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	return &Result{
		OutputPath:  e.OutputPath,
		FilesAdded:  len(files),
		TotalSize:   totalSize,
		ArchiveSize: info.Size(),
		Encrypted:   e.Password != "",
	}, nil
}

// addEntry writes a single file into the archive
func (e *Exporter) addEntry(zipWriter *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	name := filepath.Base(path)

	var writer io.Writer
	if e.Password != "" {
		writer, err = zipWriter.Encrypt(name, e.Password)
	} else {
		writer, err = zipWriter.Create(name)
	}
	if err != nil {
		return fmt.Errorf("failed to create archive entry for %s: %w", name, err)
	}

	if _, err := io.Copy(writer, src); err != nil {
		return fmt.Errorf("failed to write %s to archive: %w", name, err)
	}
	return nil
}
