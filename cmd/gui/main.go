package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kacebover/bassline-generator/bassline"
	"github.com/kacebover/bassline-generator/exporter"
	"github.com/kacebover/bassline-generator/midifile"
)

// GeneratorGUI represents the GUI application
type GeneratorGUI struct {
	app    fyne.App
	window fyne.Window

	// Parameter widgets
	rootSelect       *widget.Select
	scaleSelect      *widget.Select
	genreSelect      *widget.Select
	instrumentSelect *widget.Select
	tempoEntry       *widget.Entry
	barsEntry        *widget.Entry
	densitySlider    *widget.Slider
	densityLabel     *widget.Label
	outputEntry      *widget.Entry

	// Buttons
	generateButton *widget.Button
	rollButton     *widget.Button
	previewButton  *widget.Button
	stopButton     *widget.Button
	exportButton   *widget.Button

	// Status
	statusLabel *widget.Label
	notesLabel  *widget.Label

	// Engines
	generator *bassline.Generator
	roller    *bassline.DiceRoller
	scales    *bassline.Scales
	preview   *midifile.Preview

	// Last generated result, guarded by mu
	mu        sync.Mutex
	lastLine  bassline.Bassline
	lastTempo int

	// State
	generating atomic.Bool
}

// NewGeneratorGUI creates a new GUI instance
func NewGeneratorGUI() *GeneratorGUI {
	a := app.NewWithID("com.basslinegenerator.app")
	w := a.NewWindow("🎵 Bassline Generator")
	w.Resize(fyne.NewSize(560, 680))
	w.CenterOnScreen()

	gg := &GeneratorGUI{
		app:       a,
		window:    w,
		generator: bassline.NewGenerator(),
		roller:    bassline.NewDiceRoller(),
		scales:    bassline.NewScales(),
	}

	// Previews are optional, the GUI works without a player
	if preview, err := midifile.NewPreview(); err == nil {
		gg.preview = preview
	}

	gg.buildUI()

	w.SetOnClosed(func() {
		if gg.preview != nil {
			gg.preview.Cleanup()
		}
	})

	return gg
}

func (gg *GeneratorGUI) buildUI() {
	// === HEADER ===
	titleText := canvas.NewText("🎵 Random Bassline Generator", theme.ForegroundColor())
	titleText.TextSize = 24
	titleText.TextStyle.Bold = true

	subtitleText := canvas.NewText("Scales, grooves and dice rolls to MIDI", theme.ForegroundColor())
	subtitleText.TextSize = 13

	header := container.NewVBox(titleText, subtitleText)

	// === PARAMETERS ===
	gg.rootSelect = widget.NewSelect(gg.scales.AvailableRootNotes(), nil)
	gg.rootSelect.SetSelected("C")

	scaleNames := gg.scales.AvailableScales()
	scaleLabels := make([]string, len(scaleNames))
	for i, name := range scaleNames {
		scaleLabels[i] = bassline.DisplayName(name)
	}
	gg.scaleSelect = widget.NewSelect(scaleLabels, nil)
	gg.scaleSelect.SetSelected("Minor")

	gg.genreSelect = widget.NewSelect(bassline.AvailableGenres(), nil)
	gg.genreSelect.SetSelected("Funk")

	gg.instrumentSelect = widget.NewSelect(midifile.AvailableInstruments(), func(name string) {
		if gg.preview != nil {
			_ = gg.preview.SetInstrument(name)
		}
	})
	gg.instrumentSelect.SetSelected(midifile.DefaultInstrument)

	gg.tempoEntry = widget.NewEntry()
	gg.tempoEntry.SetText("120")

	gg.barsEntry = widget.NewEntry()
	gg.barsEntry.SetText("4")

	gg.densityLabel = widget.NewLabel("Note Density: 0.80")
	gg.densitySlider = widget.NewSlider(0, 1)
	gg.densitySlider.Step = 0.05
	gg.densitySlider.SetValue(0.8)
	gg.densitySlider.OnChanged = func(v float64) {
		gg.densityLabel.SetText(fmt.Sprintf("Note Density: %.2f", v))
	}

	gg.outputEntry = widget.NewEntry()
	gg.outputEntry.SetPlaceHolder("Output directory (empty = Desktop)")

	browseBtn := widget.NewButton("📂 Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err == nil && uri != nil {
				gg.outputEntry.SetText(uri.Path())
			}
		}, gg.window)
	})
	browseBtn.Importance = widget.LowImportance

	paramsForm := container.NewVBox(
		widget.NewLabelWithStyle("🎼 Musical Parameters", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, widget.NewLabel("Root Note"), gg.rootSelect),
		container.NewGridWithColumns(2, widget.NewLabel("Scale Type"), gg.scaleSelect),
		container.NewGridWithColumns(2, widget.NewLabel("Genre"), gg.genreSelect),
		container.NewGridWithColumns(2, widget.NewLabel("Tempo (BPM)"), gg.tempoEntry),
		container.NewGridWithColumns(2, widget.NewLabel("Bars"), gg.barsEntry),
		gg.densityLabel,
		gg.densitySlider,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("🔊 Preview Instrument", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		gg.instrumentSelect,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("📁 Output", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		gg.outputEntry,
		browseBtn,
	)

	// === BUTTONS ===
	gg.generateButton = widget.NewButton("▶️ GENERATE BASSLINE", gg.onGenerate)
	gg.generateButton.Importance = widget.HighImportance

	gg.rollButton = widget.NewButton("🎲 Roll the Dice", gg.onRoll)

	gg.previewButton = widget.NewButton("🔊 Preview", gg.onPreview)
	gg.previewButton.Disable()

	gg.stopButton = widget.NewButton("⏹️ Stop", gg.onStop)
	gg.stopButton.Disable()

	gg.exportButton = widget.NewButton("📦 Export ZIP", gg.onExport)
	gg.exportButton.Importance = widget.LowImportance

	buttonGrid := container.NewGridWithColumns(2,
		gg.generateButton, gg.rollButton,
		gg.previewButton, gg.stopButton,
	)

	// === STATUS ===
	gg.statusLabel = widget.NewLabel("Ready to generate")
	gg.statusLabel.Wrapping = fyne.TextWrapWord
	gg.notesLabel = widget.NewLabel("")

	statusSection := container.NewVBox(
		widget.NewSeparator(),
		gg.statusLabel,
		gg.notesLabel,
	)

	content := container.NewVBox(
		container.NewPadded(header),
		widget.NewSeparator(),
		paramsForm,
		widget.NewSeparator(),
		buttonGrid,
		gg.exportButton,
		statusSection,
	)

	gg.window.SetContent(container.NewPadded(container.NewScroll(content)))
}

// readParams collects the parameter widgets into a Params value
func (gg *GeneratorGUI) readParams() (bassline.Params, error) {
	tempo, err := strconv.Atoi(gg.tempoEntry.Text)
	if err != nil {
		return bassline.Params{}, fmt.Errorf("tempo must be a number")
	}
	bars, err := strconv.Atoi(gg.barsEntry.Text)
	if err != nil {
		return bassline.Params{}, fmt.Errorf("bars must be a number")
	}

	// The scale select shows display names, map back to the identifier
	scaleType := ""
	for _, name := range gg.scales.AvailableScales() {
		if bassline.DisplayName(name) == gg.scaleSelect.Selected {
			scaleType = name
			break
		}
	}

	params := bassline.Params{
		RootNote:    gg.rootSelect.Selected,
		ScaleType:   scaleType,
		Genre:       gg.genreSelect.Selected,
		Tempo:       tempo,
		Bars:        bars,
		NoteDensity: gg.densitySlider.Value,
	}
	return params, params.Validate()
}

func (gg *GeneratorGUI) onGenerate() {
	if gg.generating.Load() {
		return
	}

	params, err := gg.readParams()
	if err != nil {
		dialog.ShowError(err, gg.window)
		return
	}

	outputDir := gg.outputEntry.Text
	program := -1
	if p, ok := midifile.InstrumentProgram(gg.instrumentSelect.Selected); ok {
		program = p
	}

	gg.generating.Store(true)
	gg.generateButton.Disable()
	gg.statusLabel.SetText("Generating...")

	go func() {
		defer func() {
			gg.generating.Store(false)
			fyne.Do(func() {
				gg.generateButton.Enable()
			})
		}()

		line, err := gg.generator.Generate(params)
		if err != nil {
			fyne.Do(func() {
				gg.statusLabel.SetText(fmt.Sprintf("❌ %v", err))
			})
			return
		}

		opts := midifile.WriteOptions{Tempo: params.Tempo, Program: program}
		path, err := midifile.Save(line, outputDir, params.FileName(), opts)
		if err != nil {
			fyne.Do(func() {
				gg.statusLabel.SetText(fmt.Sprintf("❌ Save failed: %v", err))
			})
			return
		}

		gg.mu.Lock()
		gg.lastLine = line
		gg.lastTempo = params.Tempo
		gg.mu.Unlock()

		fyne.Do(func() {
			gg.statusLabel.SetText(fmt.Sprintf("✅ Saved to %s", path))
			gg.notesLabel.SetText(fmt.Sprintf("🎼 %d notes | %s %s | %s | %d BPM | %d bars",
				len(line), params.RootNote, bassline.DisplayName(params.ScaleType),
				params.Genre, params.Tempo, params.Bars))
			if gg.preview != nil {
				gg.previewButton.Enable()
			}
		})
	}()
}

// onRoll fills the parameter widgets from a dice roll
func (gg *GeneratorGUI) onRoll() {
	params := gg.roller.Roll()

	gg.rootSelect.SetSelected(params.RootNote)
	gg.scaleSelect.SetSelected(bassline.DisplayName(params.ScaleType))
	gg.genreSelect.SetSelected(params.Genre)
	gg.tempoEntry.SetText(strconv.Itoa(params.Tempo))
	gg.barsEntry.SetText(strconv.Itoa(params.Bars))
	gg.densitySlider.SetValue(params.NoteDensity)

	gg.statusLabel.SetText(fmt.Sprintf("🎲 Rolled: %s %s, %s, %d BPM, density %.2f",
		params.RootNote, bassline.DisplayName(params.ScaleType),
		params.Genre, params.Tempo, params.NoteDensity))
}

func (gg *GeneratorGUI) onPreview() {
	if gg.preview == nil {
		return
	}

	gg.mu.Lock()
	line := gg.lastLine
	tempo := gg.lastTempo
	gg.mu.Unlock()

	if len(line) == 0 {
		gg.statusLabel.SetText("Generate a bassline first")
		return
	}

	gg.previewButton.Disable()

	go func() {
		path, err := gg.preview.CreatePreview(line, tempo)
		if err == nil {
			err = gg.preview.Play(path)
		}

		fyne.Do(func() {
			gg.previewButton.Enable()
			if err != nil {
				gg.statusLabel.SetText(fmt.Sprintf("❌ Preview failed: %v", err))
				return
			}
			gg.stopButton.Enable()
			gg.statusLabel.SetText("🔊 Playing preview...")
		})
	}()
}

func (gg *GeneratorGUI) onStop() {
	if gg.preview != nil {
		gg.preview.Stop()
	}
	gg.stopButton.Disable()
	gg.statusLabel.SetText("Playback stopped")
}

// onExport bundles every MIDI file in the output directory into a ZIP
func (gg *GeneratorGUI) onExport() {
	dir := gg.outputEntry.Text
	if dir == "" {
		resolved, err := midifile.DefaultOutputDir()
		if err != nil {
			dialog.ShowError(err, gg.window)
			return
		}
		dir = resolved
	}

	files, err := exporter.CollectMIDIFiles(dir)
	if err != nil {
		dialog.ShowError(err, gg.window)
		return
	}
	if len(files) == 0 {
		dialog.ShowInformation("Export", fmt.Sprintf("No MIDI files found in %s", dir), gg.window)
		return
	}

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Optional password (AES-256)")

	dialog.ShowForm("Export MIDI Files", "Export", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Files", widget.NewLabel(fmt.Sprintf("%d MIDI files from %s", len(files), filepath.Base(dir)))),
			widget.NewFormItem("Password", passwordEntry),
		},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			gg.saveArchive(files, passwordEntry.Text)
		},
		gg.window)
}

// saveArchive asks for the destination and runs the export
func (gg *GeneratorGUI) saveArchive(files []string, password string) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		outputPath := writer.URI().Path()
		writer.Close()
		// The exporter creates the archive file itself
		os.Remove(outputPath)

		exp := &exporter.Exporter{OutputPath: outputPath, Password: password}
		result, err := exp.Export(files)
		if err != nil {
			dialog.ShowError(err, gg.window)
			return
		}

		status := fmt.Sprintf("✅ Exported %d files to %s", result.FilesAdded, result.OutputPath)
		if result.Encrypted {
			status += " 🔐"
		}
		gg.statusLabel.SetText(status)
	}, gg.window)
}

// Run shows the window and starts the event loop
func (gg *GeneratorGUI) Run() {
	gg.window.ShowAndRun()
}

func main() {
	NewGeneratorGUI().Run()
}
