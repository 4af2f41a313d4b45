package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kacebover/bassline-generator/bassline"
	"github.com/kacebover/bassline-generator/exporter"
	"github.com/kacebover/bassline-generator/midifile"
)

func main() {
	// Subcommand dispatch
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "generate":
			runGenerateCommand(os.Args[2:])
			return
		case "roll":
			runRollCommand(os.Args[2:])
			return
		case "scales":
			runScalesCommand(os.Args[2:])
			return
		case "export":
			runExportCommand(os.Args[2:])
			return
		case "gui":
			LaunchGUI()
			return
		case "help", "--help", "-h":
			printMainHelp()
			return
		}
	}

	// Default: interactive generation session
	runInteractive()
}

func printMainHelp() {
	fmt.Println("🎵 Bassline Generator - Random MIDI Bassline Creator")
	fmt.Println("====================================================")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate    Generate a bassline from explicit parameters")
	fmt.Println("  roll        Roll random parameters with the dice roller")
	fmt.Println("  scales      List available root notes, scales, genres and instruments")
	fmt.Println("  export      Bundle generated MIDI files into a ZIP archive")
	fmt.Println("  gui         Show how to build and run the graphical version")
	fmt.Println("  help        Show this help")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bassline-cli                       Interactive session")
	fmt.Println("  bassline-cli generate [options]")
	fmt.Println("  bassline-cli roll [options]")
	fmt.Println("  bassline-cli export [options]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  bassline-cli generate -root C -scale minor -genre Funk -tempo 110")
	fmt.Println("  bassline-cli roll -output ./midi")
	fmt.Println("  bassline-cli export -dir ./midi -output basslines.zip -password secret")
	fmt.Println()
	fmt.Println("Run 'bassline-cli <command> -h' for details on a command.")
}

// ═══════════════════════════════════════════════════════════════════════════
// GENERATE COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runGenerateCommand(args []string) {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)

	rootNote := generateCmd.String("root", "C", "Root note (C, C#, Db, ... B)")
	scaleType := generateCmd.String("scale", "minor", "Scale type (run 'scales' for the full list)")
	genre := generateCmd.String("genre", "Funk", "Rhythm genre (run 'scales' for the full list)")
	tempo := generateCmd.Int("tempo", 120, "Tempo in BPM (40-240)")
	bars := generateCmd.Int("bars", 4, "Number of bars (1-16)")
	density := generateCmd.Float64("density", 0.8, "Note density (0.0-1.0)")
	outputDir := generateCmd.String("output", "", "Output directory (default: Desktop)")
	name := generateCmd.String("name", "", "Output filename (default: descriptive name)")
	instrument := generateCmd.String("instrument", "", "Bass instrument to embed as a program change")
	seed := generateCmd.Int64("seed", 0, "Random seed for reproducible output (0 = random)")
	verbose := generateCmd.Bool("verbose", false, "Verbose output")

	generateCmd.Usage = func() {
		fmt.Println("🎵 Generate a Bassline")
		fmt.Println("======================")
		fmt.Println()
		fmt.Println("Generates a random bassline for the given parameters and saves")
		fmt.Println("it as a standard MIDI file.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  bassline-cli generate [options]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -root string        Root note (default: C)")
		fmt.Println("  -scale string       Scale type (default: minor)")
		fmt.Println("  -genre string       Rhythm genre (default: Funk)")
		fmt.Println("  -tempo int          Tempo in BPM, 40-240 (default: 120)")
		fmt.Println("  -bars int           Number of bars, 1-16 (default: 4)")
		fmt.Println("  -density float      Note density, 0.0-1.0 (default: 0.8)")
		fmt.Println("  -output string      Output directory (default: Desktop)")
		fmt.Println("  -name string        Output filename")
		fmt.Println("  -instrument string  Bass instrument for the program change")
		fmt.Println("  -seed int           Random seed for reproducible output")
		fmt.Println("  -verbose            Verbose output")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  bassline-cli generate -root A -scale blues -genre Funk -tempo 95")
		fmt.Println("  bassline-cli generate -genre Trap -bars 8 -density 0.6 -output ./midi")
		fmt.Println("  bassline-cli generate -seed 42 -instrument \"Slap Bass 1\"")
	}

	if err := generateCmd.Parse(args); err != nil {
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	params := bassline.Params{
		RootNote:    *rootNote,
		ScaleType:   *scaleType,
		Genre:       *genre,
		Tempo:       *tempo,
		Bars:        *bars,
		NoteDensity: *density,
	}

	generateAndSave(params, *outputDir, *name, *instrument, *seed, *verbose)
}

// generateAndSave runs one generation and writes the MIDI file, exiting
// on any error. Shared by the generate and roll commands.
func generateAndSave(params bassline.Params, outputDir, name, instrument string, seed int64, verbose bool) {
	program := -1
	if instrument != "" {
		p, ok := midifile.InstrumentProgram(instrument)
		if !ok {
			fmt.Printf("❌ Error: Unknown instrument: %s\n", instrument)
			fmt.Printf("   Available: %s\n", strings.Join(midifile.AvailableInstruments(), ", "))
			os.Exit(1)
		}
		program = p
	}

	generator := bassline.NewGenerator()
	if seed != 0 {
		generator = bassline.NewGeneratorWithSeed(seed)
	}

	line, err := generator.Generate(params)
	if err != nil {
		fmt.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("🎼 Generated %d notes (%s %s, %s, %d BPM, %d bars)\n",
			len(line), params.RootNote, bassline.DisplayName(params.ScaleType),
			params.Genre, params.Tempo, params.Bars)
	}

	if name == "" {
		name = params.FileName()
	}

	opts := midifile.WriteOptions{Tempo: params.Tempo, Program: program}
	path, err := midifile.Save(line, outputDir, name, opts)
	if err != nil {
		fmt.Printf("❌ Error saving MIDI file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("✅ Bassline generated!")
	fmt.Printf("📦 File:   %s\n", path)
	fmt.Printf("🎼 Notes:  %d\n", len(line))
	fmt.Printf("🎵 Tempo:  %d BPM\n", params.Tempo)
}

// ═══════════════════════════════════════════════════════════════════════════
// ROLL COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runRollCommand(args []string) {
	rollCmd := flag.NewFlagSet("roll", flag.ExitOnError)

	outputDir := rollCmd.String("output", "", "Output directory (default: Desktop)")
	instrument := rollCmd.String("instrument", "", "Bass instrument for the program change")
	yes := rollCmd.Bool("yes", false, "Accept the first roll without confirmation")
	seed := rollCmd.Int64("seed", 0, "Random seed for reproducible rolls (0 = random)")
	verbose := rollCmd.Bool("verbose", false, "Verbose output")

	rollCmd.Usage = func() {
		fmt.Println("🎲 Dice Roller")
		fmt.Println("==============")
		fmt.Println()
		fmt.Println("Rolls random musical parameters within sensible constraints")
		fmt.Println("(tempo 60-180 BPM, 8 bars, density 0.30-1.00), then generates")
		fmt.Println("and saves a bassline from the accepted roll.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  bassline-cli roll [options]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -output string      Output directory (default: Desktop)")
		fmt.Println("  -instrument string  Bass instrument for the program change")
		fmt.Println("  -yes                Accept the first roll without confirmation")
		fmt.Println("  -seed int           Random seed for reproducible rolls")
		fmt.Println("  -verbose            Verbose output")
	}

	if err := rollCmd.Parse(args); err != nil {
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	roller := bassline.NewDiceRoller()
	if *seed != 0 {
		roller = bassline.NewDiceRollerWithSeed(*seed)
	}

	var params bassline.Params
	if *yes {
		params = roller.Roll()
		fmt.Print(bassline.FormatParams(params))
	} else {
		accepted, ok := roller.InteractiveRoll(os.Stdin, os.Stdout)
		if !ok {
			fmt.Println("\nCancelled.")
			return
		}
		params = accepted
	}

	generateAndSave(params, *outputDir, "", *instrument, 0, *verbose)
}

// ═══════════════════════════════════════════════════════════════════════════
// SCALES COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runScalesCommand(args []string) {
	scalesCmd := flag.NewFlagSet("scales", flag.ExitOnError)
	scalesCmd.Usage = func() {
		fmt.Println("Usage: bassline-cli scales")
		fmt.Println()
		fmt.Println("Lists every available root note, scale type, genre and instrument.")
	}
	if err := scalesCmd.Parse(args); err != nil {
		os.Exit(1)
	}

	scales := bassline.NewScales()

	fmt.Println("🎵 Available Musical Options")
	fmt.Println("============================")
	fmt.Println()
	fmt.Printf("Root Notes (%d):\n", len(scales.AvailableRootNotes()))
	fmt.Printf("  %s\n", strings.Join(scales.AvailableRootNotes(), ", "))
	fmt.Println()
	fmt.Printf("Scale Types (%d):\n", len(scales.AvailableScales()))
	for _, name := range scales.AvailableScales() {
		fmt.Printf("  %-18s %s\n", name, bassline.DisplayName(name))
	}
	fmt.Println()
	fmt.Printf("Genres (%d):\n", len(bassline.AvailableGenres()))
	fmt.Printf("  %s\n", strings.Join(bassline.AvailableGenres(), ", "))
	fmt.Println()
	fmt.Printf("Bass Instruments (%d):\n", len(midifile.AvailableInstruments()))
	fmt.Printf("  %s\n", strings.Join(midifile.AvailableInstruments(), ", "))
}

// ═══════════════════════════════════════════════════════════════════════════
// EXPORT COMMAND
// ═══════════════════════════════════════════════════════════════════════════

func runExportCommand(args []string) {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	dirPath := exportCmd.String("dir", "", "Directory with MIDI files (default: Desktop)")
	outputPath := exportCmd.String("output", "", "Output ZIP path (required)")
	password := exportCmd.String("password", "", "Encrypt the archive with this password (AES-256)")
	verbose := exportCmd.Bool("verbose", false, "Verbose output")

	exportCmd.Usage = func() {
		fmt.Println("📦 Export MIDI Files")
		fmt.Println("====================")
		fmt.Println()
		fmt.Println("Bundles generated MIDI files into a ZIP archive, optionally")
		fmt.Println("encrypted with AES-256 (WinZip compatible).")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  bassline-cli export -output <archive.zip> [options] [files...]")
		fmt.Println()
		fmt.Println("Options:")
		fmt.Println("  -dir string       Directory to collect .mid files from (default: Desktop)")
		fmt.Println("  -output string    Output ZIP path (required)")
		fmt.Println("  -password string  Encrypt entries with this password")
		fmt.Println("  -verbose          Verbose output")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  bassline-cli export -dir ./midi -output basslines.zip")
		fmt.Println("  bassline-cli export -output secure.zip -password myP@ss funk_bassline_C_minor_110bpm.mid")
	}

	if err := exportCmd.Parse(args); err != nil {
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *outputPath == "" {
		fmt.Println("❌ Error: Output path is required (-output)")
		exportCmd.Usage()
		os.Exit(1)
	}
	if !strings.HasSuffix(strings.ToLower(*outputPath), ".zip") {
		*outputPath += ".zip"
	}

	// Explicit files win; otherwise collect from the directory
	files := exportCmd.Args()
	if len(files) == 0 {
		dir := *dirPath
		if dir == "" {
			resolved, err := midifile.DefaultOutputDir()
			if err != nil {
				fmt.Printf("❌ Error: %v\n", err)
				os.Exit(1)
			}
			dir = resolved
		}

		collected, err := exporter.CollectMIDIFiles(dir)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			os.Exit(1)
		}
		if len(collected) == 0 {
			fmt.Printf("❌ Error: No MIDI files found in %s\n", dir)
			os.Exit(1)
		}
		files = collected
	}

	if *verbose {
		fmt.Printf("📦 Exporting %d files to %s...\n", len(files), *outputPath)
	}

	exp := &exporter.Exporter{OutputPath: *outputPath, Password: *password}
	result, err := exp.Export(files)
	if err != nil {
		fmt.Printf("❌ Export error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("✅ Export complete!")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("📦 Archive:        %s\n", result.OutputPath)
	fmt.Printf("📁 Files:          %d\n", result.FilesAdded)
	fmt.Printf("📊 Original size:  %s\n", formatBytes(result.TotalSize))
	fmt.Printf("📊 Archive size:   %s\n", formatBytes(result.ArchiveSize))
	if result.Encrypted {
		fmt.Println("🔐 Encryption:     AES-256")
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KB", "MB", "GB", "TB"}[exp])
}

// ═══════════════════════════════════════════════════════════════════════════
// INTERACTIVE SESSION
// ═══════════════════════════════════════════════════════════════════════════

func runInteractive() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("🎵 Random Bassline Generator 🎵")
	fmt.Println("===============================")

	for {
		fmt.Println()
		fmt.Println("1. Enter parameters manually")
		fmt.Println("2. Roll the dice 🎲")
		fmt.Println("3. Quit")
		fmt.Println()
		fmt.Print("Select mode (1-3): ")

		mode, err := reader.ReadString('\n')
		if err != nil {
			return
		}

		var params bassline.Params
		switch strings.TrimSpace(mode) {
		case "1":
			params = promptParams(reader)
		case "2":
			rolled, ok := bassline.NewDiceRoller().InteractiveRoll(reader, os.Stdout)
			if !ok {
				continue
			}
			params = rolled
		case "3":
			fmt.Println("Goodbye! 🎵")
			return
		default:
			fmt.Println("Invalid choice. Please enter 1, 2 or 3.")
			continue
		}

		line, err := bassline.NewGenerator().Generate(params)
		if err != nil {
			fmt.Printf("❌ Error: %v\n", err)
			continue
		}

		opts := midifile.WriteOptions{Tempo: params.Tempo, Program: -1}
		path, err := midifile.Save(line, "", params.FileName(), opts)
		if err != nil {
			fmt.Printf("❌ Error saving MIDI file: %v\n", err)
			continue
		}

		fmt.Println()
		fmt.Printf("✅ Saved %d notes to %s\n", len(line), path)

		offerPreview(reader, line, params.Tempo)

		fmt.Print("\nGenerate another bassline? (Y/N): ")
		answer, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Goodbye! 🎵")
			return
		}
	}
}

// promptParams collects generation parameters interactively, re-prompting
// until every value is valid
func promptParams(reader *bufio.Reader) bassline.Params {
	scales := bassline.NewScales()

	fmt.Println()
	fmt.Printf("Root notes: %s\n", strings.Join(scales.AvailableRootNotes(), ", "))
	rootNote := promptChoice(reader, "Root note: ", scales.HasRootNote)

	fmt.Println("\nScale types:")
	for i, name := range scales.AvailableScales() {
		fmt.Printf("  %2d. %s\n", i+1, bassline.DisplayName(name))
	}
	scaleType := promptScale(reader, scales)

	fmt.Printf("\nGenres: %s\n", strings.Join(bassline.AvailableGenres(), ", "))
	genre := promptChoice(reader, "Genre: ", bassline.HasGenre)

	tempo := promptInt(reader, fmt.Sprintf("Tempo (%d-%d BPM): ", bassline.MinTempo, bassline.MaxTempo),
		bassline.MinTempo, bassline.MaxTempo)
	bars := promptInt(reader, fmt.Sprintf("Bars (%d-%d): ", bassline.MinBars, bassline.MaxBars),
		bassline.MinBars, bassline.MaxBars)
	density := promptFloat(reader, "Note density (0.0-1.0): ", 0.0, 1.0)

	return bassline.Params{
		RootNote:    rootNote,
		ScaleType:   scaleType,
		Genre:       genre,
		Tempo:       tempo,
		Bars:        bars,
		NoteDensity: density,
	}
}

// promptScale accepts either a number from the printed list or a scale name
func promptScale(reader *bufio.Reader, scales *bassline.Scales) string {
	names := scales.AvailableScales()
	for {
		fmt.Print("Scale (number or name): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "minor"
		}
		input := strings.TrimSpace(line)

		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(names) {
			return names[n-1]
		}
		if scales.HasScale(input) {
			return input
		}
		fmt.Println("Invalid scale. Enter a number from the list or a scale name.")
	}
}

func promptChoice(reader *bufio.Reader, prompt string, valid func(string) bool) string {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return ""
		}
		input := strings.TrimSpace(line)
		if valid(input) {
			return input
		}
		fmt.Println("Invalid choice, try again.")
	}
}

func promptInt(reader *bufio.Reader, prompt string, min, max int) int {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return min
		}
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= min && n <= max {
			return n
		}
		fmt.Printf("Please enter a number between %d and %d.\n", min, max)
	}
}

func promptFloat(reader *bufio.Reader, prompt string, min, max float64) float64 {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return min
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(line), 64); err == nil && f >= min && f <= max {
			return f
		}
		fmt.Printf("Please enter a number between %.1f and %.1f.\n", min, max)
	}
}

// offerPreview plays the generated bassline through an external MIDI
// player when one is available
func offerPreview(reader *bufio.Reader, line bassline.Bassline, tempo int) {
	if _, _, err := midifile.PlayerCommand(); err != nil {
		return
	}

	fmt.Print("\nPreview the bassline? (Y/N): ")
	answer, err := reader.ReadString('\n')
	if err != nil || strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return
	}

	preview, err := midifile.NewPreview()
	if err != nil {
		fmt.Printf("⚠️  Preview unavailable: %v\n", err)
		return
	}
	defer preview.Cleanup()

	path, err := preview.CreatePreview(line, tempo)
	if err != nil {
		fmt.Printf("⚠️  Preview unavailable: %v\n", err)
		return
	}
	if err := preview.Play(path); err != nil {
		fmt.Printf("⚠️  Playback failed: %v\n", err)
		return
	}

	fmt.Print("🔊 Playing... press Enter to stop: ")
	_, _ = reader.ReadString('\n')
	preview.Stop()
}
