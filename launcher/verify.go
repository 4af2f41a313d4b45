package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/kacebover/bassline-generator/midifile"
)

// CheckStatus is the outcome of a single setup check
type CheckStatus struct {
	Name        string
	OK          bool
	Detail      string
	Required    bool
	InstallHint string
}

// SetupVerifier runs the pre-menu setup checks. Its findings are
// reported to the user but never gate the menu: a missing optional
// piece only degrades the experience of the chosen program.
type SetupVerifier struct {
	cfg     *Config
	results map[string]*CheckStatus
}

// NewSetupVerifier creates a verifier for the given configuration
func NewSetupVerifier(cfg *Config) *SetupVerifier {
	return &SetupVerifier{
		cfg:     cfg,
		results: make(map[string]*CheckStatus),
	}
}

// CheckAll runs every setup check and returns the statuses
func (v *SetupVerifier) CheckAll() map[string]*CheckStatus {
	v.checkProgram("gui", "GUI program", v.cfg.GUIPath)
	v.checkProgram("cli", "CLI program", v.cfg.CLIPath)
	v.checkOutputDir()
	v.checkPlayer()
	return v.results
}

// checkProgram verifies that a program binary exists and is a regular file
func (v *SetupVerifier) checkProgram(key, name, path string) {
	status := &CheckStatus{
		Name:        name,
		Required:    true,
		InstallHint: fmt.Sprintf("build it and place it at %s, or point %s%s_PATH at it", path, envPrefix, strings.ToUpper(key)),
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		status.Detail = fmt.Sprintf("not found at %s", path)
	case info.IsDir():
		status.Detail = fmt.Sprintf("%s is a directory", path)
	default:
		status.OK = true
		status.Detail = path
	}

	v.results[key] = status
}

// checkOutputDir verifies the MIDI output directory is writable
func (v *SetupVerifier) checkOutputDir() {
	status := &CheckStatus{
		Name:        "Output directory",
		Required:    true,
		InstallHint: "set BASSLINE_OUTPUT_DIR to a writable directory",
	}

	dir := v.cfg.OutputDir
	if dir == "" {
		resolved, err := midifile.DefaultOutputDir()
		if err != nil {
			status.Detail = err.Error()
			v.results["output"] = status
			return
		}
		dir = resolved
	}

	probe, err := os.CreateTemp(dir, ".bassline_probe_*")
	if err != nil {
		status.Detail = fmt.Sprintf("%s is not writable: %v", dir, err)
	} else {
		probe.Close()
		os.Remove(probe.Name())
		status.OK = true
		status.Detail = dir
	}

	v.results["output"] = status
}

// checkPlayer verifies a MIDI player is available for previews
func (v *SetupVerifier) checkPlayer() {
	status := &CheckStatus{
		Name:        "MIDI player",
		Required:    false,
		InstallHint: playerInstallHint(),
	}

	if player, _, err := midifile.PlayerCommand(); err == nil {
		status.OK = true
		status.Detail = player
	} else {
		status.Detail = "no fluidsynth, timidity or system opener found; previews will be unavailable"
	}

	v.results["player"] = status
}

// playerInstallHint returns platform-specific MIDI player install instructions
func playerInstallHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install fluidsynth"
	case "linux":
		return "Install with: sudo apt install fluidsynth (or your distro's package manager)"
	case "windows":
		return "Download FluidSynth from: https://github.com/FluidSynth/fluidsynth/releases"
	default:
		return "Install fluidsynth or timidity for MIDI previews"
	}
}

// AllRequiredOK reports whether every required check passed
func (v *SetupVerifier) AllRequiredOK() bool {
	for _, status := range v.results {
		if status.Required && !status.OK {
			return false
		}
	}
	return true
}

// FormatReport returns the verification report printed before the menu
func (v *SetupVerifier) FormatReport() string {
	keys := make([]string, 0, len(v.results))
	for key := range v.results {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("📋 Setup Verification:\n\n")

	for _, key := range keys {
		status := v.results[key]
		if status.OK {
			sb.WriteString(fmt.Sprintf("✅ %s", status.Name))
			if status.Detail != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", status.Detail))
			}
			sb.WriteString("\n")
		} else {
			sb.WriteString(fmt.Sprintf("❌ %s - %s\n", status.Name, status.Detail))
			sb.WriteString(fmt.Sprintf("   💡 %s\n", status.InstallHint))
		}
	}

	return sb.String()
}
