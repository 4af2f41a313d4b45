package launcher

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
)

// PrintDiagnostics writes runtime environment information: the Go
// runtime version, the launcher executable location, the module's
// build dependency list and the working directory. Everything here is
// informational; failures are reported inline and never abort startup.
func PrintDiagnostics(w io.Writer) {
	fmt.Fprintf(w, "Go Version: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if exe, err := os.Executable(); err == nil {
		fmt.Fprintf(w, "Launcher Executable: %s\n", exe)
	} else {
		fmt.Fprintf(w, "Launcher Executable: unknown (%v)\n", err)
	}

	fmt.Fprintln(w, "\nBuild Dependencies:")
	if bi, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(w, "  - %s %s\n", bi.Main.Path, bi.Main.Version)
		for _, dep := range bi.Deps {
			fmt.Fprintf(w, "  - %s %s\n", dep.Path, dep.Version)
		}
	} else {
		fmt.Fprintln(w, "  (build information unavailable)")
	}

	if wd, err := os.Getwd(); err == nil {
		fmt.Fprintf(w, "\nCurrent Working Directory: %s\n", wd)
	}
}
