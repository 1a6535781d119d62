package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the tool version, overridable at build time with
// -ldflags "-X github.com/agbru/rsacore/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests version output.
// It is checked before full flag parsing so -version works even when
// combined with otherwise invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes version and build information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "rsacore %s (%s, %s/%s)\n",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
