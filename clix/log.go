// Package clix provides the command-line scaffolding shared by the
// extend and merge entry points: logging, stream I/O, flag helpers,
// and summary-table rendering, in the same style the teacher's
// unikmer/cmd package used for its own subcommands.
package clix

import (
	"fmt"
	"io"
	"os"
	"runtime"

	colorable "github.com/mattn/go-colorable"
	"github.com/shenwei356/go-logging"
)

// Log is the process-wide logger, configured once at package init the
// way unikmer/main.go configures its own backend.
var Log = logging.MustGetLogger("strx")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{color}[%{level:.4s}]%{color:reset} %{message}`,
)

func init() {
	var stderr io.Writer = os.Stderr
	if runtime.GOOS == "windows" {
		stderr = colorable.NewColorableStderr()
	}
	backend := logging.NewLogBackend(stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	logging.SetBackend(backendFormatter)
}

// CheckError logs err as fatal and exits the process with status 1 if
// err is non-nil; otherwise it is a no-op. This is the error exit path
// for fatal-usage and fatal-input errors found inside both CLIs' Run
// functions; cobra's own argument errors exit from main instead.
func CheckError(err error) {
	if err == nil {
		return
	}
	Log.Errorf("%s", err)
	os.Exit(1)
}

// Warnf logs a one-time-banner-style warning, matching the "warning"
// error kind (load factor high, even k silently rounded, etc).
func Warnf(format string, args ...interface{}) {
	Log.Warningf(format, args...)
}

// Die prints a formatted fatal message and exits 1, for error sites
// that have no underlying error value to wrap.
func Die(format string, args ...interface{}) {
	CheckError(fmt.Errorf(format, args...))
}

// SetVerbosity raises the package logger's level from its default
// (WARNING) the way both CLIs' --verbose/--debug flags request: debug
// takes priority over verbose if both are set. This replaces the
// original's single mutable `debug_flag` threaded through every
// print-if-debug call site with one log-level decision made once at
// startup.
func SetVerbosity(verbose, debug bool) {
	switch {
	case debug:
		logging.SetLevel(logging.DEBUG, "strx")
	case verbose:
		logging.SetLevel(logging.INFO, "strx")
	default:
		logging.SetLevel(logging.WARNING, "strx")
	}
}
