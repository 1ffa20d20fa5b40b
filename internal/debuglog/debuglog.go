// Package debuglog holds the diagnostics logger shared by the unwind and
// chunk packages. It reports nothing above warnings unless Init is called
// with debug enabled, so production walks stay silent.
package debuglog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportCaller:    false,
	ReportTimestamp: false,
	TimeFormat:      time.RFC3339,
	Prefix:          "unwind",
	Level:           log.WarnLevel,
})

// Init configures the diagnostics logger.
func Init(debug, noColor bool) {
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	logger.SetColorProfile(termenv.ANSI256)
	if noColor {
		logger.SetColorProfile(termenv.Ascii)
	}
}

// Logger returns the shared diagnostics logger.
func Logger() *log.Logger {
	return logger
}
