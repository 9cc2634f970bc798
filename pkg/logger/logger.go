package logger

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

var std = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
	Level:           charmlog.InfoLevel,
})

// SetVerbose enables or disables debug-level logging.
func SetVerbose(verbose bool) {
	if verbose {
		std.SetLevel(charmlog.DebugLevel)
	} else {
		std.SetLevel(charmlog.InfoLevel)
	}
}

// IsVerbose returns true if debug logging is enabled.
func IsVerbose() bool {
	return std.GetLevel() <= charmlog.DebugLevel
}

// Debugf logs a formatted debug message. Suppressed unless verbose mode is on.
func Debugf(format string, v ...interface{}) {
	std.Debugf(format, v...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...interface{}) {
	std.Infof(format, v...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	std.Warnf(format, v...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	std.Errorf(format, v...)
}
