package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelDebug is for offsets, counts and other tracing detail
	LevelDebug Level = iota
	// LevelInfo is for progress lines printed on every run
	LevelInfo
	// LevelWarn is for problems that don't stop the extraction
	LevelWarn
	// LevelError is for fatal problems reported right before exit
	LevelError
)

// labels are prepended to every level except Info, whose lines are the
// tool's plain console output.
var labels = map[Level]string{
	LevelDebug: "debug: ",
	LevelInfo:  "",
	LevelWarn:  "Warning: ",
	LevelError: "Error: ",
}

var (
	mu       sync.Mutex
	output   io.Writer = os.Stdout
	minLevel Level     = LevelInfo
)

// SetOutput sets the output destination (primarily for testing)
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetLevel sets the minimum log level to display
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	minLevel = level
}

// GetLevel returns the current minimum log level
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return minLevel
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	log(LevelDebug, format, args...)
}

// Info logs a progress line
func Info(format string, args ...any) {
	log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	log(LevelError, format, args...)
}

func log(level Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel {
		return
	}

	// Skip logging if output is nil (e.g., during test cleanup)
	if output == nil {
		return
	}

	fmt.Fprintf(output, labels[level]+format+"\n", args...)
}
