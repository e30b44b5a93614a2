package logger

import (
	"strings"

	"github.com/fatih/color"
)

// Level defines log severity. Lower values are more severe; Quiet and Full
// are threshold sentinels and are never valid message levels.
type Level int

const (
	// Quiet matches nothing when used as the threshold.
	Quiet Level = iota
	// FatalLevel logs and then terminates the process.
	FatalLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// TimeoutLevel enables timeout logging.
	TimeoutLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// TraceLevel enables trace logging.
	TraceLevel
	// DebugLevel enables debug logging.
	DebugLevel
	// Full matches everything when used as the threshold.
	Full
)

// String returns the upper-case tag used in rendered messages.
func (l Level) String() string {
	switch l {
	case Quiet:
		return "QUIET"
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case TimeoutLevel:
		return "TIMEOUT"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case Full:
		return "FULL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a textual level name. It tolerates the "LOG_" namespace
// prefix and is case-insensitive, so "error", "ERROR" and "LOG_ERROR" all
// parse to ErrorLevel. The sentinels QUIET and FULL parse too; they are valid
// thresholds even though they are never valid message levels.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "LOG_")
	switch name {
	case "QUIET":
		return Quiet, true
	case "FATAL":
		return FatalLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "TIMEOUT":
		return TimeoutLevel, true
	case "WARN":
		return WarnLevel, true
	case "INFO":
		return InfoLevel, true
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "FULL":
		return Full, true
	default:
		return Quiet, false
	}
}

// forced returns a colorizer that emits escape codes regardless of whether
// the process is attached to a TTY. The colored rendering must always carry
// its decorations; the caller decides where it ends up.
func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var levelColors = map[Level]*color.Color{
	FatalLevel:   forced(color.FgRed),
	ErrorLevel:   forced(color.FgHiRed),
	TimeoutLevel: forced(color.FgMagenta),
	WarnLevel:    forced(color.FgYellow),
	InfoLevel:    forced(color.FgCyan),
	TraceLevel:   forced(color.FgHiMagenta),
	DebugLevel:   forced(color.Faint),
}

var defaultColor = forced(color.FgWhite)

// levelColor returns the fixed colorizer for a severity.
func levelColor(l Level) *color.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return defaultColor
}
