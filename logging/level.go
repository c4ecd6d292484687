package logging

import (
	"fmt"
	"strings"
)

// Level the minimum severity a logger writes
type Level int8

const (
	// DebugLevel everything
	DebugLevel Level = iota
	// InfoLevel informational messages and above
	InfoLevel
	// WarningLevel warnings and above
	WarningLevel
	// ErrorLevel errors and fatal messages only
	ErrorLevel
	// FatalLevel fatal messages only
	FatalLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name into a Level. The name is not case sensitive.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO", "":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", name)
}
