// Package debuglog is a small leveled wrapper over the standard log package.
// The global level is read from the FYNEKIT_DEBUG environment variable at
// startup and can be changed at runtime through GlobalLevel.
package debuglog

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/TheEvilRoot/fynekit/internal/constants"
)

type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelTrace

	// UseGlobal makes Log fall back to GlobalLevel instead of a local override.
	UseGlobal Level = 255
)

var (
	GlobalLevel = ParseLevel(os.Getenv(constants.DebugEnvKey))
)

// ParseLevel maps a level name to a Level. Unknown names select LevelWarn so
// an importing application stays quiet unless it opts in.
func ParseLevel(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace
	case "verbose", "debug":
		return LevelVerbose
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "off":
		return LevelOff
	default:
		return LevelWarn
	}
}

// Log writes a message if level passes the effective threshold. local overrides
// GlobalLevel unless it is UseGlobal. prefix is printed in brackets when set.
func Log(prefix string, level Level, local Level, format string, args ...interface{}) {
	if !ShouldLog(level, local) {
		return
	}
	message := fmt.Sprintf(format, args...)
	if prefix != "" {
		log.Printf("[%s] %s", prefix, message)
	} else {
		log.Print(message)
	}
}

// ShouldLog reports whether a message at level would be written.
func ShouldLog(level Level, local Level) bool {
	effective := GlobalLevel
	if local != UseGlobal {
		effective = local
	}
	return level <= effective
}

// TraceLog logs at trace level against the global threshold.
func TraceLog(format string, args ...interface{}) {
	Log("TRACE", LevelTrace, UseGlobal, format, args...)
}

// DebugLog logs at verbose level against the global threshold.
func DebugLog(format string, args ...interface{}) {
	Log("DEBUG", LevelVerbose, UseGlobal, format, args...)
}

// InfoLog logs at info level against the global threshold.
func InfoLog(format string, args ...interface{}) {
	Log("INFO", LevelInfo, UseGlobal, format, args...)
}

// WarnLog logs at warn level against the global threshold.
func WarnLog(format string, args ...interface{}) {
	Log("WARN", LevelWarn, UseGlobal, format, args...)
}

// ErrorLog logs at error level against the global threshold.
func ErrorLog(format string, args ...interface{}) {
	Log("ERROR", LevelError, UseGlobal, format, args...)
}

// LogTextFragment logs a text fragment, truncating long texts to their first
// and last maxChars characters so large payloads do not swamp the log.
func LogTextFragment(prefix string, level Level, local Level, description, text string, maxChars int) {
	if !ShouldLog(level, local) {
		return
	}

	textLen := len(text)
	if textLen <= maxChars*2 {
		Log(prefix, level, local, "%s (len=%d): %s", description, textLen, text)
		return
	}

	Log(prefix, level, local, "%s (len=%d): first %d chars: %s",
		description, textLen, maxChars, text[:maxChars])
	Log(prefix, level, local, "%s (len=%d): last %d chars: %s",
		description, textLen, maxChars, text[textLen-maxChars:])
}
