package log

import "go.uber.org/zap"

// Log is the logging surface the parsing and assembly packages depend on.
// The concrete implementation wraps zap; a no-op variant is available for
// library callers that do not want log output.
type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Log
}

// Field is the structured log field type. Aliasing zap's field keeps the
// call sites allocation-free while hiding the backend behind Log.
type Field = zap.Field

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent Level = 0xFF
)

// ParseLevel maps a configuration string to a Level. Unknown values fall
// back to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none":
		return LevelSilent
	default:
		return LevelInfo
	}
}

func String(key, val string) Field         { return zap.String(key, val) }
func Int(key string, val int) Field        { return zap.Int(key, val) }
func Bool(key string, val bool) Field      { return zap.Bool(key, val) }
func Error(err error) Field                { return zap.Error(err) }
func Any(key string, val any) Field        { return zap.Any(key, val) }
func Strings(key string, v []string) Field { return zap.Strings(key, v) }
