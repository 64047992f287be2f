package log

import (
	"fmt"
	"log/slog"

	"github.com/levenlabs/go-llog"
)

// ConfigureFromLLog applies the level lflag parsed into llog to the default
// logger and installs it as the slog default. It must be called after
// lflag.Configure.
func ConfigureFromLLog() slog.Level {
	var level slog.Level
	// lflag automatically sets llog's level, but we need to set the slog level
	switch llog.GetLevel() {
	case llog.DebugLevel:
		level = slog.LevelDebug
	case llog.InfoLevel:
		level = slog.LevelInfo
	case llog.WarnLevel:
		level = slog.LevelWarn
	case llog.ErrorLevel:
		level = slog.LevelError
	default:
		panic(fmt.Errorf("unknown log level: %s", llog.GetLevel().String()))
	}
	SetDefaultLogLevel(level)
	slog.SetDefault(defaultLogger)
	return level
}
