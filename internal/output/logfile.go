package output

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DebugLog is a rotating debug log file, enabled by setting JJ_SPR_LOG to any
// non-empty value. JJ_SPR_LOG_FILE overrides the default location.
type DebugLog struct {
	logger *log.Logger
}

// OpenDebugLog opens the debug log. When JJ_SPR_LOG is unset the returned
// log discards everything.
func OpenDebugLog() *DebugLog {
	if os.Getenv("JJ_SPR_LOG") == "" {
		return &DebugLog{logger: log.New(io.Discard, "", 0)}
	}

	writer := &lumberjack.Logger{
		Filename:   debugLogPath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	return &DebugLog{logger: log.New(writer, "", log.LstdFlags|log.Lmicroseconds)}
}

// Printf logs a formatted line.
func (d *DebugLog) Printf(format string, args ...interface{}) {
	d.logger.Printf(format, args...)
}

func debugLogPath() string {
	if custom := os.Getenv("JJ_SPR_LOG_FILE"); custom != "" {
		return custom
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "jj-spr.log"
	}
	return filepath.Join(homeDir, ".jj-spr", "logs", "jj-spr.log")
}
