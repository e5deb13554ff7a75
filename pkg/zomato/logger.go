package zomato

import (
	"os"

	"github.com/abhishtagatya/zomathon/internal/logger"
)

// Logger defines the logging surface the client relies on.
type Logger interface {
	InfoObj(msg, key string, obj interface{})
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
	ErrorObj(msg, key string, obj interface{})
}

// ensureLogger falls back to a stderr zap logger when debug output was asked
// for without a logger, and to a no-op otherwise.
func ensureLogger(log Logger, debug bool) Logger {
	if log != nil {
		return log
	}
	if debug {
		return logger.New("info", os.Stderr)
	}
	return logger.NopLogger{}
}
