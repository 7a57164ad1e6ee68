//go:build debug

package linesegment

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[sweep2d DEBUG] ", log.LstdFlags)

// logDebugf logs sweep trace messages in debug builds.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
