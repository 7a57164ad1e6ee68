//go:build !debug

package linesegment

// logDebugf is a no-op unless built with the debug tag.
func logDebugf(string, ...interface{}) {}
