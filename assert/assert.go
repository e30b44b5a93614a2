// Package assert provides runtime assertions reported through the logging
// facility. A failed assertion logs at FATAL severity and terminates the
// process; Verify is the recoverable variant returning an error instead.
package assert

import (
	"fmt"
	"os"

	"github.com/AyAztuB/goutils/logger"
)

var osExit = os.Exit

// Assert terminates the process when cond is false, after logging the
// formatted message at FATAL severity. The reported call site is the caller
// of Assert.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	fail(format, args)
}

// Assertf is an alias for Assert.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	fail(format, args)
}

// fail reports the failed assertion and terminates. The calldepth skips
// fail, the exported wrapper and the logger's own dispatch frames so the
// logged call site is the assertion itself.
func fail(format string, args []any) {
	logger.Output(logger.FatalLevel, 5, "assertion failed: "+format, args...)
	// Reached only when FATAL was filtered by the threshold.
	osExit(1)
}

// Verify returns an error describing the failed condition instead of
// terminating. It returns nil when cond is true.
func Verify(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return fmt.Errorf("assertion failed: "+format, args...)
}
