// Package logger provides a thread-safe leveled logger with dual-format
// rendering, file and callback sinks, and backtrace capture on fatal events.
//
// # Severities
//
// Messages carry one of FATAL, ERROR, TIMEOUT, WARN, INFO, TRACE or DEBUG,
// ordered from most to least severe. The threshold sentinels QUIET and FULL
// disable or enable everything; they are never valid message levels. A
// message is dispatched only when it is at least as severe as the threshold.
// The default threshold is INFO.
//
// # Renderings and sinks
//
// Every dispatched message is rendered twice: a colored form with ANSI
// decorations for terminals and a raw form for files. Both carry the same
// fields in a fixed order: optional timestamp, level tag, file:line:function,
// optional thread tag, body. Bodies longer than the internal buffer are
// truncated with a visible "..." marker.
//
// Up to one file sink and one callback sink can be active; all writes are
// serialized under a single lock so concurrent messages never interleave.
// Without any sink, messages are dropped after formatting; install the
// LogOnStdout or LogOnStderr callback for console output.
//
// # Fatal events
//
// A FATAL message is dispatched, followed by the captured call stack (one
// FATAL line per frame), and then the process exits with status 1. Fault
// signals (SIGSEGV, SIGILL, SIGABRT, SIGFPE, SIGBUS) log a backtrace the
// same way before the process dies with the signal's default semantics; the
// handlers are installed at load time and through Init.
//
// # Usage
//
// Configure the default logger at startup and close it at exit:
//
//	logger.SetFormatOptions(true, true, true)
//	logger.SetLevelFromEnv() // LOG_LEVEL
//	if err := logger.SetFileFromEnv("app.log"); err != nil { // LOG_FILE
//		// running without a file sink
//	}
//	defer logger.Shutdown()
//
//	logger.Infof("listening on %s", addr)
//	logger.Errorf("request failed: %v", err)
//	logger.Fatalf("unrecoverable: %v", err) // exits with status 1
//
// The callback sink receives both renderings of every message and runs
// inside the dispatch lock: it must not call back into the logger and must
// not block.
package logger
