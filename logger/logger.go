package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// Environment variables honored by SetLevelFromEnv and SetFileFromEnv.
const (
	envLevel = "LOG_LEVEL"
	envFile  = "LOG_FILE"
)

// StderrPath is the sentinel accepted by SetFile to install the standard
// error stream as the file sink. The stream is never closed by CloseFile.
const StderrPath = "stderr"

// ErrNoLogFile is returned by SetFileFromEnv when LOG_FILE is unset and no
// default path was given.
var ErrNoLogFile = errors.New("logger: " + envFile + " not set and no default path given")

// Callback receives every dispatched message, in both renderings. It runs
// inside the dispatch lock: it must not call back into the logger (the lock
// is not reentrant) and must not block, or it stalls logging process-wide.
type Callback func(level Level, colored, raw string)

// Logger is the process-wide logging state: threshold, format flags and
// sinks, all guarded by a single lock. Construct instances with New, or use
// the package-level functions operating on Default.
type Logger struct {
	mu           sync.Mutex
	level        Level
	showDate     bool
	showThread   bool
	traceOnFatal bool
	file         *os.File
	ownsFile     bool
	callback     Callback
}

// Default is the logger used by the package-level functions.
var Default = New()

// Dependency injection points for testing outputs and the fatal exit.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
	osExit              = os.Exit
)

// New returns a logger with an INFO threshold, all format flags enabled and
// no sinks attached.
func New() *Logger {
	return &Logger{
		level:        InfoLevel,
		showDate:     true,
		showThread:   true,
		traceOnFatal: true,
	}
}

// SetLevel replaces the threshold. It takes effect for all subsequent calls;
// in-flight calls keep the threshold they already observed.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// GetLevel returns the current threshold.
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevelFromString parses name with ParseLevel and installs the result.
// An unrecognized name leaves the threshold untouched and returns false:
// invalid configuration must not crash nor reset to a surprising default.
func (l *Logger) SetLevelFromString(name string) bool {
	level, ok := ParseLevel(name)
	if !ok {
		return false
	}
	l.SetLevel(level)
	return true
}

// SetLevelFromEnv reads the LOG_LEVEL environment variable. An unset or
// empty variable is a no-op; an unrecognized value behaves like
// SetLevelFromString.
func (l *Logger) SetLevelFromEnv() {
	if v := os.Getenv(envLevel); v != "" {
		l.SetLevelFromString(v)
	}
}

// SetFormatOptions configures message rendering and the fatal path:
// whether to render the timestamp, whether to render the thread tag, and
// whether to capture a backtrace on fatal events. All three default to true.
func (l *Logger) SetFormatOptions(showDate, showThread, traceOnFatal bool) {
	l.mu.Lock()
	l.showDate = showDate
	l.showThread = showThread
	l.traceOnFatal = traceOnFatal
	l.mu.Unlock()
}

// SetFile opens path for append and installs it as the file sink, closing
// any previously active one. On failure the previous sink stays in place.
// The sentinel path "stderr" installs the standard error stream; that stream
// is never closed by CloseFile.
func (l *Logger) SetFile(path string) error {
	if path == StderrPath {
		return l.SetFileDescriptor(os.Stderr)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logger: open log file %s: %w", path, err)
	}
	l.mu.Lock()
	l.closeFileLocked()
	l.file = f
	l.ownsFile = true
	l.mu.Unlock()
	return nil
}

// SetFileFromEnv installs the file sink from the LOG_FILE environment
// variable, falling back to defaultPath when the variable is unset. With the
// variable unset and an empty defaultPath it returns ErrNoLogFile; open
// failures surface the underlying error.
func (l *Logger) SetFileFromEnv(defaultPath string) error {
	if v := os.Getenv(envFile); v != "" {
		return l.SetFile(v)
	}
	if defaultPath != "" {
		return l.SetFile(defaultPath)
	}
	return ErrNoLogFile
}

// SetFileDescriptor installs an already-open file as the sink, closing any
// prior one. The logger takes over closing the file: the caller must not
// close it independently, only through CloseFile. The standard streams are
// recognized and never closed.
func (l *Logger) SetFileDescriptor(f *os.File) error {
	if f == nil {
		return errors.New("logger: nil file")
	}
	l.mu.Lock()
	l.closeFileLocked()
	l.file = f
	l.ownsFile = f != os.Stderr && f != os.Stdout
	l.mu.Unlock()
	return nil
}

// CloseFile flushes, closes and clears the active file sink. It is a no-op
// when no sink is active.
func (l *Logger) CloseFile() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeFileLocked()
}

func (l *Logger) closeFileLocked() error {
	if l.file == nil {
		return nil
	}
	var err error
	if l.ownsFile {
		_ = l.file.Sync()
		err = l.file.Close()
	}
	l.file = nil
	l.ownsFile = false
	return err
}

// SetCallback installs cb as the callback sink, or removes it when nil.
// See Callback for the reentrancy and blocking constraints.
func (l *Logger) SetCallback(cb Callback) {
	l.mu.Lock()
	l.callback = cb
	l.mu.Unlock()
}

// Output formats and dispatches one message. calldepth is the number of
// stack frames to ascend to find the call site, as in the standard log
// package: 2 identifies the caller of Output.
//
// Messages above the threshold are dropped; the sentinels Quiet and Full are
// never valid message levels and are dropped unconditionally. A FatalLevel
// message that clears the threshold is dispatched, followed by a backtrace
// when enabled, and then terminates the process with status 1.
func (l *Logger) Output(level Level, calldepth int, format string, args ...any) {
	if level == Quiet || level == Full {
		return
	}

	l.mu.Lock()
	threshold := l.level
	opts := formatOptions{showDate: l.showDate, showThread: l.showThread}
	traceOnFatal := l.traceOnFatal
	l.mu.Unlock()

	if level > threshold {
		return
	}

	// Rendering uses only call-local data and the flag snapshot above, so it
	// happens outside the lock. A flag change mid-call applies inconsistently
	// to that single call at worst.
	file, line, fn := callerInfo(calldepth)
	body := truncate(fmt.Sprintf(format, args...), maxBodySize)
	colored, raw := formatMessage(level, file, line, fn, body, opts)

	l.mu.Lock()
	if l.callback != nil {
		l.callback(level, colored, raw)
	}
	if l.file != nil {
		fmt.Fprintln(l.file, raw)
	}
	l.mu.Unlock()

	if level == FatalLevel {
		if traceOnFatal {
			l.logBacktrace("")
		}
		osExit(1)
	}
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, args ...any) {
	l.Output(DebugLevel, 3, format, args...)
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func (l *Logger) Tracef(format string, args ...any) {
	l.Output(TraceLevel, 3, format, args...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, args ...any) {
	l.Output(InfoLevel, 3, format, args...)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, args ...any) {
	l.Output(WarnLevel, 3, format, args...)
}

// Timeoutf logs a timeout message formatted with fmt.Sprintf.
func (l *Logger) Timeoutf(format string, args ...any) {
	l.Output(TimeoutLevel, 3, format, args...)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, args ...any) {
	l.Output(ErrorLevel, 3, format, args...)
}

// Fatalf logs a fatal message formatted with fmt.Sprintf and terminates the
// process with status 1. Termination happens even when the threshold filters
// the message out.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Output(FatalLevel, 3, format, args...)
	// Reached only when FATAL was filtered by the threshold; Output exits
	// otherwise.
	osExit(1)
}

// ---- Package-level functions operating on Default ----

// SetLevel replaces the threshold of the default logger.
func SetLevel(level Level) { Default.SetLevel(level) }

// GetLevel returns the threshold of the default logger.
func GetLevel() Level { return Default.GetLevel() }

// SetLevelFromString sets the default logger's threshold from a level name.
func SetLevelFromString(name string) bool { return Default.SetLevelFromString(name) }

// SetLevelFromEnv sets the default logger's threshold from LOG_LEVEL.
func SetLevelFromEnv() { Default.SetLevelFromEnv() }

// SetFormatOptions configures the default logger's rendering and fatal path.
func SetFormatOptions(showDate, showThread, traceOnFatal bool) {
	Default.SetFormatOptions(showDate, showThread, traceOnFatal)
}

// SetFile installs a file sink on the default logger.
func SetFile(path string) error { return Default.SetFile(path) }

// SetFileFromEnv installs the default logger's file sink from LOG_FILE.
func SetFileFromEnv(defaultPath string) error { return Default.SetFileFromEnv(defaultPath) }

// SetFileDescriptor installs an already-open file on the default logger.
func SetFileDescriptor(f *os.File) error { return Default.SetFileDescriptor(f) }

// CloseFile closes the default logger's file sink.
func CloseFile() error { return Default.CloseFile() }

// SetCallback installs or removes the default logger's callback sink.
func SetCallback(cb Callback) { Default.SetCallback(cb) }

// Output formats and dispatches one message through the default logger.
func Output(level Level, calldepth int, format string, args ...any) {
	Default.Output(level, calldepth, format, args...)
}

// Debugf logs a debug message through the default logger.
func Debugf(format string, args ...any) { Default.Output(DebugLevel, 3, format, args...) }

// Tracef logs a trace message through the default logger.
func Tracef(format string, args ...any) { Default.Output(TraceLevel, 3, format, args...) }

// Infof logs an informational message through the default logger.
func Infof(format string, args ...any) { Default.Output(InfoLevel, 3, format, args...) }

// Warnf logs a warning message through the default logger.
func Warnf(format string, args ...any) { Default.Output(WarnLevel, 3, format, args...) }

// Timeoutf logs a timeout message through the default logger.
func Timeoutf(format string, args ...any) { Default.Output(TimeoutLevel, 3, format, args...) }

// Errorf logs an error message through the default logger.
func Errorf(format string, args ...any) { Default.Output(ErrorLevel, 3, format, args...) }

// Fatalf logs a fatal message through the default logger and terminates the
// process with status 1, even when the message is filtered.
func Fatalf(format string, args ...any) {
	Default.Output(FatalLevel, 3, format, args...)
	osExit(1)
}

// LogOnStdout is a ready-made callback printing the colored rendering to
// standard output. Install it with SetCallback to restore console output
// when no other sink is wanted.
func LogOnStdout(_ Level, colored, _ string) {
	fmt.Fprintln(outStdout, colored)
}

// LogOnStderr is a ready-made callback printing the colored rendering to
// standard error.
func LogOnStderr(_ Level, colored, _ string) {
	fmt.Fprintln(outStderr, colored)
}
