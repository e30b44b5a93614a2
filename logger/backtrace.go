package logger

import (
	"fmt"
	"runtime"
	"time"
)

// maxBacktraceFrames bounds the captured call stack.
const maxBacktraceFrames = 64

// logBacktrace captures the current call stack and writes each frame as a
// FATAL line to the active sinks. initMsg, when non-empty, is written first
// as its own FATAL message (the fault-signal path uses it to identify the
// signal).
//
// The program counters land in a stack-allocated array. Frame symbolization
// through runtime.CallersFrames does allocate; that is acceptable here
// because this path runs on an ordinary goroutine with an intact runtime,
// never inside an interrupted signal context.
func (l *Logger) logBacktrace(initMsg string) {
	var pcs [maxBacktraceFrames]uintptr
	// 2 skips runtime.Callers and logBacktrace itself.
	n := runtime.Callers(2, pcs[:])

	l.mu.Lock()
	defer l.mu.Unlock()

	if initMsg != "" {
		var date string
		if l.showDate {
			date = time.Now().Format(timeLayout) + " "
		}
		raw := fmt.Sprintf("%s[FATAL] %s", date, initMsg)
		colored := fmt.Sprintf("%s%s %s", date, levelColor(FatalLevel).Sprint("[FATAL]"), initMsg)
		if l.file != nil {
			fmt.Fprintln(l.file, raw)
		}
		if l.callback != nil {
			l.callback(FatalLevel, colored, raw)
		}
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		line := fmt.Sprintf("  %s (%s:%d)", frame.Function, frame.File, frame.Line)
		if l.file != nil {
			fmt.Fprintln(l.file, line)
		}
		if l.callback != nil {
			l.callback(FatalLevel, line, line)
		}
		if !more {
			break
		}
	}
}
