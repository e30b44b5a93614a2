package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	// maxBodySize caps the rendered message body; a body reaching the cap is
	// truncated to maxBodySize-1 bytes with a visible marker.
	maxBodySize = 1024
	// maxLineSize caps the fully composed line, decorations included.
	maxLineSize = 2048

	timeLayout       = "2006-01-02 15:04:05"
	truncationMarker = "..."
)

// formatOptions is the per-call snapshot of the rendering flags.
type formatOptions struct {
	showDate   bool
	showThread bool
}

// truncate limits s to max-1 bytes. When the limit applies, the last three
// kept bytes are overwritten with the truncation marker so the cut is
// visible. Truncation is byte-addressed and stable across calls.
func truncate(s string, max int) string {
	if len(s) < max {
		return s
	}
	return s[:max-1-len(truncationMarker)] + truncationMarker
}

// formatMessage renders the two forms of one logical message. Both carry the
// same fields in the same order; only the colored form carries escape codes,
// wrapping the level tag and the body.
func formatMessage(level Level, file string, line int, fn, body string, opts formatOptions) (colored, raw string) {
	var date string
	if opts.showDate {
		date = time.Now().Format(timeLayout) + " "
	}
	var thread string
	if opts.showThread {
		thread = threadTag()
	}
	tag := level.String()
	loc := fmt.Sprintf("[%s:%d:%s()]", file, line, fn)
	c := levelColor(level)

	var b strings.Builder
	b.Grow(len(date) + len(tag) + len(loc) + len(thread) + len(body) + 32)
	b.WriteString(date)
	b.WriteString(c.Sprintf("[%s]", tag))
	b.WriteByte(' ')
	b.WriteString(loc)
	b.WriteByte(' ')
	b.WriteString(thread)
	b.WriteString(c.Sprint(body))
	colored = truncate(b.String(), maxLineSize)

	b.Reset()
	b.WriteString(date)
	b.WriteByte('[')
	b.WriteString(tag)
	b.WriteString("] ")
	b.WriteString(loc)
	b.WriteByte(' ')
	b.WriteString(thread)
	b.WriteString(body)
	raw = truncate(b.String(), maxLineSize)

	return colored, raw
}

// threadTag renders the thread identifier of the calling thread, computed
// per call. The primordial thread is tagged distinctly. Empty on platforms
// without a thread identifier.
func threadTag() string {
	tid, main, ok := currentThread()
	if !ok {
		return ""
	}
	if main {
		return "[main thread] "
	}
	return fmt.Sprintf("[thread: %d] ", tid)
}

// callerInfo resolves the call site skip frames up the stack. The file is
// reduced to its base name and the function to its bare name.
func callerInfo(skip int) (file string, line int, fn string) {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		return "???", 0, "???"
	}
	file = filepath.Base(path)
	f := runtime.FuncForPC(pc)
	if f == nil {
		return file, line, "???"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return file, line, name
}
