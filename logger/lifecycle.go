package logger

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	initMu  sync.Mutex
	faultCh chan os.Signal
)

// init wires the fault handlers at load time, the Go analogue of the
// constructor hook the library relies on elsewhere. Init stays callable by
// hand and is idempotent.
func init() {
	Init()
}

// Init installs the fault-signal handlers (segmentation violation, illegal
// instruction, abort, floating-point exception, bus error) so that an
// uncaught fault logs a FATAL backtrace to the active sinks before the
// process dies with the signal's conventional semantics. Idempotent; safe to
// call again after Shutdown.
func Init() {
	initMu.Lock()
	defer initMu.Unlock()
	if faultCh != nil || len(faultSignals) == 0 {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, faultSignals...)
	faultCh = ch
	go watchFaultSignals(ch)
}

// Shutdown detaches the fault handlers and closes the default logger's file
// sink. Go has no unload hook, so the host program calls this at exit; it is
// idempotent.
func Shutdown() error {
	initMu.Lock()
	if faultCh != nil {
		signal.Stop(faultCh)
		close(faultCh)
		faultCh = nil
	}
	initMu.Unlock()
	return Default.CloseFile()
}

// watchFaultSignals handles fault signals delivered by the runtime. Unlike a
// C signal handler, this runs on an ordinary goroutine, so taking the
// dispatch lock cannot deadlock against an interrupted lock holder.
func watchFaultSignals(ch chan os.Signal) {
	for sig := range ch {
		Default.logFaultSignal(sig)
		// Restore default handling and re-deliver so the exit status and
		// core-dump behavior are those of the signal itself.
		signal.Reset(sig)
		reraise(sig)
	}
}

// logFaultSignal emits the synthetic FATAL message identifying sig and the
// captured backtrace, honoring the backtrace-on-fatal flag.
func (l *Logger) logFaultSignal(sig os.Signal) {
	l.mu.Lock()
	trace := l.traceOnFatal
	l.mu.Unlock()
	if !trace {
		return
	}
	msg := fmt.Sprintf("Caught signal %d (%s). Backtrace:", signalNumber(sig), sig)
	l.logBacktrace(msg)
}

func signalNumber(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return int(s)
	}
	return -1
}
