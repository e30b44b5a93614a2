//go:build unix

package logger

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// faultSignals are the faults that trigger backtrace capture before the
// process terminates.
var faultSignals = []os.Signal{
	syscall.SIGSEGV,
	syscall.SIGILL,
	syscall.SIGABRT,
	syscall.SIGFPE,
	syscall.SIGBUS,
}

// reraise re-delivers sig to the whole process after its handler was reset.
func reraise(sig os.Signal) {
	if s, ok := sig.(syscall.Signal); ok {
		_ = unix.Kill(unix.Getpid(), s)
	}
}
