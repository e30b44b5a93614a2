//go:build linux

package logger

import "golang.org/x/sys/unix"

// currentThread reports the kernel thread id of the calling thread. The
// primordial thread is the one whose tid equals the pid. Goroutines migrate
// between threads, so the tag describes the thread executing the call right
// now, which is why it is computed per call and never cached.
func currentThread() (tid int, main bool, ok bool) {
	tid = unix.Gettid()
	return tid, tid == unix.Getpid(), true
}
