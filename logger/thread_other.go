//go:build !linux

package logger

// currentThread reports no thread identity on platforms without a cheap
// thread id; the thread tag is omitted from rendered messages there.
func currentThread() (tid int, main bool, ok bool) {
	return 0, false, false
}
