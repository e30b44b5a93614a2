//go:build !unix

package logger

import "os"

// Fault-signal trapping needs unix signal semantics; elsewhere the handlers
// are simply not installed and Init is a no-op.
var faultSignals []os.Signal

func reraise(sig os.Signal) {
	osExit(1)
}
