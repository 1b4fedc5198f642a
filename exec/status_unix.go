//go:build unix

package exec

import (
	"os"
	"syscall"
)

// exitSignal returns the signal that terminated the process, or nil.
func exitSignal(ps *os.ProcessState) os.Signal {
	ws, ok := ps.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return nil
	}
	return ws.Signal()
}
