package exec

import (
	"bytes"
	"sync"
)

// captureBuffer collects output written by a child process.
//
// Assigning the same *captureBuffer to both Stdout and Stderr of an
// os/exec.Cmd makes os/exec hand the child a single pipe for both
// descriptors, which keeps the child's write order intact. Separate buffers
// get separate pipes, each drained by its own goroutine while the runner
// waits, so a child filling one pipe never blocks on the other.
type captureBuffer struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

func newCaptureBuffer() *captureBuffer {
	return &captureBuffer{}
}

// Write appends p to the buffer.
func (cb *captureBuffer) Write(p []byte) (n int, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.buffer.Write(p)
}

// Bytes returns a copy of the captured output. A nil buffer yields nil.
func (cb *captureBuffer) Bytes() []byte {
	if cb == nil {
		return nil
	}
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return bytes.Clone(cb.buffer.Bytes())
}
