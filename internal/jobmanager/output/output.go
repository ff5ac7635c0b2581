// Package output provides concurrent streaming of process output. A single
// producer appends to a Buffer; multiple clients can subscribe and each
// receive the complete output from the beginning.
package output

import (
	"io"
	"sync"
)

// initialBufferCapacity is the starting size for the output buffer.
// 4KB seems like a reasonable default.
const initialBufferCapacity = 4096

// Buffer accumulates output appended by one producer and makes it available
// to any number of subscribed readers. Appended bytes are never mutated,
// reordered, or discarded for the lifetime of the Buffer.
type Buffer struct {
	// NOTE: the buffer grows indefinitely with no upper bound. The working
	// assumption is 'everything will fit in memory'. In a production system
	// handling huge outputs, we'd need to look at alternative strategies,
	// such as flushing to disk and reconstructing the segments for new
	// subscribers.
	buf []byte

	done bool
	err  error

	mu   sync.Mutex
	cond sync.Cond
}

// NewBuffer creates an empty Buffer ready to accept appends and subscribers.
func NewBuffer() *Buffer {
	b := &Buffer{
		buf: make([]byte, 0, initialBufferCapacity),
	}

	b.cond.L = &b.mu

	return b
}

// Append adds p to the end of the buffer and wakes any waiting readers. The
// append is atomic: a reader observes either none or all of p. Append must
// not be called after Close.
func (b *Buffer) Append(p []byte) {
	if len(p) == 0 {
		return
	}

	b.mu.Lock()

	b.buf = append(b.buf, p...)

	b.cond.Broadcast()

	b.mu.Unlock()
}

// Close marks the buffer complete. Readers drain whatever remains and then
// see io.EOF. Closing an already-closed buffer is a no-op.
func (b *Buffer) Close() {
	b.close(nil)
}

// CloseWithError marks the buffer complete with a failure. Readers drain
// whatever remains and then receive err instead of io.EOF, so stream
// consumers aren't left unaware that the underlying run failed.
func (b *Buffer) CloseWithError(err error) {
	b.close(err)
}

func (b *Buffer) close(err error) {
	b.mu.Lock()

	if !b.done {
		b.done = true
		b.err = err

		b.cond.Broadcast()
	}

	b.mu.Unlock()
}

// Len returns the number of bytes appended so far.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.buf)
}

// Subscribe returns an io.ReadCloser over the buffer, starting from the
// beginning. Close cancels the subscription.
func (b *Buffer) Subscribe() io.ReadCloser {
	return &reader{b: b}
}
