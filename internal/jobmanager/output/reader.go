package output

import "io"

// reader streams data from a Buffer, internally tracking its position and
// picking up new data as it arrives. It implements io.ReadCloser.
type reader struct {
	b        *Buffer
	position int
	closed   bool // guarded by b.mu
}

// Read performs a blocking read of data from the buffer. It waits while no
// unread bytes exist and the buffer is still open; the Buffer broadcasts on
// append and on close. Once the buffer is complete and fully drained, Read
// returns io.EOF, or the error the buffer was closed with.
func (r *reader) Read(p []byte) (int, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()

	for r.position >= len(r.b.buf) && !r.b.done && !r.closed {
		r.b.cond.Wait()
	}

	if r.closed {
		return 0, io.EOF
	}

	if r.position < len(r.b.buf) {
		n := copy(p, r.b.buf[r.position:])
		r.position += n

		return n, nil
	}

	// Complete and drained. The final check above ran after the buffer was
	// closed, so any bytes appended just before closing have been delivered.
	if r.b.err != nil {
		return 0, r.b.err
	}

	return 0, io.EOF
}

// Close cancels the subscription. It marks the reader as closed and wakes
// any blocked Read so it can return.
func (r *reader) Close() error {
	r.b.mu.Lock()

	r.closed = true

	r.b.cond.Broadcast()

	r.b.mu.Unlock()

	return nil
}
