// Package reader implements the two-buffer streaming character source used
// by the lexer, supporting bounded retraction across a single buffer
// boundary.
package reader

import "io"

// Sentinel is a reserved byte value guaranteed absent from the source
// alphabet (ASCII letters, digits, and the language's fixed punctuation
// set), used to mark the end of valid data in a buffer.
const Sentinel = 0

// DefaultBufferSize matches the reference lexer's BUFFER_SIZE.
const DefaultBufferSize = 512

// EOF is returned by Next when the source is exhausted.
const EOF = -1

// TwinBuffer is a pair of equal-sized buffers read alternately from src,
// with a forward read pointer that can retract across one buffer boundary.
// Buffer 0 is pre-loaded at construction; buffer 1 is loaded lazily on the
// first switch.
type TwinBuffer struct {
	src     io.Reader
	bufSize int

	buffers [2][]byte
	filled  [2]int // valid (non-sentinel) bytes read into each buffer
	current int     // 0 or 1
	forward int     // read index within buffers[current]
}

// New creates a TwinBuffer of bufSize bytes per side, reading from src.
// Buffer 0 is filled immediately.
func New(src io.Reader, bufSize int) *TwinBuffer {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	b := &TwinBuffer{
		src:     src,
		bufSize: bufSize,
	}
	b.buffers[0] = make([]byte, bufSize+1)
	b.buffers[1] = make([]byte, bufSize+1)
	b.load(0)
	b.buffers[1][0] = Sentinel
	return b
}

func (b *TwinBuffer) load(which int) int {
	n, _ := io.ReadFull(b.src, b.buffers[which][:b.bufSize])
	if n < b.bufSize {
		// io.ReadFull returns a short read (and ErrUnexpectedEOF/EOF) at
		// end of stream; the bytes actually read are still valid.
	}
	b.buffers[which][n] = Sentinel
	b.filled[which] = n
	return n
}

func (b *TwinBuffer) switchBuffer() {
	b.current = 1 - b.current
	b.forward = 0
	b.load(b.current)
}

// Next returns the next source character, or EOF once the input is
// exhausted. Crossing a buffer boundary transparently loads the inactive
// buffer and flips the active index.
func (b *TwinBuffer) Next() int {
	if b.forward > b.filled[b.current] {
		return EOF
	}
	ch := b.buffers[b.current][b.forward]
	if ch == Sentinel {
		if b.filled[b.current] < b.bufSize {
			// the end-of-input read counts as one character, so a following
			// Retract(1) lands back on the sentinel
			b.forward++
			return EOF
		}
		b.switchBuffer()
		ch = b.buffers[b.current][b.forward]
		if ch == Sentinel {
			b.forward++
			return EOF
		}
	}
	b.forward++
	return int(ch)
}

// Retract rewinds the forward pointer by n characters. Retraction may cross
// one buffer boundary by moving the forward index into the other buffer's
// valid region; n is only ever 1 or 2 in the lexer that drives this type.
func (b *TwinBuffer) Retract(n int) {
	b.forward -= n
	if b.forward < 0 {
		b.current = 1 - b.current
		b.forward = b.filled[b.current] + b.forward
		if b.forward < 0 {
			// Programming error: retraction beyond two buffer-widths.
			b.forward = 0
		}
	}
}
