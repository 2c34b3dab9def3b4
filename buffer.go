package canonjson

import "sync"

// Buffer is a byte accumulator used by the encoder and the error
// snippet builder. Buffers are pooled in size classes so repeated
// serializations of small manifests do not allocate.
type Buffer struct {
	buf []byte
	off int
}

var (
	tinyBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 64)}
		},
	}
	smallBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 256)}
		},
	}
	mediumBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 1024)}
		},
	}
	largeBuffers = sync.Pool{
		New: func() interface{} {
			return &Buffer{buf: make([]byte, 0, 4096)}
		},
	}
)

func getBuffer() *Buffer {
	return getBufferSize(256)
}

// getBufferSize returns a pooled buffer with at least the requested
// capacity, reset and ready for writing.
func getBufferSize(sizeHint int) *Buffer {
	var buf *Buffer
	switch {
	case sizeHint <= 64:
		buf = tinyBuffers.Get().(*Buffer)
	case sizeHint <= 256:
		buf = smallBuffers.Get().(*Buffer)
	case sizeHint <= 4096:
		buf = mediumBuffers.Get().(*Buffer)
	default:
		buf = largeBuffers.Get().(*Buffer)
		if cap(buf.buf) < sizeHint {
			buf.buf = make([]byte, 0, sizeHint)
		}
	}
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to its size-class pool. Oversize buffers
// are dropped so the pools don't pin large allocations.
func putBuffer(buf *Buffer) {
	if buf == nil || cap(buf.buf) > 65536 {
		return
	}
	buf.Reset()
	switch {
	case cap(buf.buf) <= 64:
		tinyBuffers.Put(buf)
	case cap(buf.buf) <= 256:
		smallBuffers.Put(buf)
	case cap(buf.buf) <= 4096:
		mediumBuffers.Put(buf)
	default:
		largeBuffers.Put(buf)
	}
}

func (b *Buffer) grow(n int) {
	needed := b.off + n
	if needed <= cap(b.buf) {
		b.buf = b.buf[:needed]
		return
	}

	newCap := cap(b.buf)
	switch {
	case newCap == 0:
		newCap = 64
	case newCap < 8192:
		newCap *= 2
	default:
		newCap += newCap / 2
	}
	if newCap < needed {
		newCap = needed
	}

	newBuf := make([]byte, needed, newCap)
	copy(newBuf, b.buf[:b.off])
	b.buf = newBuf
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	n := copy(b.buf[b.off:], p)
	b.off += n
	return n, nil
}

func (b *Buffer) WriteByte(c byte) error {
	b.grow(1)
	b.buf[b.off] = c
	b.off++
	return nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	n := copy(b.buf[b.off:], s)
	b.off += n
	return n, nil
}

// Bytes returns the written contents. The slice aliases the buffer and
// is invalidated by putBuffer.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.off]
}

func (b *Buffer) Len() int { return b.off }

func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.off = 0
}
