// Package pools provides object pools shared by connection handling.
package pools

import "sync"

// BufferPool hands out read buffers of one fixed capacity. Buffers of a
// different capacity are dropped on Put and left to the GC.
type BufferPool struct {
	size int
	pool sync.Pool
}

// NewBufferPool creates a pool of size-byte buffers.
func NewBufferPool(size int) *BufferPool {
	bp := &BufferPool{size: size}
	bp.pool.New = func() any {
		buf := make([]byte, size)
		return &buf
	}
	return bp
}

// Get returns a buffer of the pool's fixed size.
func (bp *BufferPool) Get() []byte {
	bufPtr := bp.pool.Get().(*[]byte)
	return (*bufPtr)[:bp.size]
}

// Put returns a buffer to the pool.
func (bp *BufferPool) Put(buf []byte) {
	if cap(buf) != bp.size {
		// Not from this pool, let GC handle it
		return
	}
	buf = buf[:bp.size]
	bp.pool.Put(&buf)
}

// Size returns the fixed buffer capacity.
func (bp *BufferPool) Size() int {
	return bp.size
}
