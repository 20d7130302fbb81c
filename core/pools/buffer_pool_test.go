package pools

import (
	"testing"
)

// TestBufferPoolGet tests that buffers come back at the fixed size
func TestBufferPoolGet(t *testing.T) {
	bp := NewBufferPool(1024)

	buf := bp.Get()
	if len(buf) != 1024 || cap(buf) != 1024 {
		t.Errorf("Expected len=cap=1024, got len=%d cap=%d", len(buf), cap(buf))
	}
	bp.Put(buf)
}

// TestBufferPoolForeignBuffer tests that wrong-capacity buffers do not
// poison the pool
func TestBufferPoolForeignBuffer(t *testing.T) {
	bp := NewBufferPool(1024)

	bp.Put(make([]byte, 10))

	buf := bp.Get()
	if len(buf) != 1024 {
		t.Errorf("Expected len=1024 after foreign Put, got %d", len(buf))
	}
}

// TestBufferPoolReuseAfterShrink tests that a resliced buffer is restored
// to full length on the next Get
func TestBufferPoolReuseAfterShrink(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	bp.Put(buf[:3])

	got := bp.Get()
	if len(got) != 64 {
		t.Errorf("Expected len=64 after reuse, got %d", len(got))
	}
}

// Benchmarks
func BenchmarkBufferPool(b *testing.B) {
	bp := NewBufferPool(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := bp.Get()
		bp.Put(buf)
	}
}
