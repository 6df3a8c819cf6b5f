package stream

import "sync"

// maxPooled caps the buffer size kept by Release.
const maxPooled = 64 << 10

var pool = sync.Pool{
	New: func() any {
		return New()
	},
}

// Acquire returns an empty Stream with the default configuration from a
// shared pool.
func Acquire() *Stream {
	return pool.Get().(*Stream)
}

// Release returns s to the pool. s must not be used afterwards.
func Release(s *Stream) {
	if cap(s.buf) > maxPooled {
		return
	}

	s.Reset()
	s.Configure(DefaultConfig())
	pool.Put(s)
}
