// Package mmap provides anonymous memory mappings for large fixed-size tables
// that should live outside the Go heap.
package mmap

import "unsafe"

// Map represents an anonymous, private, read-write memory region.
// This type wraps platform-specific mmap implementations.
type Map struct {
	data []byte // Mapped memory region
	size int64  // Mapped size in bytes
	heap bool   // True if the region is a plain Go allocation (no OS mapping)
}

// Data returns the mapped byte slice.
func (m *Map) Data() []byte {
	return m.data
}

// Size returns the mapped size in bytes.
func (m *Map) Size() int64 {
	return m.size
}

// Heap returns true if the region was allocated on the Go heap instead of
// being mapped by the operating system.
func (m *Map) Heap() bool {
	return m.heap
}

// Int64s returns the region viewed as a slice of int64. Trailing bytes that
// do not fill a whole element are not part of the view.
func (m *Map) Int64s() []int64 {
	if len(m.data) < 8 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&m.data[0])), len(m.data)/8)
}

// Int64s maps a zeroed region large enough for n int64 values.
func Int64s(n int) (*Map, error) {
	if n <= 0 || n > maxInt64s {
		return nil, ErrInvalidSize
	}
	return Anon(n * 8)
}

const maxInt64s = int(^uint(0)>>1) / 8

// Error represents an mmap error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "mmap: " + e.Op + ": " + e.Err.Error()
	}
	return "mmap: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSize = &Error{Op: "invalid size"}
	ErrNotMapped   = &Error{Op: "not mapped"}
)
