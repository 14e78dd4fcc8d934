//go:build !unix && !windows

package mmap

import "unsafe"

// Anon allocates a zeroed region on the Go heap; this platform has no
// anonymous mapping support.
func Anon(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}
	return heapMap(length), nil
}

// Close drops the reference to the region.
func (m *Map) Close() error {
	m.data = nil
	m.size = 0
	return nil
}

// AdviseRandom is a no-op for heap-backed regions.
func (m *Map) AdviseRandom() error {
	if m.data == nil {
		return ErrNotMapped
	}
	return nil
}

// heapMap backs a region with a Go allocation. The slice is allocated as
// []int64 so the Int64s view is always aligned.
func heapMap(length int) *Map {
	words := make([]int64, (length+7)/8)
	data := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)[:length]
	return &Map{data: data, size: int64(length), heap: true}
}
