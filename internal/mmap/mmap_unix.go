//go:build unix

package mmap

import "golang.org/x/sys/unix"

// Anon creates a zeroed anonymous private mapping of length bytes.
func Anon(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &Error{Op: "mmap", Err: err}
	}

	return &Map{
		data: data,
		size: int64(length),
	}, nil
}

// Close releases the memory mapping.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	err := unix.Munmap(m.data)
	m.data = nil
	m.size = 0
	if err != nil {
		return &Error{Op: "munmap", Err: err}
	}
	return nil
}

// Advise provides hints to the kernel about memory usage patterns.
func (m *Map) Advise(advice int) error {
	if m.data == nil {
		return ErrNotMapped
	}
	return unix.Madvise(m.data, advice)
}

// AdviseRandom hints that pages will be accessed randomly.
// Hash table probes have no locality, so readahead is wasted work.
func (m *Map) AdviseRandom() error {
	return m.Advise(unix.MADV_RANDOM)
}

