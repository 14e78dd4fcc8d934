//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Anon creates a zeroed private region of length bytes with VirtualAlloc.
func Anon(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	addr, err := windows.VirtualAlloc(0, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, &Error{Op: "VirtualAlloc", Err: err}
	}

	return &Map{
		data: unsafe.Slice((*byte)(unsafe.Pointer(addr)), length),
		size: int64(length),
	}, nil
}

// Close releases the memory region.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&m.data[0]))
	m.data = nil
	m.size = 0
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return &Error{Op: "VirtualFree", Err: err}
	}
	return nil
}

// AdviseRandom is a no-op on Windows.
func (m *Map) AdviseRandom() error {
	if m.data == nil {
		return ErrNotMapped
	}
	return nil
}

