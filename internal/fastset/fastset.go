// Package fastset provides a fast hash set for int64 keys.
// Uses a MurmurHash3 finalizer so structured keys spread across the table.
package fastset

import (
	"errors"
	"math"
	"math/bits"

	"github.com/priyakdey/countsquares/internal/bitmap"
	"github.com/priyakdey/countsquares/internal/mmap"
)

// DefaultLoadFactor is the load factor used by NewDefault.
const DefaultLoadFactor = 0.65

const (
	minCapacity = 2
	maxCapacity = 1 << (bits.UintSize - 2)
)

// ErrInvalidLoadFactor is returned when a load factor is outside (0, 1).
var ErrInvalidLoadFactor = errors.New("fastset: load factor must be in (0, 1)")

// Config controls table sizing and storage.
type Config struct {
	// LoadFactor is the occupancy fraction at which the table doubles.
	// Must be in the open interval (0, 1).
	LoadFactor float64

	// MmapThreshold is the capacity, in slots, at or above which the key
	// table is placed in an anonymous memory mapping instead of the Go heap.
	// Zero disables mapping. Sets using mapped storage must be Released.
	MmapThreshold int
}

// Int64Set is a set of int64 keys.
// Uses open addressing with linear probing and a one-bit-per-slot occupancy
// bitmap. Keys are never removed, so there are no tombstones.
//
// An Int64Set is not safe for concurrent use.
type Int64Set struct {
	keys   []int64
	full   *bitmap.Bitmap
	region *mmap.Map // backing mapping of keys, nil for heap storage
	count  int
	mask   int
	growAt int
	cfg    Config
}

// New creates a set sized for expectedSize keys with the given load factor.
func New(expectedSize int, loadFactor float64) (*Int64Set, error) {
	return NewWithConfig(expectedSize, Config{LoadFactor: loadFactor})
}

// NewDefault creates a set sized for expectedSize keys with DefaultLoadFactor.
func NewDefault(expectedSize int) *Int64Set {
	s, _ := New(expectedSize, DefaultLoadFactor)
	return s
}

// NewWithConfig creates a set sized for expectedSize keys.
// The initial capacity is the smallest power of two c, at least 2, with
// c*LoadFactor >= expectedSize.
func NewWithConfig(expectedSize int, cfg Config) (*Int64Set, error) {
	if !(cfg.LoadFactor > 0 && cfg.LoadFactor < 1) {
		return nil, ErrInvalidLoadFactor
	}
	s := &Int64Set{cfg: cfg}
	s.init(capacityFor(expectedSize, cfg.LoadFactor))
	return s, nil
}

// mix is the 64-bit finalizer of MurmurHash3.
func mix(key int64) uint64 {
	z := uint64(key)
	z ^= z >> 33
	z *= 0xff51afd7ed558ccd
	z ^= z >> 33
	z *= 0xc4ceb9fe1a85ec53
	z ^= z >> 33
	return z
}

// findSlot returns the slot holding key, or the empty slot where it belongs.
// An empty slot ends the probe because nothing is ever removed.
func (s *Int64Set) findSlot(key int64) int {
	idx := int(mix(key) & uint64(s.mask))
	for {
		if !s.full.IsSet(idx) || s.keys[idx] == key {
			return idx
		}
		idx = (idx + 1) & s.mask
	}
}

// Contains reports whether key is in the set.
func (s *Int64Set) Contains(key int64) bool {
	return s.full.IsSet(s.findSlot(key))
}

// Add inserts key. Returns false if it was already present.
func (s *Int64Set) Add(key int64) bool {
	if s.count >= s.growAt {
		s.grow()
	}

	idx := s.findSlot(key)
	if s.full.IsSet(idx) {
		return false
	}
	s.keys[idx] = key
	s.full.Set(idx)
	s.count++
	return true
}

// Len returns the number of keys.
func (s *Int64Set) Len() int {
	return s.count
}

// Cap returns the number of slots in the table.
func (s *Int64Set) Cap() int {
	return len(s.keys)
}

// LoadFactor returns the configured load factor.
func (s *Int64Set) LoadFactor() float64 {
	return s.cfg.LoadFactor
}

// Mapped reports whether the key table lives in a memory mapping.
func (s *Int64Set) Mapped() bool {
	return s.region != nil
}

// ForEach calls fn for every key, in table order.
func (s *Int64Set) ForEach(fn func(int64)) {
	for i := s.full.Next(0); i >= 0; i = s.full.Next(i + 1) {
		fn(s.keys[i])
	}
}

// Reset removes all keys and makes room for expectedSize keys.
// The current table is kept when it is already large enough.
func (s *Int64Set) Reset(expectedSize int) {
	capacity := capacityFor(expectedSize, s.cfg.LoadFactor)
	if capacity <= len(s.keys) {
		s.full.Clear()
		s.count = 0
		return
	}
	s.closeRegion()
	s.init(capacity)
}

// Release returns mapped storage to the operating system and shrinks the
// set to its minimum size. The set stays usable.
func (s *Int64Set) Release() {
	s.closeRegion()
	s.keys = make([]int64, minCapacity)
	s.full = bitmap.New(minCapacity)
	s.mask = minCapacity - 1
	s.count = 0
	s.growAt = growThreshold(minCapacity, s.cfg.LoadFactor)
}

// init allocates an empty table of the given power-of-two capacity.
func (s *Int64Set) init(capacity int) {
	s.keys, s.region = s.allocKeys(capacity)
	s.full = bitmap.New(capacity)
	s.mask = capacity - 1
	s.count = 0
	s.growAt = growThreshold(capacity, s.cfg.LoadFactor)
}

func (s *Int64Set) allocKeys(capacity int) ([]int64, *mmap.Map) {
	if s.cfg.MmapThreshold > 0 && capacity >= s.cfg.MmapThreshold {
		m, err := mmap.Int64s(capacity)
		if err == nil {
			_ = m.AdviseRandom()
			return m.Int64s(), m
		}
		// Out of address space or mappings; the heap may still have room.
	}
	return make([]int64, capacity), nil
}

func (s *Int64Set) closeRegion() {
	if s.region != nil {
		_ = s.region.Close()
		s.region = nil
	}
}

// grow doubles the table size and reinserts every key.
func (s *Int64Set) grow() {
	if len(s.keys) >= maxCapacity {
		panic("fastset: table capacity overflow")
	}
	oldKeys, oldFull, oldRegion := s.keys, s.full, s.region
	s.init(len(oldKeys) << 1)

	for i := oldFull.Next(0); i >= 0; i = oldFull.Next(i + 1) {
		k := oldKeys[i]
		idx := s.findSlot(k)
		s.keys[idx] = k
		s.full.Set(idx)
		s.count++
	}

	if oldRegion != nil {
		_ = oldRegion.Close()
	}
}

// growThreshold returns floor(capacity*loadFactor), at least 1.
func growThreshold(capacity int, loadFactor float64) int {
	t := int(float64(capacity) * loadFactor)
	if t == 0 {
		t = 1
	}
	return t
}

// capacityFor returns the power-of-two capacity for expectedSize keys.
func capacityFor(expectedSize int, loadFactor float64) int {
	if expectedSize < 0 {
		expectedSize = 0
	}
	need := math.Ceil(float64(expectedSize) / loadFactor)
	if need >= maxCapacity {
		return maxCapacity
	}
	return tableSizeFor(int(need))
}

// tableSizeFor returns the next power of two >= n, minimum 2.
func tableSizeFor(n int) int {
	if n <= minCapacity {
		return minCapacity
	}
	return 1 << bits.Len(uint(n-1))
}
