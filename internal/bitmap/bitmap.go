// Package bitmap provides a fixed-length bitset used as a slot occupancy map.
package bitmap

import "math/bits"

// Bitmap tracks slot occupancy using a bitset.
// Uses uint64 words for efficient 64-bit operations.
type Bitmap struct {
	words []uint64
	n     int
}

// New creates a bitmap capable of tracking n slots, all initially clear.
func New(n int) *Bitmap {
	if n < 0 {
		n = 0
	}
	return &Bitmap{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Set marks slot i as occupied. Out-of-range slots are ignored.
func (b *Bitmap) Set(i int) {
	if uint(i) >= uint(b.n) {
		return
	}
	b.words[i>>6] |= 1 << (uint(i) & 63)
}

// IsSet returns true if slot i is marked as occupied.
func (b *Bitmap) IsSet(i int) bool {
	if uint(i) >= uint(b.n) {
		return false
	}
	return b.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Clear resets all slots to unoccupied.
func (b *Bitmap) Clear() {
	clear(b.words)
}

// Count returns the number of occupied slots.
func (b *Bitmap) Count() int {
	var count int
	for _, word := range b.words {
		count += bits.OnesCount64(word)
	}
	return count
}

// Len returns the total number of slots.
func (b *Bitmap) Len() int {
	return b.n
}

// Next returns the first occupied slot at or after i, or -1 if there is none.
func (b *Bitmap) Next(i int) int {
	if i < 0 {
		i = 0
	}
	if i >= b.n {
		return -1
	}
	w := i >> 6
	word := b.words[w] >> (uint(i) & 63)
	if word != 0 {
		return i + bits.TrailingZeros64(word)
	}
	for w++; w < len(b.words); w++ {
		if b.words[w] != 0 {
			return w*64 + bits.TrailingZeros64(b.words[w])
		}
	}
	return -1
}
