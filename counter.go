package countsquares

import "github.com/priyakdey/countsquares/internal/fastset"

// Counter counts squares while reusing one lookup table across calls.
// The table grows to fit the largest input seen and is cleared between
// calls, so repeated counting does not reallocate.
//
// A Counter must not be used by more than one goroutine at a time. The
// package-level Count allocates a fresh table per call and is safe for
// concurrent use.
type Counter struct {
	set *fastset.Int64Set
	cfg fastset.Config
}

// NewCounter creates a Counter with DefaultLoadFactor and heap storage.
func NewCounter() *Counter {
	return &Counter{cfg: fastset.Config{LoadFactor: DefaultLoadFactor}}
}

// SetLoadFactor sets the table load factor. Must be in (0, 1).
// Takes effect on the next call to Count.
func (c *Counter) SetLoadFactor(loadFactor float64) error {
	if !(loadFactor > 0 && loadFactor < 1) {
		return WrapError(ErrInvalidArgument, fastset.ErrInvalidLoadFactor)
	}
	c.cfg.LoadFactor = loadFactor
	c.dropTable()
	return nil
}

// SetMmapThreshold sets the table capacity, in slots, at or above which
// the table is kept in an anonymous memory mapping. Zero disables mapping.
// Close releases mapped tables.
func (c *Counter) SetMmapThreshold(slots int) error {
	if slots < 0 {
		return NewError(ErrInvalidArgument)
	}
	c.cfg.MmapThreshold = slots
	c.dropTable()
	return nil
}

// LoadFactor returns the configured load factor.
func (c *Counter) LoadFactor() float64 {
	return c.cfg.LoadFactor
}

// MmapThreshold returns the configured mapping threshold.
func (c *Counter) MmapThreshold() int {
	return c.cfg.MmapThreshold
}

// Count is like the package-level Count.
func (c *Counter) Count(points []Point) int32 {
	set := c.table(len(points))
	for _, p := range points {
		set.Add(scaledKey(p))
	}
	return countDiagonals(set, points)
}

// CountChecked is like the package-level CountChecked.
func (c *Counter) CountChecked(points []Point) (int32, error) {
	if err := checkRange(points); err != nil {
		return 0, err
	}
	set := c.table(len(points))
	if err := populate(set, points); err != nil {
		return 0, err
	}
	return countDiagonals(set, points), nil
}

// Close releases the lookup table. The Counter may be used again.
func (c *Counter) Close() {
	c.dropTable()
}

// table returns an empty lookup table sized for n points.
func (c *Counter) table(n int) *fastset.Int64Set {
	if c.set == nil {
		set, err := fastset.NewWithConfig(tableSizeMultiplier*n, c.cfg)
		if err != nil {
			// The load factor is validated by SetLoadFactor.
			panic(err)
		}
		c.set = set
		return set
	}
	c.set.Reset(tableSizeMultiplier * n)
	return c.set
}

func (c *Counter) dropTable() {
	if c.set != nil {
		c.set.Release()
		c.set = nil
	}
}
