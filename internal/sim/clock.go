// Package sim holds the two small mutable state records of the
// simulation: the day counter driving the clock displays and the
// viewport zoom level. Each is owned by a single caller; the methods
// assume strictly sequential use.
package sim

// Clock counts elapsed outside days. Inside time is always derived from
// the counter and the dilation factor in effect at that tick; it is
// never stored.
type Clock struct {
	outsideDays int
}

// Tick reports the current (outside, inside) time pair and then advances
// the counter by one day. The dilation factor is read fresh from the
// latest physics output by the caller; Clock does not cache it.
func (c *Clock) Tick(dilation float64) (outside int, inside float64) {
	outside = c.outsideDays
	inside = float64(c.outsideDays) * dilation
	c.outsideDays++
	return outside, inside
}

// Reset zeroes the counter and reports the zeroed pair.
func (c *Clock) Reset() (outside int, inside float64) {
	c.outsideDays = 0
	return 0, 0
}

// OutsideDays returns the counter without advancing it.
func (c *Clock) OutsideDays() int { return c.outsideDays }
