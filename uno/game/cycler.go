package game

// cycler tracks whose turn it is over a fixed ring of player seats.
type cycler struct {
	size      int
	current   int
	direction int
}

func newCycler(size int) *cycler {
	return &cycler{size: size, current: 0, direction: 1}
}

func (c *cycler) Current() int {
	return c.current
}

// Next moves one seat in the current direction and returns the new seat.
// The extra size term keeps the modulus positive when moving left.
func (c *cycler) Next() int {
	c.current = (c.current + c.direction + c.size) % c.size
	return c.current
}

func (c *cycler) Reverse() {
	c.direction = -c.direction
}

func (c *cycler) Direction() int {
	return c.direction
}
