package game

type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "Counter-clockwise"
	}
	return "Clockwise"
}

// Cycler walks player seats 0..size-1 in the current direction.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) Size() int {
	return c.size
}

// Peek returns the seat steps away from the current one without moving.
func (c *Cycler) Peek(steps int) int {
	if c.size <= 0 {
		return 0
	}
	next := (c.current + int(c.direction)*steps) % c.size
	if next < 0 {
		next += c.size
	}
	return next
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.Peek(steps)
	return c.current
}

func (c *Cycler) Next() int {
	return c.Advance(1)
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Clockwise:
		c.direction = CounterClockwise
	case CounterClockwise:
		c.direction = Clockwise
	}
}

func (c *Cycler) Reset() {
	c.current = 0
	c.direction = Clockwise
}
