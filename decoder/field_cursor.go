package decoder

// fieldCursor tracks the position of a record traversal within the schema's field
// list. The index only moves forward and never reaches limit.
type fieldCursor struct {
	index   int
	started bool
	limit   int
}

func (c *fieldCursor) reset(limit int) {
	c.index = 0
	c.started = false
	c.limit = limit
}

// advance moves to the next field: unset becomes 0, anything else is incremented.
// It reports false, leaving the cursor unchanged, when no field is left.
func (c *fieldCursor) advance() (int, bool) {
	next := 0
	if c.started {
		next = c.index + 1
	}
	if next >= c.limit {
		return c.index, false
	}

	c.index = next
	c.started = true

	return next, true
}

// current returns the index of the field being decoded.
func (c *fieldCursor) current() (int, bool) {
	return c.index, c.started
}

// visited returns how many fields have been entered.
func (c *fieldCursor) visited() int {
	if !c.started {
		return 0
	}

	return c.index + 1
}
