package domain

// NamedTagCount is the number of named categories (X excluded)
const NamedTagCount = int(TagPrt-TagNoun) + 1

// Counts tallies qualifying records per tag
type Counts struct {
	named [NamedTagCount]int
	X     int
}

// Add increments the bucket for t. TagUnknown is ignored.
func (c *Counts) Add(t Tag) {
	switch {
	case t == TagX:
		c.X++
	case t.IsNamed():
		c.named[t-TagNoun]++
	}
}

// Get returns the count for t
func (c *Counts) Get(t Tag) int {
	switch {
	case t == TagX:
		return c.X
	case t.IsNamed():
		return c.named[t-TagNoun]
	default:
		return 0
	}
}

// Set overwrites the count for t. Used when loading saved runs.
func (c *Counts) Set(t Tag, n int) {
	switch {
	case t == TagX:
		c.X = n
	case t.IsNamed():
		c.named[t-TagNoun] = n
	}
}

// Merge adds every bucket of other into c
func (c *Counts) Merge(other Counts) {
	for i := range c.named {
		c.named[i] += other.named[i]
	}
	c.X += other.X
}

// Sum is the total of the ten named categories
func (c *Counts) Sum() int {
	total := 0
	for _, n := range c.named {
		total += n
	}
	return total
}

// SumWithX is Sum plus the X category
func (c *Counts) SumWithX() int {
	total := c.X
	for _, n := range c.named {
		total += n
	}
	return total
}

// Tally classifies a qualifying record and adds it to the counts.
// Returns false when the record's tag matched no bucket.
func (c *Counts) Tally(r Record) bool {
	t, ok := r.Tag()
	if !ok {
		return false
	}
	c.Add(t)
	return true
}
