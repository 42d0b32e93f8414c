package mython

// Closure is a name-to-holder mapping used indistinguishably for a
// program's globals, a single Call's locals, or an instance's fields.
// Insertion order is irrelevant; lookup is O(1) via the underlying
// map.
type Closure struct {
	values map[string]Holder
}

// NewClosure returns an empty closure.
func NewClosure() *Closure {
	return &Closure{values: make(map[string]Holder)}
}

// Get looks up name, returning its holder and whether it was bound.
func (c *Closure) Get(name string) (Holder, bool) {
	h, ok := c.values[name]
	return h, ok
}

// Set inserts or replaces the binding for name.
func (c *Closure) Set(name string, h Holder) {
	c.values[name] = h
}
