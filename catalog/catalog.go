package catalog

import "fmt"

// Catalogue is an immutable name-to-entry table built once at library
// initialization. It is never mutated afterwards.
type Catalogue struct {
	entries map[string]Entry
	order   []string
}

// New builds a catalogue from entries. Duplicate names and nil evaluation
// rules are construction errors: the catalogue is the library's contract
// with the host and must be complete before anything is bound.
func New(entries []Entry) (*Catalogue, error) {
	c := &Catalogue{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog: entry with empty name")
		}
		if e.Fn == nil {
			return nil, fmt.Errorf("catalog: entry %q has no evaluation rule", e.Name)
		}
		if _, dup := c.entries[e.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate entry %q", e.Name)
		}
		c.entries[e.Name] = e
		c.order = append(c.order, e.Name)
	}
	return c, nil
}

// Lookup returns the entry bound to name.
func (c *Catalogue) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns all entry names in registration order.
func (c *Catalogue) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Entries returns all entries in registration order.
func (c *Catalogue) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.entries[name])
	}
	return out
}

// Len returns the number of entries.
func (c *Catalogue) Len() int {
	return len(c.order)
}

// Stats returns catalogue statistics grouped by function family.
func (c *Catalogue) Stats() Stats {
	groups := make(map[string]int)
	for _, e := range c.entries {
		groups[e.Group]++
	}
	return Stats{Total: len(c.entries), Groups: groups}
}
