// Package catalog owns every dish the stations work with. Stations keep Ref
// handles into a Catalog instead of their own copies, so a dish shared by
// several stations is stored once and outlives any single station.
package catalog

import "github.com/dstockto/bistro/models"

// Ref is a handle to a dish stored in a Catalog.
type Ref int

// Catalog is an append-only store of courses. The zero value is ready to use.
type Catalog struct {
	entries []models.Course
}

func New() *Catalog {
	return &Catalog{}
}

// Add stores course and returns its handle. Adding the same course twice
// yields two handles.
func (c *Catalog) Add(course models.Course) Ref {
	c.entries = append(c.entries, course)
	return Ref(len(c.entries) - 1)
}

func (c *Catalog) Get(r Ref) (models.Course, bool) {
	if r < 0 || int(r) >= len(c.entries) {
		return nil, false
	}
	return c.entries[r], true
}

// Lookup returns the first dish stored under name.
func (c *Catalog) Lookup(name string) (Ref, bool) {
	for i, e := range c.entries {
		if e.Base().Name() == name {
			return Ref(i), true
		}
	}
	return -1, false
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Refs returns every handle in insertion order.
func (c *Catalog) Refs() []Ref {
	out := make([]Ref, len(c.entries))
	for i := range c.entries {
		out[i] = Ref(i)
	}
	return out
}
