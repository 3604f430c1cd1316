// Package filter implements the Value-to-Value rewrites that sit
// between parsing and encoding: path selection, depth limiting and
// truncation. Filters are composed by position into a chain; the
// chain short-circuits on the first error.
package filter

import "github.com/GeoffMall/toon/internal/value"

// Filter rewrites a Value into another Value, or fails.
type Filter interface {
	Apply(v value.Value) (value.Value, error)
}

// Chain runs filters in order, short-circuiting on the first error.
func Chain(v value.Value, filters []Filter) (value.Value, error) {
	cur := v
	for _, f := range filters {
		next, err := f.Apply(cur)
		if err != nil {
			return value.Null, err
		}
		cur = next
	}
	return cur, nil
}
