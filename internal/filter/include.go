package filter

import "github.com/GeoffMall/toon/internal/value"

// Include selects a sub-tree of the input using a path expression. A
// path that matches nothing produces Null; it does not fall back to
// the original input.
type Include struct {
	Path string

	steps []step
}

// NewInclude parses path and returns an Include filter, or an
// InvalidPathError if the expression doesn't parse.
func NewInclude(path string) (*Include, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return &Include{Path: path, steps: steps}, nil
}

// Apply evaluates the path against v.
func (f *Include) Apply(v value.Value) (value.Value, error) {
	return EvalPath(v, f.steps), nil
}
