package filter

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/GeoffMall/toon/internal/value"
)

// Strategy names how Truncate picks which array elements survive.
type Strategy string

const (
	StrategyHead     Strategy = "head"
	StrategyTail     Strategy = "tail"
	StrategyBalanced Strategy = "balanced"
	StrategySample   Strategy = "sample"
)

// Summary tallies what a Truncate run actually cut.
type Summary struct {
	ArraysTruncated  int
	ItemsRemoved     int
	StringsTruncated int
	ScalarsRemoved   int
}

// Truncate caps array length and string length throughout a Value,
// recursively. Paths matched by Preserve are exempted entirely: the
// whole sub-tree at a preserved location passes through unchanged,
// and an array element that contains (or is) a preserved location is
// never dropped by the item-count cap. In Strict mode any event that
// would otherwise truncate raises a LimitExceededError instead.
type Truncate struct {
	MaxItems        *int
	MaxStringLength *int
	Strategy        Strategy
	Preserve        []string
	Seed            uint64
	Strict          bool

	preserveSteps [][]step
}

// NewTruncate parses the Preserve path expressions up front so Apply
// never fails on a bad path mid-run.
func NewTruncate(maxItems, maxStringLength *int, strategy Strategy, preserve []string, seed uint64, strict bool) (*Truncate, error) {
	t := &Truncate{
		MaxItems:        maxItems,
		MaxStringLength: maxStringLength,
		Strategy:        strategy,
		Preserve:        preserve,
		Seed:            seed,
		Strict:          strict,
	}
	for _, p := range preserve {
		steps, err := ParsePath(p)
		if err != nil {
			return nil, err
		}
		t.preserveSteps = append(t.preserveSteps, steps)
	}
	return t, nil
}

// Apply runs the truncation, discarding the summary. It never mutates
// *f, so a single Truncate value is safe to reuse across calls.
func (f *Truncate) Apply(v value.Value) (value.Value, error) {
	out, _, err := f.ApplyWithSummary(v)
	return out, err
}

// ApplyWithSummary runs the truncation and also returns counts of what
// was cut, per §4.2's "per-call summary".
func (f *Truncate) ApplyWithSummary(v value.Value) (value.Value, Summary, error) {
	preserved := make(map[string]bool)
	for _, steps := range f.preserveSteps {
		for _, p := range matchedPaths(v, steps) {
			preserved[p] = true
		}
	}
	rng := rand.New(rand.NewSource(int64(f.Seed)))

	var summary Summary
	out, err := f.walk(v, "", preserved, rng, &summary)
	if err != nil {
		return value.Null, Summary{}, err
	}
	return out, summary, nil
}

func (f *Truncate) walk(v value.Value, path string, preserved map[string]bool, rng *rand.Rand, summary *Summary) (value.Value, error) {
	if preserved[path] {
		return v, nil
	}

	switch v.Kind() {
	case value.KindString:
		return f.truncateScalarString(v, path, summary)

	case value.KindArray:
		return f.truncateArray(v, path, preserved, rng, summary)

	case value.KindObject:
		obj := v.Object()
		if obj == nil || obj.Len() == 0 {
			return v, nil
		}
		out := value.NewObjectCap(obj.Len())
		for _, k := range obj.Keys() {
			val, _ := obj.Get(k)
			next, err := f.walk(val, joinField(path, k), preserved, rng, summary)
			if err != nil {
				return value.Null, err
			}
			out.Set(k, next)
		}
		return value.FromObject(out), nil

	default:
		return v, nil
	}
}

func (f *Truncate) truncateScalarString(v value.Value, path string, summary *Summary) (value.Value, error) {
	if f.MaxStringLength == nil {
		return v, nil
	}
	runes := []rune(v.Str())
	max := *f.MaxStringLength
	if len(runes) <= max {
		return v, nil
	}
	if f.Strict {
		return value.Null, &LimitExceededError{
			Kind:     LimitMaxStringLength,
			AtPath:   displayPath(path),
			Observed: len(runes),
			Limit:    max,
		}
	}
	summary.StringsTruncated++
	summary.ScalarsRemoved += len(runes) - max
	return value.String(truncateString(runes, max)), nil
}

func (f *Truncate) truncateArray(v value.Value, path string, preserved map[string]bool, rng *rand.Rand, summary *Summary) (value.Value, error) {
	arr := v.Array()

	keepIdx := make([]int, len(arr))
	for i := range arr {
		keepIdx[i] = i
	}

	if f.MaxItems != nil && len(arr) > *f.MaxItems {
		if f.Strict {
			return value.Null, &LimitExceededError{
				Kind:     LimitMaxItems,
				AtPath:   displayPath(path),
				Observed: len(arr),
				Limit:    *f.MaxItems,
			}
		}

		forced := forcedKeepIndices(path, preserved, len(arr))
		budget := *f.MaxItems
		var kept []int
		if len(forced) >= budget {
			for i := range arr {
				if forced[i] {
					kept = append(kept, i)
				}
			}
		} else {
			var free []int
			for i := range arr {
				if !forced[i] {
					free = append(free, i)
				}
			}
			selected := selectStrategyIndices(free, budget-len(forced), f.Strategy, rng)
			for i := range arr {
				if forced[i] {
					kept = append(kept, i)
				}
			}
			kept = append(kept, selected...)
			sort.Ints(kept)
		}
		keepIdx = kept

		summary.ArraysTruncated++
		summary.ItemsRemoved += len(arr) - len(keepIdx)
	}

	out := make([]value.Value, len(keepIdx))
	for pos, idx := range keepIdx {
		elemPath := joinIndex(path, idx)
		next, err := f.walk(arr[idx], elemPath, preserved, rng, summary)
		if err != nil {
			return value.Null, err
		}
		out[pos] = next
	}
	return value.Array(out), nil
}

// selectStrategyIndices picks budget indices out of candidates
// (already sorted ascending) per the named strategy.
func selectStrategyIndices(candidates []int, budget int, strategy Strategy, rng *rand.Rand) []int {
	if budget <= 0 {
		return nil
	}
	if budget >= len(candidates) {
		return candidates
	}

	switch strategy {
	case StrategyTail:
		return candidates[len(candidates)-budget:]
	case StrategyBalanced:
		headCount := (budget + 1) / 2
		tailCount := budget / 2
		out := make([]int, 0, budget)
		out = append(out, candidates[:headCount]...)
		out = append(out, candidates[len(candidates)-tailCount:]...)
		return out
	case StrategySample:
		perm := rng.Perm(len(candidates))
		chosen := append([]int{}, perm[:budget]...)
		sort.Ints(chosen)
		out := make([]int, budget)
		for i, ci := range chosen {
			out[i] = candidates[ci]
		}
		return out
	case StrategyHead:
		fallthrough
	default:
		return candidates[:budget]
	}
}

// forcedKeepIndices finds array indices under arrPath whose element is
// itself preserved, or contains a preserved descendant, so the
// item-count cap never drops them.
func forcedKeepIndices(arrPath string, preserved map[string]bool, n int) map[int]bool {
	forced := make(map[int]bool)
	if len(preserved) == 0 {
		return forced
	}
	for i := 0; i < n; i++ {
		elemPath := joinIndex(arrPath, i)
		for p := range preserved {
			if p == elemPath || strings.HasPrefix(p, elemPath+".") || strings.HasPrefix(p, elemPath+"[") {
				forced[i] = true
				break
			}
		}
	}
	return forced
}

// truncateString cuts runes to max and appends an ellipsis only when
// at least one scalar was actually removed and the suffix still fits.
func truncateString(runes []rune, max int) string {
	if max <= 0 {
		return ""
	}
	cut := runes[:max-1]
	return string(cut) + "…"
}

// matchedPaths evaluates a parsed path against root and returns the
// canonical (dot-and-bracket, fully concrete) path string of every
// location it matches.
func matchedPaths(root value.Value, steps []step) []string {
	return collectPaths(root, steps, "")
}

func collectPaths(v value.Value, steps []step, path string) []string {
	if len(steps) == 0 {
		return []string{path}
	}
	s, rest := steps[0], steps[1:]

	switch s.kind {
	case stepField:
		if v.Kind() != value.KindObject {
			return nil
		}
		obj := v.Object()
		val, ok := obj.Get(s.field)
		if !ok {
			return nil
		}
		return collectPaths(val, rest, joinField(path, s.field))

	case stepIndex:
		if v.Kind() != value.KindArray {
			return nil
		}
		arr := v.Array()
		idx := s.index
		if idx < 0 {
			idx += len(arr)
		}
		if idx < 0 || idx >= len(arr) {
			return nil
		}
		return collectPaths(arr[idx], rest, joinIndex(path, idx))

	case stepWildcard:
		if v.Kind() != value.KindArray {
			return nil
		}
		var out []string
		for i, e := range v.Array() {
			out = append(out, collectPaths(e, rest, joinIndex(path, i))...)
		}
		return out

	case stepPredicate:
		if v.Kind() != value.KindArray {
			return nil
		}
		var out []string
		for i, e := range v.Array() {
			if matchPredicate(e, s) {
				out = append(out, collectPaths(e, rest, joinIndex(path, i))...)
			}
		}
		return out

	default:
		return nil
	}
}

func joinField(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func joinIndex(path string, idx int) string {
	return fmt.Sprintf("%s[%d]", path, idx)
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}
