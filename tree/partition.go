package tree

// Partition returns the subset of ds whose value in column attr equals v,
// with that column removed from every returned example. The result is built
// from fresh slices, never views over ds, so mutating it cannot leak back
// into the caller's data. Examples that do not match v are excluded.
//
// The result is empty only when v was never observed in column attr; the
// attribute selector only partitions on observed values, so an empty result
// is a defensive no-op rather than an expected outcome.
func Partition(ds Dataset, attr int, v Value) Dataset {
	var out Dataset
	for _, ex := range ds {
		if ex[attr] != v {
			continue
		}
		reduced := make(Example, 0, len(ex)-1)
		reduced = append(reduced, ex[:attr]...)
		reduced = append(reduced, ex[attr+1:]...)
		out = append(out, reduced)
	}
	return out
}

// distinctValues collects the distinct atoms observed in column attr, in
// first-seen order. The deterministic order keeps tree growing and its tests
// reproducible across runs.
func distinctValues(ds Dataset, attr int) []Value {
	seen := make(map[Value]struct{})
	var values []Value
	for _, ex := range ds {
		v := ex[attr]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
