package pathmap

// As finds the first mapping in the chain of m that matches target's concrete
// type, and if one is found, sets target to that mapping and returns true.
// The chain consists of m itself followed by the mappings obtained by
// repeatedly calling Unwrap, so decorators are transparent to As. This is how
// callers observe construction-time collapses, e.g. that a wildcard-free glob
// is represented by an [ExactMapping].
//
// As panics if target is nil.
func As[T Mapping](m Mapping, target *T) bool {
	if m == nil {
		return false
	}
	if target == nil {
		panic("pathmap: target cannot be nil")
	}
	for {
		if x, ok := m.(T); ok {
			*target = x
			return true
		}
		u, ok := m.(interface{ Unwrap() Mapping })
		if !ok {
			return false
		}
		m = u.Unwrap()
		if m == nil {
			return false
		}
	}
}
