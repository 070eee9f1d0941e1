package util

// Diff returns the elements of a that do not appear in b, keeping their order.
func Diff[T comparable](a, b []T) []T {
	exclude := make(map[T]struct{}, len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}

	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := exclude[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}

// Unique returns a with duplicates removed. First occurrences win.
func Unique[T comparable](a []T) []T {
	seen := make(map[T]struct{}, len(a))
	out := make([]T, 0, len(a))
	for _, v := range a {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
