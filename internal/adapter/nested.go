package adapter

// The store encodes its payloads as deeply nested positional JSON arrays.
// These helpers walk a decoded value by index and return zero values for any
// path that does not exist.

func lookup(v any, path ...int) (any, bool) {
	cur := v
	for _, idx := range path {
		arr, ok := cur.([]any)
		if !ok || idx < 0 || idx >= len(arr) {
			return nil, false
		}
		cur = arr[idx]
	}
	return cur, cur != nil
}

func lookupString(v any, path ...int) string {
	got, ok := lookup(v, path...)
	if !ok {
		return ""
	}
	s, _ := got.(string)
	return s
}

func lookupInt(v any, path ...int) (int64, bool) {
	got, ok := lookup(v, path...)
	if !ok {
		return 0, false
	}
	f, ok := got.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func lookupSlice(v any, path ...int) []any {
	got, ok := lookup(v, path...)
	if !ok {
		return nil
	}
	arr, _ := got.([]any)
	return arr
}
