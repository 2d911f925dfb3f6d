package api

// Lookup is the outcome of correlating one requested key.
type Lookup[K comparable, V any] struct {
	Key   K
	Value V
	Found bool
}

// Correlate pairs each requested key with the item whose keyOf equals it.
// The result has one entry per key, in request order. Items whose key was
// not requested are dropped; when several items share a key the first wins.
// Repeated keys each receive that item.
func Correlate[K comparable, V any](keys []K, items []V, keyOf func(V) K) []Lookup[K, V] {
	index := make(map[K]int, len(items))
	for i, item := range items {
		k := keyOf(item)
		if _, dup := index[k]; !dup {
			index[k] = i
		}
	}

	out := make([]Lookup[K, V], len(keys))
	for i, k := range keys {
		out[i].Key = k
		if j, ok := index[k]; ok {
			out[i].Value = items[j]
			out[i].Found = true
		}
	}
	return out
}
