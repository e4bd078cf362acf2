package mvc

import "sort"

// ViewBag carries data from a controller action to the view it renders.
// It is owned by a single controller and is not safe for concurrent use.
type ViewBag struct {
	values map[string]any
}

// NewViewBag creates an empty view bag
func NewViewBag() *ViewBag {
	return &ViewBag{values: make(map[string]any)}
}

// Set stores a value under key, replacing any previous value
func (b *ViewBag) Set(key string, value any) {
	b.values[key] = value
}

// Get returns the value stored under key
func (b *ViewBag) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// String returns the string stored under key, or "" when the key is absent
// or holds a non-string value
func (b *ViewBag) String(key string) string {
	s, _ := b.values[key].(string)
	return s
}

// Keys returns the stored keys in sorted order
func (b *ViewBag) Keys() []string {
	keys := make([]string, 0, len(b.values))
	for k := range b.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries
func (b *ViewBag) Len() int {
	return len(b.values)
}

// Data returns a shallow copy of the entries for template execution
func (b *ViewBag) Data() map[string]any {
	out := make(map[string]any, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}
