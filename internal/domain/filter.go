package domain

// DropFunc is notified of every element FilterValid rejects. index is the
// element's position in the raw array.
type DropFunc func(index int, candidate any)

// FilterValid returns the ordered subsequence of raw's elements for which
// valid holds. A raw value that is not an array yields an empty, non-nil
// slice. dropped may be nil.
func FilterValid(raw any, valid func(any) bool, dropped DropFunc) []any {
	items, ok := raw.([]any)
	if !ok {
		return []any{}
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		if valid(item) {
			out = append(out, item)
			continue
		}
		if dropped != nil {
			dropped(i, item)
		}
	}
	return out
}

// Visible is implemented by entities that carry a display flag.
type Visible interface {
	IsVisible() bool
}

// OnlyVisible keeps the entities whose visible flag is set, preserving order.
// It is the second filter stage and must only receive shape-valid entities.
func OnlyVisible[T Visible](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.IsVisible() {
			out = append(out, it)
		}
	}
	return out
}
