package cart

import "sort"

// Selection is the set of cart item ids chosen for bulk actions or
// checkout handoff. The engine guarantees it never contains an
// out-of-stock item id.
type Selection map[int64]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Has reports membership.
func (s Selection) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) add(id int64) {
	s[id] = struct{}{}
}

func (s Selection) remove(id int64) {
	delete(s, id)
}

// Len returns the selection size.
func (s Selection) Len() int {
	return len(s)
}

// IDs returns the selected ids in ascending order.
func (s Selection) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Equals reports whether the selection contains exactly the given ids.
func (s Selection) Equals(ids []int64) bool {
	if len(s) != len(ids) {
		return false
	}
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}
