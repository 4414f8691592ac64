package world

// Route is an ordered sequence of positions. The first element is where the
// route starts, the last where it ends, and consecutive elements are adjacent.
type Route []Position

// Len returns the number of positions in the route
func (r Route) Len() int {
	return len(r)
}

// First returns the first position. The route must not be empty.
func (r Route) First() Position {
	return r[0]
}

// Last returns the last position. The route must not be empty.
func (r Route) Last() Position {
	return r[len(r)-1]
}

// Contains reports whether p is on the route
func (r Route) Contains(p Position) bool {
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}

// IsContiguous reports whether every consecutive pair is 4-adjacent
func (r Route) IsContiguous() bool {
	for i := 1; i < len(r); i++ {
		if !r[i-1].IsAdjacent(r[i]) {
			return false
		}
	}
	return true
}

// Join concatenates r and next, dropping next's first element when it repeats r's last.
func (r Route) Join(next Route) Route {
	out := make(Route, 0, len(r)+len(next))
	out = append(out, r...)
	if len(r) > 0 && len(next) > 0 && r.Last() == next.First() {
		next = next[1:]
	}
	return append(out, next...)
}
