package surface

// Reveals tracks which sections have been revealed. A section moves from
// hidden to revealed once and never back.
type Reveals struct {
	seen map[string]struct{}
}

// Mark records that section id became visible. It reports true only the
// first time id is marked.
func (r *Reveals) Mark(id string) bool {
	if id == "" {
		return false
	}
	if _, ok := r.seen[id]; ok {
		return false
	}
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	r.seen[id] = struct{}{}
	return true
}
