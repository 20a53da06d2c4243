package planar

// Diff compares two trees by edge identity (the unordered endpoint pair).
//
// missing lists the edges of other that base lacks; additional lists the
// edges of base that other lacks. Both keep the input order. Identical trees
// give two empty lists; a single edge swap gives one entry in each.
//
// Complexity: O(|base|·|other|).
func Diff(base, other []Edge) (missing, additional []Edge) {
	missing = []Edge{}
	additional = []Edge{}
	for _, o := range other {
		if !containsEdge(base, o) {
			missing = append(missing, o)
		}
	}
	for _, b := range base {
		if !containsEdge(other, b) {
			additional = append(additional, b)
		}
	}

	return missing, additional
}

func containsEdge(edges []Edge, e Edge) bool {
	for _, x := range edges {
		if x.Same(e) {
			return true
		}
	}

	return false
}
