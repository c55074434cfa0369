package paths

// CompareTo orders two paths by their body strings, code point by code
// point under the platform's case folding. The result is negative,
// zero or positive; the ordering is total and consistent with Equals.
func (p *Path) CompareTo(other *Path) int {
	pol := p.fs.policy
	a := []rune(p.body)
	b := []rune(other.body)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca := pol.FoldRune(a[i])
		cb := pol.FoldRune(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	// length is the final tie-break
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Equals reports whether the two paths are equal under the platform's
// case folding. Paths from different platform conventions are never
// equal.
func (p *Path) Equals(other *Path) bool {
	if other == nil {
		return false
	}
	if p.fs.policy != other.fs.policy {
		return false
	}
	return p.CompareTo(other) == 0
}

// StartsWith reports whether the path begins with the elements of
// other. Roots must match under case folding and every element of
// other must equal the corresponding leading element of the receiver.
// A path from a different platform convention yields false rather than
// an error. The empty path starts only with itself.
func (p *Path) StartsWith(other *Path) bool {
	if other == nil || p.fs.policy != other.fs.policy {
		return false
	}
	pol := p.fs.policy
	if !pol.EqualFold(p.root, other.root) {
		return false
	}
	n := other.NameCount()
	if n > p.NameCount() {
		return false
	}
	// right to left for early exit: mismatches cluster at the tail
	for i := n - 1; i >= 0; i-- {
		if !pol.EqualFold(p.element(i), other.element(i)) {
			return false
		}
	}
	return true
}

// EndsWith reports whether the path ends with the elements of other,
// aligned against the trailing elements of the receiver. A suffix that
// carries a root only matches when its root equals the receiver's and
// the element counts are equal. A path from a different platform
// convention yields false rather than an error.
func (p *Path) EndsWith(other *Path) bool {
	if other == nil || p.fs.policy != other.fs.policy {
		return false
	}
	pol := p.fs.policy
	n := other.NameCount()

	if other.root != "" {
		if !pol.EqualFold(p.root, other.root) {
			return false
		}
		if n != p.NameCount() {
			return false
		}
	}
	if n > p.NameCount() {
		return false
	}
	offset := p.NameCount() - n
	for i := n - 1; i >= 0; i-- {
		if !pol.EqualFold(p.element(offset+i), other.element(i)) {
			return false
		}
	}
	return true
}
