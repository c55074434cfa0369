package paths

import (
	"strings"

	"github.com/JaaJSoft/crosspath/pkg/errors"
)

// Resolve joins other onto the receiver. An absolute other is returned
// as-is and an empty other returns the receiver; everything else is a
// textual join re-parsed and re-classified by the parser.
func (p *Path) Resolve(other *Path) (*Path, error) {
	if other == nil {
		return nil, errors.New(errors.ErrNullArgument, "path to resolve is required")
	}
	if other.IsEmpty() {
		return p, nil
	}
	if other.IsAbsolute() {
		return other, nil
	}
	return p.fs.Join(p.body, other.body)
}

// Relativize computes the relative path that, resolved against the
// receiver, leads to other. Both paths must have the same type and the
// same root; relativizing a path against itself yields the empty path
// and relativizing against the empty path yields other unchanged.
func (p *Path) Relativize(other *Path) (*Path, error) {
	if other == nil {
		return nil, errors.New(errors.ErrNullArgument, "path to relativize is required")
	}
	if p.Equals(other) {
		return p.fs.Parse("")
	}
	if p.ptype != other.ptype {
		return nil, errors.Newf(errors.ErrTypeMismatch, "cannot relativize %s path against %s path", other.ptype, p.ptype).
			WithDetail("baseType", p.ptype.String()).
			WithDetail("otherType", other.ptype.String())
	}
	pol := p.fs.policy
	if !pol.EqualFold(p.root, other.root) {
		return nil, errors.Newf(errors.ErrRootMismatch, "cannot relativize across roots %q and %q", p.root, other.root).
			WithDetail("baseRoot", p.root).
			WithDetail("otherRoot", other.root)
	}
	if p.IsEmpty() {
		return other, nil
	}

	// count shared leading elements
	common := 0
	for common < p.NameCount() && common < other.NameCount() &&
		pol.EqualFold(p.element(common), other.element(common)) {
		common++
	}

	parts := make([]string, 0, p.NameCount()-common+other.NameCount()-common)
	for i := common; i < p.NameCount(); i++ {
		parts = append(parts, "..")
	}
	for i := common; i < other.NameCount(); i++ {
		parts = append(parts, other.element(i))
	}

	return p.fs.Parse(strings.Join(parts, string(pol.Separator())))
}
