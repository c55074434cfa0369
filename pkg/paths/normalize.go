package paths

import "strings"

// Normalize removes "." elements and ".." elements together with the
// real element preceding them. A ".." that would climb above the root
// is absorbed by the root; on a rootless path it is kept. The
// operation is idempotent.
func (p *Path) Normalize() *Path {
	if p.IsEmpty() {
		return p
	}

	kept := make([]string, 0, p.NameCount())
	changed := false
	for i := 0; i < p.NameCount(); i++ {
		el := p.element(i)
		switch el {
		case ".":
			changed = true
		case "..":
			if len(kept) > 0 && kept[len(kept)-1] != ".." {
				kept = kept[:len(kept)-1]
				changed = true
			} else if p.root == "" {
				kept = append(kept, el)
			} else {
				// root absorbs the ascent
				changed = true
			}
		default:
			kept = append(kept, el)
		}
	}

	if !changed {
		return p
	}

	sep := string(p.fs.policy.Separator())
	body := p.root + strings.Join(kept, sep)
	return newPath(p.fs, p.root, body, p.ptype)
}
