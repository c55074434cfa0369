package paths

import (
	"strings"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/platform"
)

// Parse turns a raw string into a structured path. It normalizes
// separators, splits off the platform root, classifies the result and
// validates the remaining characters against the platform's reserved
// set.
func (fs *Filesystem) Parse(raw string) (*Path, error) {
	pol := fs.policy

	body := cleanSeparators(raw, pol)
	root, ptype := splitRoot(body, pol)
	root, body = canonicalize(root, body, pol)

	if r, found := pol.InvalidChar(body[len(root):]); found {
		return nil, errors.Newf(errors.ErrInvalidPath, "illegal character %q in path %q", r, raw).
			WithDetail("char", string(r)).
			WithDetail("path", raw)
	}

	return newPath(fs, root, body, ptype), nil
}

// Join concatenates first and every non-empty element of more,
// inserting the platform separator between elements unless the next
// element already begins with one or the accumulator is empty, then
// parses the result.
func (fs *Filesystem) Join(first string, more ...string) (*Path, error) {
	pol := fs.policy
	sb := first
	for _, m := range more {
		if m == "" {
			continue
		}
		switch {
		case sb == "":
			sb = m
		case pol.IsSeparator(m[0]) || pol.IsSeparator(sb[len(sb)-1]):
			sb += m
		default:
			sb += string(pol.Separator()) + m
		}
	}
	return fs.Parse(sb)
}

// cleanSeparators converts the alternate separator '/' to the platform
// separator and collapses repeated separators. A leading double
// separator is preserved on platforms with UNC paths.
func cleanSeparators(raw string, pol *platform.Policy) string {
	sep := pol.Separator()
	var sb strings.Builder
	sb.Grow(len(raw))
	prevSep := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if pol.IsSeparator(c) {
			if prevSep {
				if i == 1 && pol.SupportsDrives() {
					sb.WriteByte(sep)
				}
				continue
			}
			sb.WriteByte(sep)
			prevSep = true
		} else {
			sb.WriteByte(c)
			prevSep = false
		}
	}
	return sb.String()
}

// splitRoot finds the root prefix of a separator-normalized body and
// classifies the path. Malformed drive and UNC prefixes fall back to a
// Relative classification rather than failing.
func splitRoot(body string, pol *platform.Policy) (string, PathType) {
	if body == "" {
		return "", TypeRelative
	}

	sep := pol.Separator()

	if !pol.SupportsDrives() {
		if body[0] == sep {
			return body[:1], TypeAbsolute
		}
		return "", TypeRelative
	}

	if len(body) >= 2 && body[0] == sep && body[1] == sep {
		if root, ok := splitUNCRoot(body, sep); ok {
			return root, TypeUNC
		}
		return "", TypeRelative
	}

	if len(body) >= 2 && platform.IsDriveLetter(body[0]) && body[1] == ':' {
		if len(body) >= 3 && body[2] == sep {
			return body[:3], TypeAbsolute
		}
		return body[:2], TypeDriveRelative
	}

	if body[0] == sep {
		return body[:1], TypeDirectoryRelative
	}

	return "", TypeRelative
}

// splitUNCRoot extracts the \\server\share\ prefix. Both the server
// and the share name must be non-empty.
func splitUNCRoot(body string, sep byte) (string, bool) {
	i := 2
	for i < len(body) && body[i] != sep {
		i++
	}
	if i == 2 || i == len(body) {
		return "", false
	}
	j := i + 1
	for j < len(body) && body[j] != sep {
		j++
	}
	if j == i+1 {
		return "", false
	}
	if j < len(body) {
		j++ // include the separator after the share
	}
	return body[:j], true
}

// canonicalize applies the trailing-separator rules: a root-only body
// with a root longer than two characters carries a trailing separator,
// every other body has none.
func canonicalize(root, body string, pol *platform.Policy) (string, string) {
	sep := pol.Separator()
	if root != "" && pol.EqualFold(root, body) {
		if len(root) > 2 && body[len(body)-1] != sep {
			body += string(sep)
			root = body
		}
		return root, body
	}
	if len(body) > len(root) && body[len(body)-1] == sep {
		body = body[:len(body)-1]
	}
	return root, body
}
