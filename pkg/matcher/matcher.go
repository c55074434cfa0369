// Package matcher implements the pattern-matcher contract consumed by
// path consumers: a "syntax:pattern" string is turned into a predicate
// over a path's string form. The glob and regex engines themselves are
// the standard library's; this package only owns the syntax-tag
// dispatch.
package matcher

import (
	"path"
	"regexp"
	"strings"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/logging"
	"github.com/JaaJSoft/crosspath/pkg/paths"
)

// Syntax tags accepted by GetPathMatcher
const (
	GlobSyntax  = "glob"
	RegexSyntax = "regex"
)

// Matcher is a predicate over structured paths
type Matcher interface {
	// Matches reports whether the path's string form matches the pattern
	Matches(p *paths.Path) bool
}

// GetPathMatcher builds a matcher from a "syntax:pattern" string. The
// syntax tag is case-insensitive; "glob" and "regex" are supported.
// Case folding of the match follows the filesystem's platform policy,
// and under a Windows policy the backslash in a glob pattern is a
// separator, not an escape.
func GetPathMatcher(fs *paths.Filesystem, syntaxAndPattern string) (Matcher, error) {
	logger := logging.GetLogger("matcher")

	idx := strings.IndexByte(syntaxAndPattern, ':')
	if idx <= 0 || idx == len(syntaxAndPattern)-1 {
		return nil, errors.Newf(errors.ErrInvalidArgument, "pattern %q is not of the form syntax:pattern", syntaxAndPattern).
			WithDetail("input", syntaxAndPattern)
	}

	syntax := strings.ToLower(syntaxAndPattern[:idx])
	pattern := syntaxAndPattern[idx+1:]
	fold := fs.Policy().CaseInsensitive()
	sep := fs.Separator()

	logger.Debug().
		Str("syntax", syntax).
		Str("pattern", pattern).
		Bool("caseInsensitive", fold).
		Msg("building path matcher")

	switch syntax {
	case GlobSyntax:
		slashed := pattern
		if sep != '/' {
			slashed = strings.ReplaceAll(slashed, string(sep), "/")
		}
		if fold {
			slashed = strings.ToUpper(slashed)
		}
		if _, err := path.Match(slashed, ""); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidArgument, "malformed glob pattern %q", pattern)
		}
		return &globMatcher{pattern: slashed, fold: fold}, nil
	case RegexSyntax:
		if fold {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidArgument, "malformed regex pattern %q", pattern)
		}
		return &regexMatcher{re: re}, nil
	default:
		return nil, errors.Newf(errors.ErrUnsupportedSyntax, "unsupported pattern syntax %q", syntax).
			WithDetail("syntax", syntax)
	}
}

// globMatcher matches the separator-normalized string form of a path
// against a pre-normalized glob pattern
type globMatcher struct {
	pattern string
	fold    bool
}

// Matches implements Matcher
func (m *globMatcher) Matches(p *paths.Path) bool {
	subject := p.String()
	sep := p.Filesystem().Separator()
	if sep != '/' {
		subject = strings.ReplaceAll(subject, string(sep), "/")
	}
	if m.fold {
		subject = strings.ToUpper(subject)
	}
	ok, err := path.Match(m.pattern, subject)
	if err != nil {
		// pattern was validated at construction
		return false
	}
	return ok
}

// regexMatcher matches the string form of a path against a compiled
// regular expression
type regexMatcher struct {
	re *regexp.Regexp
}

// Matches implements Matcher
func (m *regexMatcher) Matches(p *paths.Path) bool {
	return m.re.MatchString(p.String())
}
