// Package platform defines the path policy for a path convention:
// separator, reserved characters, drive/UNC recognition, and case
// folding rules. A policy is selected once per filesystem context and
// consumed by reference; path operations never re-query platform state.
package platform

import (
	"runtime"
	"strings"
	"unicode"

	"github.com/JaaJSoft/crosspath/pkg/errors"
)

// Policy names accepted by FromName
const (
	WindowsName = "windows"
	POSIXName   = "posix"
)

// Policy describes how paths are written on one platform. Policies are
// immutable; the two canonical instances are returned by Windows and
// POSIX.
type Policy struct {
	name            string
	separator       byte
	caseInsensitive bool
	drives          bool
	reserved        string
}

var (
	windowsPolicy = &Policy{
		name:            WindowsName,
		separator:       '\\',
		caseInsensitive: true,
		drives:          true,
		reserved:        `<>:"|?*`,
	}

	posixPolicy = &Policy{
		name:            POSIXName,
		separator:       '/',
		caseInsensitive: false,
		drives:          false,
		reserved:        "",
	}
)

// Windows returns the Windows path policy: backslash separator,
// case-insensitive comparison, drive letters and UNC prefixes.
func Windows() *Policy {
	return windowsPolicy
}

// POSIX returns the POSIX path policy: slash separator, case-sensitive
// comparison, no drives.
func POSIX() *Policy {
	return posixPolicy
}

// Native returns the policy for the running operating system.
func Native() *Policy {
	if runtime.GOOS == "windows" {
		return Windows()
	}
	return POSIX()
}

// FromName returns the policy with the given name ("windows" or
// "posix", case-insensitive).
func FromName(name string) (*Policy, error) {
	switch strings.ToLower(name) {
	case WindowsName:
		return Windows(), nil
	case POSIXName:
		return POSIX(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown platform policy %q", name).
			WithDetail("name", name)
	}
}

// Name returns the policy name
func (p *Policy) Name() string {
	return p.name
}

// Separator returns the platform path separator
func (p *Policy) Separator() byte {
	return p.separator
}

// CaseInsensitive reports whether name comparison folds case
func (p *Policy) CaseInsensitive() bool {
	return p.caseInsensitive
}

// SupportsDrives reports whether the platform recognizes drive letters
// and UNC prefixes
func (p *Policy) SupportsDrives() bool {
	return p.drives
}

// IsSeparator reports whether c is the platform separator or the
// always-accepted alternate separator '/'.
func (p *Policy) IsSeparator(c byte) bool {
	return c == p.separator || c == '/'
}

// FoldRune maps r to its comparison form: upper case on
// case-insensitive platforms, unchanged otherwise.
func (p *Policy) FoldRune(r rune) rune {
	if p.caseInsensitive {
		return unicode.ToUpper(r)
	}
	return r
}

// EqualFold reports whether a and b are equal under the policy's case
// folding.
func (p *Policy) EqualFold(a, b string) bool {
	if !p.caseInsensitive {
		return a == b
	}
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	for i := range ra {
		if unicode.ToUpper(ra[i]) != unicode.ToUpper(rb[i]) {
			return false
		}
	}
	return true
}

// InvalidChar scans s for a character the platform does not allow in a
// path name and returns the first offender. On POSIX every character
// is allowed.
func (p *Policy) InvalidChar(s string) (rune, bool) {
	if p.reserved == "" {
		return 0, false
	}
	for _, r := range s {
		if r < 0x20 || strings.ContainsRune(p.reserved, r) {
			return r, true
		}
	}
	return 0, false
}

// IsDriveLetter reports whether c can open a drive specifier such as "C:".
func IsDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
