package paths

import (
	"strings"

	"github.com/JaaJSoft/crosspath/pkg/errors"
)

// Path is an immutable structured path value. The body holds the full
// separator-normalized string form and the root is its (possibly
// empty) drive/authority prefix. The name-element offsets are computed
// once at construction, so a Path is safe to share between goroutines.
type Path struct {
	fs      *Filesystem
	root    string
	body    string
	ptype   PathType
	offsets []int
}

// newPath builds a path from already-validated parts. The root must be
// a literal prefix of the body.
func newPath(fs *Filesystem, root, body string, ptype PathType) *Path {
	return &Path{
		fs:      fs,
		root:    root,
		body:    body,
		ptype:   ptype,
		offsets: computeOffsets(body, len(root), fs.policy.Separator()),
	}
}

// computeOffsets records the starting offset of each maximal run of
// non-separator characters in body after the root. The empty path has
// exactly one empty element at offset 0.
func computeOffsets(body string, rootLen int, sep byte) []int {
	if body == "" {
		return []int{0}
	}
	var offsets []int
	inElement := false
	for i := rootLen; i < len(body); i++ {
		if body[i] == sep {
			inElement = false
		} else if !inElement {
			offsets = append(offsets, i)
			inElement = true
		}
	}
	return offsets
}

// String returns the full string form of the path
func (p *Path) String() string {
	return p.body
}

// Root returns the root prefix of the path, possibly empty
func (p *Path) Root() string {
	return p.root
}

// Type returns the path classification
func (p *Path) Type() PathType {
	return p.ptype
}

// Filesystem returns the owning filesystem context
func (p *Path) Filesystem() *Filesystem {
	return p.fs
}

// IsAbsolute reports whether the path is fully rooted (Absolute or UNC)
func (p *Path) IsAbsolute() bool {
	return p.ptype == TypeAbsolute || p.ptype == TypeUNC
}

// IsEmpty reports whether this is the empty path
func (p *Path) IsEmpty() bool {
	return p.body == ""
}

// isRootOnly reports whether the path consists of its root and nothing
// else, e.g. "/", `C:\` or `\\server\share\`. The empty path is not
// root-only.
func (p *Path) isRootOnly() bool {
	return p.root != "" && len(p.body) == len(p.root)
}

// RootPath returns the root of the path as a path value, or nil if the
// path has no root. The result keeps the type of the receiver.
func (p *Path) RootPath() *Path {
	if p.root == "" {
		return nil
	}
	if p.isRootOnly() {
		return p
	}
	return newPath(p.fs, p.root, p.root, p.ptype)
}

// NameCount returns the number of name elements in the path. Root-only
// paths have zero elements; the empty path has exactly one, empty
// element.
func (p *Path) NameCount() int {
	return len(p.offsets)
}

// element returns name element i without bounds checking
func (p *Path) element(i int) string {
	start := p.offsets[i]
	end := len(p.body)
	if i+1 < len(p.offsets) {
		end = p.offsets[i+1] - 1
	}
	return p.body[start:end]
}

// ElementAsString returns name element i as a plain string
func (p *Path) ElementAsString(i int) (string, error) {
	if i < 0 || i >= p.NameCount() {
		return "", errors.Newf(errors.ErrIndexOutOfRange, "name index %d outside [0, %d)", i, p.NameCount()).
			WithDetail("index", i).
			WithDetail("nameCount", p.NameCount())
	}
	return p.element(i), nil
}

// Name returns name element i as a new relative path
func (p *Path) Name(i int) (*Path, error) {
	el, err := p.ElementAsString(i)
	if err != nil {
		return nil, err
	}
	return newPath(p.fs, "", el, TypeRelative), nil
}

// Names returns all name elements as strings
func (p *Path) Names() []string {
	names := make([]string, p.NameCount())
	for i := range names {
		names[i] = p.element(i)
	}
	return names
}

// Filename returns the last name element as a relative path. The empty
// path is its own filename; root-only paths have none and return nil.
func (p *Path) Filename() *Path {
	if p.IsEmpty() {
		return p
	}
	if p.isRootOnly() {
		return nil
	}
	name, _ := p.Name(p.NameCount() - 1)
	return name
}

// Parent returns the path without its last name element, preserving
// the type. Root-only paths and the empty path have no parent; a
// single-element path with a root collapses to the root path, one
// without a root returns nil.
func (p *Path) Parent() *Path {
	if len(p.body) == len(p.root) {
		return nil
	}
	idx := strings.LastIndexByte(p.body, p.fs.policy.Separator())
	if idx < len(p.root) {
		return p.RootPath()
	}
	return newPath(p.fs, p.root, p.body[:idx], p.ptype)
}

// SubPath returns a relative path holding name elements [begin, end)
func (p *Path) SubPath(begin, end int) (*Path, error) {
	if begin < 0 || begin >= end || end > p.NameCount() {
		return nil, errors.Newf(errors.ErrIndexOutOfRange, "subpath range [%d, %d) invalid for %d elements", begin, end, p.NameCount()).
			WithDetail("begin", begin).
			WithDetail("end", end).
			WithDetail("nameCount", p.NameCount())
	}
	sep := string(p.fs.policy.Separator())
	var sb strings.Builder
	for i := begin; i < end; i++ {
		if i > begin {
			sb.WriteString(sep)
		}
		sb.WriteString(p.element(i))
	}
	return newPath(p.fs, "", sb.String(), TypeRelative), nil
}

// ToAbsolutePath resolves the path against the filesystem's working
// directory. Absolute and UNC paths are returned unchanged;
// directory-relative paths take the working directory's root and
// drive-relative paths the working directory of their drive.
func (p *Path) ToAbsolutePath() (*Path, error) {
	if p.IsAbsolute() {
		return p, nil
	}

	wd := p.fs.workDir
	if wd == nil {
		return nil, errors.New(errors.ErrInvalidArgument, "filesystem context has no working directory")
	}

	switch p.ptype {
	case TypeRelative:
		return wd.Resolve(p)
	case TypeDirectoryRelative:
		// \foo resolves against the root of the working directory
		return p.fs.Join(wd.Root(), p.body[len(p.root):])
	case TypeDriveRelative:
		// C:foo resolves against the working directory when it is on
		// the same drive, otherwise against the drive's root
		rest := p.body[len(p.root):]
		pol := p.fs.policy
		if len(wd.root) >= 2 && wd.root[1] == ':' && pol.FoldRune(rune(wd.root[0])) == pol.FoldRune(rune(p.root[0])) {
			return p.fs.Join(wd.String(), rest)
		}
		return p.fs.Join(p.root+string(pol.Separator()), rest)
	default:
		return nil, errors.Newf(errors.ErrInternal, "cannot make %s path absolute", p.ptype)
	}
}
