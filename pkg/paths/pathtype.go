package paths

// PathType classifies a path by its prefix shape. The type is assigned
// once when the path is constructed and never changes.
type PathType int

const (
	// TypeRelative is a path with no root, e.g. "foo/bar"
	TypeRelative PathType = iota

	// TypeAbsolute is a fully rooted path, e.g. "/foo" or `C:\foo`
	TypeAbsolute

	// TypeUNC is a network path, e.g. `\\server\share\foo`
	TypeUNC

	// TypeDirectoryRelative is a Windows path with a leading separator
	// but no drive, e.g. `\foo`; relative to the current drive
	TypeDirectoryRelative

	// TypeDriveRelative is a Windows path with a drive letter but no
	// root separator, e.g. "C:foo"; relative to the drive's current
	// directory
	TypeDriveRelative
)

// String returns the name of the path type
func (t PathType) String() string {
	switch t {
	case TypeRelative:
		return "Relative"
	case TypeAbsolute:
		return "Absolute"
	case TypeUNC:
		return "UNC"
	case TypeDirectoryRelative:
		return "DirectoryRelative"
	case TypeDriveRelative:
		return "DriveRelative"
	default:
		return "Unknown"
	}
}
