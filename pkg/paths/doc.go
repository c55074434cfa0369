// Package paths implements the cross-platform abstract path model for
// crosspath.
//
// A Path is an immutable value describing a filesystem path under one
// platform convention (POSIX or Windows, including UNC and
// drive-relative forms). Paths are created by a Filesystem context,
// which fixes the platform policy and the working directory used for
// absolute-path resolution. It handles:
//
//   - Parsing and joining of raw path strings
//   - Classification (Absolute, UNC, Relative, DirectoryRelative,
//     DriveRelative)
//   - Component decomposition (name count, element access, subpath)
//   - Normalization, resolution and relativization
//   - Ordering, equality and prefix/suffix queries
//   - file: URL round-tripping
//   - Longest-prefix mount resolution
//
// No operation in this package performs I/O; everything is a pure
// computation over the path value.
//
// # Environment Variables
//
// The default Filesystem respects the following environment variables:
//
//   - CROSSPATH_PLATFORM: Override platform policy ("windows" or "posix")
//   - CROSSPATH_WORKDIR: Override the working directory used by
//     ToAbsolutePath (default: os.Getwd)
//
// # Usage
//
//	import "github.com/JaaJSoft/crosspath/pkg/paths"
//
//	fs := paths.Default()
//	p, err := fs.Parse("/home/user/notes.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p.NameCount()          // 3
//	p.Filename().String()  // "notes.txt"
//	p.Parent().String()    // "/home/user"
//
//	rel, _ := fs.Parse("../pics")
//	q, _ := p.Parent().Resolve(rel) // "/home/user/../pics"
//	q.Normalize().String()          // "/home/pics"
package paths
