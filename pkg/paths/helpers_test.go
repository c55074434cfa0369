package paths_test

import (
	"testing"

	"github.com/JaaJSoft/crosspath/pkg/paths"
	"github.com/JaaJSoft/crosspath/pkg/platform"
	"github.com/stretchr/testify/require"
)

// winFS returns a Windows-convention filesystem context rooted at C:\work
func winFS(t *testing.T) *paths.Filesystem {
	t.Helper()
	fs, err := paths.New(platform.Windows(), `C:\work`)
	require.NoError(t, err)
	return fs
}

// posixFS returns a POSIX-convention filesystem context rooted at /work
func posixFS(t *testing.T) *paths.Filesystem {
	t.Helper()
	fs, err := paths.New(platform.POSIX(), "/work")
	require.NoError(t, err)
	return fs
}

// mustParse parses raw or fails the test
func mustParse(t *testing.T, fs *paths.Filesystem, raw string) *paths.Path {
	t.Helper()
	p, err := fs.Parse(raw)
	require.NoError(t, err, "Parse(%q)", raw)
	return p
}
