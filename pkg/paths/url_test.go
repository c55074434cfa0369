// pkg/paths/url_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test file: URL encoding, decoding and their round-trip law

package paths_test

import (
	"net/url"
	"testing"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToURL(t *testing.T) {
	win := winFS(t)
	posix := posixFS(t)

	tests := []struct {
		name string
		win  bool
		raw  string
		want string
	}{
		{name: "windows absolute", win: true, raw: `C:\Users\me`, want: "file:///C:/Users/me"},
		{name: "windows relative resolves first", win: true, raw: "notes.txt", want: "file:///C:/work/notes.txt"},
		{name: "unc server in authority", win: true, raw: `\\server\share\x`, want: "file://server/share/x"},
		{name: "posix absolute", raw: "/home/user", want: "file:///home/user"},
		{name: "posix escaping", raw: "/home/a b", want: "file:///home/a%20b"},
		{name: "posix relative resolves first", raw: "notes.txt", want: "file:///work/notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := posix
			if tt.win {
				fs = win
			}
			p := mustParse(t, fs, tt.raw)
			u, err := p.ToURL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestFromURL(t *testing.T) {
	win := winFS(t)
	posix := posixFS(t)

	tests := []struct {
		name string
		win  bool
		url  string
		want string
	}{
		{name: "posix", url: "file:///home/user", want: "/home/user"},
		{name: "posix escaped", url: "file:///home/a%20b", want: "/home/a b"},
		{name: "windows drive", win: true, url: "file:///C:/Users/me", want: `C:\Users\me`},
		{name: "unc", win: true, url: "file://server/share/x", want: `\\server\share\x`},
		{name: "scheme case insensitive", url: "FILE:///etc", want: "/etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := posix
			if tt.win {
				fs = win
			}
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			p, err := fs.FromURL(u)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestFromURLRejections(t *testing.T) {
	win := winFS(t)
	posix := posixFS(t)

	tests := []struct {
		name string
		win  bool
		url  string
	}{
		{name: "wrong scheme", url: "http://host/x"},
		{name: "query", url: "file:///x?y=1"},
		{name: "fragment", url: "file:///x#y"},
		{name: "authority on posix", url: "file://server/share/x"},
		{name: "empty path", url: "file://"},
		{name: "not absolute on windows", win: true, url: "file:///foo"},
		{name: "colon without a drive letter", win: true, url: "file:///5:/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := posix
			if tt.win {
				fs = win
			}
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			_, err = fs.FromURL(u)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument), "got %v", err)
		})
	}

	_, err := posix.FromURL(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNullArgument))
}

func TestURLRoundTrip(t *testing.T) {
	win := winFS(t)
	posix := posixFS(t)

	winInputs := []string{`C:\Users\me`, `\\server\share\x`, "rel", `C:\a b\c`}
	for _, raw := range winInputs {
		p := mustParse(t, win, raw)
		u, err := p.ToURL()
		require.NoError(t, err)
		back, err := win.FromURL(u)
		require.NoError(t, err)
		abs, err := p.ToAbsolutePath()
		require.NoError(t, err)
		assert.True(t, back.Equals(abs), "round trip of %q via %q: %q != %q", raw, u, back, abs)
	}

	posixInputs := []string{"/home/user", "rel", "/a b/c"}
	for _, raw := range posixInputs {
		p := mustParse(t, posix, raw)
		u, err := p.ToURL()
		require.NoError(t, err)
		back, err := posix.FromURL(u)
		require.NoError(t, err)
		abs, err := p.ToAbsolutePath()
		require.NoError(t, err)
		assert.True(t, back.Equals(abs), "round trip of %q via %q", raw, u)
	}
}
