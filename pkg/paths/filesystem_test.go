// pkg/paths/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test filesystem context construction

package paths_test

import (
	"testing"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/paths"
	"github.com/JaaJSoft/crosspath/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilesystem(t *testing.T) {
	fs, err := paths.New(platform.Windows(), `C:\work`)
	require.NoError(t, err)
	assert.Equal(t, byte('\\'), fs.Separator())
	assert.Equal(t, platform.Windows(), fs.Policy())
	require.NotNil(t, fs.WorkingDir())
	assert.Equal(t, `C:\work`, fs.WorkingDir().String())
}

func TestNewFilesystemWithoutWorkDir(t *testing.T) {
	fs, err := paths.New(platform.POSIX(), "")
	require.NoError(t, err)
	assert.Nil(t, fs.WorkingDir())

	// absolute paths still work
	p := mustParse(t, fs, "/etc")
	abs, err := p.ToAbsolutePath()
	require.NoError(t, err)
	assert.Same(t, p, abs)

	// relative paths cannot be made absolute
	rel := mustParse(t, fs, "etc")
	_, err = rel.ToAbsolutePath()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestNewFilesystemRejections(t *testing.T) {
	_, err := paths.New(nil, "/work")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNullArgument))

	_, err = paths.New(platform.POSIX(), "relative/dir")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))

	// a POSIX-style working dir is not absolute under a Windows policy
	_, err = paths.New(platform.Windows(), "/work")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}
