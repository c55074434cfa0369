package paths

import (
	"os"
	"sync"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/logging"
	"github.com/JaaJSoft/crosspath/pkg/platform"
)

// Environment variable names
const (
	// EnvPlatform overrides the platform policy of the default
	// filesystem context ("windows" or "posix")
	EnvPlatform = "CROSSPATH_PLATFORM"

	// EnvWorkDir overrides the working directory of the default
	// filesystem context
	EnvWorkDir = "CROSSPATH_WORKDIR"
)

// Filesystem is the owning context for paths: the platform policy and
// the working directory that ToAbsolutePath resolves against. It is
// read-only after construction; every Path holds a reference to the
// Filesystem that created it.
type Filesystem struct {
	policy  *platform.Policy
	workDir *Path
}

// New creates a Filesystem with the given policy and working
// directory. The working directory must parse as an absolute path
// under the policy; it may be empty, in which case ToAbsolutePath and
// ToURL fail for non-absolute paths.
func New(policy *platform.Policy, workDir string) (*Filesystem, error) {
	if policy == nil {
		return nil, errors.New(errors.ErrNullArgument, "platform policy is required")
	}

	fs := &Filesystem{policy: policy}

	if workDir != "" {
		wd, err := fs.Parse(workDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidArgument, "invalid working directory %q", workDir)
		}
		if !wd.IsAbsolute() {
			return nil, errors.Newf(errors.ErrInvalidArgument, "working directory %q is not absolute", workDir).
				WithDetail("type", wd.Type().String())
		}
		fs.workDir = wd
	}

	logger := logging.GetLogger("paths.filesystem")
	logger.Debug().
		Str("platform", policy.Name()).
		Str("workDir", workDir).
		Msg("filesystem context created")

	return fs, nil
}

var (
	defaultFS   *Filesystem
	defaultOnce sync.Once
)

// Default returns the process-wide filesystem context. The platform
// policy defaults to the running OS and the working directory to
// os.Getwd; both can be overridden through CROSSPATH_PLATFORM and
// CROSSPATH_WORKDIR. The context is initialized once and never
// mutated.
func Default() *Filesystem {
	defaultOnce.Do(func() {
		policy := platform.Native()
		if name := os.Getenv(EnvPlatform); name != "" {
			if p, err := platform.FromName(name); err == nil {
				policy = p
			}
		}

		workDir := os.Getenv(EnvWorkDir)
		if workDir == "" {
			workDir, _ = os.Getwd()
		}

		fs, err := New(policy, workDir)
		if err != nil {
			// The working directory does not fit the selected policy;
			// fall back to a context without one.
			fs, _ = New(policy, "")
		}
		defaultFS = fs
	})
	return defaultFS
}

// Policy returns the platform policy of this filesystem
func (fs *Filesystem) Policy() *platform.Policy {
	return fs.policy
}

// Separator returns the platform path separator
func (fs *Filesystem) Separator() byte {
	return fs.policy.Separator()
}

// WorkingDir returns the working directory path, or nil if the
// filesystem was created without one
func (fs *Filesystem) WorkingDir() *Path {
	return fs.workDir
}

// String returns a short description of the filesystem context
func (fs *Filesystem) String() string {
	if fs.workDir == nil {
		return "crosspath(" + fs.policy.Name() + ")"
	}
	return "crosspath(" + fs.policy.Name() + ", " + fs.workDir.String() + ")"
}
