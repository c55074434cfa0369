package paths

import (
	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/logging"
)

// FindMount returns the mount point containing query: among all mounts
// that query starts with, the one with the most name elements wins,
// first encountered on a tie. The mount set is supplied by the caller;
// this package never enumerates volumes.
func FindMount(query *Path, mounts []*Path) (*Path, error) {
	if query == nil {
		return nil, errors.New(errors.ErrNullArgument, "query path is required")
	}

	var best *Path
	for _, m := range mounts {
		if m == nil {
			continue
		}
		if query.StartsWith(m) {
			if best == nil || m.NameCount() > best.NameCount() {
				best = m
			}
		}
	}

	if best == nil {
		return nil, errors.Newf(errors.ErrNoFileStore, "no mount point contains %q", query.String()).
			WithDetail("path", query.String())
	}

	logger := logging.GetLogger("paths.mount")
	logger.Debug().
		Str("path", query.String()).
		Str("mount", best.String()).
		Msg("resolved mount point")

	return best, nil
}
