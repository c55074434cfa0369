package paths

import (
	"net/url"
	"strings"

	"github.com/JaaJSoft/crosspath/pkg/errors"
	"github.com/JaaJSoft/crosspath/pkg/logging"
	"github.com/JaaJSoft/crosspath/pkg/platform"
)

// ToURL encodes the path as a file: URL. The path is first resolved
// against the filesystem's working directory; UNC paths put the server
// name in the URL authority.
func (p *Path) ToURL() (*url.URL, error) {
	abs, err := p.ToAbsolutePath()
	if err != nil {
		return nil, err
	}

	sep := p.fs.policy.Separator()
	slashed := abs.body
	if sep != '/' {
		slashed = strings.ReplaceAll(slashed, string(sep), "/")
	}

	u := &url.URL{Scheme: "file"}
	if abs.ptype == TypeUNC {
		// //server/share/... -> authority server, path /share/...
		trimmed := strings.TrimPrefix(slashed, "//")
		idx := strings.IndexByte(trimmed, '/')
		u.Host = trimmed[:idx]
		u.Path = trimmed[idx:]
	} else {
		if !strings.HasPrefix(slashed, "/") {
			// C:\foo -> /C:/foo
			slashed = "/" + slashed
		}
		u.Path = slashed
	}
	return u, nil
}

// FromURL decodes a file: URL into a structured path. The scheme must
// be "file", the URL must carry no query or fragment, and the
// authority must be empty or a UNC server name; the decoded path must
// be absolute.
func (fs *Filesystem) FromURL(u *url.URL) (*Path, error) {
	if u == nil {
		return nil, errors.New(errors.ErrNullArgument, "url is required")
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return nil, errors.Newf(errors.ErrInvalidArgument, "url scheme %q is not file", u.Scheme).
			WithDetail("scheme", u.Scheme)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, errors.New(errors.ErrInvalidArgument, "file url must not carry a query or fragment").
			WithDetail("url", u.String())
	}

	raw := u.Path
	if u.Host != "" {
		if !fs.policy.SupportsDrives() {
			return nil, errors.Newf(errors.ErrInvalidArgument, "url authority %q is not supported on %s", u.Host, fs.policy.Name()).
				WithDetail("authority", u.Host)
		}
		raw = "//" + u.Host + raw
	} else if len(raw) >= 3 && raw[0] == '/' && platform.IsDriveLetter(raw[1]) && raw[2] == ':' && fs.policy.SupportsDrives() {
		// /C:/foo -> C:/foo
		raw = raw[1:]
	}
	if raw == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "file url has an empty path").
			WithDetail("url", u.String())
	}

	p, err := fs.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidArgument, "file url %q does not name a valid path", u.String())
	}
	if !p.IsAbsolute() {
		logger := logging.GetLogger("paths.url")
		logger.Debug().
			Str("url", u.String()).
			Str("parsed", p.String()).
			Msg("decoded file url is not absolute")
		return nil, errors.Newf(errors.ErrInvalidArgument, "file url %q does not name an absolute path", u.String()).
			WithDetail("type", p.Type().String())
	}
	return p, nil
}
