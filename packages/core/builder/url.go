package builder

import (
	"errors"
	"fmt"
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// ErrInvalidWebServerURL is returned when the effective web server URL is
// not an absolute URL with a host.
var ErrInvalidWebServerURL = errors.New("invalid web server url")

// ParseWebServerURL parses raw with the WHATWG URL parser, the one browsers
// and Node use. The result is normalized the same way: scheme and host are
// lower-cased, IDN hosts converted to punycode, default and zero-padded
// ports normalized and dot segments removed from the path.
// Parse failures and URLs without a host wrap ErrInvalidWebServerURL.
func ParseWebServerURL(raw string) (*whatwg.Url, error) {
	u, err := whatwg.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidWebServerURL, raw, err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w %q: missing host", ErrInvalidWebServerURL, raw)
	}
	return u, nil
}

// Origin returns scheme://host[:port] with no path, query or fragment.
func Origin(u *whatwg.Url) string {
	return u.Protocol() + "//" + u.Host()
}

// BaseURL returns the full URL with exactly one trailing slash appended
// when it does not already end in one.
func BaseURL(u *whatwg.Url) string {
	href := u.Href(false)
	if !strings.HasSuffix(href, "/") {
		href += "/"
	}
	return href
}
