// Package uri turns a request target into its canonical parsed form. Three
// target shapes are recognized: origin-form (path and query as sent on the
// request line), absolute-form (a fully qualified URL) and the bare wildcard.
package uri

import (
	"strconv"
	"strings"

	"github.com/strand-web/strand/http/status"
	"github.com/strand-web/strand/internal/qparams"
	"github.com/strand-web/strand/internal/urldecode"
	"github.com/strand-web/strand/kv"
)

// URI is either a decoded path or the asterisk target. The zero value is an
// empty path.
type URI struct {
	path     string
	asterisk bool
}

func Path(path string) URI {
	return URI{path: path}
}

func Star() URI {
	return URI{asterisk: true}
}

// AsPath returns the decoded path, or false for the asterisk target.
func (u URI) AsPath() (string, bool) {
	return u.path, !u.asterisk
}

func (u URI) IsAsterisk() bool {
	return u.asterisk
}

// Fragment distinguishes an absent fragment from a present-but-empty one.
// The zero value is absent.
type Fragment struct {
	value   string
	present bool
}

func FragmentOf(value string) Fragment {
	return Fragment{value: value, present: true}
}

func (f Fragment) Get() (string, bool) {
	return f.value, f.present
}

func (f Fragment) IsPresent() bool {
	return f.present
}

// Host carries the authority of an absolute-form target. It is captured as
// informational metadata only and takes no part in routing.
type Host struct {
	Name string
	// Port is zero when the target names none.
	Port uint16
}

// Parsed is the canonical representation of a request target. Exactly one is
// built per request and destructured into the request context.
type Parsed struct {
	Host     *Host
	URI      URI
	Query    *kv.Storage
	Fragment Fragment
}

// Parse classifies the target and decomposes it. Targets that fit none of the
// three recognized forms report status.ErrMalformedTarget.
func Parse(target string) (Parsed, error) {
	switch {
	case target == "*":
		return Parsed{URI: Star(), Query: kv.New()}, nil
	case len(target) == 0:
		return Parsed{}, status.ErrMalformedTarget
	case target[0] == '/' || target[0] == '?' || target[0] == '#':
		uri, query, fragment := parseOrigin(target)
		return Parsed{URI: uri, Query: query, Fragment: fragment}, nil
	}

	return parseAbsolute(target)
}

// parseOrigin decomposes an origin-form target. The first '?' separates path
// from query; a '#' in the remainder opens the fragment. Everything decodes
// independently, and an empty decoded path normalizes to "/".
func parseOrigin(target string) (URI, *kv.Storage, Fragment) {
	query := kv.New()

	if q := strings.IndexByte(target, '?'); q != -1 {
		rawQuery, fragment, hasFragment := splitFragment(target[q+1:])
		qparams.Parse(rawQuery, qparams.Into(query))

		return Path(decodePath(target[:q])), query, decodeFragment(fragment, hasFragment)
	}

	rawPath, fragment, hasFragment := splitFragment(target)

	return Path(decodePath(rawPath)), query, decodeFragment(fragment, hasFragment)
}

// parseAbsolute strips scheme and authority off a fully qualified URL, then
// hands the remainder to the origin-form parser, so both forms agree on
// path/query/fragment semantics by construction.
func parseAbsolute(target string) (Parsed, error) {
	scheme := strings.Index(target, "://")
	if scheme <= 0 || !validScheme(target[:scheme]) {
		return Parsed{}, status.ErrMalformedTarget
	}

	rest := target[scheme+len("://"):]
	authority := rest
	if i := strings.IndexAny(rest, "/?#"); i != -1 {
		authority, rest = rest[:i], rest[i:]
	} else {
		rest = ""
	}

	host, err := parseAuthority(authority)
	if err != nil {
		return Parsed{}, err
	}

	if len(rest) == 0 {
		rest = "/"
	}

	uri, query, fragment := parseOrigin(rest)

	return Parsed{Host: host, URI: uri, Query: query, Fragment: fragment}, nil
}

func parseAuthority(authority string) (*Host, error) {
	if len(authority) == 0 {
		return nil, status.ErrMalformedTarget
	}

	name := authority
	var port uint16

	colon := strings.LastIndexByte(authority, ':')
	if authority[0] == '[' {
		// bracketed IPv6 literal, the port colon can only follow the bracket
		if end := strings.IndexByte(authority, ']'); colon < end {
			colon = -1
		}
	}

	if colon != -1 {
		parsed, err := strconv.ParseUint(authority[colon+1:], 10, 16)
		if err != nil {
			return nil, status.ErrMalformedTarget
		}

		name, port = authority[:colon], uint16(parsed)
	}

	return &Host{Name: name, Port: port}, nil
}

func validScheme(scheme string) bool {
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return len(scheme) > 0
}

func splitFragment(target string) (rest, fragment string, found bool) {
	if i := strings.IndexByte(target, '#'); i != -1 {
		return target[:i], target[i+1:], true
	}

	return target, "", false
}

func decodePath(raw string) string {
	path := urldecode.Decode(raw)
	if len(path) == 0 {
		return "/"
	}

	return path
}

// decodeFragment keeps a present-but-empty fragment distinguishable from a
// missing one.
func decodeFragment(fragment string, present bool) Fragment {
	if !present {
		return Fragment{}
	}

	return FragmentOf(urldecode.Decode(fragment))
}
