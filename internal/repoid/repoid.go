// Package repoid expands abbreviated repository references into remote URLs.
//
// A reference is qualified step by step, re-classified after every step by
// the number of "/" it contains:
//
//	bar                    -> <user>/bar
//	foo/bar                -> <host>/foo/bar
//	github.com/foo/bar     -> https://github.com/foo/bar
//	                       or ssh://git@github.com/foo/bar
//	scheme://host/path     -> parsed as-is
//
// Every step adds at least one separator, so expansion ends after at most
// three steps.
package repoid

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultHost is the remote host assumed for owner/name references.
const DefaultHost = "github.com"

// ErrInvalidReference is returned when a reference cannot be expanded into an
// absolute URL.
var ErrInvalidReference = errors.New("invalid repository reference")

// Scheme selects the transport used for inferred URLs.
type Scheme int

const (
	// HTTPS infers https:// URLs.
	HTTPS Scheme = iota
	// SSH infers ssh:// URLs, adding the "git" login unless one is given.
	SSH
)

func (s Scheme) String() string {
	switch s {
	case SSH:
		return "ssh"
	default:
		return "https"
	}
}

// SchemeFor returns SSH when ssh is set and HTTPS otherwise.
func SchemeFor(ssh bool) Scheme {
	if ssh {
		return SSH
	}
	return HTTPS
}

// Normalizer expands references against a default host.
type Normalizer struct {
	// Host is used for owner/name references. Empty means DefaultHost.
	Host string
}

// Normalize expands ref using DefaultHost.
func Normalize(ref, username string, scheme Scheme) (*url.URL, error) {
	return Normalizer{}.Normalize(ref, username, scheme)
}

// Normalize expands ref into a URL. username fills in the owner of bare names.
func (n Normalizer) Normalize(ref, username string, scheme Scheme) (*url.URL, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}
	return n.qualify(scpToURL(ref), username, scheme)
}

func (n Normalizer) qualify(ref, username string, scheme Scheme) (*url.URL, error) {
	switch strings.Count(ref, "/") {
	case 0:
		return n.qualify(username+"/"+ref, username, scheme)
	case 1:
		return n.qualify(n.host()+"/"+ref, username, scheme)
	case 2:
		return n.qualify(withScheme(ref, scheme), username, scheme)
	default:
		return parse(ref)
	}
}

func (n Normalizer) host() string {
	if n.Host == "" {
		return DefaultHost
	}
	return n.Host
}

func withScheme(ref string, scheme Scheme) string {
	if scheme == HTTPS {
		return "https://" + ref
	}
	if strings.Contains(ref, "@") {
		return "ssh://" + ref
	}
	return "ssh://git@" + ref
}

func parse(ref string) (*url.URL, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidReference, ref, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w %q: relative URL without a scheme", ErrInvalidReference, ref)
	}
	return u, nil
}

// scpLike matches git's scp-style syntax: user@host:path.
var scpLike = regexp.MustCompile(`^([^@/:]+)@([^@/:]+):([^/].*)$`)

// scpToURL rewrites user@host:owner/name into ssh://user@host/owner/name.
// Other references are returned unchanged.
func scpToURL(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	m := scpLike.FindStringSubmatch(ref)
	if m == nil {
		return ref
	}
	return "ssh://" + m[1] + "@" + m[2] + "/" + m[3]
}
