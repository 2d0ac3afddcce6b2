package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/urikit/internal/constraints"
)

// Parts holds the five top-level segments of a URI reference.
// Presence flags distinguish an absent component from a present empty one.
type Parts struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string

	HasScheme    bool
	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

// AuthorityParts holds the decomposed authority component.
type AuthorityParts struct {
	UserInfo    string
	Host        string
	Port        uint16
	HasUserInfo bool
	HasPort     bool
}

// SplitURI splits a raw URI reference into its top-level segments,
// consuming the input left to right. Beyond the scheme token no
// character validation is performed: this is a structural split,
// not a strict RFC 3986 validator.
func SplitURI[T constraints.Byteseq](src T) (Parts, error) {
	s := string(src)
	var p Parts

	// A ":" occurring before any "/", "?" or "#" terminates the scheme
	// token. The token must match the scheme grammar.
	if i := strings.IndexAny(s, ":/?#"); i >= 0 && s[i] == ':' {
		tok := s[:i]
		if !IsScheme(tok) {
			return Parts{}, errtrace.Wrap(NewMalformedURIError("invalid scheme %q", tok))
		}
		p.Scheme, p.HasScheme = tok, true
		s = s[i+1:]
	}

	// The "//" marker opens the authority, running to the next
	// "/", "?", "#" or end of input.
	if strings.HasPrefix(s, "//") {
		s = s[2:]
		end := strings.IndexAny(s, "/?#")
		if end < 0 {
			end = len(s)
		}
		p.Authority, p.HasAuthority = s[:end], true
		s = s[end:]
	}

	end := strings.IndexAny(s, "?#")
	if end < 0 {
		end = len(s)
	}
	p.Path = s[:end]
	s = s[end:]

	if strings.HasPrefix(s, "?") {
		s = s[1:]
		end = strings.IndexByte(s, '#')
		if end < 0 {
			end = len(s)
		}
		p.Query, p.HasQuery = s[:end], true
		s = s[end:]
	}

	if strings.HasPrefix(s, "#") {
		p.Fragment, p.HasFragment = s[1:], true
	}

	return p, nil
}

// SplitAuthority decomposes an authority segment into user-info, host and
// port. The user-info runs to the last "@"; the port is split off at the
// last ":" unless the host is a bracketed IP literal without a port.
func SplitAuthority[T constraints.Byteseq](src T) (AuthorityParts, error) {
	s := string(src)
	var ap AuthorityParts

	if i := strings.LastIndexByte(s, '@'); i >= 0 {
		ap.UserInfo, ap.HasUserInfo = s[:i], true
		s = s[i+1:]
	}

	var portTxt string
	var hasPortTxt bool
	if strings.HasPrefix(s, "[") {
		// Colons inside a bracketed IP literal never open a port.
		if i := strings.Index(s, "]:"); i >= 0 {
			portTxt, hasPortTxt = s[i+2:], true
			s = s[:i+1]
		}
	} else if i := strings.LastIndexByte(s, ':'); i >= 0 {
		portTxt, hasPortTxt = s[i+1:], true
		s = s[:i]
	}

	if hasPortTxt {
		port, err := strconv.ParseUint(portTxt, 10, 16)
		if err != nil {
			return AuthorityParts{}, errtrace.Wrap(NewInvalidPortError(
				"port %q is not an unsigned integer in range 0-65535", portTxt))
		}
		ap.Port, ap.HasPort = uint16(port), true
	}

	// "[]" is an empty host in brackets.
	if s == "" || s == "[]" {
		return AuthorityParts{}, errtrace.Wrap(NewInvalidAuthorityError("empty host"))
	}
	ap.Host = s

	return ap, nil
}

// SplitQuery splits a query segment on "&" into key/value pairs, splitting
// each pair on the first "=". The value is empty when "=" is absent.
// Empty pairs produced by consecutive separators are dropped.
func SplitQuery[T constraints.Byteseq](src T) [][2]string {
	s := string(src)
	if s == "" {
		return nil
	}

	pairs := make([][2]string, 0, strings.Count(s, "&")+1)
	for pair := range strings.SplitSeq(s, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs
}
