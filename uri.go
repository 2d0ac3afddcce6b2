package urikit

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/urikit/urikit/internal/constraints"
	"github.com/urikit/urikit/internal/grammar"
	"github.com/urikit/urikit/internal/ioutil"
	"github.com/urikit/urikit/internal/types"
	"github.com/urikit/urikit/internal/util"
)

// Authority represents the "//"-prefixed URI component with optional
// user information, a host and an optional port.
type Authority = types.Authority

// Host creates an Authority from a hostname without a port.
func Host(host string) Authority { return types.Host(host) }

// HostPort creates an Authority from a hostname and port.
func HostPort(host string, port uint16) Authority { return types.HostPort(host, port) }

// ParseAuthority parses an authority component from the given input s (string or []byte).
func ParseAuthority[T constraints.Byteseq](s T) (Authority, error) {
	return errtrace.Wrap2(types.ParseAuthority(s))
}

// Params represents query parameters as an ordered string-to-string mapping.
type Params = types.Params

// MakeParams returns an empty Params with capacity for size pairs.
func MakeParams(size int) Params { return types.MakeParams(size) }

// RenderOptions contains options for rendering URIs.
type RenderOptions = types.RenderOptions

// URI is an immutable parsed URI reference. It holds the five top-level
// components: optional scheme, optional authority, path (always present,
// possibly empty), optional query mapping and optional fragment.
//
// Instances are constructed by [Parse] and never mutated afterwards;
// the With* methods derive new instances.
type URI struct {
	scheme   string
	auth     Authority
	path     string
	params   Params
	fragment string
	hasAuth  bool
	hasFrag  bool
}

var _ interface {
	types.Renderer
	types.ValidFlag
	types.Equalable
	types.Cloneable[*URI]
} = (*URI)(nil)

// Scheme returns the URI scheme, lowercased at parse time, and a bool
// flag indicating whether the scheme is present.
func (u *URI) Scheme() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.scheme, u.scheme != ""
}

// Authority returns the authority component and a bool flag indicating
// whether it is present.
func (u *URI) Authority() (Authority, bool) {
	if u == nil {
		return Authority{}, false
	}
	return u.auth, u.hasAuth
}

// Path returns the path component. The path is always present and may be empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns a copy of the query parameter mapping. The zero Params
// is returned when the URI has no query component.
func (u *URI) Query() Params {
	if u == nil {
		return Params{}
	}
	return u.params.Clone()
}

// Fragment returns the fragment, possibly empty, and a bool flag
// indicating whether it is present.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment, u.hasFrag
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.auth = u.auth.Clone()
	u2.params = u.params.Clone()
	return &u2
}

// WithParam returns a copy of the URI with the query parameter key set
// to value. An existing key keeps its position in the mapping order.
func (u *URI) WithParam(key, value string) *URI {
	u2 := u.Clone()
	if u2 == nil {
		return nil
	}
	u2.params = u2.params.Set(key, value)
	return u2
}

// WithoutParam returns a copy of the URI with the query parameter key removed.
func (u *URI) WithoutParam(key string) *URI {
	u2 := u.Clone()
	if u2 == nil {
		return nil
	}
	u2.params = u2.params.Del(key)
	return u2
}

// WithoutQuery returns a copy of the URI with no query component.
func (u *URI) WithoutQuery() *URI {
	u2 := u.Clone()
	if u2 == nil {
		return nil
	}
	u2.params = Params{}
	return u2
}

// WithFragment returns a copy of the URI with the given fragment.
func (u *URI) WithFragment(fragment string) *URI {
	u2 := u.Clone()
	if u2 == nil {
		return nil
	}
	u2.fragment, u2.hasFrag = fragment, true
	return u2
}

// WithoutFragment returns a copy of the URI with no fragment.
func (u *URI) WithoutFragment() *URI {
	u2 := u.Clone()
	if u2 == nil {
		return nil
	}
	u2.fragment, u2.hasFrag = "", false
	return u2
}

// RenderTo writes the canonical string form of the URI to the provided
// writer: scheme ":" "//" authority path "?" query "#" fragment, with
// absent components and their separators omitted. Query parameters are
// re-joined in sorted key order unless opts.RawQueryOrder is set.
func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.Fprint(u.scheme, ":")
	}
	if u.hasAuth {
		cw.Fprint("//", u.auth)
	}
	cw.Fprint(u.path)
	cw.Call(func(w io.Writer) (int, error) { return u.renderQuery(w, opts) })
	if u.hasFrag {
		cw.Fprint("#", u.fragment)
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderQuery(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u.params.Len() == 0 {
		return 0, nil
	}

	keys := u.params.SortedKeys()
	if opts != nil && opts.RawQueryOrder {
		keys = u.params.Keys()
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?")
	for i, k := range keys {
		if i > 0 {
			cw.Fprint("&")
		}
		v, _ := u.params.Get(k)
		cw.Fprint(k, "=", v)
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical string form of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string form of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal compares this URI with another for equality. Schemes and hosts
// compare case-insensitively, the remaining components verbatim; query
// mappings compare as unordered key-value sets.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.scheme, other.scheme) &&
		u.hasAuth == other.hasAuth &&
		u.auth.Equal(other.auth) &&
		u.path == other.path &&
		u.params.Equal(other.params) &&
		u.hasFrag == other.hasFrag &&
		u.fragment == other.fragment
}

// IsValid checks whether the URI is syntactically valid: a present scheme
// matches the scheme grammar and a present authority has a non-empty host.
func (u *URI) IsValid() bool {
	return u != nil &&
		(u.scheme == "" || grammar.IsScheme(u.scheme)) &&
		(!u.hasAuth || u.auth.IsValid())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}
