package types

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/urikit/urikit/internal/constraints"
	"github.com/urikit/urikit/internal/grammar"
	"github.com/urikit/urikit/internal/util"
)

// Authority is a container for the "//"-prefixed URI component:
// optional user information, a host and an optional port.
// The zero Authority represents an absent component.
type Authority struct {
	userInfo string
	host     string
	ip       net.IP
	port     uint16
	hasUser  bool
	hasPort  bool
}

// Host returns an [Authority] containing the provided host and no port.
func Host(host string) Authority {
	host = strings.Trim(host, "[]")
	ip := net.ParseIP(host)
	if v := ip.To4(); v != nil {
		ip = v
	}
	return Authority{
		host: host,
		ip:   ip,
	}
}

// HostPort returns an [Authority] containing the provided host and port.
func HostPort(host string, port uint16) Authority {
	a := Host(host)
	a.port = port
	a.hasPort = true
	return a
}

// WithUserInfo returns a copy of the authority carrying the provided
// user information. The user information is kept as opaque text;
// a "username:password" pair is not split further.
func (a Authority) WithUserInfo(userInfo string) Authority {
	a.userInfo = userInfo
	a.hasUser = true
	return a
}

// ParseAuthority parses an authority string into an [Authority].
func ParseAuthority[T constraints.Byteseq](s T) (Authority, error) {
	ap, err := grammar.SplitAuthority(s)
	if err != nil {
		return Authority{}, errtrace.Wrap(err)
	}

	var a Authority
	if ap.HasPort {
		a = HostPort(ap.Host, ap.Port)
	} else {
		a = Host(ap.Host)
	}
	if ap.HasUserInfo {
		a = a.WithUserInfo(ap.UserInfo)
	}
	return a, nil
}

// UserInfo returns the user information, in case it is set, and a bool
// flag indicating whether it is set.
func (a Authority) UserInfo() (string, bool) { return a.userInfo, a.hasUser }

// Host returns the hostname portion of the authority as provided during
// construction or parsing, without IP literal brackets.
func (a Authority) Host() string { return a.host }

// IP returns the parsed IP representation when the host is an IP literal,
// otherwise nil. The returned slice is a copy.
func (a Authority) IP() net.IP { return slices.Clone(a.ip) }

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) Port() (uint16, bool) { return a.port, a.hasPort }

// String formats the authority as [userinfo "@"] host [":" port],
// adding brackets for IPv6 literals when required.
func (a Authority) String() string {
	var host string
	if a.ip == nil {
		host = a.host
	} else {
		host = a.ip.String()
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if a.hasUser {
		sb.WriteString(a.userInfo)
		sb.WriteString("@")
	}
	if a.hasPort {
		sb.WriteString(net.JoinHostPort(host, strconv.Itoa(int(a.port))))
	} else {
		if strings.Contains(host, ":") {
			host = "[" + host + "]"
		}
		sb.WriteString(host)
	}
	return sb.String()
}

// Format implements fmt.Formatter to support custom formatting verbs for Authority values.
func (a Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, a.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}

		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authority(a))
		return
	}
}

// Clone returns a deep copy of the authority including the underlying IP slice.
func (a Authority) Clone() Authority {
	a.ip = slices.Clone(a.ip)
	return a
}

// Equal reports whether the authority equals the provided value,
// accepting Authority and *Authority. Hosts compare case-insensitively,
// user information compares verbatim.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	var hostMatch bool
	switch {
	case a.ip == nil && other.ip == nil:
		hostMatch = util.EqFold(a.host, other.host)
	case a.ip != nil && other.ip != nil:
		hostMatch = a.ip.Equal(other.ip)
	default:
		return false
	}

	return hostMatch &&
		a.userInfo == other.userInfo && a.hasUser == other.hasUser &&
		a.port == other.port && a.hasPort == other.hasPort
}

// IsValid reports whether the authority contains a non-empty host.
func (a Authority) IsValid() bool { return a.host != "" }

// IsZero reports whether the authority has zero user, host, IP and port information.
func (a Authority) IsZero() bool {
	return a.host == "" && a.ip == nil && !a.hasUser && !a.hasPort
}

// MarshalText encodes the authority into its textual representation.
func (a Authority) MarshalText() (text []byte, err error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a textual representation of an authority into the receiver.
func (a *Authority) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Authority{}
		return nil
	}
	var err error
	*a, err = ParseAuthority(text)
	if errors.Is(err, grammar.ErrInvalidAuthority) || errors.Is(err, grammar.ErrInvalidPort) {
		*a = Authority{}
	}
	return errtrace.Wrap(err)
}
