// Package grammar implements the structural URI grammar: splitting a raw
// reference into its top-level components and validating the scheme token.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"

	"github.com/urikit/urikit/internal/constraints"
	"github.com/urikit/urikit/internal/errorutil"
)

// Error is a grammar error kind.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrMalformedURI reports a scheme token violating the scheme grammar.
	ErrMalformedURI Error = "malformed uri"
	// ErrInvalidAuthority reports an authority marker with an empty host.
	ErrInvalidAuthority Error = "invalid authority"
	// ErrInvalidPort reports a port segment that is not an unsigned integer in 0-65535.
	ErrInvalidPort Error = "invalid port"
)

func NewMalformedURIError(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedURI, args...) //errtrace:skip
}

func NewInvalidAuthorityError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidAuthority, args...) //errtrace:skip
}

func NewInvalidPortError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidPort, args...) //errtrace:skip
}

// IsScheme reports whether s matches scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := Scheme([]byte(s), ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}
