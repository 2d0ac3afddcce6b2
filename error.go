package urikit

import (
	"github.com/urikit/urikit/internal/errorutil"
	"github.com/urikit/urikit/internal/grammar"
)

// Error is the error kind raised by [Parse]. It satisfies the
// `interface{ Grammar() bool }` marker for grammar errors.
type Error = grammar.Error

const (
	// ErrMalformedURI is returned when the scheme token violates the
	// scheme grammar ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	ErrMalformedURI = grammar.ErrMalformedURI
	// ErrInvalidAuthority is returned when the "//" marker is present
	// but the host component is empty.
	ErrInvalidAuthority = grammar.ErrInvalidAuthority
	// ErrInvalidPort is returned when a port segment is present but is
	// not an unsigned integer in range 0-65535.
	ErrInvalidPort = grammar.ErrInvalidPort
)

// ErrInvalidArgument is returned on invalid call arguments, such as a
// nil codec. It is not a grammar error.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

// IsGrammarError reports whether err is an input grammar error rather
// than a usage error.
func IsGrammarError(err error) bool {
	return errorutil.IsGrammarErr(err)
}
