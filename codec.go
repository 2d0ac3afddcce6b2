package urikit

import "github.com/urikit/urikit/internal/grammar"

// Codec transforms component text between its wire form and its decoded
// form. The grammar splitting itself is codec-agnostic: a codec supplied
// with [WithCodec] is applied by [Parse] to the user information, the
// query keys and values, and the fragment after the structural splits.
type Codec interface {
	// Encode converts decoded component text to its wire form.
	Encode(s string) string
	// Decode converts wire-form component text to its decoded form.
	Decode(s string) (string, error)
}

// Raw is the identity codec: component text is kept as the literal
// substrings of the input. It is the default codec of [Parse].
var Raw Codec = rawCodec{}

type rawCodec struct{}

func (rawCodec) Encode(s string) string { return s }

func (rawCodec) Decode(s string) (string, error) { return s, nil }

// Percent is a percent-encoding codec. Encode escapes all non-unreserved
// bytes except "%", Decode resolves valid %XX triplets and leaves stray
// "%" bytes untouched.
var Percent Codec = percentCodec{}

type percentCodec struct{}

func (percentCodec) Encode(s string) string { return grammar.Escape(s, nil) }

func (percentCodec) Decode(s string) (string, error) { return grammar.Unescape(s), nil }
