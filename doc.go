// Package urikit parses Uniform Resource Identifier references into typed,
// immutable values and serializes them back to canonical text, a
// human-readable summary or JSON.
//
// # Overview
//
// A [URI] holds the five top-level components of a reference: optional
// scheme, optional [Authority] (user information, host, optional port),
// path, optional query [Params] and optional fragment. Components are
// split structurally, left to right, following the URI syntax separators;
// beyond the scheme token no character validation is performed. This is a
// deliberate simplification: urikit is a structural parser, not a strict
// RFC 3986 validator.
//
// # Parsing
//
//	u, err := urikit.Parse("foo://user@example.com:8042/over/there?type=animal#nose")
//	if err != nil {
//	    // handle urikit.ErrMalformedURI, urikit.ErrInvalidAuthority,
//	    // urikit.ErrInvalidPort
//	}
//	scheme, _ := u.Scheme()   // "foo"
//	auth, _ := u.Authority()  // user@example.com:8042
//	port, _ := auth.Port()    // 8042
//
// Parsing is all-or-nothing and stateless: a failed parse returns no
// partial value, and concurrent calls are independent. An empty input is
// the degenerate relative reference with an empty path.
//
// # Query parameters
//
// The query splits on "&" into key=value pairs. [Params] keeps the
// insertion order of each key's first occurrence; a duplicate key
// overwrites the value in place (last value wins). Keys and values are
// stored as literal substrings of the input unless a [Codec] is supplied:
//
//	u, err := urikit.Parse("foo:/p?q=a%20b", urikit.WithCodec(urikit.Percent))
//
// # Serialization
//
// [URI.String] reconstructs the canonical form, omitting absent components
// and re-joining query parameters in sorted key order, so two URIs with
// the same parameters in different input order render identically.
// [URI.Summary] produces a labelled multi-line breakdown for humans.
// [URI.MarshalJSON] exports the fixed-key object
// {scheme, authority, path, parameters, fragment} with null for absent
// components. Serialization of a parsed URI never fails.
//
// # Immutability
//
// URI values are never mutated after construction. Deriving a changed
// instance goes through the copy-on-write methods [URI.WithParam],
// [URI.WithoutParam], [URI.WithoutQuery], [URI.WithFragment] and
// [URI.WithoutFragment].
package urikit
