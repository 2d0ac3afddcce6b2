package urikit

import (
	"braces.dev/errtrace"

	"github.com/urikit/urikit/internal/constraints"
	"github.com/urikit/urikit/internal/errorutil"
	"github.com/urikit/urikit/internal/grammar"
	"github.com/urikit/urikit/internal/types"
	"github.com/urikit/urikit/internal/util"
)

// ParseOption configures a [Parse] call.
type ParseOption interface {
	applyParse(opts *parseOptions)
}

type parseOptions struct {
	codec Codec
}

type withCodec struct{ codec Codec }

func (o withCodec) applyParse(opts *parseOptions) { opts.codec = o.codec }

// WithCodec sets the codec applied to user information, query keys and
// values, and the fragment after the structural splits. Defaults to [Raw].
func WithCodec(c Codec) ParseOption { return withCodec{c} }

// Parse parses a URI reference from the given input src (string or []byte).
//
// Parsing is all-or-nothing: on any grammar error no partial URI is
// returned. An empty input parses to the degenerate relative reference
// with an empty path. Surrounding whitespace is ignored.
//
// Errors are reported with the sentinels [ErrMalformedURI],
// [ErrInvalidAuthority] and [ErrInvalidPort].
func Parse[T constraints.Byteseq](src T, opts ...ParseOption) (*URI, error) {
	po := parseOptions{codec: Raw}
	for _, o := range opts {
		o.applyParse(&po)
	}
	if po.codec == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil codec"))
	}

	parts, err := grammar.SplitURI(util.TrimSP(string(src)))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	u := &URI{path: parts.Path}
	if parts.HasScheme {
		u.scheme = util.LCase(parts.Scheme)
	}

	if parts.HasAuthority {
		ap, err := grammar.SplitAuthority(parts.Authority)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		a := Host(ap.Host)
		if ap.HasPort {
			a = HostPort(ap.Host, ap.Port)
		}
		if ap.HasUserInfo {
			ui, err := po.codec.Decode(ap.UserInfo)
			if err != nil {
				return nil, errtrace.Wrap(grammar.NewMalformedURIError(err))
			}
			a = a.WithUserInfo(ui)
		}
		u.auth, u.hasAuth = a, true
	}

	if parts.HasQuery {
		pairs := grammar.SplitQuery(parts.Query)
		ps := types.MakeParams(len(pairs))
		for _, kv := range pairs {
			k, err := po.codec.Decode(kv[0])
			if err != nil {
				return nil, errtrace.Wrap(grammar.NewMalformedURIError(err))
			}
			v, err := po.codec.Decode(kv[1])
			if err != nil {
				return nil, errtrace.Wrap(grammar.NewMalformedURIError(err))
			}
			// Last value wins on duplicate keys, the key keeps the
			// position of its first occurrence.
			ps = ps.Set(k, v)
		}
		u.params = ps
	}

	if parts.HasFragment {
		frag, err := po.codec.Decode(parts.Fragment)
		if err != nil {
			return nil, errtrace.Wrap(grammar.NewMalformedURIError(err))
		}
		u.fragment, u.hasFrag = frag, true
	}

	return u, nil
}

// MustParse is like [Parse] but panics on a malformed input.
func MustParse[T constraints.Byteseq](src T, opts ...ParseOption) *URI {
	return util.Must2(Parse(src, opts...))
}
