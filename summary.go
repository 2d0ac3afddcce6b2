package urikit

import (
	"io"

	"braces.dev/errtrace"

	"github.com/urikit/urikit/internal/ioutil"
	"github.com/urikit/urikit/internal/util"
)

// SummaryTo writes a multi-line human-readable breakdown of the URI to
// the provided writer: the canonical form, a blank line, then one
// labelled line per present component. Absent components are omitted.
// Query parameters are listed in insertion order.
func (u *URI) SummaryTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprint(u.String(), "\n\n")
	if scheme, ok := u.Scheme(); ok {
		cw.Fprintf("* Scheme name: '%s'\n", scheme)
	}
	if auth, ok := u.Authority(); ok {
		cw.Fprintf("* Authority path: '%s'\n", auth)
		cw.Fprintf("  . Hostname: '%s'\n", auth.Host())
		if ui, ok := auth.UserInfo(); ok {
			cw.Fprintf("  . User information = '%s'\n", ui)
		}
		if port, ok := auth.Port(); ok {
			cw.Fprintf("  . Port = '%d'\n", port)
		}
	}
	cw.Fprintf("* Path: '%s'\n", u.path)
	if u.params.Len() > 0 {
		cw.Fprint("* Query parameters:\n")
		for k, v := range u.params.All() {
			cw.Fprintf("  . %s = '%s'\n", k, v)
		}
	}
	if frag, ok := u.Fragment(); ok {
		cw.Fprintf("* Fragment: '%s'\n", frag)
	}
	return errtrace.Wrap2(cw.Result())
}

// Summary returns the multi-line human-readable breakdown of the URI.
func (u *URI) Summary() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.SummaryTo(sb) //nolint:errcheck
	return sb.String()
}
