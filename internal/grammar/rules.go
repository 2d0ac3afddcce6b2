package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"
)

func init() {
	abnf.EnableNodeCache(1024)
}

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
// RFC 3986 Section 3.1.
var scheme = abnf.Concat(
	"scheme",
	abnf_core.Operators().ALPHA,
	abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`, abnf.Alt(
		`ALPHA / DIGIT / "+" / "-" / "."`,
		abnf_core.Operators().ALPHA,
		abnf_core.Operators().DIGIT,
		abnf.Literal(`"+"`, []byte{'+'}),
		abnf.Literal(`"-"`, []byte{'-'}),
		abnf.Literal(`"."`, []byte{'.'}),
	)),
)

func Scheme(s []byte, ns *abnf.Nodes) error {
	return scheme(s, 0, ns) //errtrace:skip
}
