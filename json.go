package urikit

import (
	"braces.dev/errtrace"
	json "github.com/goccy/go-json"
)

type authorityJSON struct {
	UserInfo *string `json:"user_info"`
	Host     string  `json:"host"`
	Port     *uint16 `json:"port"`
}

type uriJSON struct {
	Scheme     *string        `json:"scheme"`
	Authority  *authorityJSON `json:"authority"`
	Path       string         `json:"path"`
	Parameters Params         `json:"parameters"`
	Fragment   *string        `json:"fragment"`
}

// MarshalJSON encodes the URI as a JSON object with the fixed key order
// scheme, authority, path, parameters, fragment. Absent components encode
// as null; a present authority nests {user_info, host, port} with null
// for absent sub-fields. Parameter keys keep insertion order.
func (u *URI) MarshalJSON() ([]byte, error) {
	if u == nil {
		return []byte("null"), nil
	}

	var v uriJSON
	if scheme, ok := u.Scheme(); ok {
		v.Scheme = &scheme
	}
	if auth, ok := u.Authority(); ok {
		aj := authorityJSON{Host: auth.Host()}
		if ui, ok := auth.UserInfo(); ok {
			aj.UserInfo = &ui
		}
		if port, ok := auth.Port(); ok {
			aj.Port = &port
		}
		v.Authority = &aj
	}
	v.Path = u.path
	v.Parameters = u.params
	if frag, ok := u.Fragment(); ok {
		v.Fragment = &frag
	}

	return errtrace.Wrap2(json.Marshal(v))
}
