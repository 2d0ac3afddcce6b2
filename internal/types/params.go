package types

import (
	"iter"
	"maps"
	"slices"

	"braces.dev/errtrace"
	json "github.com/goccy/go-json"

	"github.com/urikit/urikit/internal/util"
)

// Params is an ordered string-to-string mapping for query parameters.
// Keys keep the insertion order of their first occurrence; setting an
// existing key overwrites its value in place (last value wins).
// Keys are literal, case-sensitive text.
//
// The zero Params represents an absent query component and is
// distinguishable from a present empty one created with [MakeParams].
type Params struct {
	keys []string
	vals map[string]string
}

// MakeParams returns an empty Params with capacity for size pairs.
func MakeParams(size int) Params {
	return Params{vals: make(map[string]string, size)}
}

// Get returns the value associated with the given key and a bool flag
// indicating whether the key is present.
func (ps Params) Get(key string) (string, bool) {
	v, ok := ps.vals[key]
	return v, ok
}

// Has checks whether a given key is in the mapping.
func (ps Params) Has(key string) bool {
	_, ok := ps.vals[key]
	return ok
}

// Set sets the key to value and returns the updated mapping.
// A new key is appended to the order, an existing key keeps its position.
func (ps Params) Set(key, value string) Params {
	if ps.vals == nil {
		ps.vals = make(map[string]string)
	}
	if _, ok := ps.vals[key]; !ok {
		ps.keys = append(ps.keys, key)
	}
	ps.vals[key] = value
	return ps
}

// Del deletes the key and returns the updated mapping.
func (ps Params) Del(key string) Params {
	if _, ok := ps.vals[key]; !ok {
		return ps
	}
	delete(ps.vals, key)
	ps.keys = slices.DeleteFunc(ps.keys, func(k string) bool { return k == key })
	return ps
}

// Len returns the number of pairs in the mapping.
func (ps Params) Len() int { return len(ps.keys) }

// Keys returns a copy of the keys in insertion order.
func (ps Params) Keys() []string { return slices.Clone(ps.keys) }

// SortedKeys returns a copy of the keys in sorted order.
func (ps Params) SortedKeys() []string {
	keys := slices.Clone(ps.keys)
	slices.Sort(keys)
	return keys
}

// All iterates over the pairs in insertion order.
func (ps Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range ps.keys {
			if !yield(k, ps.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a copy of the mapping. The zero Params clones to zero.
func (ps Params) Clone() Params {
	if ps.vals == nil {
		return Params{}
	}
	return Params{
		keys: slices.Clone(ps.keys),
		vals: maps.Clone(ps.vals),
	}
}

// IsZero reports whether the mapping represents an absent query component.
func (ps Params) IsZero() bool { return ps.vals == nil }

// Equal reports whether the mapping holds the same key-value pairs as the
// provided value, accepting Params and *Params. Order is presentation
// metadata and does not take part in equality; absence and emptiness
// are distinct.
func (ps Params) Equal(val any) bool {
	var other Params
	switch v := val.(type) {
	case Params:
		other = v
	case *Params:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if ps.IsZero() != other.IsZero() {
		return false
	}
	return maps.Equal(ps.vals, other.vals)
}

// MarshalJSON encodes the mapping as a JSON object preserving insertion
// order, or null when the mapping is zero.
func (ps Params) MarshalJSON() ([]byte, error) {
	if ps.IsZero() {
		return []byte("null"), nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteByte('{')
	for i, k := range ps.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		sb.Write(kb)
		sb.WriteByte(':')
		vb, err := json.Marshal(ps.vals[k])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		sb.Write(vb)
	}
	sb.WriteByte('}')

	return []byte(sb.String()), nil
}
