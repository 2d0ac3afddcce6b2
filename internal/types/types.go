// Package types contains the URI component value types.
package types

//go:generate go tool errtrace -w .

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// RawQueryOrder renders query parameters in insertion order
	// instead of the canonical sorted key order.
	RawQueryOrder bool `json:"raw_query_order,omitempty"`
}

type ValidFlag interface {
	IsValid() bool
}

type Equalable interface {
	Equal(val any) bool
}

type Cloneable[T any] interface {
	Clone() T
}

var (
	_ interface {
		ValidFlag
		Equalable
		Cloneable[Authority]
	} = Authority{}
	_ interface {
		Equalable
		Cloneable[Params]
	} = Params{}
)
