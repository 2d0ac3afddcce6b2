package urikit_test

import (
	"testing"

	"github.com/urikit/urikit"
)

func TestPercentCodec(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		decoded, encoded string
	}{
		{"empty", "", ""},
		{"unreserved", "abc-123_~!", "abc-123_~!"},
		{"spaces and slashes", "a b/c", "a%20b%2Fc"},
		{"utf-8", "é", "%C3%A9"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := urikit.Percent.Encode(c.decoded), c.encoded; got != want {
				t.Errorf("Percent.Encode(%q) = %q, want %q", c.decoded, got, want)
			}
			got, err := urikit.Percent.Decode(c.encoded)
			if err != nil {
				t.Fatalf("Percent.Decode(%q) error = %v, want nil", c.encoded, err)
			}
			if want := c.decoded; got != want {
				t.Errorf("Percent.Decode(%q) = %q, want %q", c.encoded, got, want)
			}
		})
	}
}

func TestRawCodec(t *testing.T) {
	t.Parallel()

	const s = "a%20b c"
	if got, want := urikit.Raw.Encode(s), s; got != want {
		t.Errorf("Raw.Encode(%q) = %q, want %q", s, got, want)
	}
	got, err := urikit.Raw.Decode(s)
	if err != nil {
		t.Fatalf("Raw.Decode(%q) error = %v, want nil", s, err)
	}
	if want := s; got != want {
		t.Errorf("Raw.Decode(%q) = %q, want %q", s, got, want)
	}
}
