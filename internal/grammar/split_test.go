package grammar_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/urikit/urikit/internal/grammar"
)

func TestSplitURI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    grammar.Parts
		wantErr error
	}{
		{"empty", "", grammar.Parts{}, nil},
		{
			"full",
			"foo://user@example.com:8042/over/there?type=animal#nose",
			grammar.Parts{
				Scheme: "foo", HasScheme: true,
				Authority: "user@example.com:8042", HasAuthority: true,
				Path:  "/over/there",
				Query: "type=animal", HasQuery: true,
				Fragment: "nose", HasFragment: true,
			},
			nil,
		},
		{
			"opaque path",
			"mailto:username@example.com?subject=Topic",
			grammar.Parts{
				Scheme: "mailto", HasScheme: true,
				Path:  "username@example.com",
				Query: "subject=Topic", HasQuery: true,
			},
			nil,
		},
		{"scheme only", "foo:", grammar.Parts{Scheme: "foo", HasScheme: true}, nil},
		{"relative", "relative/path", grammar.Parts{Path: "relative/path"}, nil},
		{"colon after slash", "a/b:c", grammar.Parts{Path: "a/b:c"}, nil},
		{"colon after question mark", "a?b:c", grammar.Parts{Path: "a", Query: "b:c", HasQuery: true}, nil},
		{
			"authority to end of input",
			"//example.com",
			grammar.Parts{Authority: "example.com", HasAuthority: true},
			nil,
		},
		{
			"authority stops at question mark",
			"//example.com?q",
			grammar.Parts{Authority: "example.com", HasAuthority: true, Query: "q", HasQuery: true},
			nil,
		},
		{
			"authority stops at hash",
			"//example.com#f",
			grammar.Parts{Authority: "example.com", HasAuthority: true, Fragment: "f", HasFragment: true},
			nil,
		},
		{
			"empty query and fragment",
			"foo:p?#",
			grammar.Parts{Scheme: "foo", HasScheme: true, Path: "p", HasQuery: true, HasFragment: true},
			nil,
		},
		{
			"hash before question mark",
			"foo:p#a?b",
			grammar.Parts{Scheme: "foo", HasScheme: true, Path: "p", Fragment: "a?b", HasFragment: true},
			nil,
		},
		{"invalid scheme", "1foo:p", grammar.Parts{}, grammar.ErrMalformedURI},
		{"empty scheme", "://x", grammar.Parts{}, grammar.ErrMalformedURI},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := grammar.SplitURI(c.input)
			if c.wantErr != nil {
				if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("grammar.SplitURI(%q) error = %v, want %v", c.input, gotErr, c.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("grammar.SplitURI(%q) error = %v, want nil", c.input, gotErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.SplitURI(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestSplitAuthority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    grammar.AuthorityParts
		wantErr error
	}{
		{"host only", "example.com", grammar.AuthorityParts{Host: "example.com"}, nil},
		{
			"host and port",
			"example.com:8042",
			grammar.AuthorityParts{Host: "example.com", Port: 8042, HasPort: true},
			nil,
		},
		{
			"userinfo host and port",
			"username:password@example.com:8042",
			grammar.AuthorityParts{
				UserInfo: "username:password", HasUserInfo: true,
				Host: "example.com", Port: 8042, HasPort: true,
			},
			nil,
		},
		{
			"splits on last at sign",
			"a@b@example.com",
			grammar.AuthorityParts{UserInfo: "a@b", HasUserInfo: true, Host: "example.com"},
			nil,
		},
		{
			"empty userinfo",
			"@example.com",
			grammar.AuthorityParts{HasUserInfo: true, Host: "example.com"},
			nil,
		},
		{"port zero", "example.com:0", grammar.AuthorityParts{Host: "example.com", HasPort: true}, nil},
		{
			"max port",
			"example.com:65535",
			grammar.AuthorityParts{Host: "example.com", Port: 65535, HasPort: true},
			nil,
		},
		{
			"bracketed ipv6 without port",
			"[2001:db8::1]",
			grammar.AuthorityParts{Host: "[2001:db8::1]"},
			nil,
		},
		{
			"bracketed ipv6 with port",
			"[2001:db8::1]:8080",
			grammar.AuthorityParts{Host: "[2001:db8::1]", Port: 8080, HasPort: true},
			nil,
		},
		{"empty", "", grammar.AuthorityParts{}, grammar.ErrInvalidAuthority},
		{"empty brackets", "[]", grammar.AuthorityParts{}, grammar.ErrInvalidAuthority},
		{"empty brackets with port", "[]:80", grammar.AuthorityParts{}, grammar.ErrInvalidAuthority},
		{"empty host with userinfo", "user@", grammar.AuthorityParts{}, grammar.ErrInvalidAuthority},
		{"empty host with port", ":8042", grammar.AuthorityParts{}, grammar.ErrInvalidAuthority},
		{"non-numeric port", "example.com:notanumber", grammar.AuthorityParts{}, grammar.ErrInvalidPort},
		{"out of range port", "example.com:65536", grammar.AuthorityParts{}, grammar.ErrInvalidPort},
		{"negative port", "example.com:-1", grammar.AuthorityParts{}, grammar.ErrInvalidPort},
		{"empty port", "example.com:", grammar.AuthorityParts{}, grammar.ErrInvalidPort},
		{"empty ipv6 port", "[::1]:", grammar.AuthorityParts{}, grammar.ErrInvalidPort},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, gotErr := grammar.SplitAuthority(c.input)
			if c.wantErr != nil {
				if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
					t.Errorf("grammar.SplitAuthority(%q) error = %v, want %v", c.input, gotErr, c.wantErr)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("grammar.SplitAuthority(%q) error = %v, want nil", c.input, gotErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("grammar.SplitAuthority(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestSplitQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  [][2]string
	}{
		{"empty", "", nil},
		{"single pair", "a=1", [][2]string{{"a", "1"}}},
		{"multiple pairs", "a=1&b=2", [][2]string{{"a", "1"}, {"b", "2"}}},
		{"no equals sign", "flag", [][2]string{{"flag", ""}}},
		{"empty value", "a=", [][2]string{{"a", ""}}},
		{"empty key", "=v", [][2]string{{"", "v"}}},
		{"splits on first equals sign", "a=b=c", [][2]string{{"a", "b=c"}}},
		{"drops empty pairs", "a=1&&b=2&", [][2]string{{"a", "1"}, {"b", "2"}}},
		{"duplicate keys kept", "a=1&a=2", [][2]string{{"a", "1"}, {"a", "2"}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(grammar.SplitQuery(c.input), c.want); diff != "" {
				t.Errorf("grammar.SplitQuery(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}
