package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/urikit/urikit/internal/types"
)

func TestParamsSet(t *testing.T) {
	t.Parallel()

	ps := types.MakeParams(3).
		Set("b", "1").
		Set("a", "2").
		Set("c", "3")

	if diff := cmp.Diff(ps.Keys(), []string{"b", "a", "c"}); diff != "" {
		t.Errorf("Keys() mismatch\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(ps.SortedKeys(), []string{"a", "b", "c"}); diff != "" {
		t.Errorf("SortedKeys() mismatch\ndiff (-got +want):\n%v", diff)
	}

	// Overwriting keeps the key's original position.
	ps = ps.Set("b", "9")
	if diff := cmp.Diff(ps.Keys(), []string{"b", "a", "c"}); diff != "" {
		t.Errorf("Keys() after overwrite mismatch\ndiff (-got +want):\n%v", diff)
	}
	if v, ok := ps.Get("b"); !ok || v != "9" {
		t.Errorf(`Get("b") = %q, %v, want "9", true`, v, ok)
	}
	if ps.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ps.Len())
	}

	// The zero value is usable as a Set target.
	var zero types.Params
	zero = zero.Set("k", "v")
	if v, ok := zero.Get("k"); !ok || v != "v" {
		t.Errorf(`Get("k") = %q, %v, want "v", true`, v, ok)
	}
}

func TestParamsDel(t *testing.T) {
	t.Parallel()

	ps := types.MakeParams(2).Set("a", "1").Set("b", "2")
	ps = ps.Del("a")
	if ps.Has("a") {
		t.Error(`Has("a") = true after Del`)
	}
	if diff := cmp.Diff(ps.Keys(), []string{"b"}); diff != "" {
		t.Errorf("Keys() after Del mismatch\ndiff (-got +want):\n%v", diff)
	}
	// Deleting a missing key is a no-op.
	if got := ps.Del("missing"); got.Len() != 1 {
		t.Errorf(`Del("missing") Len() = %d, want 1`, got.Len())
	}
}

func TestParamsAll(t *testing.T) {
	t.Parallel()

	ps := types.MakeParams(3).Set("z", "1").Set("a", "2").Set("m", "3")

	var got [][2]string
	for k, v := range ps.All() {
		got = append(got, [2]string{k, v})
	}
	want := [][2]string{{"z", "1"}, {"a", "2"}, {"m", "3"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("All() mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	ps := types.MakeParams(1).Set("a", "1")
	cl := ps.Clone()
	cl = cl.Set("a", "2").Set("b", "3")
	if v, _ := ps.Get("a"); v != "1" || ps.Has("b") {
		t.Errorf("mutating the clone changed the original: %v", ps)
	}

	var zero types.Params
	if !zero.Clone().IsZero() {
		t.Error("Clone() of the zero value is not zero")
	}
}

func TestParamsEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a    types.Params
		b    any
		want bool
	}{
		{
			"same pairs same order",
			types.MakeParams(2).Set("a", "1").Set("b", "2"),
			types.MakeParams(2).Set("a", "1").Set("b", "2"),
			true,
		},
		{
			"same pairs different order",
			types.MakeParams(2).Set("a", "1").Set("b", "2"),
			types.MakeParams(2).Set("b", "2").Set("a", "1"),
			true,
		},
		{
			"pointer",
			types.MakeParams(1).Set("a", "1"),
			ptr(types.MakeParams(1).Set("a", "1")),
			true,
		},
		{
			"different value",
			types.MakeParams(1).Set("a", "1"),
			types.MakeParams(1).Set("a", "2"),
			false,
		},
		{"both zero", types.Params{}, types.Params{}, true},
		{"zero vs empty", types.Params{}, types.MakeParams(0), false},
		{"empty vs empty", types.MakeParams(0), types.MakeParams(0), true},
		{"nil pointer", types.MakeParams(0), (*types.Params)(nil), false},
		{"wrong type", types.MakeParams(0), map[string]string{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.a.Equal(c.b); got != c.want {
				t.Errorf("Equal() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestParamsMarshalJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ps   types.Params
		want string
	}{
		{"zero", types.Params{}, "null"},
		{"empty", types.MakeParams(0), "{}"},
		{
			"insertion order",
			types.MakeParams(3).Set("z", "1").Set("a", "2").Set("m", "3"),
			`{"z":"1","a":"2","m":"3"}`,
		},
		{
			"escaped",
			types.MakeParams(1).Set(`k"ey`, "a\nb"),
			`{"k\"ey":"a\nb"}`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.ps.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v, want nil", err)
			}
			if string(got) != c.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, c.want)
			}
		})
	}
}
