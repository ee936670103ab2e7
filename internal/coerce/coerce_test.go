package coerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaders(t *testing.T) {
	t.Parallel()

	t.Run("strings", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "abc", ReadString("abc", "fb"))
		require.Equal(t, "12.5", ReadString(12.5, "fb"))
		require.Equal(t, "true", ReadString(true, "fb"))
		require.Equal(t, "fb", ReadString(nil, "fb"))
		require.Equal(t, "fb", ReadString([]any{"a"}, "fb"))
	})

	t.Run("ints", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 4, ReadInt(4.9, 0))
		require.Equal(t, 42, ReadInt("42", 0))
		require.Equal(t, 7, ReadInt(" 7.8 ", 0))
		require.Equal(t, 3, ReadInt(json.Number("3"), 0))
		require.Equal(t, -1, ReadInt("seven", -1))
		require.Equal(t, -1, ReadInt(true, -1))
	})

	t.Run("doubles", func(t *testing.T) {
		t.Parallel()
		require.InDelta(t, 1.5, ReadDouble("1.5", 0), 1e-9)
		require.InDelta(t, 2.0, ReadDouble(2, 0), 1e-9)
		require.InDelta(t, 9.0, ReadDouble("NaN", 9), 1e-9)
		require.InDelta(t, 9.0, ReadDouble(map[string]any{}, 9), 1e-9)
	})

	t.Run("bools", func(t *testing.T) {
		t.Parallel()
		require.True(t, ReadBool("TRUE", false))
		require.False(t, ReadBool("false", true))
		require.True(t, ReadBool(2.0, false))
		require.False(t, ReadBool(0.0, true))
		require.True(t, ReadBool("yes", true))
		require.False(t, ReadBool("yes", false))
	})
}

func TestFieldPresence(t *testing.T) {
	t.Parallel()

	m := map[string]any{"size": "99", "flag": "nope", "name": nil, "on": 1.0}

	size, ok := IntField(m, "size")
	require.True(t, ok)
	require.Equal(t, 99, size)

	_, ok = BoolField(m, "flag")
	require.False(t, ok)

	_, ok = StringField(m, "name")
	require.False(t, ok)

	on, ok := BoolField(m, "on")
	require.True(t, ok)
	require.True(t, on)

	_, ok = DoubleField(nil, "size")
	require.False(t, ok)
	require.False(t, Has(m, "name"))
	require.True(t, Has(m, "size"))
}

func TestReadEdgeInsets(t *testing.T) {
	t.Parallel()

	fallback := EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4}

	cases := []struct {
		name  string
		input any
		want  EdgeInsets
	}{
		{name: "nil keeps fallback", input: nil, want: fallback},
		{name: "bare number", input: 8.0, want: All(8)},
		{name: "numeric string", input: "6", want: All(6)},
		{name: "all", input: map[string]any{"all": 10.0}, want: All(10)},
		{name: "horizontal only keeps vertical fallback", input: map[string]any{"horizontal": 12.0}, want: EdgeInsets{Top: 1, Right: 12, Bottom: 3, Left: 12}},
		{name: "symmetric", input: map[string]any{"horizontal": 12.0, "vertical": 6.0}, want: Symmetric(12, 6)},
		{name: "explicit sides win", input: map[string]any{"all": 5.0, "top": 0.0}, want: EdgeInsets{Top: 0, Right: 5, Bottom: 5, Left: 5}},
		{name: "garbage", input: "wide", want: fallback},
		{name: "list", input: []any{1.0}, want: fallback},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ReadEdgeInsets(tc.input, fallback))
		})
	}
}
