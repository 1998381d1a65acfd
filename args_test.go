// File: argsparser/args_test.go

package argsparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFixture(t *testing.T, tokens ...string) *Args {
	t.Helper()
	p := New()
	p.Add("int_v", "list of int values", false)
	p.Add("double_v", "list of double values", false)
	p.Add("nv", "a negative int", true)
	p.Add("chars", "list of chars", true)
	p.Add("e", "enable event", true)
	p.Add("d", "example double value", true)
	AddDefault(p, "name", "service", "service name")

	args, err := p.Parse(argv(tokens...))
	require.NoError(t, err)
	return args
}

// TestGetList tests list retrieval with default and custom separators
func TestGetList(t *testing.T) {
	args := parseFixture(t,
		"--int_v=2,3,4,0,",
		"--double_v=2.6|3.14|4.4489",
		"--nv=-97",
		"--chars=a::b::::c",
	)

	ints, err := GetList[int](args, "int_v", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 0}, ints)

	v, err := Get[int](args, "nv")
	require.NoError(t, err)
	assert.Equal(t, -97, v)

	doubles, err := GetList[float64](args, "double_v", "|")
	require.NoError(t, err)
	require.Len(t, doubles, 3)
	assert.InDelta(t, 2.6, doubles[0], 1e-12)
	assert.InDelta(t, 3.14, doubles[1], 1e-12)
	assert.InDelta(t, 4.4489, doubles[2], 1e-12)

	t.Run("EmptySeparatorMeansComma", func(t *testing.T) {
		ints, err := GetList[int64](args, "int_v", "")
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 3, 4, 0}, ints)
	})

	t.Run("MultiCharSeparator", func(t *testing.T) {
		chars, err := GetList[Char](args, "chars", "::")
		require.NoError(t, err)
		assert.Equal(t, []Char{'a', 'b', 'c'}, chars)
	})

	t.Run("SingleValue", func(t *testing.T) {
		single, err := GetList[int](args, "nv", ",")
		require.NoError(t, err)
		assert.Equal(t, []int{-97}, single)
	})

	t.Run("NoPartialResults", func(t *testing.T) {
		got, err := GetList[int](args, "double_v", "|")
		assert.Nil(t, got)
		assert.EqualError(t, err, "Invalid string [2.6] to convert to numeric type")
		assert.ErrorIs(t, err, ErrConversion)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := GetList[int](args, "e", ",")
		assert.Nil(t, got)
		assert.EqualError(t, err, "Couldn't find [e] in arguments")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// TestGetOptional tests that failures become ok=false
func TestGetOptional(t *testing.T) {
	args := parseFixture(t, "--int_v=1", "--double_v=1", "--e=true", "--d=4.325")

	e, ok := GetOptional[bool](args, "e")
	assert.True(t, ok)
	assert.True(t, e)

	d, ok := GetOptional[float64](args, "d")
	assert.True(t, ok)
	assert.InDelta(t, 4.325, d, 1e-12)

	// error scenarios
	unknown, ok := GetOptional[bool](args, "unknown arg")
	assert.False(t, ok)
	assert.False(t, unknown)

	notBool, ok := GetOptional[bool](args, "d")
	assert.False(t, ok)
	assert.False(t, notBool)

	_, ok = GetOptional[Char](args, "name")
	assert.False(t, ok)

	_, ok = GetOptional[int](nil, "d")
	assert.False(t, ok)
}

// TestTypedGetters tests the convenience methods on Args
func TestTypedGetters(t *testing.T) {
	args := parseFixture(t, "--int_v=42", "--double_v=2.5", "--e=false", "--nv=-9000000000")

	s, err := args.String("name")
	require.NoError(t, err)
	assert.Equal(t, "service", s)

	i, err := args.Int("int_v")
	require.NoError(t, err)
	assert.Equal(t, 42, i)

	i64, err := args.Int64("nv")
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), i64)

	f, err := args.Float64("double_v")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-12)

	b, err := args.Bool("e")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = Get[int32](args, "nv")
	assert.ErrorIs(t, err, ErrConversion)

	_, err = args.Bool("name")
	assert.EqualError(t, err, "Invalid value [service] to parse to bool, expected values:[true / false].")
}

// TestArgsView tests the read-only accessors
func TestArgsView(t *testing.T) {
	args := parseFixture(t, "--int_v=1", "--double_v=2")

	assert.Equal(t, []string{"double_v", "int_v", "name"}, args.Names())
	assert.Equal(t, 3, args.Len())
	assert.True(t, args.Has("name"))
	assert.False(t, args.Has("nv"))
	assert.True(t, args.IsExplicit("int_v"))
	assert.False(t, args.IsExplicit("name"))

	m := args.Map()
	m["int_v"] = "changed"
	m["injected"] = "x"
	v, err := args.String("int_v")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
	assert.False(t, args.Has("injected"))

	t.Run("NilArgs", func(t *testing.T) {
		var none *Args
		assert.Nil(t, none.Names())
		assert.Equal(t, 0, none.Len())
		assert.Empty(t, none.Map())
		assert.False(t, none.Has("x"))
		_, err := Get[string](none, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
