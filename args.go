// File: argsparser/args.go

package argsparser

import (
	"maps"
	"slices"
)

// Args is the read-only result of Parse: every explicitly passed argument
// plus every optional argument that has a default.
type Args struct {
	values   map[string]string
	explicit map[string]bool // Names given on the command line, as opposed to defaults
}

// Get returns the value of name converted to T.
// It fails with ErrNotFound if name has no value, or ErrConversion if the value
// does not convert.
func Get[T Scalar](a *Args, name string) (T, error) {
	raw, err := a.raw(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return ParseValue[T](raw)
}

// GetOptional is like Get but reports any failure as ok=false instead of an error.
func GetOptional[T Scalar](a *Args, name string) (value T, ok bool) {
	v, err := Get[T](a, name)
	if err != nil {
		return value, false
	}
	return v, true
}

// GetList splits the value of name on sep and converts every element to T.
// An empty sep means DefaultSeparator. Repeated separators yield no empty
// elements, so "2,3,4,0," is [2 3 4 0]. A single failing element fails the call.
func GetList[T Scalar](a *Args, name, sep string) ([]T, error) {
	raw, err := a.raw(name)
	if err != nil {
		return nil, err
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	parts := Split(raw, sep)
	list := make([]T, 0, len(parts))
	for _, part := range parts {
		v, err := ParseValue[T](part)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func (a *Args) raw(name string) (string, error) {
	if a != nil {
		if v, ok := a.values[name]; ok {
			return v, nil
		}
	}
	return "", newError(ErrNotFound, "Couldn't find [%s] in arguments", name)
}

// String retrieves the raw value of name.
func (a *Args) String(name string) (string, error) {
	return Get[string](a, name)
}

// Bool retrieves a boolean value; only "true" and "false" are accepted.
func (a *Args) Bool(name string) (bool, error) {
	return Get[bool](a, name)
}

// Int retrieves an int value.
func (a *Args) Int(name string) (int, error) {
	return Get[int](a, name)
}

// Int64 retrieves an int64 value.
func (a *Args) Int64(name string) (int64, error) {
	return Get[int64](a, name)
}

// Float64 retrieves a float64 value.
func (a *Args) Float64(name string) (float64, error) {
	return Get[float64](a, name)
}

// Has reports whether name has a value.
func (a *Args) Has(name string) bool {
	_, err := a.raw(name)
	return err == nil
}

// IsExplicit reports whether name was passed on the command line rather than
// filled from its default.
func (a *Args) IsExplicit(name string) bool {
	return a != nil && a.explicit[name]
}

// Names returns the names that have a value, sorted.
func (a *Args) Names() []string {
	if a == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(a.values))
}

// Len returns the number of names that have a value.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Map returns a copy of the raw name to value mapping.
func (a *Args) Map() map[string]string {
	if a == nil {
		return map[string]string{}
	}
	return maps.Clone(a.values)
}
