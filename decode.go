// File: argsparser/decode.go

package argsparser

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan.
const TagName = "arg"

var (
	charType     = reflect.TypeOf(Char(0))
	durationType = reflect.TypeOf(time.Duration(0))
)

// Scan decodes the parsed values into target, which must be a non-nil pointer
// to a struct or map. Fields are matched by their `arg` tag, or their name.
// Scalars convert with the same rules as Get, slices split on DefaultSeparator,
// and time.Duration fields accept values such as "1m30s". Fields whose name has
// no value keep what target already holds.
func (a *Args) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	input := make(map[string]any, a.Len())
	for name, value := range a.Map() {
		input[name] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			stringToListHookFunc(DefaultSeparator),
			strictScalarHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("scan into %T failed: %w", target, err)
	}
	return nil
}

// stringToListHookFunc splits strings bound for slice fields with Split
func stringToListHookFunc(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		// []byte is decoded from the string as is
		if t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		parts := Split(reflect.ValueOf(data).String(), sep)
		if parts == nil {
			return []string{}, nil
		}
		return parts, nil
	}
}

// strictScalarHookFunc applies ParseValue rules to strings bound for scalar fields,
// where mapstructure's weak typing would accept e.g. "True" or "1" for a bool.
func strictScalarHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		s := reflect.ValueOf(data).String()

		switch t {
		case charType:
			return parseChar(s)
		case durationType:
			return data, nil
		}

		switch t.Kind() {
		case reflect.Bool:
			return parseBool(s)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return parseSigned[int64](s, t.Bits())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return parseUnsigned[uint64](s, t.Bits())
		case reflect.Float32, reflect.Float64:
			return parseFloat[float64](s, t.Bits())
		}
		return data, nil
	}
}
