// Package query projects a request model's public fields into a URL query
// string.
//
// Fields are emitted in struct declaration order. A nil pointer, nil
// interface, nil slice, or nil map produces no parameter at all. Slice and
// array fields are joined into a single comma-separated value; every other
// field becomes one key=value pair. Keys and values are percent-encoded
// exactly once, on the raw stringified value.
//
// The parameter name defaults to the field name and can be overridden with
// a `query:"name"` struct tag; `query:"-"` excludes the field.
package query

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Encode projects the model's fields into a query string without a leading
// "?". The model must be a struct or a pointer to one; a nil pointer
// produces an empty string.
func Encode(model any) (string, error) {
	if model == nil {
		return "", nil
	}

	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("query: model must be a struct, got %s", v.Kind())
	}

	var sb strings.Builder
	for _, field := range reflect.VisibleFields(v.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("query"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		fv, err := v.FieldByIndexErr(field.Index)
		if err != nil {
			// Field promoted through a nil embedded pointer.
			continue
		}
		value, ok := fieldValue(fv)
		if !ok {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value))
	}

	return sb.String(), nil
}

// Append projects the model onto rawURL. An empty projection returns rawURL
// unchanged; otherwise the query string is joined with "?" or, when the URL
// already carries a query component, with "&".
func Append(rawURL string, model any) (string, error) {
	qs, err := Encode(model)
	if err != nil {
		return "", err
	}
	if qs == "" {
		return rawURL, nil
	}
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + qs, nil
}

// fieldValue stringifies one field. The second return is false when the
// field should be skipped (nil value, or a sequence with no usable elements).
func fieldValue(v reflect.Value) (string, bool) {
	v, ok := deref(v)
	if !ok {
		return "", false
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		// Byte slices are text, not sequences.
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes()), true
		}
		parts := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, ok := deref(v.Index(i))
			if !ok {
				continue
			}
			parts = append(parts, stringify(elem))
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ","), true
	default:
		return stringify(v), true
	}
}

// deref unwraps pointers and interfaces. Returns false for nil values and
// for nil slices and maps.
func deref(v reflect.Value) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	if (v.Kind() == reflect.Slice || v.Kind() == reflect.Map) && v.IsNil() {
		return v, false
	}
	return v, true
}

// stringify converts a scalar value to its invariant string form.
func stringify(v reflect.Value) string {
	if v.Type() == timeType {
		return v.Interface().(time.Time).Format(time.RFC3339)
	}
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
