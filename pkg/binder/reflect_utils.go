package binder

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// bindToStruct copies values into the fields of the struct v points to.
// tagName selects the struct tag holding the key; bindErr wraps every
// failure caused by the values themselves.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	known := make(map[string]bool, rt.NumField())
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		key, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}
		known[key] = true

		fieldValues := values[key]
		switch len(fieldValues) {
		case 0:
			continue
		case 1:
		default:
			return fmt.Errorf("%w: field %q sent %d times", bindErr, key, len(fieldValues))
		}

		if err := setFieldValue(rv.Field(i), fieldValues[0]); err != nil {
			return fmt.Errorf("%w: field %q: %w", bindErr, key, err)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if !known[key] {
			return fmt.Errorf("%w: unknown field %q", bindErr, key)
		}
	}
	return nil
}

// parseFieldTag returns the key bound to a field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (key string, skip bool) {
	tag := field.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(field.Name), false
	case "-":
		return "", true
	}
	key, _, _ = strings.Cut(tag, ",")
	return key, key == ""
}

func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if err := setFieldValue(ptr.Elem(), value); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", value)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
