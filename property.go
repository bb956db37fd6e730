package dynsql

import (
	"fmt"
	"reflect"
	"strings"
)

// resolveProperty reads a dotted property path from row. Each segment is
// matched against a map key, a struct field's db tag, or a struct field
// name (case-insensitive), in that order. A nil pointer met before the last
// segment resolves to nil.
func resolveProperty(row any, path string) (any, error) {
	v := reflect.ValueOf(row)
	segments := strings.Split(path, ".")

	for i, segment := range segments {
		for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
			if v.IsNil() {
				return nil, nil
			}
			v = v.Elem()
		}
		if !v.IsValid() {
			return nil, fmt.Errorf("property %q: row is nil", path)
		}

		switch v.Kind() {
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("property %q: map keys must be strings, got %s", path, v.Type().Key())
			}
			next := v.MapIndex(reflect.ValueOf(segment).Convert(v.Type().Key()))
			if !next.IsValid() {
				return nil, fmt.Errorf("property %q: key %q not found", path, segment)
			}
			v = next
		case reflect.Struct:
			next, ok := structField(v, segment)
			if !ok {
				return nil, fmt.Errorf("property %q: field %q not found in %s", path, segment, v.Type())
			}
			v = next
		default:
			return nil, fmt.Errorf("property %q: cannot read %q from %s", path, strings.Join(segments[:i+1], "."), v.Type())
		}
	}

	if !v.IsValid() {
		return nil, nil
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil, nil
	}
	return v.Interface(), nil
}

// structField finds an exported field by db tag, then by name.
func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(sf.Tag.Get("db"), ","); tag == name {
			return v.Field(i), true
		}
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.IsExported() && strings.EqualFold(sf.Name, name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// IsPresent is a Condition that holds when the property value is not nil.
func IsPresent(value any) (bool, error) {
	return value != nil, nil
}
