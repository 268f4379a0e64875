package shared

import (
	"reflect"
	"strings"
)

const (
	fieldTag          = "dynamodbav"
	cacheKeySeparator = ":"
)

// TransformFields converts the populated fields of a partial-update struct into a map of
// attribute name to value. Nil pointers and zero values are treated as "not provided" and
// skipped; pointer values are dereferenced so the map carries plain values.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		fieldName := typ.Field(index).Tag.Get(fieldTag)
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

// BuildCacheKey joins the given parts into a single namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}
