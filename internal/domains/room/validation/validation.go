// Package validation holds the field rules for room payloads. The checks run on the
// loosely decoded request body (json.Decoder with UseNumber) rather than a typed DTO,
// so wrong-typed fields are reported per rule instead of failing the whole decode.
package validation

import (
	"encoding/json"
	"fmt"

	"hotel/internal/domains/room/model"
	"hotel/shared/failure"
)

const fieldBody = "body"

// updatableFields are the attributes a partial update may carry. Keys outside this set
// are ignored, never rejected.
var updatableFields = []string{
	model.FieldFloor,
	model.FieldHasView,
	model.FieldStatus,
	model.FieldCapacity,
}

// ValidateNewRoom checks a decoded create body and returns every violated rule.
// An empty result means the body is valid. Field checks short-circuit within a field
// (type before wholeness before sign) but never across fields.
func ValidateNewRoom(body any) []failure.Detail {
	object, ok := body.(map[string]any)
	if !ok {
		return []failure.Detail{{Field: fieldBody, Message: "body must be an object"}}
	}

	var details []failure.Detail
	details = appendDetail(details, checkWholePositive(object, "roomNumber", true))
	details = appendDetail(details, checkWholePositive(object, "floorNumber", true))
	details = appendDetail(details, checkBool(object, model.FieldHasView, true))
	details = appendDetail(details, checkStatus(object))
	details = appendDetail(details, checkCapacity(object))

	return details
}

// ValidateUpdateRoom checks a decoded partial update body. Every field is optional on
// its own, but the body must carry at least one updatable attribute. The id is not an
// updatable attribute and is ignored like any other unknown key.
func ValidateUpdateRoom(body any) []failure.Detail {
	object, ok := body.(map[string]any)
	if !ok {
		return []failure.Detail{{Field: fieldBody, Message: "body must be an object"}}
	}

	if !hasUpdatableField(object) {
		return []failure.Detail{{Field: fieldBody, Message: "at least one field must be provided"}}
	}

	var details []failure.Detail
	details = appendDetail(details, checkWholePositive(object, model.FieldFloor, false))
	details = appendDetail(details, checkBool(object, model.FieldHasView, false))
	details = appendDetail(details, checkStatus(object))
	details = appendDetail(details, checkCapacity(object))

	return details
}

func hasUpdatableField(object map[string]any) bool {
	for _, field := range updatableFields {
		if _, present := object[field]; present {
			return true
		}
	}

	return false
}

// checkWholePositive validates one numeric attribute: present (when required), a JSON
// number, a whole value, greater than zero. A present null fails the number check, it
// does not count as absent.
func checkWholePositive(object map[string]any, field string, required bool) *failure.Detail {
	raw, present := object[field]
	if !present {
		if required {
			return &failure.Detail{Field: field, Message: fmt.Sprintf("%s is required", field)}
		}

		return nil
	}

	number, ok := raw.(json.Number)
	if !ok {
		return &failure.Detail{Field: field, Message: fmt.Sprintf("%s must be a number", field)}
	}

	value, whole := asInt(number)
	if !whole {
		return &failure.Detail{Field: field, Message: fmt.Sprintf("%s must be an integer", field)}
	}

	if value <= 0 {
		return &failure.Detail{Field: field, Message: fmt.Sprintf("%s must be a positive integer", field)}
	}

	return nil
}

// checkBool accepts true/false only. Numeric 0/1 and the strings "true"/"false" are
// rejected, not coerced.
func checkBool(object map[string]any, field string, required bool) *failure.Detail {
	raw, present := object[field]
	if !present {
		if required {
			return &failure.Detail{Field: field, Message: fmt.Sprintf("%s is required", field)}
		}

		return nil
	}

	if _, ok := raw.(bool); !ok {
		return &failure.Detail{Field: field, Message: fmt.Sprintf("%s must be a boolean", field)}
	}

	return nil
}

func checkStatus(object map[string]any) *failure.Detail {
	raw, present := object[model.FieldStatus]
	if !present {
		return nil
	}

	value, ok := raw.(string)
	if !ok || !model.ValidStatus(value) {
		return &failure.Detail{
			Field:   model.FieldStatus,
			Message: "status must be one of: available, occupied, maintenance",
		}
	}

	return nil
}

func checkCapacity(object map[string]any) *failure.Detail {
	raw, present := object[model.FieldCapacity]
	if !present {
		return nil
	}

	number, ok := raw.(json.Number)
	if !ok {
		return &failure.Detail{Field: model.FieldCapacity, Message: "capacity must be an integer"}
	}

	value, whole := asInt(number)
	if !whole {
		return &failure.Detail{Field: model.FieldCapacity, Message: "capacity must be an integer"}
	}

	if value < model.MinCapacity || value > model.MaxCapacity {
		return &failure.Detail{
			Field: model.FieldCapacity,
			Message: fmt.Sprintf("capacity must be between %d and %d",
				model.MinCapacity, model.MaxCapacity),
		}
	}

	return nil
}

// asInt reports whether the number is a plain base-10 integer literal and returns it.
// Fractional and exponent forms (1.5, 1.0, 1e3) are rejected so that anything passing
// here also survives the strict decode into the typed request.
func asInt(number json.Number) (int, bool) {
	value, err := number.Int64()
	if err != nil {
		return 0, false
	}

	return int(value), true
}

func appendDetail(details []failure.Detail, detail *failure.Detail) []failure.Detail {
	if detail == nil {
		return details
	}

	return append(details, *detail)
}
