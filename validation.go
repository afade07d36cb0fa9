package activity

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ActivityTypeValidationTag is the struct tag registered by
// RegisterActivityTypeValidation, e.g. `validate:"activity_type"`.
const ActivityTypeValidationTag = "activity_type"

// RegisterActivityTypeValidation registers the activity_type rule on v so
// callers can have membership checked while validating untrusted payload
// structs. The rule passes only for integer fields whose value is a member of
// the set; non-integer fields always fail.
func RegisterActivityTypeValidation(v *validator.Validate) error {
	return v.RegisterValidation(ActivityTypeValidationTag, validateActivityType)
}

func validateActivityType(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		code := field.Int()
		if code < -1<<31 || code > 1<<31-1 {
			return false
		}
		return IsActivityType(int32(code))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		code := field.Uint()
		if code > 1<<31-1 {
			return false
		}
		return IsActivityType(int32(code))
	default:
		return false
	}
}
