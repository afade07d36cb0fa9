// Package activity defines the closed set of activity codes recorded for user
// actions, along with helpers to validate and display them.
//
// The set is fixed at compile time and never mutated, so every operation here is
// a pure function and safe for unsynchronized concurrent use. Raw integers from
// untrusted sources (network responses, deserialized records) enter the
// ActivityType type only through IsActivityType or NewActivityType.
package activity

import (
	"fmt"
)

// ActivityType identifies a kind of user activity. Only the codes declared in
// this package are valid values; anything else must pass through NewActivityType
// before being treated as an ActivityType.
type ActivityType int32

const (
	// ActivityTypeUnspecified is the zero value. It is not a member of the set
	// and is returned when a conversion from an untrusted code fails.
	ActivityTypeUnspecified ActivityType = 0

	// ActivityTypeLogin indicates a user signed in.
	ActivityTypeLogin ActivityType = 1

	// ActivityTypeJoin indicates a user joined a group or channel.
	ActivityTypeJoin ActivityType = 2

	// ActivityTypeLeave indicates a user left a group or channel.
	ActivityTypeLeave ActivityType = 3
)

// UnknownActivityTypeName is returned by String for any value outside the set.
// Callers that want to surface an unrecognized code log this label instead of
// failing.
const UnknownActivityTypeName = "Unknown Activity Type"

// activityTypes holds every member of the set in definition order.
// ActivityTypeUnspecified is deliberately absent.
var activityTypes = []ActivityType{
	ActivityTypeLogin,
	ActivityTypeJoin,
	ActivityTypeLeave,
}

// ActivityTypeError is an error type that indicates an integer code is not a
// member of the activity type set.
type ActivityTypeError struct {
	Code int32
}

func (e *ActivityTypeError) Error() string {
	return fmt.Sprintf("invalid activity type code: %d", e.Code)
}

// IsActivityType reports whether code is a member of the activity type set.
// It accepts any integer, including negative and out-of-range values.
func IsActivityType(code int32) bool {
	for _, t := range activityTypes {
		if int32(t) == code {
			return true
		}
	}
	return false
}

// NewActivityType creates an ActivityType from an untrusted integer code.
// If the code is not a member of the set, it returns ActivityTypeUnspecified
// and an *ActivityTypeError.
func NewActivityType(code int32) (ActivityType, error) {
	if !IsActivityType(code) {
		return ActivityTypeUnspecified, &ActivityTypeError{Code: code}
	}
	return ActivityType(code), nil
}

// ActivityTypes returns every member of the set in definition order. The result
// is a copy; mutating it does not affect the set.
func ActivityTypes() []ActivityType {
	out := make([]ActivityType, len(activityTypes))
	copy(out, activityTypes)
	return out
}

// String returns the symbolic name associated with the ActivityType. Values
// outside the set map to UnknownActivityTypeName rather than failing, so an
// unrecognized code degrades to an odd log label instead of a crash.
func (t ActivityType) String() string {
	switch t {
	case ActivityTypeLogin:
		return "LOGIN"
	case ActivityTypeJoin:
		return "JOIN"
	case ActivityTypeLeave:
		return "LEAVE"
	default:
		return UnknownActivityTypeName
	}
}

// Int32 returns the raw integer code, for callers writing it to a wire or
// record field.
func (t ActivityType) Int32() int32 { return int32(t) }

// ParseActivityType converts a symbolic name back to its ActivityType.
// Unknown names map to ActivityTypeUnspecified.
func ParseActivityType(name string) ActivityType {
	switch name {
	case "LOGIN":
		return ActivityTypeLogin
	case "JOIN":
		return ActivityTypeJoin
	case "LEAVE":
		return ActivityTypeLeave
	default:
		return ActivityTypeUnspecified
	}
}
