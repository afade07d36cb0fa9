package activity

import (
	"encoding/json"
)

// MarshalJSON serializes the ActivityType as its integer code, the form the
// codes take in payloads and records.
func (t ActivityType) MarshalJSON() ([]byte, error) {
	return json.Marshal(int32(t))
}

// UnmarshalJSON deserializes an integer code into an ActivityType. Unlike
// String, this boundary is strict: a code outside the set is an error, so
// invalid payloads are rejected at decode time rather than flowing through as
// unknown values.
func (t *ActivityType) UnmarshalJSON(data []byte) error {
	var code int32
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}

	parsed, err := NewActivityType(code)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
