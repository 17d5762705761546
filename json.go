package cssbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrParse is returned by FromJSON when the input is not valid JSON.
var ErrParse = errors.New("invalid JSON")

// ToJSON returns the JSON encoding of v. For struct values the output
// keys follow field declaration order.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses data and stores the result in the value pointed to by
// dst, copying every parsed field onto it. The error wraps ErrParse when
// data is not valid JSON.
func FromJSON(data string, dst any) error {
	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nil
}
