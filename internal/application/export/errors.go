package export

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType reports an Encode call on a value that is neither an
// element nor a page.
var ErrUnsupportedType = errors.New("unsupported type")

// DeserializationError reports a malformed or unexpected shape in serialized
// input. Key names the offending document key where known.
type DeserializationError struct {
	Reason string
	Key    string
}

func (e *DeserializationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("deserialization failed at %q: %s", e.Key, e.Reason)
	}
	return "deserialization failed: " + e.Reason
}

func deserErr(key, reason string) error {
	return &DeserializationError{Reason: reason, Key: key}
}
