package export

import (
	"encoding/json"
	"fmt"
)

// ToJSON serializes an element or page to JSON. A non-negative indent pretty
// prints with that many spaces per level; pass a negative indent for compact
// output.
func ToJSON(v any, indent int) (string, error) {
	doc, err := Encode(v)
	if err != nil {
		return "", err
	}
	var out []byte
	if indent >= 0 {
		out, err = json.MarshalIndent(doc, "", spaces(indent))
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(out), nil
}

// FromJSON parses serialized JSON and reconstructs the element or page it
// describes.
func FromJSON(data string) (any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, &DeserializationError{Reason: "invalid JSON: " + err.Error()}
	}
	return Decode(doc)
}

func spaces(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
