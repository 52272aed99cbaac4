package utils

import "encoding/json"

// ToJSON encodes v for storage in a text column, returning "" on failure.
func ToJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
