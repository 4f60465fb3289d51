package browser

import (
	"encoding/json"
	"fmt"
)

// renderJSON formats v as two-space indented JSON.
func renderJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data), nil
}
