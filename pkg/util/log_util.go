package util

import (
	"fmt"

	"github.com/goccy/go-json"
)

// LogJSON renders v on a single line for debug logs. It never fails: a value that cannot be
// encoded is rendered with %+v instead.
func LogJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(raw)
}
