package diag

import (
	"bytes"
	"encoding/json"
	"log"
)

// LogJSON marshals value and logs it under label when enabled.
func LogJSON(enabled bool, label string, value any) {
	if !enabled {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("%s: <marshal error: %v>", label, err)
		return
	}
	log.Printf("%s: %s", label, string(data))
}

// LogBody logs a raw response body under label when enabled,
// re-indented when it is valid JSON.
func LogBody(enabled bool, label string, body []byte) {
	if !enabled {
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		log.Printf("%s: %s", label, string(body))
		return
	}
	log.Printf("%s: %s", label, buf.String())
}
