package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// readText returns a flag value, reading it from a file when it starts with
// "@" ("@-" reads stdin).
func readText(value string, stdin io.Reader) (string, error) {
	path, ok := strings.CutPrefix(value, "@")
	if !ok {
		return value, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", value, err)
	}
	return string(data), nil
}

// marshalText renders a current JSON value back into flag text. Unset values
// become the empty string.
func marshalText(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return "", nil
	}
	return string(data), nil
}
