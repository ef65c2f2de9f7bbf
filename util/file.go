package util

import (
	"encoding/json"
	"os"
)

// AppendLines appends the given strings to the file, one per line,
// creating it if needed.
func AppendLines(savePath string, lines ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, line := range lines {
		if _, err = f.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON marshals v and writes it to the file, replacing any
// previous contents.
func WriteJSON(savePath string, v interface{}) error {
	bs, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(savePath, bs, 0644)
}
