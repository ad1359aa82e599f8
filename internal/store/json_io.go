package store

import (
	"encoding/json"
	"os"
)

func marshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func unmarshal(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

// writeFileAtomic writes via a temp file then rename.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
