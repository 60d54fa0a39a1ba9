package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image decodes a base64 payload (with or without a data: prefix)
// into folder and returns the saved path.
func SaveBase64Image(b64, folder string) (string, error) {
	// strip "data:image/png;base64," style prefixes
	if i := strings.Index(b64, ","); i >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d.png", time.Now().UnixNano())
	path := filepath.Join(folder, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
