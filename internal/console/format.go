package console

import (
	"path/filepath"
	"strings"
)

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func filepathBase(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
