package gen

import (
	"os"
	"path/filepath"
	"strings"

	"cursor-generator/internal/logging"
)

// writeDebugUnformatted writes source that failed to format into outDir as
// <name>.unformatted.go, so the failing line can be inspected. It returns the
// path written, or "" when outDir is empty.
func writeDebugUnformatted(outDir, filename string, content []byte) (string, error) {
	if outDir == "" || filename == "" {
		return "", nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return "", err
	}

	p := filepath.Join(outDir, strings.TrimSuffix(filename, ".go")+".unformatted.go")
	if err := os.WriteFile(p, content, filePerm); err != nil {
		return "", err
	}

	logging.Warn().Str("file", p).Msg("wrote unformatted cursor source")

	return p, nil
}
