package logsink

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MakeModuleDirs creates logs/<module>/<DD.MM.YYYY>/<module_HH-MM-SS>
// and returns the run directory.
func MakeModuleDirs(base, module string) (string, error) {
	now := time.Now()
	date := now.Format("02.01.2006")
	timeDir := now.Format("15-04-05")

	dir := filepath.Join(base, module, date, module+"_"+timeDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %q: %w", dir, err)
	}
	return dir, nil
}

func OpenAppend(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
