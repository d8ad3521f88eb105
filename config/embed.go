package config

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var specsFS embed.FS

// Load returns the named spec file, preferring an on-disk copy under
// config/ so values can be edited without rebuilding. Falls back to the
// embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPath(name)
	info, err := os.Stat(diskPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "config/") {
		return strings.TrimPrefix(s, "config/")
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("config", filepath.FromSlash(clean))
}
