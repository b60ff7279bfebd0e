package fs

import (
	"os"
	"path/filepath"
	"runtime"
)

// Locator returns the default docsets directory for one platform, given the
// user's home directory and an environment lookup.
type Locator func(home string, getenv func(string) string) string

// zealDir is the directory Zeal keeps its docsets in, relative to the
// platform data directory.
var zealDir = filepath.Join("Zeal", "Zeal", "docsets")

var locators = map[string]Locator{
	"darwin":  darwinLocator,
	"windows": windowsLocator,
}

// LocatorFor returns the locator for goos. Platforms without a specific
// locator use XDG conventions.
func LocatorFor(goos string) Locator {
	if l, ok := locators[goos]; ok {
		return l
	}
	return xdgLocator
}

// DefaultDocsetsDir resolves the docsets directory for the running platform.
func DefaultDocsetsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return LocatorFor(runtime.GOOS)(home, os.Getenv), nil
}

func xdgLocator(home string, getenv func(string) string) string {
	if data := getenv("XDG_DATA_HOME"); filepath.IsAbs(data) {
		return filepath.Join(data, zealDir)
	}
	return filepath.Join(home, ".local", "share", zealDir)
}

func darwinLocator(home string, _ func(string) string) string {
	return filepath.Join(home, "Library", "Application Support", zealDir)
}

func windowsLocator(home string, getenv func(string) string) string {
	if appData := getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, zealDir)
	}
	return filepath.Join(home, "AppData", "Roaming", zealDir)
}
