package utils

import (
	"os"
	"path/filepath"
)

const (
	defaultAppDirName = ".pwa"

	catalogsSubdir = "catalogs"
	logsSubdir     = "logs"
)

// AppDir is a directory holding user catalogs and log files.
type AppDir struct {
	Path string
}

// HandleAppDir returns app directory under path, creating it with its subdirectories when missing.
// When path is empty, ~/.pwa is used (or a directory in temp when home is unknown).
func HandleAppDir(path string) (AppDir, error) {
	if path == "" {
		path = defaultAppDirPath()
	}

	appDir := AppDir{Path: path}
	for _, dir := range []string{appDir.CatalogsDir(), appDir.LogsDir()} {
		err := os.MkdirAll(dir, 0750)
		if err != nil {
			return appDir, err
		}
	}

	return appDir, nil
}

// CatalogsDir is always loaded and watched for catalog files.
func (a AppDir) CatalogsDir() string {
	return filepath.Join(a.Path, catalogsSubdir)
}

// LogsDir is a base for relative log file paths.
func (a AppDir) LogsDir() string {
	return filepath.Join(a.Path, logsSubdir)
}

// LogFile resolves path of a log file, leaving absolute paths untouched.
func (a AppDir) LogFile(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(a.LogsDir(), name)
}

func defaultAppDirPath() string {
	base, err := os.UserHomeDir()
	if err != nil {
		base = os.TempDir()
	}

	return filepath.Join(base, defaultAppDirName)
}
