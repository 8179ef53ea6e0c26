package file

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the program directory location when set.
const HomeEnv = "DOCDEX_HOME"

// ProgramDir returns the persistent program directory, creating it on
// first use. Defaults to ~/.docdex unless DOCDEX_HOME is set.
func ProgramDir() (string, error) {
	dir := os.Getenv(HomeEnv)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".docdex")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	return dir, nil
}
