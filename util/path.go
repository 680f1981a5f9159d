package util

import (
	"os"
)

// IsFile returns true if name exists and is not a directory.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && !fi.IsDir()
}
