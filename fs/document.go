package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/zealdoc"
)

// ReadDocument reads a documentation page from disk.
// Returns ENOTFOUND if the file does not exist.
func ReadDocument(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", zealdoc.Errorf(zealdoc.ENOTFOUND, "document %s does not exist", path)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
