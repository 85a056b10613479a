// Package file reads and writes files through a replaceable file system.
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ipreg/superglue/internal/pp"
)

// FS is the file system used by all file operations.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// Stdin is read in place of the path "-".
var Stdin io.Reader = os.Stdin //nolint:gochecknoglobals

// StdinPath is the path that means the standard input.
const StdinPath = "-"

// Describe gives the name of the path in messages.
func Describe(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	return path
}

// Read reads a whole file, or the standard input if path is "-".
func Read(ppfmt pp.PP, path string) ([]byte, error) {
	var (
		body []byte
		err  error
	)
	if path == StdinPath {
		body, err = io.ReadAll(Stdin)
	} else {
		body, err = afero.ReadFile(FS, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", Describe(path), err)
	}

	ppfmt.Debugf(pp.EmojiParse, "Read %d bytes from %s", len(body), Describe(path))
	return body, nil
}

// WriteAtomic replaces the file at path with data. The new content is written to a
// temporary file in the same directory first, so that readers never see half of it.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(FS, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = FS.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = FS.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := FS.Rename(tmpName, path); err != nil {
		_ = FS.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
