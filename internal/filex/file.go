// Package filex holds small filesystem helpers shared by the server and the
// client.
package filex

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// EnsureParentDir creates the directory that will hold path, so that a
// SQLite database file can be opened there.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return nil
}

// Upload describes a local file about to be sent to the server.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// ReadUpload loads the file at path. Content type is derived from the
// extension, or sniffed from the contents when the extension is unknown.
func ReadUpload(path string) (*Upload, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = mimetype.Detect(data).String()
	}

	return &Upload{
		Name:        filepath.Base(path),
		Size:        int64(len(data)),
		ContentType: ct,
		Data:        data,
	}, nil
}
