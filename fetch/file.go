package fetch

import (
	"context"
	"errors"
	"os"
	"strconv"
)

// File fetches a document from the local filesystem.
type File struct {
	path string
	meta map[string]string
}

var _ Fetcher = (*File)(nil)

// NewFile creates a File fetcher for the given path.
func NewFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("fetch: path is a directory")
	}
	return &File{
		path: path,
		meta: map[string]string{
			"source":   "file",
			"filename": info.Name(),
			"modtime":  strconv.FormatInt(info.ModTime().Unix(), 10),
		},
	}, nil
}

func (f *File) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.path)
}

func (f *File) Meta() map[string]string {
	return f.meta
}
