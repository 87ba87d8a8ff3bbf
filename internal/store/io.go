package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned for a blank destination.
var ErrEmptyPath = errors.New("empty path")

// FillFunc writes the complete new contents of a file.
type FillFunc func(w io.Writer) error

// Replace streams fill's output into a hidden sibling of path and renames it
// over path once everything is flushed and synced. If fill or any write step
// fails, path keeps its previous contents and the sibling is removed.
func Replace(path string, mode os.FileMode, fill FillFunc) (err error) {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = fill(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = f.Chmod(mode); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
