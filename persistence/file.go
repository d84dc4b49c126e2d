package persistence

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveToFile writes a snapshot atomically: the write callback runs against
// a temp file in the target directory, which is fsynced and renamed over
// filename only on success. A crash mid-write never leaves a torn snapshot
// behind.
func SaveToFile(filename string, write func(w *os.File) error) error {
	dir := filepath.Dir(filename)

	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if err := write(tmp); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// LoadFromFile opens filename and hands it to the read callback.
func LoadFromFile(filename string, read func(r *os.File) error) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return read(f)
}
