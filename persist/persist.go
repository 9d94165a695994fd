package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/edsrzf/mmap-go"
)

// ErrEmptyFile is returned by Read for a zero-length file.
var ErrEmptyFile = errors.New("persist: file is empty")

// Write encodes v and atomically replaces the file at path with the result.
// The file is created if missing.
func Write(path string, v any, opts ...Option) error {
	cfg := resolve(opts)

	data, err := cfg.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("persist: encode %s: %w", cfg.codec.Name(), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("persist: write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("persist: sync %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("persist: close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, cfg.perm); err != nil {
		return fmt.Errorf("persist: chmod %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("persist: rename %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"path":  path,
		"codec": cfg.codec.Name(),
		"bytes": len(data),
	}).Debug("persist: wrote")

	return nil
}

// Read decodes the file at path into v, which must be a non-nil pointer.
// The file is memory-mapped read-only for the duration of the decode.
func Read(path string, v any, opts ...Option) error {
	cfg := resolve(opts)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("persist: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("persist: %s: %w", path, ErrEmptyFile)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("persist: mmap %s: %w", path, err)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil {
			log.WithError(uerr).WithField("path", path).Warn("persist: unmap failed")
		}
	}()

	if err = cfg.codec.Unmarshal(m, v); err != nil {
		return fmt.Errorf("persist: decode %s %s: %w", cfg.codec.Name(), path, err)
	}

	log.WithFields(log.Fields{
		"path":  path,
		"codec": cfg.codec.Name(),
		"bytes": info.Size(),
	}).Debug("persist: read")

	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
