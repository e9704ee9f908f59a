package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	billy "github.com/go-git/go-billy/v5"
)

// FileStore keeps one <name>.json file per document on a
// billy.Filesystem — osfs for a real data directory, memfs in tests.
// Writes go to a temp file first and rename into place, so a crashed
// write never leaves a truncated document behind.
type FileStore struct {
	fs billy.Filesystem
}

func NewFileStore(fs billy.Filesystem) *FileStore {
	return &FileStore{fs: fs}
}

func (s *FileStore) ReadDoc(name string) ([]byte, error) {
	f, err := s.fs.Open(name + ".json")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDocNotFound
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (s *FileStore) WriteDoc(name string, data []byte) error {
	tmp, err := s.fs.TempFile("", name+"-")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := s.fs.Rename(tmpName, name+".json"); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
