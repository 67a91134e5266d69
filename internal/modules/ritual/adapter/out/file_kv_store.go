package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	ritualout "genie/internal/modules/ritual/port/out"
)

// FileKeyValueStore keeps every key in one JSON object on disk. Writes go
// through a temp file and rename so a crash never leaves half a document.
type FileKeyValueStore struct {
	path string
	mu   sync.Mutex
}

func NewFileKeyValueStore(path string) ritualout.KeyValueStore {
	return &FileKeyValueStore{path: path}
}

func (s *FileKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *FileKeyValueStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	payload, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

func (s *FileKeyValueStore) Close() error { return nil }

// load treats an undecodable document as empty so one corrupt file does not
// brick the ritual. The bad document is moved to <path>.corrupt first so the
// next Set never overwrites the only copy.
func (s *FileKeyValueStore) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read store: %w", err)
	}
	values := map[string]string{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		if err := os.Rename(s.path, s.path+".corrupt"); err != nil {
			return nil, fmt.Errorf("set aside corrupt store: %w", err)
		}
		return map[string]string{}, nil
	}
	return values, nil
}
