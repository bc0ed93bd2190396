package alias

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FileStore persists the alias map as a single JSON document. Every mutation
// reloads the file, applies the change, and rewrites the whole document.
// There is no file locking: concurrent writers race and the last write wins,
// which is acceptable for a low-traffic admin surface.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the JSON document at path.
// The file does not need to exist; a missing or unparsable document reads
// as an empty store.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Resolve(ctx context.Context, userID, nameOrID string) (string, error) {
	m := s.load()
	if id, ok := m[userID][nameOrID]; ok {
		return id, nil
	}
	if LooksLikeDeviceID(nameOrID) {
		return nameOrID, nil
	}
	return "", ErrNotFound
}

func (s *FileStore) Upsert(ctx context.Context, userID, alias, deviceID string) error {
	if userID == "" || alias == "" || deviceID == "" {
		return ErrMissingField
	}

	m := s.load()
	if m[userID] == nil {
		m[userID] = map[string]string{}
	}
	m[userID][alias] = deviceID

	return s.save(m)
}

func (s *FileStore) Dump(ctx context.Context) (Map, error) {
	return s.load(), nil
}

func (s *FileStore) Close() error {
	return nil
}

// load reads the persisted document. Missing or corrupt files are treated as
// an empty store so a fresh deployment works without any provisioning step.
func (s *FileStore) load() Map {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Map{}
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Alias store unparsable, treating as empty")
		return Map{}
	}
	if m == nil {
		return Map{}
	}
	return m
}

func (s *FileStore) save(m Map) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode alias store: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create alias store directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write alias store: %w", err)
	}
	return nil
}
