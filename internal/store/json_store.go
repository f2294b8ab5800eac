package store

import (
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
    "sync"
)

// JSONStore keeps all blobs in a single JSON file, rewritten atomically on
// every mutation.
type JSONStore struct {
    filePath string
    mu       sync.RWMutex
    blobs    map[string]json.RawMessage
}

func NewJSONStore(filePath string) (*JSONStore, error) {
    s := &JSONStore{
        filePath: filePath,
        blobs:    make(map[string]json.RawMessage),
    }
    if err := s.load(); err != nil {
        return nil, err
    }
    return s, nil
}

func (s *JSONStore) Get(key string) ([]byte, bool, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    raw, ok := s.blobs[key]
    if !ok {
        return nil, false, nil
    }
    out := make([]byte, len(raw))
    copy(out, raw)
    return out, true, nil
}

func (s *JSONStore) Put(key string, value []byte) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    raw := make([]byte, len(value))
    copy(raw, value)
    s.blobs[key] = raw
    return s.persistLocked()
}

func (s *JSONStore) Delete(key string) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.blobs[key]; !ok {
        return nil
    }
    delete(s.blobs, key)
    return s.persistLocked()
}

func (s *JSONStore) Close() error {
    return nil
}

func (s *JSONStore) load() error {
    s.mu.Lock()
    defer s.mu.Unlock()
    data, err := os.ReadFile(s.filePath)
    if err != nil {
        if errors.Is(err, os.ErrNotExist) {
            return nil
        }
        return err
    }
    var blobs map[string]json.RawMessage
    if err := json.Unmarshal(data, &blobs); err != nil {
        // Malformed store file: start from scratch rather than failing the
        // whole kiosk.
        return nil
    }
    if blobs == nil {
        blobs = make(map[string]json.RawMessage)
    }
    s.blobs = blobs
    return nil
}

func (s *JSONStore) persistLocked() error {
    if err := os.MkdirAll(filepath.Dir(s.filePath), 0o755); err != nil {
        return err
    }
    data, err := json.MarshalIndent(s.blobs, "", "  ")
    if err != nil {
        return err
    }
    tmpPath := s.filePath + ".tmp"
    if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
        return err
    }
    return os.Rename(tmpPath, s.filePath)
}
