package store

import (
    "errors"
    "strings"
)

const (
    EngineJSON     = "json"
    EnginePostgres = "postgres"
)

// NewByEngine opens the configured storage engine. The JSON engine takes a
// file path, the postgres engine a DSN.
func NewByEngine(engine, target string) (Repository, error) {
    switch strings.ToLower(strings.TrimSpace(engine)) {
    case "", EngineJSON:
        return NewJSONStore(target)
    case EnginePostgres:
        return NewGormStore(target)
    default:
        return nil, errors.New("unsupported store engine: " + engine)
    }
}
