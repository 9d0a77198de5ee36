package content

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/phrazzld/numerology-api/internal/domain"
	"github.com/phrazzld/numerology-api/internal/store"
	"gopkg.in/yaml.v3"
)

// MemoryStore is an in-process store.ContentStore. It backs the CLI's
// override files and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.ContentEntry
}

var _ store.ContentStore = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding entries. Later entries replace
// earlier ones with the same key and language.
func NewMemoryStore(entries ...*domain.ContentEntry) *MemoryStore {
	s := &MemoryStore{entries: make(map[string]*domain.ContentEntry, len(entries))}
	for _, e := range entries {
		s.entries[memoryKey(e.Language, e.Key)] = e
	}
	return s
}

type overrideFile struct {
	Entries []struct {
		Key         string             `yaml:"key"`
		Type        domain.ContentType `yaml:"type"`
		Language    string             `yaml:"language"`
		Value       string             `yaml:"value"`
		Description *string            `yaml:"description"`
	} `yaml:"entries"`
}

// LoadMemoryStore reads a YAML document of the form
//
//	entries:
//	  - key: number_meaning_7
//	    type: number_meaning
//	    language: en
//	    value: "..."
//
// and validates every entry.
func LoadMemoryStore(r io.Reader) (*MemoryStore, error) {
	var f overrideFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode content overrides: %w", err)
	}

	entries := make([]*domain.ContentEntry, 0, len(f.Entries))
	for i, raw := range f.Entries {
		entry, err := domain.NewContentEntry(raw.Key, raw.Type, raw.Language, raw.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", store.ErrInvalidEntity, i, err)
		}
		entry.Description = raw.Description
		entries = append(entries, entry)
	}
	return NewMemoryStore(entries...), nil
}

// LoadMemoryStoreFile opens path and loads it with LoadMemoryStore.
func LoadMemoryStoreFile(path string) (*MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content overrides: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := LoadMemoryStore(f)
	if err != nil {
		return nil, fmt.Errorf("load content overrides from %s: %w", path, err)
	}
	return s, nil
}

// Lookup implements store.ContentStore.Lookup.
func (s *MemoryStore) Lookup(ctx context.Context, language, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[memoryKey(language, key)]
	if !ok {
		return "", store.ErrContentNotFound
	}
	return e.Value, nil
}

// ListByLanguage implements store.ContentStore.ListByLanguage.
func (s *MemoryStore) ListByLanguage(ctx context.Context, language string) ([]*domain.ContentEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ContentEntry, 0)
	for _, e := range s.entries {
		if e.Language == language {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// All returns every entry ordered by language, type and key.
func (s *MemoryStore) All() []*domain.ContentEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ContentEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Language != out[j].Language {
			return out[i].Language < out[j].Language
		}
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Put stores e, replacing any entry with the same key and language.
func (s *MemoryStore) Put(e *domain.ContentEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[memoryKey(e.Language, e.Key)] = e
}

func memoryKey(language, key string) string {
	return language + "\x00" + key
}
