package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/funvibe/traitmix/internal/ast"
)

// DefaultRecord is a remembered default implementation: the real trait name
// and the member definitions captured at registration, in source order.
type DefaultRecord struct {
	TraitName string
	Members   []ast.Member
}

// Session owns the alias-to-record mapping for one compilation run. It is
// created by the driver and passed explicitly to every operation, so tests
// construct a fresh session instead of sharing process-wide state. Safe for
// concurrent use if the driver ever parallelizes translation units.
type Session struct {
	id string

	mu       sync.Mutex
	defaults map[string]*DefaultRecord
}

func NewSession() *Session {
	return &Session{
		id:       uuid.NewString(),
		defaults: make(map[string]*DefaultRecord),
	}
}

// ID identifies the session in logs and in the persistent cache.
func (s *Session) ID() string { return s.id }

// Store inserts or overwrites the record for alias. Last write wins; there is
// no merge and no error path. Members are cloned so the record never aliases
// the block they were extracted from.
func (s *Session) Store(alias string, rec *DefaultRecord) {
	stored := &DefaultRecord{TraitName: rec.TraitName}
	for _, m := range rec.Members {
		stored.Members = append(stored.Members, m.CloneMember())
	}

	s.mu.Lock()
	s.defaults[alias] = stored
	s.mu.Unlock()
}

// Lookup returns the record registered under the trait name as written at the
// call site (the alias), with freshly cloned members, or false if absent.
func (s *Session) Lookup(traitName string) (*DefaultRecord, bool) {
	s.mu.Lock()
	rec, ok := s.defaults[traitName]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	out := &DefaultRecord{TraitName: rec.TraitName}
	for _, m := range rec.Members {
		out.Members = append(out.Members, m.CloneMember())
	}
	return out, true
}

// Aliases returns the registered alias names, for the cache writer.
func (s *Session) Aliases() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.defaults))
	for name := range s.defaults {
		names = append(names, name)
	}
	return names
}
