package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/funvibe/traitmix/internal/diagnostics"
	"github.com/funvibe/traitmix/internal/parser"
	"github.com/funvibe/traitmix/internal/prettyprinter"
	"github.com/funvibe/traitmix/internal/registry"
	"github.com/funvibe/traitmix/internal/token"
)

const schema = `
CREATE TABLE IF NOT EXISTS defaults (
    alias      TEXT    NOT NULL,
    trait      TEXT    NOT NULL,
    ord        INTEGER NOT NULL,
    member_src TEXT    NOT NULL,
    PRIMARY KEY (alias, ord)
);
`

// Store persists registered defaults between invocations. Members are kept as
// serialized source text and re-parsed on load, so a record written by one
// version of the tool stays readable by another as long as the surface syntax
// holds.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open registry cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init registry cache %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the cache contents with the session's registered defaults.
func (s *Store) Save(session *registry.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save registry cache: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM defaults`); err != nil {
		return fmt.Errorf("save registry cache: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO defaults (alias, trait, ord, member_src) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save registry cache: %w", err)
	}
	defer stmt.Close()

	for _, alias := range session.Aliases() {
		rec, ok := session.Lookup(alias)
		if !ok {
			continue
		}
		for i, member := range rec.Members {
			src := prettyprinter.PrintMember(member)
			if _, err := stmt.Exec(alias, rec.TraitName, i, src); err != nil {
				return fmt.Errorf("save registry cache: %w", err)
			}
		}
		// An alias with no members still needs a row to be recalled.
		if len(rec.Members) == 0 {
			if _, err := stmt.Exec(alias, rec.TraitName, 0, ""); err != nil {
				return fmt.Errorf("save registry cache: %w", err)
			}
		}
	}

	return tx.Commit()
}

// Load replays the cached defaults into the session. Rows that no longer
// parse as a valid member surface as diagnostics rather than aborting the
// whole load; the remaining records are still installed.
func (s *Store) Load(session *registry.Session) []*diagnostics.DiagnosticError {
	rows, err := s.db.Query(`SELECT alias, trait, ord, member_src FROM defaults ORDER BY alias, ord`)
	if err != nil {
		return []*diagnostics.DiagnosticError{cacheError(err)}
	}
	defer rows.Close()

	var errs []*diagnostics.DiagnosticError
	records := make(map[string]*registry.DefaultRecord)
	var order []string

	for rows.Next() {
		var alias, trait, src string
		var ord int
		if err := rows.Scan(&alias, &trait, &ord, &src); err != nil {
			return append(errs, cacheError(err))
		}

		rec, ok := records[alias]
		if !ok {
			rec = &registry.DefaultRecord{TraitName: trait}
			records[alias] = rec
			order = append(order, alias)
		}
		if src == "" {
			continue // placeholder row for a memberless default
		}

		member, perr := parser.ParseMemberSource(src)
		if perr != nil {
			perr.File = fmt.Sprintf("cache:%s#%d", alias, ord)
			errs = append(errs, perr)
			continue
		}
		rec.Members = append(rec.Members, member)
	}
	if err := rows.Err(); err != nil {
		return append(errs, cacheError(err))
	}

	for _, alias := range order {
		session.Store(alias, records[alias])
	}
	return errs
}

func cacheError(err error) *diagnostics.DiagnosticError {
	return diagnostics.NewError(diagnostics.ErrC001, token.Token{}, fmt.Sprintf("registry cache: %v", err))
}
