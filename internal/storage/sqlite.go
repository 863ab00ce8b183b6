package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"droidlens/internal/hierarchy"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// ComponentRow is one persisted classification result.
type ComponentRow struct {
	Class     string
	Component string
}

// EntryPointRow is one persisted entry-point method.
type EntryPointRow struct {
	Class        string
	SubSignature string
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS classes (
			name TEXT PRIMARY KEY,
			package TEXT,
			kind TEXT,
			filepath TEXT,
			start_line INTEGER,
			end_line INTEGER,
			phantom INTEGER,
			superclass TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS interfaces (
			class TEXT,
			iface TEXT,
			PRIMARY KEY (class, iface)
		);`,
		`CREATE TABLE IF NOT EXISTS methods (
			class TEXT,
			subsignature TEXT,
			name TEXT,
			return_type TEXT,
			params JSON,
			start_line INTEGER,
			end_line INTEGER,
			PRIMARY KEY (class, subsignature)
		);`,
		`CREATE TABLE IF NOT EXISTS components (
			class TEXT PRIMARY KEY,
			component TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS entrypoints (
			class TEXT,
			subsignature TEXT,
			PRIMARY KEY (class, subsignature)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_classes_file ON classes(filepath);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveHierarchy persists every class, supertype edge, and method.
func (s *SQLiteStore) SaveHierarchy(ctx context.Context, h *hierarchy.Hierarchy) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	classStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classes (name, package, kind, filepath, start_line, end_line, phantom, superclass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			package=excluded.package,
			kind=excluded.kind,
			filepath=excluded.filepath,
			start_line=excluded.start_line,
			end_line=excluded.end_line,
			phantom=excluded.phantom,
			superclass=excluded.superclass
	`)
	if err != nil {
		return err
	}
	defer classStmt.Close()

	ifaceStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO interfaces (class, iface) VALUES (?, ?)
		ON CONFLICT(class, iface) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer ifaceStmt.Close()

	methodStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO methods (class, subsignature, name, return_type, params, start_line, end_line)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(class, subsignature) DO UPDATE SET
			name=excluded.name,
			return_type=excluded.return_type,
			params=excluded.params,
			start_line=excluded.start_line,
			end_line=excluded.end_line
	`)
	if err != nil {
		return err
	}
	defer methodStmt.Close()

	for _, c := range h.Classes() {
		var superclass string
		if c.Superclass != nil {
			superclass = c.Superclass.Name
		}
		if _, err := classStmt.Exec(c.Name, c.Package, string(c.Kind), c.Filepath, c.StartLine, c.EndLine, c.Phantom, superclass); err != nil {
			return err
		}

		for _, iface := range c.Interfaces {
			if _, err := ifaceStmt.Exec(c.Name, iface.Name); err != nil {
				return err
			}
		}

		for _, m := range c.Methods {
			params, _ := json.Marshal(m.Params)
			if _, err := methodStmt.Exec(c.Name, m.SubSignature(), m.Name, m.ReturnType, params, m.StartLine, m.EndLine); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// LoadHierarchy rebuilds the class hierarchy from the database.
func (s *SQLiteStore) LoadHierarchy(ctx context.Context) (*hierarchy.Hierarchy, error) {
	h := hierarchy.New()

	rows, err := s.db.QueryContext(ctx, "SELECT name, package, kind, filepath, start_line, end_line, phantom, superclass FROM classes")
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}
	defer rows.Close()

	superclasses := make(map[string]string)

	for rows.Next() {
		var (
			name, pkg, kind, filepath, superclass string
			startLine, endLine                    int
			phantom                               bool
		)
		if err := rows.Scan(&name, &pkg, &kind, &filepath, &startLine, &endLine, &phantom, &superclass); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}

		c := h.Ensure(name)
		c.Package = pkg
		c.Kind = hierarchy.Kind(kind)
		c.Filepath = filepath
		c.StartLine = startLine
		c.EndLine = endLine
		c.Phantom = phantom
		if superclass != "" {
			superclasses[name] = superclass
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Wire supertype pointers after all classes exist. Ensure restores
	// phantom flags for classes already loaded above.
	for name, super := range superclasses {
		c := h.ClassByName(name)
		sup := h.ClassByName(super)
		if sup == nil {
			sup = h.Ensure(super)
		}
		c.Superclass = sup
	}

	ifaceRows, err := s.db.QueryContext(ctx, "SELECT class, iface FROM interfaces")
	if err != nil {
		return nil, fmt.Errorf("failed to query interfaces: %w", err)
	}
	defer ifaceRows.Close()

	for ifaceRows.Next() {
		var class, iface string
		if err := ifaceRows.Scan(&class, &iface); err != nil {
			return nil, fmt.Errorf("failed to scan interface edge: %w", err)
		}
		c := h.Ensure(class)
		i := h.Ensure(iface)
		c.Interfaces = append(c.Interfaces, i)
	}
	if err := ifaceRows.Err(); err != nil {
		return nil, err
	}

	methodRows, err := s.db.QueryContext(ctx, "SELECT class, name, return_type, params, start_line, end_line FROM methods")
	if err != nil {
		return nil, fmt.Errorf("failed to query methods: %w", err)
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var (
			class, name, returnType string
			params                  []byte
			startLine, endLine      int
		)
		if err := methodRows.Scan(&class, &name, &returnType, &params, &startLine, &endLine); err != nil {
			return nil, fmt.Errorf("failed to scan method: %w", err)
		}

		c := h.Ensure(class)
		m := &hierarchy.Method{
			Class:      c,
			Name:       name,
			ReturnType: returnType,
			StartLine:  startLine,
			EndLine:    endLine,
		}
		if len(params) > 0 {
			_ = json.Unmarshal(params, &m.Params)
		}
		c.Methods = append(c.Methods, m)
	}
	if err := methodRows.Err(); err != nil {
		return nil, err
	}

	return h, nil
}

// SaveClassification stores per-class component roles.
func (s *SQLiteStore) SaveClassification(ctx context.Context, results []ComponentRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO components (class, component) VALUES (?, ?)
		ON CONFLICT(class) DO UPDATE SET component=excluded.component
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(r.Class, r.Component); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadClassification returns the stored class-to-role mapping.
func (s *SQLiteStore) LoadClassification(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT class, component FROM components")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var class, component string
		if err := rows.Scan(&class, &component); err != nil {
			return nil, err
		}
		out[class] = component
	}
	return out, rows.Err()
}

// SaveEntryPoints replaces the stored entry-point set.
func (s *SQLiteStore) SaveEntryPoints(ctx context.Context, eps []EntryPointRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entrypoints"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO entrypoints (class, subsignature) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, ep := range eps {
		if _, err := stmt.Exec(ep.Class, ep.SubSignature); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListEntryPoints returns all stored entry points ordered by class.
func (s *SQLiteStore) ListEntryPoints(ctx context.Context) ([]EntryPointRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT class, subsignature FROM entrypoints ORDER BY class, subsignature")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EntryPointRow
	for rows.Next() {
		var ep EntryPointRow
		if err := rows.Scan(&ep.Class, &ep.SubSignature); err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, rows.Err()
}
