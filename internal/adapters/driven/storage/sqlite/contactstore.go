package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is a SQLite implementation of driven.ContactStore.
type ContactStore struct {
	db   *sql.DB
	path string
}

// NewContactStore opens (or creates) a SQLite contact store at dbPath and
// applies embedded migrations.
func NewContactStore(dbPath string) (*ContactStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite: %w: database path is required", domain.ErrInvalidInput)
	}

	// WAL keeps the TUI's background reads cheap.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &ContactStore{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", domain.ErrCorruptStore, err)
	}
	return s, nil
}

// migrate applies all embedded .sql files in lexical order.
func (s *ContactStore) migrate(fsys fs.FS) error {
	entries, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *ContactStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *ContactStore) Path() string {
	return s.path
}

const contactColumns = "name, id, role, company, linkedin, website, industry, summary, news_links, created_at, updated_at"

// Load reads the entire collection sorted by name.
func (s *ContactStore) Load(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contacts ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("%w: querying contacts: %v", domain.ErrCorruptStore, err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading contacts: %v", domain.ErrCorruptStore, err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

// Save replaces the whole collection in one transaction.
func (s *ContactStore) Save(ctx context.Context, contacts []domain.Contact) error {
	for _, c := range contacts {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("contact without a name: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreWrite, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("%w: clearing contacts: %v", domain.ErrStoreWrite, err)
	}
	for _, c := range contacts {
		if err := insertContact(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", domain.ErrStoreWrite, err)
	}
	return nil
}

// Upsert inserts or merges a contact keyed by name.
func (s *ContactStore) Upsert(ctx context.Context, name string, fields domain.ContactFields) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Contact{}, fmt.Errorf("upsert: %w: name is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	existing, err := s.Get(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		existing = &domain.Contact{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
		}
	case err != nil:
		return domain.Contact{}, err
	}

	existing.Apply(fields)
	existing.UpdatedAt = now

	links, err := json.Marshal(existing.NewsLinks)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("%w: encoding news links: %v", domain.ErrStoreWrite, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			role = excluded.role,
			company = excluded.company,
			linkedin = excluded.linkedin,
			website = excluded.website,
			industry = excluded.industry,
			summary = excluded.summary,
			news_links = excluded.news_links,
			updated_at = excluded.updated_at`,
		existing.Name, existing.ID, existing.Role, existing.Company,
		existing.LinkedIn, existing.Website, existing.Industry,
		existing.Summary, string(links), existing.CreatedAt, existing.UpdatedAt)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("%w: upserting %q: %v", domain.ErrStoreWrite, name, err)
	}

	return existing.Clone(), nil
}

// Get retrieves a contact by name.
func (s *ContactStore) Get(ctx context.Context, name string) (*domain.Contact, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contactColumns+" FROM contacts WHERE name = ?", name)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Find returns a lazy sequence over a snapshot of matching contacts.
func (s *ContactStore) Find(ctx context.Context, query string) (iter.Seq[domain.Contact], error) {
	contacts, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	return func(yield func(domain.Contact) bool) {
		for _, c := range contacts {
			if !c.Matches(query) {
				continue
			}
			if !yield(c.Clone()) {
				return
			}
		}
	}, nil
}

// Remove deletes a contact by name. Absent names are a no-op.
func (s *ContactStore) Remove(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE name = ?", name); err != nil {
		return fmt.Errorf("%w: deleting %q: %v", domain.ErrStoreWrite, name, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (domain.Contact, error) {
	var c domain.Contact
	var links string
	err := row.Scan(&c.Name, &c.ID, &c.Role, &c.Company, &c.LinkedIn,
		&c.Website, &c.Industry, &c.Summary, &links, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, err
		}
		return c, fmt.Errorf("%w: scanning contact: %v", domain.ErrCorruptStore, err)
	}
	if err := json.Unmarshal([]byte(links), &c.NewsLinks); err != nil {
		return c, fmt.Errorf("%w: decoding news links for %q: %v", domain.ErrCorruptStore, c.Name, err)
	}
	return c, nil
}

func insertContact(ctx context.Context, tx *sql.Tx, c domain.Contact) error {
	links, err := json.Marshal(c.NewsLinks)
	if err != nil {
		return fmt.Errorf("%w: encoding news links: %v", domain.ErrStoreWrite, err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.ID, c.Role, c.Company, c.LinkedIn, c.Website,
		c.Industry, c.Summary, string(links), c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting %q: %v", domain.ErrStoreWrite, c.Name, err)
	}
	return nil
}
