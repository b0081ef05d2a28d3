package file

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// DefaultFileName is the backing file name under the rolo home directory.
const DefaultFileName = "contacts.json"

// ContactStore is a JSON-file implementation of driven.ContactStore.
// No state is cached between calls: every operation re-reads the file, and
// every mutation rewrites it in full via a temp-file-and-rename so a failed
// write never corrupts the previous version.
type ContactStore struct {
	mu       sync.RWMutex
	filePath string
}

// record is the persisted shape of one contact. The contact name is the
// enclosing map key, not a record field.
type record struct {
	ID        string    `json:"id,omitempty"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Website   string    `json:"website,omitempty"`
	Industry  string    `json:"industry,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	NewsLinks []string  `json:"news_links,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NewContactStore creates a JSON contact store at the given path.
// If path is empty, defaults to ~/.rolo/contacts.json. The parent directory
// is created; the backing file itself is only created on first save.
func NewContactStore(path string) (*ContactStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".rolo", DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &ContactStore{filePath: path}, nil
}

// Load reads the entire persisted collection, sorted by name.
func (s *ContactStore) Load(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// load reads and decodes the backing file (caller must hold lock).
func (s *ContactStore) load() ([]domain.Contact, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: an absent file is an empty contact book.
			return []domain.Contact{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrCorruptStore, s.filePath, err)
	}

	var records map[string]record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrCorruptStore, s.filePath, err)
	}

	contacts := make([]domain.Contact, 0, len(records))
	for name, rec := range records {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %s contains a record without a name", domain.ErrCorruptStore, s.filePath)
		}
		contacts = append(contacts, domain.Contact{
			ID:        rec.ID,
			Name:      name,
			Role:      rec.Role,
			Company:   rec.Company,
			LinkedIn:  rec.LinkedIn,
			Website:   rec.Website,
			Industry:  rec.Industry,
			Summary:   rec.Summary,
			NewsLinks: rec.NewsLinks,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
		})
	}

	domain.SortContacts(contacts)
	return contacts, nil
}

// Save rewrites the whole collection, replacing prior contents.
func (s *ContactStore) Save(_ context.Context, contacts []domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(contacts)
}

// save writes the collection atomically (caller must hold lock).
// The data is first written to a temp file in the same directory, then
// renamed over the backing file, so a mid-write failure leaves the previous
// version untouched.
func (s *ContactStore) save(contacts []domain.Contact) error {
	records := make(map[string]record, len(contacts))
	for _, c := range contacts {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("contact without a name: %w", err)
		}
		records[c.Name] = record{
			ID:        c.ID,
			Role:      c.Role,
			Company:   c.Company,
			LinkedIn:  c.LinkedIn,
			Website:   c.Website,
			Industry:  c.Industry,
			Summary:   c.Summary,
			NewsLinks: c.NewsLinks,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", domain.ErrStoreWrite, err)
	}

	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, ".contacts-*.json")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", domain.ErrStoreWrite, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: writing temp file: %v", domain.ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: closing temp file: %v", domain.ErrStoreWrite, err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: setting permissions: %v", domain.ErrStoreWrite, err)
	}
	if err := os.Rename(tmpPath, s.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replacing %s: %v", domain.ErrStoreWrite, s.filePath, err)
	}

	return nil
}

// Upsert inserts or merges a contact keyed by name and persists immediately.
func (s *ContactStore) Upsert(_ context.Context, name string, fields domain.ContactFields) (domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Contact{}, fmt.Errorf("upsert: %w: name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return domain.Contact{}, err
	}

	now := time.Now().UTC()
	idx := indexByName(contacts, name)
	if idx < 0 {
		c := domain.Contact{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
		}
		c.Apply(fields)
		c.UpdatedAt = now
		contacts = append(contacts, c)
		idx = len(contacts) - 1
	} else {
		contacts[idx].Apply(fields)
		contacts[idx].UpdatedAt = now
	}

	stored := contacts[idx].Clone()
	if err := s.save(contacts); err != nil {
		return domain.Contact{}, err
	}
	return stored, nil
}

// Get returns a copy of the record keyed by name.
func (s *ContactStore) Get(_ context.Context, name string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts, err := s.load()
	if err != nil {
		return nil, err
	}
	if idx := indexByName(contacts, name); idx >= 0 {
		c := contacts[idx].Clone()
		return &c, nil
	}
	return nil, domain.ErrNotFound
}

// Find returns a lazy, restartable sequence of matching contacts.
// The collection is snapshotted once per call; matches are produced on
// demand as the caller ranges, in ascending name order.
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

// Remove deletes the record if present and persists immediately.
func (s *ContactStore) Remove(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.load()
	if err != nil {
		return err
	}

	idx := indexByName(contacts, name)
	if idx < 0 {
		return nil
	}

	contacts = append(contacts[:idx], contacts[idx+1:]...)
	return s.save(contacts)
}

// Path returns the backing file path.
func (s *ContactStore) Path() string {
	return s.filePath
}

// indexByName locates a contact by exact name. Names are unique keys, so
// the first hit is the only hit.
func indexByName(contacts []domain.Contact, name string) int {
	for i := range contacts {
		if contacts[i].Name == name {
			return i
		}
	}
	return -1
}
