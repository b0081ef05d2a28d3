package domain

import (
	"slices"
	"strings"
	"time"
)

// Contact is one remembered networking relationship.
// The Name is the lookup key: two contacts never share a name, and callers
// who know two people called "Jane Doe" qualify the name themselves.
type Contact struct {
	// ID is a stable identifier assigned when the contact is first saved.
	ID string

	// Name is the display name and unique lookup key.
	Name string

	// Role is the contact's job title.
	Role string

	// Company is the contact's employer.
	Company string

	// LinkedIn is the contact's LinkedIn profile URL, if known.
	LinkedIn string

	// Website is the company website URL, if known.
	Website string

	// Industry is a keyword used when searching for relevant news.
	Industry string

	// Summary is the accumulated notes and AI-generated networking brief.
	Summary string

	// NewsLinks are URLs of news articles collected during research.
	NewsLinks []string

	// CreatedAt is when the contact was first saved.
	CreatedAt time.Time

	// UpdatedAt is when the contact was last modified.
	UpdatedAt time.Time
}

// Validate checks the invariants a contact must satisfy before it can be
// stored. A name is the only mandatory field.
func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Clone returns a deep copy. Stores hand out clones so callers never hold
// references into store state.
func (c Contact) Clone() Contact {
	c.NewsLinks = slices.Clone(c.NewsLinks)
	return c
}

// Matches reports whether the query is a case-insensitive substring of the
// contact's name, company, or role.
func (c Contact) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Company, c.Role} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// ContactFields carries the fields of an upsert. Empty string fields leave
// the existing value alone; a non-nil NewsLinks replaces the stored links.
type ContactFields struct {
	Role      string
	Company   string
	LinkedIn  string
	Website   string
	Industry  string
	Summary   string
	NewsLinks []string
}

// Apply merges the supplied fields into the contact.
func (c *Contact) Apply(f ContactFields) {
	if f.Role != "" {
		c.Role = f.Role
	}
	if f.Company != "" {
		c.Company = f.Company
	}
	if f.LinkedIn != "" {
		c.LinkedIn = f.LinkedIn
	}
	if f.Website != "" {
		c.Website = f.Website
	}
	if f.Industry != "" {
		c.Industry = f.Industry
	}
	if f.Summary != "" {
		c.Summary = f.Summary
	}
	if f.NewsLinks != nil {
		c.NewsLinks = slices.Clone(f.NewsLinks)
	}
}

// SortContacts orders contacts by ascending name. This is the canonical
// collection iteration order; it keeps Find deterministic and restartable.
func SortContacts(contacts []Contact) {
	slices.SortFunc(contacts, func(a, b Contact) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
