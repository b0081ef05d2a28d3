// Package domain contains the core business entities and errors for Rolo.
// It has no dependencies on infrastructure - adapters depend on domain,
// never the reverse.
package domain
