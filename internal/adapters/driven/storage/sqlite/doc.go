// Package sqlite provides a SQLite-backed contact store for contact books
// that outgrow the JSON file. It implements the same port with the same
// merge and lookup semantics; migrations are embedded and applied on open.
package sqlite
