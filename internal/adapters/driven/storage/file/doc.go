// Package file provides the JSON-file contact store, the default backend.
// The whole collection lives in one UTF-8 JSON file mapping contact name to
// record; every mutation rewrites the file atomically.
package file
