// Package storage provides the document backends the data stores persist
// through. A backend maps collection names to raw JSON documents; the stores
// above it never care whether the bytes land on disk, in memory, or in an
// embedded database.
package storage

import "errors"

// ErrNotExist is returned by Load when no document has been saved under the
// requested name yet.
var ErrNotExist = errors.New("document does not exist")

type Backend interface {
	// Load returns the raw document stored under name, or ErrNotExist.
	Load(name string) ([]byte, error)
	// Save persists data under name, replacing any previous document.
	Save(name string, data []byte) error
	// List returns the names of all stored documents.
	List() ([]string, error)
}
