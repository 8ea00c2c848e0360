// Package storage holds the uploaded document bytes, addressed by the
// generated stored-file-reference. The database and the store are
// independently addressable so a consistency check between them is possible.
package storage

import "errors"

// ErrNotExist is returned by Read when no blob exists under the given name.
var ErrNotExist = errors.New("blob does not exist")

type Store interface {
	Save(name string, data []byte) error
	Read(name string) ([]byte, error)
	Exists(name string) (bool, error)
	Delete(name string) error
}
