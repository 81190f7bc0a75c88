// Package kvstore is the persistence contract: JSON documents under string
// keys. Everything the marketplace persists (the seller registry, the
// seller-token mirror, the seller cards, the seeded product list) goes
// through this interface, so tests can swap the backing store for the
// in-memory one.
package kvstore

import "errors"

var ErrKeyNotFound = errors.New("kvstore: key not found")

type Store interface {
	// Get unmarshals the document stored under key into the value pointed
	// to by into. Returns ErrKeyNotFound when the key is absent.
	Get(key string, into interface{}) error
	Set(key string, value interface{}) error
	Delete(key string) error
}
