// Package store persists the four record collections as whole JSON
// documents. Every mutation is read-all, modify, write-all; callers
// that mutate are expected to serialize their own read-modify-write
// cycles.
package store

import "errors"

// Collection names one persisted sequence of records.
type Collection string

const (
	CollectionUsers       Collection = "users"
	CollectionFunds       Collection = "funds"
	CollectionExpenses    Collection = "expenses"
	CollectionSubmissions Collection = "fund_submissions"
)

// Collections lists every collection the application owns.
func Collections() []Collection {
	return []Collection{
		CollectionUsers,
		CollectionFunds,
		CollectionExpenses,
		CollectionSubmissions,
	}
}

// ErrCorrupted marks persisted content that can no longer be decoded.
// There is no recovery path; the request that hit it fails.
var ErrCorrupted = errors.New("store: corrupted collection")

// Store loads and saves whole collections. Load decodes the full
// persisted sequence into out (a pointer to a slice); Save overwrites
// the persisted sequence with records. There are no partial updates.
type Store interface {
	Load(collection Collection, out interface{}) error
	Save(collection Collection, records interface{}) error
}
