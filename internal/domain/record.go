// Package domain holds the entity records of the marketplace and the
// record contract every storage backend persists them through.
//
// Entities are plain data records constructed through validating
// constructors; persistence mechanics live entirely in internal/storage.
package domain

import "time"

// Kind selects an entity family in the storage port.
type Kind string

const (
	KindUser    Kind = "user"
	KindCountry Kind = "country"
	KindCity    Kind = "city"
	KindPlace   Kind = "place"
	KindAmenity Kind = "amenity"
	KindReview  Kind = "review"
)

// Kinds lists every entity kind, in no particular order.
func Kinds() []Kind {
	return []Kind{KindUser, KindCountry, KindCity, KindPlace, KindAmenity, KindReview}
}

// Record is what a storage backend can persist. Every entity implements it.
//
// Clone must return a deep copy so in-memory backends can hand out
// copy-on-read snapshots without aliasing the stored record. Touch is called
// by backends when an update succeeds; nothing else may move UpdatedAt.
type Record interface {
	RecordID() string
	RecordKind() Kind
	Clone() Record
	Touch(now time.Time)
}
