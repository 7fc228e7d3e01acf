package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewID returns a base58 encoded version 7 UUID. Ids created later sort after earlier ones in
// the decoded form, which keeps import records and the entities they create roughly in order.
func NewID() string {
	id := uuid.Must(uuid.NewV7())
	return base58.Encode(id[:])
}
