package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewRecordID returns a millisecond-timestamp id for numeric-keyed
// collections. Uniqueness within a collection is by convention, not
// enforced; two inserts in the same millisecond can collide.
func NewRecordID() int64 {
	return time.Now().UnixMilli()
}

// NewTeacherID returns a generated id for a teacher record when the
// caller does not supply a short code like "T004".
func NewTeacherID() string {
	return uuid.New().String()
}
