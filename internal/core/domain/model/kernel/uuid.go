package kernel

import (
	"fmt"

	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// was not created through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every aggregate in the system: orders, recipients, delivery
// men, problem reports, and stored files all carry one. It wraps
// github.com/google/uuid so that a zero value is detectable as unconstructed.
//
// The zero value is invalid; create identifiers with NewUUID, or reconstruct
// them with UUIDFromString (HTTP path parameters) or UUIDFromBytes
// (persistence columns).
//
// Optional references, such as an order's signature file or a delivery man's
// avatar, travel as *UUID; UUIDFromNullableBytes and NullableBytes convert
// those to and from nullable database columns.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its canonical string form, as received
// in request paths and bodies.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs a UUID from a 16-byte slice, as stored in a
// database uuid column. A nil UUID value is rejected as unconstructed.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// UUIDFromNullableBytes reconstructs an optional reference from a nullable
// database column. A nil column maps to a nil reference.
func UUIDFromNullableBytes(b *uuid.UUID) (*UUID, error) {
	if b == nil {
		return nil, nil
	}

	id, err := UUIDFromBytes((*b)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// NullableBytes converts an optional reference to a nullable database column.
func NullableBytes(u *UUID) *uuid.UUID {
	if u == nil {
		return nil
	}

	raw := u.Bytes()
	return &raw
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID, for persistence columns and
// interop with the google/uuid package. Slice it for a raw 16-byte form.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs identify the same aggregate.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call this on every identifier they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
