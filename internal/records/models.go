package records

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// keyNamespace scopes the name-based UUIDs produced by FroggerID.Key.
var keyNamespace = uuid.MustParse("6f1c2b9e-4a0d-5c3e-9b7a-2d8e1f0a4c61")

// ErrInvalidRecord is returned by Validate when a record lacks a first or last name.
var ErrInvalidRecord = errors.New("invalid frogger record")

// FroggerID holds a player's identity information.
// Two FroggerIDs are the same record iff every field is equal, which is exactly
// what == reports for this struct.
type FroggerID struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	ZipCode     string `json:"zip_code"`
	State       string `json:"state"`
	Gender      string `json:"gender"`
}

// Key returns a deterministic UUID derived from all fields of the record.
// Equal records always share a key.
func (f FroggerID) Key() uuid.UUID {
	data := strings.Join([]string{
		f.FirstName,
		f.LastName,
		f.PhoneNumber,
		f.ZipCode,
		f.State,
		f.Gender,
	}, "\x1f")
	return uuid.NewSHA1(keyNamespace, []byte(data))
}

// Validate reports ErrInvalidRecord when the first or last name is blank.
func (f FroggerID) Validate() error {
	if strings.TrimSpace(f.FirstName) == "" || strings.TrimSpace(f.LastName) == "" {
		return ErrInvalidRecord
	}
	return nil
}
