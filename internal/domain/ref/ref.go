// Package ref models nullable foreign keys as an explicit optional value.
package ref

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Ref is an optional reference to another record's public id. The zero value
// is an absent reference.
type Ref struct {
	id  string
	set bool
}

// To returns a reference to id. A blank id yields an absent reference.
func To(id string) Ref {
	id = strings.TrimSpace(id)
	if id == "" {
		return Ref{}
	}
	return Ref{id: id, set: true}
}

// None returns an absent reference.
func None() Ref {
	return Ref{}
}

// FromPtr maps nil to an absent reference.
func FromPtr(id *string) Ref {
	if id == nil {
		return Ref{}
	}
	return To(*id)
}

func (r Ref) ID() (string, bool) {
	return r.id, r.set
}

func (r Ref) IsSet() bool {
	return r.set
}

// Is reports whether r points at id.
func (r Ref) Is(id string) bool {
	return r.set && r.id == id
}

func (r Ref) Ptr() *string {
	if !r.set {
		return nil
	}
	id := r.id
	return &id
}

func (r Ref) String() string {
	if !r.set {
		return "<none>"
	}
	return r.id
}

func (r *Ref) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = Ref{}
	case string:
		*r = To(v)
	case []byte:
		*r = To(string(v))
	default:
		return fmt.Errorf("scan ref: unsupported type %T", src)
	}
	return nil
}

func (r Ref) Value() (driver.Value, error) {
	if !r.set {
		return nil, nil
	}
	return r.id, nil
}
