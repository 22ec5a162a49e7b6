// Package apperr defines the error kinds every service in the suite reports:
// a missing record, a write that references a missing related record, and a
// write that violates a uniqueness constraint. Handlers map these to HTTP
// statuses; nothing else inspects them.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error carries the kind plus the entity and key it is about.
type Error struct {
	Kind   Kind
	Entity string
	Key    any
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Entity, e.Msg)
	case e.Key != nil:
		return fmt.Sprintf("%s %v: %s", e.Entity, e.Key, e.Kind)
	default:
		return fmt.Sprintf("%s: %s", e.Entity, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that no stored row matches the given key.
func NotFound(entity string, key any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Key: key}
}

// Validation reports a create/update whose required reference or field does
// not resolve.
func Validation(entity, msg string) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Msg: msg}
}

// Conflict reports a write that violates a uniqueness constraint.
func Conflict(entity, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Msg: msg}
}

func IsNotFound(err error) bool   { return is(err, KindNotFound) }
func IsValidation(err error) bool { return is(err, KindValidation) }
func IsConflict(err error) bool   { return is(err, KindConflict) }

func is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// KindOf returns the kind of err, or KindInternal for anything unrecognized.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FromGorm translates the storage layer's sentinel errors. The sqlite driver
// runs with TranslateError, so unique and foreign-key violations arrive as
// gorm sentinels rather than raw sqlite codes.
func FromGorm(entity string, key any, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Entity: entity, Key: key, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Kind: KindValidation, Entity: entity, Msg: "referenced record does not exist", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindConflict, Entity: entity, Msg: "duplicate value for unique field", Err: err}
	default:
		return &Error{Kind: KindInternal, Entity: entity, Key: key, Err: err, Msg: err.Error()}
	}
}
