// Package crud implements the service layer shared by every entity: a thin
// wrapper over a storage repo that normalizes not-found signalling and
// applies merge-updates over a fixed allow-list of fields.
package crud

import (
	"context"

	"backend-suite/internal/storage"
)

// Service handles create, list, get, merge-update and delete for one entity
// type. The clearID func zeroes the primary key before an insert (callers
// never assign ids); merge copies the mutable allow-list from an incoming
// payload onto the stored record and nothing else.
type Service[T any] struct {
	repo         *storage.Repo[T]
	clearID      func(*T)
	merge        func(dst, src *T)
	beforeCreate func(*T) error
}

func New[T any](repo *storage.Repo[T], clearID func(*T), merge func(dst, src *T)) *Service[T] {
	return &Service[T]{repo: repo, clearID: clearID, merge: merge}
}

// WithBeforeCreate registers a hook run after the id is cleared and before
// the insert, used for defaulted fields and generated identifiers.
func (s *Service[T]) WithBeforeCreate(f func(*T) error) *Service[T] {
	s.beforeCreate = f
	return s
}

// Repo exposes the underlying storage contract for entity-specific finders.
func (s *Service[T]) Repo() *storage.Repo[T] { return s.repo }

// Create inserts rec, ignoring any caller-supplied primary key. A reference
// to a missing related row surfaces as a Validation error and writes nothing.
func (s *Service[T]) Create(ctx context.Context, rec *T) (*T, error) {
	s.clearID(rec)
	if s.beforeCreate != nil {
		if err := s.beforeCreate(rec); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Service[T]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.Get(ctx, id)
}

// Update loads the stored record, overwrites the allow-listed fields from
// patch and persists the merged result. Fields outside the allow-list are
// ignored, not rejected, so applying the same patch twice is a no-op.
func (s *Service[T]) Update(ctx context.Context, id uint, patch *T) (*T, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.merge(existing, patch)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the record, reporting NotFound for an unknown id.
func (s *Service[T]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
