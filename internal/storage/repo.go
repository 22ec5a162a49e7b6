// Package storage is the persistence contract shared by all five apps: a
// generic repository over a gorm connection. Entity-specific lookups are
// expressed as filtered variants of List via Find/First.
package storage

import (
	"context"

	"gorm.io/gorm"

	"backend-suite/internal/apperr"
)

// Repo provides the uniform operations every entity supports. The entity
// name only feeds error messages.
type Repo[T any] struct {
	db     *gorm.DB
	entity string
}

func NewRepo[T any](db *gorm.DB, entity string) *Repo[T] {
	return &Repo[T]{db: db, entity: entity}
}

// WithTx returns a repo bound to tx instead of the base connection.
func (r *Repo[T]) WithTx(tx *gorm.DB) *Repo[T] {
	return &Repo[T]{db: tx, entity: r.entity}
}

func (r *Repo[T]) Entity() string { return r.entity }

// Create inserts rec and fills its storage-assigned primary key.
func (r *Repo[T]) Create(ctx context.Context, rec *T) error {
	err := r.db.WithContext(ctx).Create(rec).Error
	return apperr.FromGorm(r.entity, nil, err)
}

// Get loads the row with the given primary key.
func (r *Repo[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, apperr.FromGorm(r.entity, id, err)
	}
	return &rec, nil
}

// List returns all rows. Order is whatever the engine yields.
func (r *Repo[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, apperr.FromGorm(r.entity, nil, err)
	}
	return recs, nil
}

// Save persists all fields of rec (which must already have an id).
func (r *Repo[T]) Save(ctx context.Context, rec *T) error {
	err := r.db.WithContext(ctx).Save(rec).Error
	return apperr.FromGorm(r.entity, nil, err)
}

// Delete removes the row with the given id and reports NotFound when no row
// matched, so a delete of a missing id is observable.
func (r *Repo[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return apperr.FromGorm(r.entity, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(r.entity, id)
	}
	return nil
}

// Find returns the rows matching a gorm condition, e.g.
// Find(ctx, "user_id = ?", id).
func (r *Repo[T]) Find(ctx context.Context, cond string, args ...any) ([]T, error) {
	var recs []T
	if err := r.db.WithContext(ctx).Where(cond, args...).Find(&recs).Error; err != nil {
		return nil, apperr.FromGorm(r.entity, nil, err)
	}
	return recs, nil
}

// First returns the first row matching a condition, NotFound when none does.
func (r *Repo[T]) First(ctx context.Context, key any, cond string, args ...any) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where(cond, args...).First(&rec).Error; err != nil {
		return nil, apperr.FromGorm(r.entity, key, err)
	}
	return &rec, nil
}

// Count reports the number of rows matching a condition.
func (r *Repo[T]) Count(ctx context.Context, cond string, args ...any) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where(cond, args...).Count(&n).Error
	if err != nil {
		return 0, apperr.FromGorm(r.entity, nil, err)
	}
	return n, nil
}
