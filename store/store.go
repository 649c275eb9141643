package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by identifier matches no row.
// Callers decide how to surface it; it is not logged here.
var ErrNotFound = errors.New("record not found")

// Store provides CRUD primitives for a single entity type. Identifiers are
// assigned by the database on creation and immutable afterwards. Every
// mutation is a single-row transaction handled by the underlying database.
type Store[T any] struct {
	db *gorm.DB
}

// New wraps the given connection for entity type T.
func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// List returns all rows in store-default order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	entities := []T{}
	if err := s.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Find returns the entity with the given id, or ErrNotFound.
func (s *Store[T]) Find(ctx context.Context, id uint) (T, error) {
	var entity T
	err := s.db.WithContext(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity, ErrNotFound
	}
	return entity, err
}

// FindBy returns the first entity matching the condition, or ErrNotFound.
func (s *Store[T]) FindBy(ctx context.Context, query string, args ...interface{}) (T, error) {
	var entity T
	err := s.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity, ErrNotFound
	}
	return entity, err
}

// Exists reports whether any row matches the condition.
func (s *Store[T]) Exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var entity T
	var count int64
	err := s.db.WithContext(ctx).Model(&entity).Where(query, args...).Count(&count).Error
	return count > 0, err
}

// Create persists the entity and fills in its assigned identifier and defaults.
func (s *Store[T]) Create(ctx context.Context, entity *T) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

// Update merges only the supplied fields into the existing entity and returns
// the refreshed row. Fields absent from the map keep their prior values.
func (s *Store[T]) Update(ctx context.Context, id uint, fields map[string]interface{}) (T, error) {
	entity, err := s.Find(ctx, id)
	if err != nil {
		return entity, err
	}
	if len(fields) > 0 {
		if err := s.db.WithContext(ctx).Model(&entity).Updates(fields).Error; err != nil {
			return entity, err
		}
	}
	return s.Find(ctx, id)
}

// Delete removes the entity with the given id, or returns ErrNotFound.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	entity, err := s.Find(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&entity).Error
}
