package repository

import (
	"context"
	"errors"
	"fmt"

	"sustainshare-api/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a generic GORM-backed CRUD store. Every entity uses "id" as
// its primary key column.
type Repository[T any, ID comparable] struct {
	db *gorm.DB
}

var _ ports.CRUDRepository[struct{}, uint] = (*Repository[struct{}, uint])(nil)

func New[T any, ID comparable](db *gorm.DB) *Repository[T, ID] {
	return &Repository[T, ID]{db: db}
}

// Save inserts entity, or updates it when its primary key already exists.
func (r *Repository[T, ID]) Save(ctx context.Context, entity *T) (*T, error) {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return entity, nil
}

func (r *Repository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return items, nil
}

func (r *Repository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &entity, nil
}

func (r *Repository[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	return r.exists(ctx, "id", id)
}

func (r *Repository[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// FindBy returns every row whose column equals value, ordered by id.
func (r *Repository[T, ID]) FindBy(ctx context.Context, column string, value any) ([]T, error) {
	items := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("find by %s: %w", column, err)
	}
	return items, nil
}

func (r *Repository[T, ID]) exists(ctx context.Context, column string, value any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("exists by %s: %w", column, err)
	}
	return count > 0, nil
}
