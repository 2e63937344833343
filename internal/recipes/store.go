// Package recipes persists recipes through gorm. Recipes are addressed by
// their position in creation order, scoped to an owner, so the API surface
// can expose a stable zero-based index instead of database IDs.
package recipes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"saponify/models"
)

// ErrIndexOutOfRange reports a recipe index past the end of the owner's list.
var ErrIndexOutOfRange = errors.New("recipe index out of range")

// Store reads and writes recipes for one database handle.
type Store struct {
	db *gorm.DB
}

// New wraps a gorm handle in a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Append persists a new recipe at the end of the owner's list. The recipe's
// ID is populated on return.
func (s *Store) Append(ctx context.Context, recipe *models.Recipe) error {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// List returns the owner's recipes in creation order.
func (s *Store) List(ctx context.Context, ownerID uint) ([]models.Recipe, error) {
	var out []models.Recipe
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return out, nil
}

// At returns the recipe at the zero-based index in creation order.
func (s *Store) At(ctx context.Context, ownerID uint, index int) (*models.Recipe, error) {
	if index < 0 {
		return nil, ErrIndexOutOfRange
	}
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(index).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIndexOutOfRange
		}
		return nil, fmt.Errorf("load recipe %d: %w", index, err)
	}
	return &recipe, nil
}

// UpdateAt replaces the stored recipe at index with updated's fields. The
// stored ID, owner, and creation time are preserved.
func (s *Store) UpdateAt(ctx context.Context, ownerID uint, index int, updated *models.Recipe) (*models.Recipe, error) {
	current, err := s.At(ctx, ownerID, index)
	if err != nil {
		return nil, err
	}

	updated.ID = current.ID
	updated.OwnerID = current.OwnerID
	updated.CreatedAt = current.CreatedAt
	if err := s.db.WithContext(ctx).Save(updated).Error; err != nil {
		return nil, fmt.Errorf("update recipe %d: %w", index, err)
	}
	return updated, nil
}

// DeleteAt removes the recipe at index. Later recipes shift down by one.
func (s *Store) DeleteAt(ctx context.Context, ownerID uint, index int) error {
	current, err := s.At(ctx, ownerID, index)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(current).Error; err != nil {
		return fmt.Errorf("delete recipe %d: %w", index, err)
	}
	return nil
}

// Count returns how many recipes the owner has.
func (s *Store) Count(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("owner_id = ?", ownerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return n, nil
}
