package repositories

import (
	"fmt"

	"ledgr/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the interface for item-related database operations.
type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id uuid.UUID) (*models.Item, error)
	ListByOwner(ownerID uint, limit, offset int) ([]models.Item, int64, error)
	ListAll(limit, offset int) ([]models.Item, int64, error)
	Update(item *models.Item) error
	Delete(id uuid.UUID) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *itemRepository) GetByID(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) ListByOwner(ownerID uint, limit, offset int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	q := r.db.Model(&models.Item{}).Where("owner_id = ?", ownerID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

func (r *itemRepository) ListAll(limit, offset int) ([]models.Item, int64, error) {
	var items []models.Item
	var total int64

	if err := r.db.Model(&models.Item{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

func (r *itemRepository) Update(item *models.Item) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

func (r *itemRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
