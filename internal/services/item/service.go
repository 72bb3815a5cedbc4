package item

import (
	"errors"

	"ledgr/internal/models"
	"ledgr/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrForbidden    = errors.New("not enough permissions")
	ErrTitleEmpty   = errors.New("title is required")
)

type Service interface {
	Create(ownerID uint, title, description string) (*models.Item, error)
	Get(itemID uuid.UUID, callerID uint, isAdmin bool) (*models.Item, error)
	List(callerID uint, isAdmin bool, limit, offset int) ([]models.Item, int64, error)
	Update(itemID uuid.UUID, callerID uint, isAdmin bool, title, description string) (*models.Item, error)
	Delete(itemID uuid.UUID, callerID uint, isAdmin bool) error
}

type service struct {
	repo repositories.ItemRepository
}

func NewService(repo repositories.ItemRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ownerID uint, title, description string) (*models.Item, error) {
	if title == "" {
		return nil, ErrTitleEmpty
	}

	item := &models.Item{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Get(itemID uuid.UUID, callerID uint, isAdmin bool) (*models.Item, error) {
	item, err := s.repo.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !isAdmin && item.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return item, nil
}

func (s *service) List(callerID uint, isAdmin bool, limit, offset int) ([]models.Item, int64, error) {
	if isAdmin {
		return s.repo.ListAll(limit, offset)
	}
	return s.repo.ListByOwner(callerID, limit, offset)
}

func (s *service) Update(itemID uuid.UUID, callerID uint, isAdmin bool, title, description string) (*models.Item, error) {
	item, err := s.Get(itemID, callerID, isAdmin)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, ErrTitleEmpty
	}

	item.Title = title
	item.Description = description
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Delete(itemID uuid.UUID, callerID uint, isAdmin bool) error {
	if _, err := s.Get(itemID, callerID, isAdmin); err != nil {
		return err
	}
	return s.repo.Delete(itemID)
}
