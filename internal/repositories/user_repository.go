package repositories

import "ledgr/internal/models"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	ListPaginated(limit, offset int) ([]models.User, int64, error)
	IncrementTokenVersion(userID uint) error
}
