package repository

import "github.com/insuretrack/insuretrack-api/internal/domain/entity"

// UserRepository persistence port for user accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByResetToken returns the user holding an unconsumed reset token.
	GetByResetToken(token string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
