package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pavitra93/go-client-registry/shared/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, username string) ([]models.User, error)
	Rename(ctx context.Context, username, newUsername string) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByUsername returns the user with the exact username, or nil when absent.
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// List returns every user, or only the exact match when username is non-empty.
// Order is whatever the store returns; callers must not rely on it.
func (r *GormUserRepository) List(ctx context.Context, username string) ([]models.User, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if username != "" {
		q = q.Where("username = ?", username)
	}
	var users []models.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Rename replaces the username of the matching user inside one transaction.
// There is no uniqueness pre-check: a collision with another user's name is
// rejected by the unique index at commit and surfaces as ErrDuplicate.
func (r *GormUserRepository) Rename(ctx context.Context, username, newUsername string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u models.User
		if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
			return err
		}
		return tx.Model(&u).Update("username", newUsername).Error
	})
	return translateError(err)
}
