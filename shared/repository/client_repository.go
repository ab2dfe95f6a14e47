package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pavitra93/go-client-registry/shared/models"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, id uint, updates map[string]any) error
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// GetByID returns the client with the given primary key, or nil when absent.
func (r *GormClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmail returns the client with the exact email, or nil when absent.
func (r *GormClientRepository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts the client in one transaction. References are not
// pre-validated; a missing company or user is rejected by the foreign key at
// commit and surfaces as ErrReferenceNotFound with nothing persisted.
func (r *GormClientRepository) Create(ctx context.Context, client *models.Client) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(client).Error
	})
	return translateError(err)
}

// Update applies the given column updates to the client in one transaction.
// ErrNotFound when the id matches nothing; a constraint violation at commit
// rolls the whole update back.
func (r *GormClientRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Client
		if err := tx.First(&c, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&c).Updates(updates).Error
	})
	return translateError(err)
}
