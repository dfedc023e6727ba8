package repositories

import (
	"context"
	"errors"

	"gin-catalog/apperrors"
	"gin-catalog/models"

	"gorm.io/gorm"
)

type IOwnerRepository interface {
	FindByID(ctx context.Context, ownerID uint) (*models.Owner, error)
	FindOrCreateByEmail(ctx context.Context, email string, name string) (*models.Owner, error)
	DeleteCascade(ctx context.Context, ownerID uint) error
}

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) IOwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) FindByID(ctx context.Context, ownerID uint) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.WithContext(ctx).First(&owner, "id = ?", ownerID).Error; err != nil {
		return nil, translateError(err)
	}
	return &owner, nil
}

// FindOrCreateByEmail resolves the owner record for a verified identity,
// creating it exactly once on first sight of the email. A creation race is
// resolved by re-reading the winner's record.
func (r *OwnerRepository) FindOrCreateByEmail(ctx context.Context, email string, name string) (*models.Owner, error) {
	if email == "" {
		return nil, apperrors.NewField(apperrors.InvalidArgument, "email must not be empty", "email")
	}
	if name == "" {
		return nil, apperrors.NewField(apperrors.InvalidArgument, "name must not be empty", "name")
	}

	var owner models.Owner
	err := r.db.WithContext(ctx).First(&owner, "email = ?", email).Error
	if err == nil {
		return &owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateError(err)
	}

	owner = models.Owner{Email: email, Name: name}
	if err := r.db.WithContext(ctx).Create(&owner).Error; err != nil {
		if isDuplicate(err) {
			var existing models.Owner
			if err := r.db.WithContext(ctx).First(&existing, "email = ?", email).Error; err == nil {
				return &existing, nil
			}
		}
		return nil, translateError(err)
	}
	return &owner, nil
}

// DeleteCascade removes an owner and everything it owns. Administrative only;
// not reachable through the request pipeline.
func (r *OwnerRepository) DeleteCascade(ctx context.Context, ownerID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.Owner
		if err := tx.First(&owner, "id = ?", ownerID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Item{}, "owner_id = ?", ownerID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Category{}, "owner_id = ?", ownerID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Image{}, "owner_id = ?", ownerID).Error; err != nil {
			return err
		}
		return tx.Delete(&owner).Error
	})
	return translateError(err)
}
