package repository

import (
	"context"
	"errors"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"gorm.io/gorm"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) FindShop(ctx context.Context, shopID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *CatalogGormRepository) FindItem(ctx context.Context, itemID int64) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}
