package repository

import (
	"context"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type imageRepo struct {
	db *gorm.DB
}

func (r *imageRepo) Create(ctx context.Context, img *models.Image) error {
	return translate(r.db.WithContext(ctx).Create(img).Error, "create image")
}

func (r *imageRepo) FindByID(ctx context.Context, id string) (*models.Image, error) {
	var img models.Image
	if err := r.db.WithContext(ctx).First(&img, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find image")
	}
	return &img, nil
}

func (r *imageRepo) Delete(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Image{}, "id = ?", id), "delete image")
}
