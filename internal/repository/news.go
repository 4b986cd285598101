package repository

import (
	"context"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type newsRepo struct {
	db *gorm.DB
}

func (r *newsRepo) List(ctx context.Context) ([]models.News, error) {
	news := []models.News{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&news).Error; err != nil {
		return nil, translate(err, "list news")
	}
	return news, nil
}

func (r *newsRepo) FindByID(ctx context.Context, id string) (*models.News, error) {
	var news models.News
	if err := r.db.WithContext(ctx).First(&news, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find news")
	}
	return &news, nil
}
