package repository

import (
	"context"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) FindByExternalID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, translate(err, "find user")
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error, "create user")
}

type childRepo struct {
	db *gorm.DB
}

func (r *childRepo) ListByUser(ctx context.Context, userID string) ([]models.Child, error) {
	children := []models.Child{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("birth_date asc").Find(&children).Error
	if err != nil {
		return nil, translate(err, "list children")
	}
	return children, nil
}

func (r *childRepo) FindByID(ctx context.Context, id string) (*models.Child, error) {
	var child models.Child
	if err := r.db.WithContext(ctx).First(&child, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find child")
	}
	return &child, nil
}

func (r *childRepo) Create(ctx context.Context, child *models.Child) error {
	return translate(r.db.WithContext(ctx).Create(child).Error, "create child")
}
