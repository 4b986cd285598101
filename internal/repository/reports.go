package repository

import (
	"context"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type reportRepo struct {
	db *gorm.DB
}

func (r *reportRepo) Create(ctx context.Context, report *models.Report) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(report).Error, "create report")
}

func (r *reportRepo) FindByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find report")
	}
	return &report, nil
}

func (r *reportRepo) ListByUser(ctx context.Context, userID string) ([]models.Report, error) {
	reports := []models.Report{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&reports).Error; err != nil {
		return nil, translate(err, "list reports")
	}
	return reports, nil
}
