package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type vaccineRepo struct {
	db *gorm.DB
}

func (r *vaccineRepo) ListByChildBetween(ctx context.Context, childID string, from, to time.Time) ([]models.VaccineRecord, error) {
	records := []models.VaccineRecord{}
	err := r.db.WithContext(ctx).
		Where("child_id = ? AND inoculation_date >= ? AND inoculation_date < ?", childID, from.UTC(), to.UTC()).
		Order("inoculation_date asc, dose_number asc").
		Find(&records).Error
	if err != nil {
		return nil, translate(err, "list vaccine records")
	}
	return records, nil
}

func (r *vaccineRepo) ListByChild(ctx context.Context, childID string) ([]models.VaccineRecord, error) {
	records := []models.VaccineRecord{}
	err := r.db.WithContext(ctx).
		Where("child_id = ?", childID).
		Order("inoculation_date asc, dose_number asc").
		Find(&records).Error
	if err != nil {
		return nil, translate(err, "list vaccine records")
	}
	return records, nil
}

func (r *vaccineRepo) Create(ctx context.Context, v *models.VaccineRecord) error {
	v.InoculationDate = v.InoculationDate.UTC()
	return translate(r.db.WithContext(ctx).Omit("Child").Create(v).Error, "create vaccine record")
}
