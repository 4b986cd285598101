package repository

import (
	"context"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type recordRepo struct {
	db *gorm.DB
}

func (r *recordRepo) ListByChild(ctx context.Context, childID string, filter RecordFilter) ([]models.Record, error) {
	q := r.db.WithContext(ctx).Where("child_id = ?", childID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		q = q.Where("start_time >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		q = q.Where("start_time < ?", filter.To.UTC())
	}
	records := []models.Record{}
	if err := q.Order("start_time desc").Find(&records).Error; err != nil {
		return nil, translate(err, "list records")
	}
	return records, nil
}

func (r *recordRepo) FindByID(ctx context.Context, id string) (*models.Record, error) {
	var record models.Record
	if err := r.db.WithContext(ctx).Preload("Child").First(&record, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find record")
	}
	return &record, nil
}

func (r *recordRepo) Create(ctx context.Context, record *models.Record) error {
	record.StartTime = record.StartTime.UTC()
	if record.EndTime != nil {
		end := record.EndTime.UTC()
		record.EndTime = &end
	}
	return translate(r.db.WithContext(ctx).Omit("Child").Create(record).Error, "create record")
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Record{}, "id = ?", id), "delete record")
}
