package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

type prescriptionRepo struct {
	db *gorm.DB
}

func (r *prescriptionRepo) ListByChild(ctx context.Context, childID string, since *time.Time) ([]models.Prescription, error) {
	q := r.db.WithContext(ctx).Where("child_id = ?", childID)
	if since != nil {
		q = q.Where("date >= ?", since.UTC())
	}
	prescriptions := []models.Prescription{}
	if err := q.Order("date desc").Find(&prescriptions).Error; err != nil {
		return nil, translate(err, "list prescriptions")
	}
	return prescriptions, nil
}

func (r *prescriptionRepo) FindByID(ctx context.Context, id string) (*models.Prescription, error) {
	var p models.Prescription
	if err := r.db.WithContext(ctx).Preload("Child").First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, "find prescription")
	}
	return &p, nil
}

func (r *prescriptionRepo) Create(ctx context.Context, p *models.Prescription) error {
	p.Date = p.Date.UTC()
	return translate(r.db.WithContext(ctx).Omit("Child").Create(p).Error, "create prescription")
}

// Update replaces every editable column, including ones set to nil.
func (r *prescriptionRepo) Update(ctx context.Context, p *models.Prescription) error {
	p.Date = p.Date.UTC()
	res := r.db.WithContext(ctx).Model(&models.Prescription{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"date":                   p.Date,
			"hospital":               p.Hospital,
			"doctor":                 p.Doctor,
			"diagnoses":              p.Diagnoses,
			"treatment_method":       p.TreatmentMethod,
			"medicines":              p.Medicines,
			"prescription_image_url": p.PrescriptionImageURL,
			"memo":                   p.Memo,
			"updated_at":             time.Now().UTC(),
		})
	if res.Error != nil {
		return translate(res.Error, "update prescription")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *prescriptionRepo) Delete(ctx context.Context, id string) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Prescription{}, "id = ?", id), "delete prescription")
}
