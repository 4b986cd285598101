// Package repository holds the gorm-backed data access used by handlers and
// request guards. Handlers depend on the interfaces so tests can swap in
// in-memory fakes.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"childcare-app-server/internal/models"
)

// ErrNotFound is returned when a lookup or delete matches no row.
var ErrNotFound = errors.New("record not found")

// UserRepository resolves parent accounts.
type UserRepository interface {
	FindByExternalID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ChildRepository reads children.
type ChildRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Child, error)
	FindByID(ctx context.Context, id string) (*models.Child, error)
	Create(ctx context.Context, child *models.Child) error
}

// PrescriptionRepository stores prescriptions.
type PrescriptionRepository interface {
	// ListByChild returns the child's prescriptions newest first. A non-nil
	// since keeps only records dated at or after it.
	ListByChild(ctx context.Context, childID string, since *time.Time) ([]models.Prescription, error)
	// FindByID loads a prescription with its Child relation.
	FindByID(ctx context.Context, id string) (*models.Prescription, error)
	Create(ctx context.Context, p *models.Prescription) error
	Update(ctx context.Context, p *models.Prescription) error
	Delete(ctx context.Context, id string) error
}

// ReportRepository stores reports.
type ReportRepository interface {
	Create(ctx context.Context, r *models.Report) error
	FindByID(ctx context.Context, id string) (*models.Report, error)
	ListByUser(ctx context.Context, userID string) ([]models.Report, error)
}

// NewsRepository reads news.
type NewsRepository interface {
	List(ctx context.Context) ([]models.News, error)
	FindByID(ctx context.Context, id string) (*models.News, error)
}

// ImageRepository stores uploaded images.
type ImageRepository interface {
	Create(ctx context.Context, img *models.Image) error
	FindByID(ctx context.Context, id string) (*models.Image, error)
	Delete(ctx context.Context, id string) error
}

// VaccineRepository reads vaccine schedules.
type VaccineRepository interface {
	// ListByChildBetween returns records whose inoculation date falls in
	// [from, to), ordered by date.
	ListByChildBetween(ctx context.Context, childID string, from, to time.Time) ([]models.VaccineRecord, error)
	// ListByChild returns every record of the child, ordered by date.
	ListByChild(ctx context.Context, childID string) ([]models.VaccineRecord, error)
	Create(ctx context.Context, v *models.VaccineRecord) error
}

// RecordFilter narrows a daily record listing. Zero fields match everything;
// From is inclusive and To exclusive.
type RecordFilter struct {
	Type models.RecordType
	From *time.Time
	To   *time.Time
}

// RecordRepository stores symptom, emotion and meal records.
type RecordRepository interface {
	// ListByChild returns matching records newest first.
	ListByChild(ctx context.Context, childID string, filter RecordFilter) ([]models.Record, error)
	// FindByID loads a record with its Child relation.
	FindByID(ctx context.Context, id string) (*models.Record, error)
	Create(ctx context.Context, r *models.Record) error
	Delete(ctx context.Context, id string) error
}

// Repositories bundles the gorm implementations.
type Repositories struct {
	Users         UserRepository
	Children      ChildRepository
	Prescriptions PrescriptionRepository
	Reports       ReportRepository
	News          NewsRepository
	Images        ImageRepository
	Vaccines      VaccineRepository
	Records       RecordRepository
}

// New wires every repository to db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         &userRepo{db: db},
		Children:      &childRepo{db: db},
		Prescriptions: &prescriptionRepo{db: db},
		Reports:       &reportRepo{db: db},
		News:          &newsRepo{db: db},
		Images:        &imageRepo{db: db},
		Vaccines:      &vaccineRepo{db: db},
		Records:       &recordRepo{db: db},
	}
}

// translate maps gorm's not-found error onto ErrNotFound.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return errors.Wrap(err, op)
}

// deleted reports ErrNotFound when a delete touched no row.
func deleted(res *gorm.DB, op string) error {
	if res.Error != nil {
		return errors.Wrap(res.Error, op)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
