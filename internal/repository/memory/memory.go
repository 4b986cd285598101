// Package memory is an in-memory implementation of the repository
// interfaces, used by tests and local experiments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"childcare-app-server/internal/models"
	"childcare-app-server/internal/repository"
)

// DB holds every table in maps keyed by id.
type DB struct {
	mu            sync.Mutex
	users         map[string]models.User
	children      map[string]models.Child
	prescriptions map[string]models.Prescription
	reports       map[string]models.Report
	news          map[string]models.News
	images        map[string]models.Image
	vaccines      map[string]models.VaccineRecord
	records       map[string]models.Record
}

// New returns an empty database.
func New() *DB {
	return &DB{
		users:         map[string]models.User{},
		children:      map[string]models.Child{},
		prescriptions: map[string]models.Prescription{},
		reports:       map[string]models.Report{},
		news:          map[string]models.News{},
		images:        map[string]models.Image{},
		vaccines:      map[string]models.VaccineRecord{},
		records:       map[string]models.Record{},
	}
}

// Repositories exposes db through the repository interfaces.
func (db *DB) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Users:         &users{db},
		Children:      &children{db},
		Prescriptions: &prescriptions{db},
		Reports:       &reports{db},
		News:          &news{db},
		Images:        &images{db},
		Vaccines:      &vaccines{db},
		Records:       &records{db},
	}
}

// AddNews inserts a news article.
func (db *DB) AddNews(n models.News) models.News {
	db.mu.Lock()
	defer db.mu.Unlock()
	stamp(&n.BaseModel)
	db.news[n.ID] = n
	return n
}

// ImageCount returns how many images are stored.
func (db *DB) ImageCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.images)
}

func stamp(b *models.BaseModel) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

type users struct{ db *DB }

func (r *users) FindByExternalID(_ context.Context, userID string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.UserID == userID {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *users) Create(_ context.Context, user *models.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&user.BaseModel)
	r.db.users[user.ID] = *user
	return nil
}

type children struct{ db *DB }

func (r *children) ListByUser(_ context.Context, userID string) ([]models.Child, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Child{}
	for _, c := range r.db.children {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BirthDate.Before(out[j].BirthDate) })
	return out, nil
}

func (r *children) FindByID(_ context.Context, id string) (*models.Child, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.children[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *children) Create(_ context.Context, child *models.Child) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&child.BaseModel)
	r.db.children[child.ID] = *child
	return nil
}

type prescriptions struct{ db *DB }

func (r *prescriptions) ListByChild(_ context.Context, childID string, since *time.Time) ([]models.Prescription, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Prescription{}
	for _, p := range r.db.prescriptions {
		if p.ChildID != childID {
			continue
		}
		if since != nil && p.Date.Before(*since) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *prescriptions) FindByID(_ context.Context, id string) (*models.Prescription, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.prescriptions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p.Child = r.db.children[p.ChildID]
	return &p, nil
}

func (r *prescriptions) Create(_ context.Context, p *models.Prescription) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&p.BaseModel)
	p.Date = p.Date.UTC()
	stored := *p
	stored.Child = models.Child{}
	r.db.prescriptions[p.ID] = stored
	return nil
}

func (r *prescriptions) Update(_ context.Context, p *models.Prescription) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	old, ok := r.db.prescriptions[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored := *p
	stored.Date = p.Date.UTC()
	stored.ChildID = old.ChildID
	stored.CreatedAt = old.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	stored.Child = models.Child{}
	r.db.prescriptions[p.ID] = stored
	p.Date = stored.Date
	p.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *prescriptions) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.prescriptions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.prescriptions, id)
	return nil
}

type reports struct{ db *DB }

func (r *reports) Create(_ context.Context, report *models.Report) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&report.BaseModel)
	r.db.reports[report.ID] = *report
	return nil
}

func (r *reports) FindByID(_ context.Context, id string) (*models.Report, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rep, ok := r.db.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rep, nil
}

func (r *reports) ListByUser(_ context.Context, userID string) ([]models.Report, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Report{}
	for _, rep := range r.db.reports {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type news struct{ db *DB }

func (r *news) List(_ context.Context) ([]models.News, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.News{}
	for _, n := range r.db.news {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *news) FindByID(_ context.Context, id string) (*models.News, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n, ok := r.db.news[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &n, nil
}

type images struct{ db *DB }

func (r *images) Create(_ context.Context, img *models.Image) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&img.BaseModel)
	r.db.images[img.ID] = *img
	return nil
}

func (r *images) FindByID(_ context.Context, id string) (*models.Image, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	img, ok := r.db.images[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &img, nil
}

func (r *images) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.images[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.images, id)
	return nil
}

type vaccines struct{ db *DB }

func (r *vaccines) ListByChildBetween(_ context.Context, childID string, from, to time.Time) ([]models.VaccineRecord, error) {
	return r.list(func(v models.VaccineRecord) bool {
		return v.ChildID == childID && !v.InoculationDate.Before(from) && v.InoculationDate.Before(to)
	}), nil
}

func (r *vaccines) ListByChild(_ context.Context, childID string) ([]models.VaccineRecord, error) {
	return r.list(func(v models.VaccineRecord) bool { return v.ChildID == childID }), nil
}

func (r *vaccines) list(keep func(models.VaccineRecord) bool) []models.VaccineRecord {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.VaccineRecord{}
	for _, v := range r.db.vaccines {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InoculationDate.Equal(out[j].InoculationDate) {
			return out[i].DoseNumber < out[j].DoseNumber
		}
		return out[i].InoculationDate.Before(out[j].InoculationDate)
	})
	return out
}

func (r *vaccines) Create(_ context.Context, v *models.VaccineRecord) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&v.BaseModel)
	r.db.vaccines[v.ID] = *v
	return nil
}

type records struct{ db *DB }

func (r *records) ListByChild(_ context.Context, childID string, filter repository.RecordFilter) ([]models.Record, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []models.Record{}
	for _, rec := range r.db.records {
		switch {
		case rec.ChildID != childID:
		case filter.Type != "" && rec.Type != filter.Type:
		case filter.From != nil && rec.StartTime.Before(*filter.From):
		case filter.To != nil && !rec.StartTime.Before(*filter.To):
		default:
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (r *records) FindByID(_ context.Context, id string) (*models.Record, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rec, ok := r.db.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	rec.Child = r.db.children[rec.ChildID]
	return &rec, nil
}

func (r *records) Create(_ context.Context, rec *models.Record) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stamp(&rec.BaseModel)
	rec.StartTime = rec.StartTime.UTC()
	stored := *rec
	stored.Child = models.Child{}
	r.db.records[rec.ID] = stored
	return nil
}

func (r *records) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.records, id)
	return nil
}
