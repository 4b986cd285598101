package publish

import (
	"context"
	"errors"

	"childcare-app-server/internal/models"
)

var _ Backend = (*mockBackend)(nil)

type mockBackend struct {
	UploadImageFunc  func(ctx context.Context, snap *Snapshot) (*Image, error)
	DeleteImageFunc  func(ctx context.Context, id string) error
	CreateReportFunc func(ctx context.Context, imageURL, title string) (*models.Report, error)

	uploads []string
	deleted []string
	created []string
}

func (m *mockBackend) UploadImage(ctx context.Context, snap *Snapshot) (*Image, error) {
	m.uploads = append(m.uploads, snap.FileName)
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, snap)
	}
	return &Image{ID: "img-1", URL: "http://api.test/image/img-1"}, nil
}

func (m *mockBackend) DeleteImage(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteImageFunc != nil {
		return m.DeleteImageFunc(ctx, id)
	}
	return nil
}

func (m *mockBackend) CreateReport(ctx context.Context, imageURL, title string) (*models.Report, error) {
	m.created = append(m.created, imageURL)
	if m.CreateReportFunc != nil {
		return m.CreateReportFunc(ctx, imageURL, title)
	}
	return &models.Report{BaseModel: models.BaseModel{ID: "rep-1"}, ImageURL: imageURL, Title: title}, nil
}

type mockCapturer struct {
	snap *Snapshot
	err  error
}

func (m mockCapturer) Capture(context.Context) (*Snapshot, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.snap == nil {
		return &Snapshot{FileName: "report.png", ContentType: "image/png", Data: []byte{1, 2, 3}}, nil
	}
	return m.snap, nil
}

var errBoom = errors.New("boom")
