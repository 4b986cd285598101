package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"childcare-app-server/internal/models"
)

func setup(t *testing.T) *Repositories {
	t.Helper()
	db, err := models.Open(sqlite.Open("file::memory:"), false)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, models.Migrate(db))
	return New(db)
}

func seedFamily(t *testing.T, repos *Repositories, externalID string) (*models.User, *models.Child) {
	t.Helper()
	ctx := context.Background()
	user := &models.User{UserID: externalID, Nickname: externalID}
	require.NoError(t, repos.Users.Create(ctx, user))
	child := &models.Child{
		UserID:    user.ID,
		Name:      "하늘",
		BirthDate: time.Date(2021, time.May, 5, 0, 0, 0, 0, time.UTC),
		Sex:       models.SexFemale,
	}
	require.NoError(t, repos.Children.Create(ctx, child))
	return user, child
}

func TestUsers_FindByExternalID(t *testing.T) {
	repos := setup(t)
	user, _ := seedFamily(t, repos, "kakao-1")

	got, err := repos.Users.FindByExternalID(context.Background(), "kakao-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repos.Users.FindByExternalID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrescriptions_RecentWindowIsInclusive(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	for _, daysAgo := range []int{0, 3, 4} {
		require.NoError(t, repos.Prescriptions.Create(ctx, &models.Prescription{
			ChildID:  child.ID,
			Date:     now.AddDate(0, 0, -daysAgo),
			Hospital: "병원",
		}))
	}

	since := now.AddDate(0, 0, -3)
	recent, err := repos.Prescriptions.ListByChild(ctx, child.ID, &since)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Date.Equal(now))
	assert.True(t, recent[1].Date.Equal(since))

	all, err := repos.Prescriptions.ListByChild(ctx, child.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.True(t, all[2].Date.Equal(now.AddDate(0, 0, -4)))
}

func TestPrescriptions_FindPreloadsChild(t *testing.T) {
	repos := setup(t)
	user, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	p := &models.Prescription{ChildID: child.ID, Date: time.Now().UTC(), Hospital: "병원"}
	require.NoError(t, repos.Prescriptions.Create(ctx, p))

	got, err := repos.Prescriptions.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.OwnerID())
}

func TestPrescriptions_UpdateReplacesFields(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	memo := "해열제"
	p := &models.Prescription{ChildID: child.ID, Date: time.Now().UTC(), Hospital: "A", Memo: &memo}
	require.NoError(t, repos.Prescriptions.Create(ctx, p))

	newDate := time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)
	p.Date = newDate
	p.Hospital = "B"
	p.Memo = nil
	require.NoError(t, repos.Prescriptions.Update(ctx, p))

	got, err := repos.Prescriptions.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Hospital)
	assert.Nil(t, got.Memo)
	assert.True(t, got.Date.Equal(newDate))

	missing := &models.Prescription{BaseModel: models.BaseModel{ID: "missing"}, Date: newDate}
	assert.ErrorIs(t, repos.Prescriptions.Update(ctx, missing), ErrNotFound)
}

func TestPrescriptions_DeleteTwice(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	p := &models.Prescription{ChildID: child.ID, Date: time.Now().UTC(), Hospital: "병원"}
	require.NoError(t, repos.Prescriptions.Create(ctx, p))

	require.NoError(t, repos.Prescriptions.Delete(ctx, p.ID))
	assert.ErrorIs(t, repos.Prescriptions.Delete(ctx, p.ID), ErrNotFound)
}

func TestReports_ListNewestFirst(t *testing.T) {
	repos := setup(t)
	user, _ := seedFamily(t, repos, "kakao-1")
	other, _ := seedFamily(t, repos, "kakao-2")
	ctx := context.Background()

	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, url := range []string{"a.png", "b.png"} {
		r := &models.Report{UserID: user.ID, ImageURL: url}
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repos.Reports.Create(ctx, r))
	}
	require.NoError(t, repos.Reports.Create(ctx, &models.Report{UserID: other.ID, ImageURL: "c.png"}))

	reports, err := repos.Reports.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "b.png", reports[0].ImageURL)
	assert.Equal(t, "a.png", reports[1].ImageURL)
}

func TestImages_CreateFindDelete(t *testing.T) {
	repos := setup(t)
	user, _ := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	img := &models.Image{UserID: user.ID, FileName: "r.png", ContentType: "image/png", Data: []byte{1, 2, 3}, Size: 3}
	require.NoError(t, repos.Images.Create(ctx, img))

	got, err := repos.Images.FindByID(ctx, img.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.Data)

	require.NoError(t, repos.Images.Delete(ctx, img.ID))
	_, err = repos.Images.FindByID(ctx, img.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVaccines_ListByChildBetween(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	days := []time.Time{
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range days {
		require.NoError(t, repos.Vaccines.Create(ctx, &models.VaccineRecord{
			ChildID: child.ID, VaccineCode: "HepB", DoseNumber: 1, InoculationDate: d,
		}))
	}

	records, err := repos.Vaccines.ListByChildBetween(ctx, child.ID, days[1], days[3])
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].InoculationDate.Equal(days[1]))
	assert.True(t, records[1].InoculationDate.Equal(days[2]))
}

func TestPrescriptions_UpdateWithSameValues(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	p := &models.Prescription{ChildID: child.ID, Date: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), Hospital: "A"}
	require.NoError(t, repos.Prescriptions.Create(ctx, p))
	require.NoError(t, repos.Prescriptions.Update(ctx, p))
	require.NoError(t, repos.Prescriptions.Update(ctx, p))
}

func TestVaccines_ListByChild(t *testing.T) {
	repos := setup(t)
	_, child := seedFamily(t, repos, "kakao-1")
	_, other := seedFamily(t, repos, "kakao-2")
	ctx := context.Background()

	records, err := repos.Vaccines.ListByChild(ctx, child.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	day := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, v := range []models.VaccineRecord{
		{ChildID: child.ID, VaccineCode: "HepB", DoseNumber: 2, InoculationDate: day.AddDate(0, 1, 0)},
		{ChildID: child.ID, VaccineCode: "HepB", DoseNumber: 1, InoculationDate: day},
		{ChildID: other.ID, VaccineCode: "BCG", DoseNumber: 1, InoculationDate: day},
	} {
		v := v
		require.NoError(t, repos.Vaccines.Create(ctx, &v))
	}

	records, err = repos.Vaccines.ListByChild(ctx, child.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].DoseNumber)
	assert.Equal(t, 2, records[1].DoseNumber)
}

func TestRecords_ListFilterFindDelete(t *testing.T) {
	repos := setup(t)
	user, child := seedFamily(t, repos, "kakao-1")
	ctx := context.Background()

	base := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	fever := "발열"
	entries := []*models.Record{
		{ChildID: child.ID, Type: models.RecordSymptom, StartTime: base.Add(-48 * time.Hour), Symptom: &fever},
		{ChildID: child.ID, Type: models.RecordSymptom, StartTime: base.Add(2 * time.Hour), Symptom: &fever},
		{ChildID: child.ID, Type: models.RecordEmotion, StartTime: base.Add(time.Hour)},
	}
	for _, r := range entries {
		require.NoError(t, repos.Records.Create(ctx, r))
	}

	all, err := repos.Records.ListByChild(ctx, child.ID, RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entries[1].ID, all[0].ID)

	to := base.Add(2 * time.Hour)
	symptoms, err := repos.Records.ListByChild(ctx, child.ID, RecordFilter{Type: models.RecordSymptom, From: &base, To: &to})
	require.NoError(t, err)
	assert.Empty(t, symptoms)

	to = base.Add(3 * time.Hour)
	symptoms, err = repos.Records.ListByChild(ctx, child.ID, RecordFilter{Type: models.RecordSymptom, From: &base, To: &to})
	require.NoError(t, err)
	require.Len(t, symptoms, 1)
	assert.Equal(t, "발열", *symptoms[0].Symptom)

	got, err := repos.Records.FindByID(ctx, entries[2].ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.OwnerID())

	require.NoError(t, repos.Records.Delete(ctx, got.ID))
	assert.ErrorIs(t, repos.Records.Delete(ctx, got.ID), ErrNotFound)
	_, err = repos.Records.FindByID(ctx, got.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNews_ListAndFind(t *testing.T) {
	repos := setup(t)
	ctx := context.Background()

	db := repos.News.(*newsRepo).db
	require.NoError(t, db.Create(&models.News{Title: "수족구 유행"}).Error)

	news, err := repos.News.List(ctx)
	require.NoError(t, err)
	require.Len(t, news, 1)

	got, err := repos.News.FindByID(ctx, news[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "수족구 유행", got.Title)

	_, err = repos.News.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
