package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"childcare-app-server/internal/config"
	"childcare-app-server/internal/models"
	"childcare-app-server/internal/publish"
	"childcare-app-server/internal/repository/memory"
	"childcare-app-server/internal/routes"
	"childcare-app-server/internal/utils"
)

const testSecret = "client-test-secret"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func init() {
	gin.SetMode(gin.TestMode)
}

type api struct {
	srv   *httptest.Server
	db    *memory.DB
	child *models.Child
	token string
}

// newAPI serves the real routes over memory repositories. override, when
// set, takes over the given path.
func newAPI(t *testing.T, override map[string]http.HandlerFunc) *api {
	t.Helper()
	db := memory.New()
	repos := db.Repositories()
	ctx := context.Background()

	user := &models.User{UserID: "kakao-7"}
	require.NoError(t, repos.Users.Create(ctx, user))
	child := &models.Child{UserID: user.ID, Name: "별"}
	require.NoError(t, repos.Children.Create(ctx, child))

	router := gin.New()
	mux := http.NewServeMux()
	mux.Handle("/", router)
	for path, h := range override {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	routes.SetupRoutes(router, repos, &config.Config{
		JWTSecret:              testSecret,
		AppURL:                 srv.URL,
		Location:               time.UTC,
		RecentPrescriptionDays: 3,
		MaxUploadBytes:         1 << 20,
	})

	tok, err := utils.GenerateAccessToken(user.UserID, testSecret, time.Hour)
	require.NoError(t, err)
	return &api{srv: srv, db: db, child: child, token: tok}
}

func writePNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))
	return path
}

func TestPublishReport(t *testing.T) {
	a := newAPI(t, nil)
	c := New(a.srv.URL, a.token)

	saga := publish.New(publish.FileCapturer{Path: writePNG(t)}, c)
	res, err := saga.Run(context.Background(), "주간 리포트")
	require.NoError(t, err)
	assert.Equal(t, publish.Done, res.State)
	require.NotNil(t, res.Report)
	assert.Equal(t, "주간 리포트", res.Report.Title)
	assert.Equal(t, a.srv.URL+"/image/"+res.Image.ID, res.Report.ImageURL)
	assert.Equal(t, 1, a.db.ImageCount())

	resp, err := http.Get(res.Report.ImageURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestPublishReport_CompensatesWhenCreateFails(t *testing.T) {
	a := newAPI(t, map[string]http.HandlerFunc{
		"/api/report": func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"리포트 생성 중 오류가 발생했습니다."}`))
		},
	})
	c := New(a.srv.URL, a.token)

	res, err := publish.New(publish.FileCapturer{Path: writePNG(t)}, c).Run(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Contains(t, err.Error(), "리포트 생성 중 오류가 발생했습니다.")
	assert.Equal(t, publish.Failed, res.State)
	assert.Equal(t, publish.FailureNotice, res.Notice)
	assert.True(t, res.Compensated)
	assert.Equal(t, 0, a.db.ImageCount())
}

func TestClientErrors(t *testing.T) {
	a := newAPI(t, nil)

	_, err := New(a.srv.URL, "").GetChild(context.Background(), a.child.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))

	c := New(a.srv.URL+"/", a.token)
	_, err = c.GetChild(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.EqualError(t, err, "api: status 404: "+utils.MsgChildNotFound)

	err = c.DeleteImage(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	_, err = c.UploadImage(context.Background(), &publish.Snapshot{FileName: "a.txt", Data: []byte("hello")})
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))

	assert.Equal(t, 0, StatusCode(nil))
}

func TestGetChild(t *testing.T) {
	a := newAPI(t, nil)
	child, err := New(a.srv.URL, a.token).GetChild(context.Background(), a.child.ID)
	require.NoError(t, err)
	assert.Equal(t, a.child.ID, child.ID)
	assert.Equal(t, "별", child.Name)
}
