package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hackathon_judging_backend/internal/config"
	"hackathon_judging_backend/internal/controller"
	"hackathon_judging_backend/internal/middleware"
	"hackathon_judging_backend/internal/model"
	"hackathon_judging_backend/internal/service"
	"hackathon_judging_backend/internal/service/servicetest"
	"hackathon_judging_backend/internal/util"
	"hackathon_judging_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	cfg.Evaluation.WinnerCount = 1
	return cfg
}

// newRouter wires the controllers behind the same auth and role gates the
// application registers, backed by an in-memory store.
func newRouter(store *servicetest.Store, storage *service.StorageService) *gin.Engine {
	cfg := testConfig()

	evaluationSvc := service.NewEvaluationService(store, store.JudgeStore(), store.TeamStore(), store, store)
	aggregationSvc := service.NewAggregationService(store.TeamStore(), store)
	rankingSvc := service.NewRankingService(cfg.Evaluation.WinnerCount)
	resultsSvc := service.NewResultsService(store, store.JudgeStore(), store, store, aggregationSvc, rankingSvc)
	activitySvc := service.NewJudgeActivityService(store.JudgeStore(), store.TeamStore(), store)
	snapshotSvc := service.NewSnapshotService(store.SnapshotStore(), resultsSvc, nil, storage)

	evaluationCtl := controller.NewEvaluationController(evaluationSvc)
	resultsCtl := controller.NewResultsController(resultsSvc, activitySvc)
	snapshotCtl := controller.NewSnapshotController(snapshotSvc)

	router := gin.New()
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))

	judge := authGroup.Group("/")
	judge.Use(middleware.RoleMiddleware(model.JudgeRole))
	judge.POST("/hackathons/:id/evaluations", evaluationCtl.Submit)

	admin := authGroup.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	admin.GET("/hackathons/:id/results", resultsCtl.GetResults)
	admin.GET("/hackathons/:id/judge-activity", resultsCtl.GetJudgeActivity)
	admin.POST("/hackathons/:id/snapshots", snapshotCtl.Create)
	admin.GET("/snapshots", snapshotCtl.List)
	admin.GET("/snapshots/:id", snapshotCtl.Get)
	admin.POST("/snapshots/:id/export", snapshotCtl.Export)

	return router
}

// newSeededStore returns a store with one open hackathon, two teams, two
// criteria and one active judge (user 500).
func newSeededStore() *servicetest.Store {
	store := servicetest.NewStore()
	store.Hackathons[1] = model.Hackathon{BaseModel: model.BaseModel{ID: 1}, Name: "Spring Hack", EvaluationOpen: true}
	store.Teams[10] = model.Team{BaseModel: model.BaseModel{ID: 10}, HackathonID: 1, Name: "Alpha", TeamNumber: 1}
	store.Teams[11] = model.Team{BaseModel: model.BaseModel{ID: 11}, HackathonID: 1, Name: "Beta", TeamNumber: 2}
	store.Criteria[100] = model.Criterion{BaseModel: model.BaseModel{ID: 100}, HackathonID: 1, Name: "Innovation", MaxScore: 10, IsActive: true}
	store.Criteria[101] = model.Criterion{BaseModel: model.BaseModel{ID: 101}, HackathonID: 1, Name: "Execution", MaxScore: 10, IsActive: true}
	store.Judges[50] = model.Judge{
		BaseModel:   model.BaseModel{ID: 50},
		HackathonID: 1,
		UserID:      500,
		IsActive:    true,
		User:        &model.User{BaseModel: model.BaseModel{ID: 500}, Name: "Grace"},
	}
	return store
}

func tokenFor(t *testing.T, userID uint, role model.UserRole) string {
	t.Helper()
	user := &model.User{BaseModel: model.BaseModel{ID: userID}, Email: "test@example.com", Role: role}
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func performRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) util.Response {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	resp := decodeResponse(t, recorder)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code, "unexpected status, body: %s", recorder.Body.String())
}
