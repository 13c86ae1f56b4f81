package activity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
	"portfolio/internal/domain"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.ConnectWithPool(filepath.Join(t.TempDir(), "activity.db"), database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1, Silent: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	x, err := database.SQLX(db)
	require.NoError(t, err)
	return NewStore(x)
}

func TestRecorder_WritesActorFromContext(t *testing.T) {
	store := setupStore(t)
	rec := NewRecorder(store)

	adminID := int64(3)
	ctx := WithActor(context.Background(), Actor{AdminID: &adminID, IP: "10.0.0.1"})
	rec.Record(ctx, "SKILL_ADD", "Added skill: Go")
	rec.Record(context.Background(), "LOGIN_FAILED", "Failed login attempt for: bob")

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byAction := map[string]domain.ActivityLog{}
	for _, e := range entries {
		byAction[e.Action] = e
	}
	skill := byAction["SKILL_ADD"]
	require.NotNil(t, skill.AdminID)
	assert.Equal(t, int64(3), *skill.AdminID)
	assert.Equal(t, "10.0.0.1", skill.IPAddress)
	assert.Equal(t, "Added skill: Go", skill.Details)
	assert.Nil(t, byAction["LOGIN_FAILED"].AdminID)
}

func TestRecorder_CancelledContextStillWrites(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewRecorder(store).Record(ctx, "LOGOUT", "Admin logged out")

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

type mockInserter struct {
	mock.Mock
}

func (m *mockInserter) Insert(ctx context.Context, e *domain.ActivityLog) error {
	return m.Called(ctx, e).Error(0)
}

func TestRecorder_SwallowsErrors(t *testing.T) {
	ins := &mockInserter{}
	ins.On("Insert", mock.Anything, mock.MatchedBy(func(e *domain.ActivityLog) bool {
		return e.Action == "TECH_DELETE"
	})).Return(errors.New("db down")).Once()

	assert.NotPanics(t, func() {
		NewRecorder(ins).Record(context.Background(), "TECH_DELETE", "Deleted technology ID: 1")
	})
	ins.AssertExpectations(t)
}

func TestStore_DeleteOlderThan(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Insert(ctx, &domain.ActivityLog{Action: "OLD", CreatedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, store.Insert(ctx, &domain.ActivityLog{Action: "NEW", CreatedAt: now}))

	n, err := store.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "NEW", entries[0].Action)
}

func TestHandler_Recent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := setupStore(t)
	require.NoError(t, store.Insert(context.Background(), &domain.ActivityLog{Action: "PROFILE_UPDATE", CreatedAt: time.Now().UTC()}))

	r := gin.New()
	NewHandler(store).RegisterRoutes(r.Group("/api"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activity?limit=5", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PROFILE_UPDATE")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/activity?limit=nope", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
