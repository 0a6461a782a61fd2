package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavoesucri/back-end-ifd/internal/infrastructure/database"
	"github.com/gustavoesucri/back-end-ifd/pkg/cache"
)

type fakeDB struct{ err error }

func (f fakeDB) HealthCheck(context.Context) error { return f.err }

func (f fakeDB) Stats() *database.PoolStats {
	return &database.PoolStats{TotalConns: 2, IdleConns: 1, AcquiredConns: 1, MaxConns: 10}
}

type fakeCache struct{ err error }

func (f fakeCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (f fakeCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (f fakeCache) Delete(context.Context, ...string) error { return nil }

func (f fakeCache) Ping(context.Context) error { return f.err }

func health(t *testing.T, db databaseHealth, ch cache.Cache) (int, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthCheckHandler("1.0.0", db, ch))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealth_AllUp(t *testing.T) {
	code, body := health(t, fakeDB{}, fakeCache{})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	services := body["services"].(map[string]interface{})
	db := services["database"].(map[string]interface{})
	assert.Equal(t, "ok", db["status"])
	assert.NotNil(t, db["pool"])
}

func TestHealth_DatabaseDown(t *testing.T) {
	code, body := health(t, fakeDB{err: errors.New("connection refused")}, fakeCache{})
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", body["status"])
}

func TestHealth_CacheDisabledStillServes(t *testing.T) {
	code, body := health(t, fakeDB{}, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", body["status"])

	redis := body["services"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "disabled", redis["status"])
}

func TestHealth_CacheError(t *testing.T) {
	code, body := health(t, fakeDB{}, fakeCache{err: errors.New("timeout")})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", body["status"])
}
