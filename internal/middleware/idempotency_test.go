package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trungnguyen160923/coffee-management-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, redisMock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/api/v1/transactions/bulk",
		func(c *gin.Context) { c.Set("user_id_validated", "user-1") },
		middleware.Idempotency(rdb),
		handler,
	)
	return r, redisMock
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/api/v1/transactions/bulk:user-1:key-abc"
	lockKey := cacheKey + ":lock"

	t.Run("no header passes through", func(t *testing.T) {
		called := false
		r, redisMock := setupIdempotencyRouter(t, func(c *gin.Context) {
			called = true
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/bulk", nil)
		r.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cached response replayed without handler", func(t *testing.T) {
		called := false
		r, redisMock := setupIdempotencyRouter(t, func(c *gin.Context) {
			called = true
		})

		redisMock.ExpectGet(cacheKey).SetVal(`{"succeeded":2}`)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/bulk", nil)
		req.Header.Set("Idempotency-Key", "key-abc")
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"succeeded":2`)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate in flight rejected", func(t *testing.T) {
		called := false
		r, redisMock := setupIdempotencyRouter(t, func(c *gin.Context) {
			called = true
		})

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/bulk", nil)
		req.Header.Set("Idempotency-Key", "key-abc")
		r.ServeHTTP(w, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("first request acquires lock and exposes keys", func(t *testing.T) {
		r, redisMock := setupIdempotencyRouter(t, func(c *gin.Context) {
			assert.Equal(t, cacheKey, c.GetString("idempotency_cache_key"))
			assert.Equal(t, lockKey, c.GetString("idempotency_lock_key"))
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		redisMock.ExpectGet(cacheKey).RedisNil()
		redisMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/bulk", nil)
		req.Header.Set("Idempotency-Key", "key-abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
