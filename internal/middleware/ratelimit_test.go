package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-therapist-go/pkg/log"
)

func newRateLimitedRouter(t *testing.T, attempts int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	log.Init("error", "console", "")
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.POST("/login", LoginRateLimiter(rdb, attempts, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r, mr
}

func doLogin(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLoginRateLimiter_AllowsWithinWindow(t *testing.T) {
	r, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLogin(r))
	}
}

func TestLoginRateLimiter_BlocksOverLimit(t *testing.T) {
	r, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doLogin(r))
	}
	assert.Equal(t, http.StatusTooManyRequests, doLogin(r))
}

func TestLoginRateLimiter_WindowResets(t *testing.T) {
	r, mr := newRateLimitedRouter(t, 1, time.Minute)

	require.Equal(t, http.StatusOK, doLogin(r))
	require.Equal(t, http.StatusTooManyRequests, doLogin(r))

	// 窗口过期后重新放行
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doLogin(r))
}

func TestLoginRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	log.Init("error", "console", "")
	gin.SetMode(gin.TestMode)

	// 指向一个无人监听的地址
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	r := gin.New()
	r.POST("/login", LoginRateLimiter(rdb, 1, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doLogin(r))
	}
}
