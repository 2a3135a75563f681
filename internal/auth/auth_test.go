package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoSubject() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, _ := Subject(r.Context())
		w.Write([]byte(sub))
	})
}

func TestAuthMiddleware_Bearer(t *testing.T) {
	env := &Authenv{JWTkey: []byte("secret")}
	tok, err := env.IssueToken("site-office", time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/tools/column/calc", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	env.AuthMiddleware(echoSubject()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "site-office", rr.Body.String())
}

func TestAuthMiddleware_Cookie(t *testing.T) {
	env := &Authenv{JWTkey: []byte("secret")}
	tok, err := env.IssueToken("alice", time.Hour, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: tok})
	rr := httptest.NewRecorder()
	env.AuthMiddleware(echoSubject()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alice", rr.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	env := &Authenv{JWTkey: []byte("secret")}
	other := &Authenv{JWTkey: []byte("other")}
	expired, err := env.IssueToken("bob", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	forged, err := other.IssueToken("bob", time.Hour, time.Now())
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "bob"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"missing": "",
		"garbage": "Bearer nope",
		"expired": "Bearer " + expired,
		"forged":  "Bearer " + forged,
		"none":    "Bearer " + none,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			env.AuthMiddleware(echoSubject()).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestIssueToken_Errors(t *testing.T) {
	_, err := (&Authenv{}).IssueToken("x", time.Hour, time.Now())
	assert.Error(t, err)
	_, err = (&Authenv{JWTkey: []byte("k")}).IssueToken("", time.Hour, time.Now())
	assert.Error(t, err)
}

func TestLimitMiddleware(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 4)
	for _, addr := range []string{"10.0.0.1:1000", "10.0.0.1:1001", "10.0.0.1:1002", "10.0.0.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{200, 200, http.StatusTooManyRequests, 200}, codes)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientIP("10.0.0.1:5000"))
	assert.Equal(t, "[::1]", clientIP("[::1]:5000"))
	assert.Equal(t, "local", clientIP("local"))
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")
	now = now.Add(5 * time.Minute)
	limiter.getLimiter("10.0.0.2")
	limiter.getLimiter("10.0.0.3")
	now = now.Add(time.Minute)

	assert.Equal(t, 1, limiter.Cleanup(3*time.Minute))
	assert.NotContains(t, limiter.ips, "10.0.0.1")
	assert.Contains(t, limiter.ips, "10.0.0.2")
	assert.Contains(t, limiter.ips, "10.0.0.3")
	assert.Zero(t, limiter.Cleanup(3*time.Minute))
}

func TestIPRateLimiter_CleanupResetsBudget(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewIPRateLimiter(0.001, 1)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.getLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.getLimiter("10.0.0.1").Allow())

	now = now.Add(time.Hour)
	require.Equal(t, 1, limiter.Cleanup(time.Minute))
	assert.True(t, limiter.getLimiter("10.0.0.1").Allow())
}

func TestIPRateLimiter_SweepStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	limiter.getLimiter("10.0.0.1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Sweep(ctx, time.Millisecond, 0)
		close(done)
	}()

	require.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.ips) == 0
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Sweep did not return after cancel")
	}
}
