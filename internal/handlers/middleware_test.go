package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movielists/internal/limiter"
	"movielists/internal/models"
	"movielists/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil, nil)
	r.GET("/secure", h.userIdMiddleware, func(c *gin.Context) {
		uid, _ := c.Get("userId")
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": uid})
	})
	return r
}

func TestUserIDMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name   string
		header string
		want   want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing Authorization header"},
		},
		{
			name:   "invalid scheme",
			header: "Token abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "bearer without token",
			header: "Bearer",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "expired/invalid token",
			header: "Bearer expired",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid or expired token"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{parseErr: nil}
			if tc.name == "expired/invalid token" {
				auth.parseErr = errors.New("expired")
			}
			s := &service.Service{Authorization: auth}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if out.Error != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.want.errMsg)
			}
		})
	}
}

func TestUserIDMiddleware_SetsIdentity(t *testing.T) {
	auth := &mockAuth{parseID: 17}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer tok17")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastParseToken != "tok17" {
		t.Fatalf("expected raw token passed to ParseToken, got %q", auth.lastParseToken)
	}
	var out struct {
		UserID int `json:"userId"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.UserID != 17 {
		t.Fatalf("expected userId 17 in context, got %d", out.UserID)
	}
}

func TestRateLimitMiddleware_ThrottlesMutations(t *testing.T) {
	lists := &mockLists{created: models.MovieList{ID: "x"}}
	auth := &mockAuth{parseID: 1}
	s := &service.Service{Authorization: auth, Lists: lists}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lim := limiter.NewWithClock(2, time.Minute, func() time.Time { return now })
	r := newTestRouterWithLimiter(s, lim)

	// First N mutations within the window succeed.
	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/api/v1/lists", `{"title":"t","movies":"A"}`, "tok")
		if w.Code != http.StatusCreated {
			t.Fatalf("request %d: status=%d, body=%s", i+1, w.Code, w.Body.String())
		}
	}

	// The (N+1)-th is rejected with a distinct throttling signal.
	w := doJSON(r, http.MethodPost, "/api/v1/lists", `{"title":"t","movies":"A"}`, "tok")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d (body=%s)", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != throttleMessage {
		t.Fatalf("expected throttle message, got %q", out.Error)
	}
	if lists.createCalls != 2 {
		t.Fatalf("throttled request must not reach the service, got %d create calls", lists.createCalls)
	}

	// Reads are never throttled.
	for i := 0; i < 5; i++ {
		w := doJSON(r, http.MethodGet, "/api/v1/lists", "", "tok")
		if w.Code != http.StatusOK {
			t.Fatalf("read %d throttled: status=%d", i+1, w.Code)
		}
	}

	// After the window elapses the budget is restored.
	now = now.Add(time.Minute + time.Second)
	w = doJSON(r, http.MethodPost, "/api/v1/lists", `{"title":"t","movies":"A"}`, "tok")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected admission after window reset, got %d", w.Code)
	}
}
