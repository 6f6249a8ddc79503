package handlers

import (
	"context"
	"net/http"

	"movielists/internal/limiter"
	"movielists/internal/models"
	"movielists/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int
	signUpToken string
	signUpErr   error
	signInID    int
	signInToken string
	signInErr   error
	parseID     int
	parseErr    error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignInUsername string
	lastSignInPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpToken, m.signUpErr
}
func (m *mockAuth) SignIn(_ context.Context, username, password string) (int, string, error) {
	m.lastSignInUsername = username
	m.lastSignInPassword = password
	return m.signInID, m.signInToken, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockLists struct {
	all       []models.MovieList
	allErr    error
	byID      models.MovieList
	byIDErr   error
	created   models.MovieList
	createErr error
	updated   models.MovieList
	updateErr error
	deleteErr error

	lastGetID           string
	lastCreateOwner     int
	lastCreateInput     service.ListInput
	lastUpdateRequester int
	lastUpdateID        string
	lastUpdateInput     service.ListInput
	lastDeleteRequester int
	lastDeleteID        string
	createCalls         int
}

func (m *mockLists) ListAll(context.Context) ([]models.MovieList, error) {
	return m.all, m.allErr
}
func (m *mockLists) GetByID(_ context.Context, id string) (models.MovieList, error) {
	m.lastGetID = id
	return m.byID, m.byIDErr
}
func (m *mockLists) Create(_ context.Context, ownerID int, in service.ListInput) (models.MovieList, error) {
	m.createCalls++
	m.lastCreateOwner = ownerID
	m.lastCreateInput = in
	return m.created, m.createErr
}
func (m *mockLists) Update(_ context.Context, requesterID int, id string, in service.ListInput) (models.MovieList, error) {
	m.lastUpdateRequester = requesterID
	m.lastUpdateID = id
	m.lastUpdateInput = in
	return m.updated, m.updateErr
}
func (m *mockLists) Delete(_ context.Context, requesterID int, id string) error {
	m.lastDeleteRequester = requesterID
	m.lastDeleteID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWithLimiter(s, nil)
}

func newTestRouterWithLimiter(s *service.Service, lim *limiter.Window) *gin.Engine {
	h := NewHandler(s, lim, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
