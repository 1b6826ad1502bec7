package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mixbook/internal/auth"
	"mixbook/internal/handler"
	"mixbook/internal/model"
	"mixbook/internal/render"
	"mixbook/internal/router"
	"mixbook/internal/service"
)

// MockCredentialService is a mock implementation of service.CredentialService.
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCredentialService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCredentialService) Lookup(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockIngredientService is a mock implementation of service.IngredientService.
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) Create(ctx context.Context, name, imageURL string) (*model.Ingredient, error) {
	args := m.Called(ctx, name, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Ingredient), args.Error(1)
}

func (m *MockIngredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockIngredientService) Search(ctx context.Context, query string) ([]model.Ingredient, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

// MockDrinkService is a mock implementation of service.DrinkService.
type MockDrinkService struct {
	mock.Mock
}

func (m *MockDrinkService) Create(ctx context.Context, in service.DrinkInput, owner string) (*model.Drink, error) {
	args := m.Called(ctx, in, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drink), args.Error(1)
}

func (m *MockDrinkService) CreateOrGet(ctx context.Context, in service.DrinkInput, owner string) (*model.Drink, error) {
	args := m.Called(ctx, in, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drink), args.Error(1)
}

func (m *MockDrinkService) Get(ctx context.Context, id uuid.UUID) (*model.Drink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drink), args.Error(1)
}

func (m *MockDrinkService) GetRandom(ctx context.Context) (*model.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drink), args.Error(1)
}

func (m *MockDrinkService) List(ctx context.Context) ([]model.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Drink), args.Error(1)
}

func (m *MockDrinkService) ListLatest(ctx context.Context) ([]model.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Drink), args.Error(1)
}

func (m *MockDrinkService) ListByOwner(ctx context.Context, owner string) ([]model.Drink, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Drink), args.Error(1)
}

func (m *MockDrinkService) CountByOwner(ctx context.Context, owner string) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDrinkService) Update(ctx context.Context, id uuid.UUID, in service.DrinkInput, actingUsername string) (*model.Drink, error) {
	args := m.Called(ctx, id, in, actingUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Drink), args.Error(1)
}

func (m *MockDrinkService) Delete(ctx context.Context, id uuid.UUID, actingUsername string) error {
	args := m.Called(ctx, id, actingUsername)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Put(ctx context.Context, tokenID, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, username, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, tokenID string) (string, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// env bundles a fully wired test server over mocked services.
type env struct {
	e           *echo.Echo
	credentials *MockCredentialService
	ingredients *MockIngredientService
	drinks      *MockDrinkService
	store       *MockSessionStore
	jwt         *auth.JWTService
}

const testAdminUser = "admin"

func newEnv(t *testing.T) *env {
	t.Helper()

	e := echo.New()
	renderer, err := render.New()
	require.NoError(t, err)
	e.Renderer = renderer

	env := &env{
		e:           e,
		credentials: new(MockCredentialService),
		ingredients: new(MockIngredientService),
		drinks:      new(MockDrinkService),
		store:       new(MockSessionStore),
		jwt:         auth.NewJWTService("test-secret"),
	}
	sessions := auth.NewManager(env.jwt, env.store)

	router.Register(
		e,
		sessions,
		handler.NewAuthHandler(env.credentials, sessions),
		handler.NewIngredientHandler(env.ingredients, env.drinks, sessions),
		handler.NewDrinkHandler(env.drinks, env.ingredients, sessions),
		handler.NewCollectionHandler(env.drinks, env.credentials, sessions, testAdminUser),
	)
	return env
}

// loginAs arranges a live session and returns the cookie carrying it.
func (v *env) loginAs(t *testing.T, username string) *http.Cookie {
	t.Helper()
	tokenID, token, err := v.jwt.GenerateSessionToken(username)
	require.NoError(t, err)
	v.store.On("Get", mock.Anything, tokenID).Return(username, nil)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (v *env) get(target string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	return rec
}

func (v *env) postForm(target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	return rec
}
