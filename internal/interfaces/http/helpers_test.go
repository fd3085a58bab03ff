package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chilaquiles-api/internal/application/auth"
	"github.com/jhoicas/chilaquiles-api/internal/application/usecase"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/chilaquiles-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/chilaquiles-api/pkg/jwt"
	"github.com/jhoicas/chilaquiles-api/pkg/logger"
)

const (
	testKey      = "test-secret-key-for-unit-tests"
	testIssuer   = "chilaquiles-auth"
	testAudience = "chilaquiles-clients"
)

// testEnv aplicación completa sobre repositorios en memoria.
type testEnv struct {
	app    *fiber.App
	users  *memory.UserRepo
	tokens *pkgjwt.Manager
	logs   *bytes.Buffer
}

func newTokenManager(t *testing.T, opts ...pkgjwt.Option) *pkgjwt.Manager {
	t.Helper()
	m, err := pkgjwt.NewManager(pkgjwt.Config{Key: testKey, Issuer: testIssuer, Audience: testAudience, TTL: time.Hour}, opts...)
	require.NoError(t, err)
	return m
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logs := &bytes.Buffer{}
	log := logger.New(logger.Config{Env: "test", Level: "debug", Out: logs})
	users := memory.NewUserRepository()
	tokens := newTokenManager(t)
	authUC := auth.NewAuthUseCase(users, tokens)

	app := fiber.New()
	apphttp.UseBaseMiddleware(app, log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(users),
		MenuItemUC: usecase.NewMenuItemUseCase(memory.NewMenuItemRepository()),
		Tokens:     tokens,
		Log:        log,
		Driver:     "memory",
	})
	return &testEnv{app: app, users: users, tokens: tokens, logs: logs}
}

// seedUser inserta un usuario activo y devuelve un header Bearer para él.
func (e *testEnv) seedUser(t *testing.T, username, role string) (int64, string) {
	t.Helper()
	id, err := e.users.Create(context.Background(), &entity.User{Username: username, FullName: username, Role: role, IsActive: true})
	require.NoError(t, err)
	tok, err := e.tokens.Generate(id, role)
	require.NoError(t, err)
	return id, "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
