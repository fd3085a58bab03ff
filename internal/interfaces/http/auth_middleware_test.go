package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
	apphttp "github.com/jhoicas/chilaquiles-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/chilaquiles-api/pkg/jwt"
)

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_EsquemaNoBearer_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/me", "Basic YWxhZGRpbjpvcGVu", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuthMiddleware_TokenInvalido_RegistraMotivoSinToken(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/chilaquiles", "Bearer no.es.jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
	assert.Contains(t, env.logs.String(), "token rechazado")
	assert.NotContains(t, env.logs.String(), "no.es.jwt")
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.seedUser(t, "ana", "user")
	past := newTokenManager(t, pkgjwt.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))
	tok, err := past.Generate(id, "user")
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/api/me", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_LlaveDistinta_Retorna401(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.seedUser(t, "ana", "user")
	other, err := pkgjwt.NewManager(pkgjwt.Config{Key: "otra-llave", Issuer: testIssuer, Audience: testAudience, TTL: time.Hour})
	require.NoError(t, err)
	tok, err := other.Generate(id, "user")
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/api/me", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeUserID(t *testing.T) {
	env := newTestEnv(t)
	id, bearer := env.seedUser(t, "ana", "user")

	resp := env.do(t, http.MethodGet, "/api/me", bearer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.MeResponse](t, resp)
	assert.Equal(t, id, me.ID)
	assert.Equal(t, "ana", me.Username)
}

func TestRequireAdmin_AdminAccedeRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, bearer := env.seedUser(t, "root", "admin")

	resp := env.do(t, http.MethodGet, "/api/admin/users", bearer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_UserBloqueadoEnRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	_, bearer := env.seedUser(t, "ana", "user")

	resp := env.do(t, http.MethodGet, "/api/admin/users", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRequireAdmin_RolDegradadoConTokenViejo_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	id, bearer := env.seedUser(t, "root", "admin")
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/admin/users", bearer, nil).StatusCode)

	require.NoError(t, env.users.Update(context.Background(), id, repository.UserChanges{Role: "user"}))

	resp := env.do(t, http.MethodGet, "/api/admin/users", bearer, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el rol del token no se usa para autorizar")
}

func TestRequireAdmin_TokenUserPromovidoAccede(t *testing.T) {
	env := newTestEnv(t)
	id, bearer := env.seedUser(t, "ana", "user")
	require.NoError(t, env.users.Update(context.Background(), id, repository.UserChanges{Role: "admin"}))

	resp := env.do(t, http.MethodGet, "/api/admin/users", bearer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// denyAll falla si llega a consultarse: sin identidad no debe haber lectura de rol.
type denyAll struct{ t *testing.T }

func (d denyAll) AuthorizeAdmin(context.Context, int64) error {
	d.t.Error("AuthorizeAdmin no debe llamarse sin usuario autenticado")
	return nil
}

func TestRequireAdmin_SinIdentidad_Retorna401(t *testing.T) {
	app := fiber.New()
	app.Get("/solo-admin", apphttp.RequireAdmin(denyAll{t: t}), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/solo-admin", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
