package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/chilaquiles-api/pkg/jwt"
)

const (
	testKey      = "test-secret-key-for-unit-tests"
	testIssuer   = "chilaquiles-auth-test"
	testAudience = "chilaquiles-clients-test"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newManager(t *testing.T, key string, now time.Time) *pkgjwt.Manager {
	t.Helper()
	m, err := pkgjwt.NewManager(pkgjwt.Config{
		Key:      key,
		Issuer:   testIssuer,
		Audience: testAudience,
		TTL:      time.Hour,
	}, pkgjwt.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return m
}

// signMap firma claims arbitrarios con la llave de prueba para simular tokens externos.
func signMap(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(pkgjwt.DeriveKey(testKey))
	require.NoError(t, err)
	return tok
}

func validMapClaims(uid any) gojwt.MapClaims {
	return gojwt.MapClaims{
		"iss": testIssuer,
		"aud": testAudience,
		"sub": "user:7",
		"uid": uid,
		"iat": baseTime.Unix(),
		"exp": baseTime.Add(time.Hour).Unix(),
	}
}

func TestGenerateAndVerify_RoundTrip(t *testing.T) {
	m := newManager(t, testKey, baseTime)

	tok, err := m.Generate(42, "admin")
	require.NoError(t, err)

	id, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "admin", id.Role)
}

func TestGenerate_ClaimsEstandar(t *testing.T) {
	m := newManager(t, testKey, baseTime)
	tok, err := m.Generate(5, "user")
	require.NoError(t, err)

	claims := gojwt.MapClaims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.Equal(t, testIssuer, claims["iss"])
	assert.Equal(t, "user:5", claims["sub"])
	assert.Equal(t, float64(5), claims["uid"])
	assert.Equal(t, "user", claims["role"])
	assert.NotEmpty(t, claims["jti"])
	assert.Equal(t, float64(baseTime.Unix()), claims["iat"])
	assert.Equal(t, float64(baseTime.Add(time.Hour).Unix()), claims["exp"])
}

func TestVerify_TokenExpirado(t *testing.T) {
	tok, err := newManager(t, testKey, baseTime).Generate(1, "user")
	require.NoError(t, err)

	later := newManager(t, testKey, baseTime.Add(time.Hour+time.Second))
	_, err = later.Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_JustoAntesDeExpirar(t *testing.T) {
	tok, err := newManager(t, testKey, baseTime).Generate(1, "user")
	require.NoError(t, err)

	_, err = newManager(t, testKey, baseTime.Add(59*time.Minute)).Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_EmitidoEnElFuturo(t *testing.T) {
	tok, err := newManager(t, testKey, baseTime.Add(10*time.Minute)).Generate(1, "user")
	require.NoError(t, err)

	_, err = newManager(t, testKey, baseTime).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_LlaveDistinta(t *testing.T) {
	tok, err := newManager(t, testKey, baseTime).Generate(1, "admin")
	require.NoError(t, err)

	_, err = newManager(t, "otra-llave-completamente-distinta", baseTime).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_EmisorYAudienciaDistintos(t *testing.T) {
	m := newManager(t, testKey, baseTime)

	c := validMapClaims(7)
	c["iss"] = "otro-emisor"
	_, err := m.Verify(signMap(t, c))
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "emisor distinto")

	c = validMapClaims(7)
	c["aud"] = "otra-audiencia"
	_, err = m.Verify(signMap(t, c))
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "audiencia distinta")
}

func TestVerify_SinExpiracion(t *testing.T) {
	c := validMapClaims(7)
	delete(c, "exp")
	_, err := newManager(t, testKey, baseTime).Verify(signMap(t, c))
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_SinIssuedAt(t *testing.T) {
	c := validMapClaims(7)
	delete(c, "iat")
	_, err := newManager(t, testKey, baseTime).Verify(signMap(t, c))
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_CoercionUID(t *testing.T) {
	m := newManager(t, testKey, baseTime)

	for _, uid := range []any{7, 7.0, "7", " 7 "} {
		id, err := m.Verify(signMap(t, validMapClaims(uid)))
		require.NoError(t, err, "uid %#v", uid)
		assert.Equal(t, int64(7), id.UserID)
	}
}

func TestVerify_UIDInvalido(t *testing.T) {
	m := newManager(t, testKey, baseTime)

	for _, uid := range []any{nil, "siete", 7.5, 0, -3, true} {
		_, err := m.Verify(signMap(t, validMapClaims(uid)))
		assert.ErrorIs(t, err, pkgjwt.ErrMissingUID, "uid %#v", uid)
	}

	c := validMapClaims(7)
	delete(c, "uid")
	_, err := m.Verify(signMap(t, c))
	assert.ErrorIs(t, err, pkgjwt.ErrMissingUID)
}

func TestVerify_AlgoritmoNone(t *testing.T) {
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, validMapClaims(7)).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newManager(t, testKey, baseTime).Verify(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestVerify_Malformado(t *testing.T) {
	m := newManager(t, testKey, baseTime)
	for _, tok := range []string{"", "abc", "token.invalido.aqui", strings.Repeat("a.", 3)} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, "token %q", tok)
	}
}

func TestDeriveKey(t *testing.T) {
	assert.Equal(t, []byte("secreto"), pkgjwt.DeriveKey("c2VjcmV0bw=="), "base64 válido se decodifica")
	assert.Equal(t, []byte("dev-secret-change"), pkgjwt.DeriveKey("dev-secret-change"), "texto plano se usa tal cual")
}

func TestNewManager_ConfigInvalida(t *testing.T) {
	_, err := pkgjwt.NewManager(pkgjwt.Config{Key: "", TTL: time.Hour})
	assert.Error(t, err)

	_, err = pkgjwt.NewManager(pkgjwt.Config{Key: "k", TTL: 0})
	assert.Error(t, err)
}
