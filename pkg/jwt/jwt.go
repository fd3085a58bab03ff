package jwt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Errores de verificación. Todos se reportan al cliente como "no autorizado".
var (
	ErrInvalidToken = errors.New("jwt: token inválido")
	ErrMissingUID   = errors.New("jwt: claim uid ausente o no numérico")
)

// subjectPrefix antecede al id de usuario en el claim sub.
const subjectPrefix = "user:"

// Claims incluye los claims estándar JWT más uid y role.
// Role viaja en el token solo como información para el cliente: la autorización
// siempre vuelve a leer el rol desde la base de datos.
type Claims struct {
	jwt.RegisteredClaims
	UID  any    `json:"uid"`
	Role string `json:"role"`
}

// Identity resultado de una verificación exitosa.
type Identity struct {
	UserID int64
	Role   string
}

// Config parámetros del emisor/verificador.
type Config struct {
	Key      string // material de la llave: base64 o texto plano
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Manager emite y verifica tokens HS256. Es inmutable y seguro para uso concurrente.
type Manager struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// Option ajusta un Manager.
type Option func(*Manager)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager construye el Manager derivando la llave simétrica del material configurado.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("jwt: llave vacía")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("jwt: duración inválida %s", cfg.TTL)
	}
	m := &Manager{
		key:      DeriveKey(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// DeriveKey intenta decodificar el material como base64 estándar; si falla usa los bytes tal cual.
func DeriveKey(material string) []byte {
	if b, err := base64.StdEncoding.DecodeString(material); err == nil && len(b) > 0 {
		return b
	}
	return []byte(material)
}

// Generate emite un token firmado para el usuario con iss, aud, sub, uid, role, iat y exp.
func (m *Manager) Generate(userID int64, role string) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			Subject:   subjectPrefix + strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UID:  userID,
		Role: role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// Verify valida firma, emisor, audiencia y vigencia, y devuelve la identidad del token.
// Nunca devuelve una identidad parcial: o hay error o UserID > 0.
func (m *Manager) Verify(tokenString string) (Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(m.now),
	)
	var claims Claims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.key, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.IssuedAt == nil {
		return Identity{}, fmt.Errorf("%w: iat requerido", ErrInvalidToken)
	}
	uid, err := coerceUID(claims.UID)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: uid, Role: claims.Role}, nil
}

// coerceUID acepta el uid como número JSON, json.Number o cadena numérica.
func coerceUID(v any) (int64, error) {
	var id int64
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt64 || x < math.MinInt64 {
			return 0, ErrMissingUID
		}
		id = int64(x)
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, ErrMissingUID
		}
		id = n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, ErrMissingUID
		}
		id = n
	case int64:
		id = x
	case int:
		id = int64(x)
	default:
		return 0, ErrMissingUID
	}
	if id <= 0 {
		return 0, ErrMissingUID
	}
	return id, nil
}
