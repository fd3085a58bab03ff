// Package password genera y verifica hashes de contraseña.
//
// Los hashes nuevos son bcrypt. Los hashes heredados de la base anterior,
// hex(SHA-256("salt:" + password)), se siguen aceptando al verificar para poder
// migrar la tabla users sin forzar un cambio de contraseña.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// legacySalt prefijo fijo del esquema heredado.
const legacySalt = "salt:"

// ErrTooLong la contraseña excede el límite de 72 bytes de bcrypt.
var ErrTooLong = errors.New("password: excede 72 bytes")

// Hash devuelve el hash bcrypt de la contraseña.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrTooLong
		}
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña con el hash almacenado (bcrypt o heredado).
func Verify(stored, plain string) bool {
	if IsLegacy(stored) {
		want := LegacyHash(plain)
		return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(want)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// LegacyHash calcula hex(SHA-256("salt:" + password)), el formato de la base anterior.
func LegacyHash(plain string) string {
	sum := sha256.Sum256([]byte(legacySalt + plain))
	return hex.EncodeToString(sum[:])
}

// IsLegacy indica si el hash almacenado tiene el formato heredado (64 caracteres hex).
func IsLegacy(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
