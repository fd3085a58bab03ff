package entity

import "strings"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa una cuenta del sistema. Nunca se borra físicamente: IsActive=false es la baja lógica.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt o hash heredado; nunca la contraseña plana
	FullName     string
	Role         string // admin | user
	IsActive     bool
}

// NormalizeRole devuelve admin o user; cualquier otro valor se normaliza a user.
func NormalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdminRole compara el rol contra admin sin distinguir mayúsculas.
func IsAdminRole(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleAdmin)
}
